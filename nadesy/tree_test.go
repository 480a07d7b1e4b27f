package nadesy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func build(t *testing.T, source string) (b *Builder, err error) {
	tokens, err := Tokenize(source)
	if err != nil {
		t.Fatal(err)
	}

	b = NewBuilder()
	for _, tok := range tokens {
		err = b.Push(tok)
		if err != nil {
			return
		}
	}
	return
}

func TestBuilderIf(t *testing.T) {
	assert := assert.New(t)

	b, err := build(t, "if (a == 3) { b = 1 }")
	assert.NoError(err)
	assert.Equal(1, b.Depth())

	tree, err := b.Build()
	assert.NoError(err)

	stmts := tree.Global.Statements()
	if !assert.Equal(1, len(stmts)) {
		return
	}
	stmt := stmts[0]
	if !assert.Equal(3, len(stmt.Items)) {
		return
	}

	assert.Equal(&Atom{Token: MakeKeyword(KW_IF)}, stmt.Items[0])

	expr, ok := stmt.Items[1].(*Layer)
	if assert.True(ok) {
		assert.Equal(SCOPE_EXPRESSION, expr.Tag)
		assert.Equal([]Node{&Layer{Tag: SCOPE_INLINE, Items: []Node{
			&Atom{Token: MakeVariable("a")},
			&Atom{Token: MakeOperator(OP_EQUAL)},
			&Atom{Token: MakeNumber(3)},
		}}}, expr.Items)
	}

	scope, ok := stmt.Items[2].(*Layer)
	if assert.True(ok) {
		assert.Equal(SCOPE_SCOPE, scope.Tag)
		inner := scope.Statements()
		if assert.Equal(1, len(inner)) {
			assert.Equal(3, len(inner[0].Items))
		}
	}

	assert.Equal(":[kw(if), (#(var(a), op(==), num(3))), {...}];", stmt.Line())
}

func TestBuilderDepth(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("{ f(x, [y]) }")
	assert.NoError(err)

	b := NewBuilder()
	var depths []int
	for _, tok := range tokens {
		assert.NoError(b.Push(tok))
		depths = append(depths, b.Depth())
	}

	// { f ( x , [ y ] ) }
	assert.Equal([]int{4, 4, 6, 6, 5, 8, 8, 6, 4, 1}, depths)
}

func TestBuilderString(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("a = 1;")
	assert.NoError(err)
	assert.Equal("{\n  :[\n    var(a),\n    op(=),\n    num(1),\n  ];,\n}", tree.String())

	tree, err = Parse("")
	assert.NoError(err)
	assert.Equal("{}", tree.String())
}

func TestBuilderEmpty(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source     string
		statements int
	}){
		{";;;", 0},
		{"a", 1},
		{"a;", 1},
		{"a; b", 2},
		{"{ }", 1},
		{"{ a; }; b;", 2},
		{"f()", 1},
	}

	for _, entry := range table {
		tree, err := Parse(entry.source)
		assert.NoError(err, entry.source)
		if err == nil {
			assert.Equal(entry.statements, len(tree.Global.Statements()), entry.source)
		}
	}

	tree, err := Parse("{ }")
	assert.NoError(err)
	scope := tree.Global.Statements()[0].Items[0].(*Layer)
	assert.Empty(scope.Items)

	tree, err = Parse("f(a,)")
	assert.NoError(err)
	expr := tree.Global.Statements()[0].Items[1].(*Layer)
	assert.Equal(1, len(expr.Items))
}

func TestBuilderErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		err    error
	}){
		{"}", ErrPopGlobal},
		{"a; }", ErrPopGlobal},
		{"(a}", ErrPopMismatch{Tag: SCOPE_STATEMENT, Current: SCOPE_INLINE}},
		{"{ a )", ErrPopMismatch{Tag: SCOPE_INLINE, Current: SCOPE_STATEMENT}},
		{"[a)", ErrPopMismatch{Tag: SCOPE_EXPRESSION, Current: SCOPE_SUBSCRIPT}},
		{"({})", ErrNotValid{Node: "scope", Tag: SCOPE_INLINE}},
	}

	for _, entry := range table {
		_, err := build(t, entry.source)
		assert.ErrorIs(err, entry.err, entry.source)
	}
}

func TestBuilderUnterminated(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		path   string
	}){
		{"if (a", "{0}->:[0];->(0)->#(0)"},
		{"{ a", "{0}->:[0];->{0}->:[0];"},
		{"x { y; { z", "{0}->:[0];->{0}->:[1];->{0}->:[0];"},
	}

	for _, entry := range table {
		b, err := build(t, entry.source)
		assert.NoError(err, entry.source)
		_, err = b.Build()
		assert.Equal(ErrUnterminated(entry.path), err, entry.source)
	}
}

func TestLayerAdd(t *testing.T) {
	assert := assert.New(t)

	atom := &Atom{Token: MakeVariable("a")}

	scope := &Layer{Tag: SCOPE_SCOPE}
	assert.Equal(ErrNotValid{Node: "var(a)", Tag: SCOPE_SCOPE}, scope.Add(atom))
	assert.Error(scope.Add(&Layer{Tag: SCOPE_INLINE}))
	assert.NoError(scope.Add(&Layer{Tag: SCOPE_STATEMENT}))

	expr := &Layer{Tag: SCOPE_EXPRESSION}
	assert.NoError(expr.Add(atom))
	assert.NoError(expr.Add(&Layer{Tag: SCOPE_SUBSCRIPT}))
	assert.Error(expr.Add(&Layer{Tag: SCOPE_STATEMENT}))

	stmt := &Layer{Tag: SCOPE_STATEMENT}
	assert.NoError(stmt.Add(atom))
	assert.NoError(stmt.Add(&Layer{Tag: SCOPE_SCOPE}))
	assert.Equal(2, len(stmt.Items))
}
