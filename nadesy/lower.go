package nadesy

import (
	"fmt"
	"log"
	"strings"
)

// CondEmitter generates the code of the parts of a conditional.
type CondEmitter interface {
	// Condition returns lines that leave the zero flag set when cond is false.
	Condition(cond []Node) []string
	// Body returns the lines of a branch.
	Body(body *Layer) []string
}

// Placeholder is the CondEmitter that only describes, in comments, the
// code that is still to be generated.
type Placeholder struct{}

// comment renders text as assembler comment lines.
func comment(text string) (lines []string) {
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, "; "+line)
	}
	return
}

func (Placeholder) Condition(cond []Node) []string {
	var items []string
	for _, node := range cond {
		items = append(items, compact(node))
	}
	return comment("todo: " + strings.Join(items, ", "))
}

func (Placeholder) Body(body *Layer) []string {
	return comment("todo: " + body.String())
}

// Concoction is a lowered construct that renders to assembly.
type Concoction interface {
	// Asm renders the construct. The id makes its labels unique.
	Asm(id int, emit CondEmitter) []string
}

// Branch is one condition and the scope run when it holds.
type Branch struct {
	Cond []Node
	Then *Layer
}

// Conditional is an if, its else ifs, and an optional else.
type Conditional struct {
	Branches []Branch
	Else     *Layer
}

// Asm renders the conditional as a chain of tests. Each false condition
// jumps to the next, and each completed branch jumps past the rest.
func (cond *Conditional) Asm(id int, emit CondEmitter) (lines []string) {
	if emit == nil {
		emit = Placeholder{}
	}

	finally := fmt.Sprintf(".finally_%d", id)
	for n, branch := range cond.Branches {
		label := fmt.Sprintf(".else_%d_%d", id, n)
		lines = append(lines, emit.Condition(branch.Cond)...)
		lines = append(lines, fmt.Sprintf("jz %v ; condition %d is false", label, n+1))
		lines = append(lines, emit.Body(branch.Then)...)
		lines = append(lines, "jmp "+finally)
		lines = append(lines, label+":")
	}
	if cond.Else != nil {
		lines = append(lines, emit.Body(cond.Else)...)
	}
	lines = append(lines, finally+":")

	return
}

// isScope returns true if the node is a scope layer.
func isScope(node Node) bool {
	layer, ok := node.(*Layer)
	return ok && layer.Tag == SCOPE_SCOPE
}

// condition splits the leading condition from the items of a statement.
func condition(items []Node) (cond []Node, rest []Node, err error) {
	n := 0
	for n < len(items) && !isScope(items[n]) {
		n++
	}
	if n == 0 {
		err = ErrConditionMissing
		return
	}
	cond, rest = items[:n], items[n:]
	return
}

// body takes the scope at the start of items. Items after the scope are
// not lowered yet; they are logged and skipped.
func body(items []Node) (then *Layer, err error) {
	if len(items) == 0 || !isScope(items[0]) {
		err = ErrBodyMissing
		return
	}
	then = items[0].(*Layer)
	if len(items) > 1 {
		extra := &Layer{Tag: SCOPE_STATEMENT, Items: items[1:]}
		log.Printf("nadesy: todo: %v", extra.Line())
	}
	return
}

// branch parses `<cond...> {then}`.
func branch(items []Node) (br Branch, err error) {
	cond, rest, err := condition(items)
	if err != nil {
		return
	}
	then, err := body(rest)
	if err != nil {
		return
	}
	br = Branch{Cond: cond, Then: then}
	return
}

// lowerer tracks the conditional that else statements may extend.
type lowerer struct {
	items []Concoction
	last  *Conditional
}

// statement lowers one statement.
func (lw *lowerer) statement(stmt *Layer) (err error) {
	var kw Keyword = -1
	if len(stmt.Items) > 0 {
		if atom, ok := stmt.Items[0].(*Atom); ok && atom.Token.Kind == TOKEN_KEYWORD {
			kw = atom.Token.Keyword
		}
	}

	switch kw {
	case KW_IF:
		var br Branch
		br, err = branch(stmt.Items[1:])
		if err != nil {
			return
		}
		lw.last = &Conditional{Branches: []Branch{br}}
		lw.items = append(lw.items, lw.last)
	case KW_ELSE_IF:
		if lw.last == nil || lw.last.Else != nil {
			err = ErrElseLonely
			return
		}
		var br Branch
		br, err = branch(stmt.Items[1:])
		if err != nil {
			return
		}
		lw.last.Branches = append(lw.last.Branches, br)
	case KW_ELSE:
		if lw.last == nil || lw.last.Else != nil {
			err = ErrElseLonely
			return
		}
		lw.last.Else, err = body(stmt.Items[1:])
	default:
		log.Printf("nadesy: todo: %v", stmt.Line())
		lw.last = nil
	}

	return
}

// Lower converts the statements of a scope into concoctions.
//
// An if statement starts a Conditional, and the else if and else
// statements that directly follow it extend it. Other statements are not
// lowered yet; they are logged and skipped.
func Lower(scope *Layer) (items []Concoction, err error) {
	lw := &lowerer{}
	for _, stmt := range scope.Statements() {
		err = lw.statement(stmt)
		if err != nil {
			err = fmt.Errorf("%w: %v", err, stmt.Line())
			return
		}
	}

	items = lw.items
	return
}
