package nadesy

import (
	"fmt"
	"log"
	"strings"
)

// Node is an element of a token tree: an *Atom or a *Layer.
type Node interface {
	String() string
}

// Atom is a leaf token.
type Atom struct {
	Token Token
}

func (atom *Atom) String() string {
	return atom.Token.String()
}

// Layer is a nesting level of the tree.
//
// Expression, subscript and inline layers hold atoms and other expression
// layers. A statement holds anything. A scope holds only statements.
type Layer struct {
	Tag   ScopeType
	Items []Node
}

// isExpr returns true if the node may be an element of an expression.
func isExpr(node Node) bool {
	switch node := node.(type) {
	case *Atom:
		return true
	case *Layer:
		return node.Tag == SCOPE_EXPRESSION || node.Tag == SCOPE_SUBSCRIPT || node.Tag == SCOPE_INLINE
	}
	return false
}

// Add appends a node, checking that this kind of layer may hold it.
func (layer *Layer) Add(node Node) (err error) {
	var ok bool
	switch layer.Tag {
	case SCOPE_STATEMENT:
		ok = true
	case SCOPE_SCOPE:
		sub, isLayer := node.(*Layer)
		ok = isLayer && sub.Tag == SCOPE_STATEMENT
	default:
		ok = isExpr(node)
	}
	if !ok {
		err = ErrNotValid{Node: describe(node), Tag: layer.Tag}
		return
	}

	layer.Items = append(layer.Items, node)
	return
}

// Statements returns the statements of a scope layer.
func (layer *Layer) Statements() (list []*Layer) {
	for _, node := range layer.Items {
		if stmt, ok := node.(*Layer); ok && stmt.Tag == SCOPE_STATEMENT {
			list = append(list, stmt)
		}
	}
	return
}

// describe names a node for error messages.
func describe(node Node) string {
	if layer, ok := node.(*Layer); ok {
		return layer.Tag.String()
	}
	return node.String()
}

// bracket wraps inner text in the delimiters of a layer type.
func bracket(tag ScopeType, inner string) string {
	var open, end string
	switch tag {
	case SCOPE_EXPRESSION:
		open, end = "(", ")"
	case SCOPE_INLINE:
		open, end = "#(", ")"
	case SCOPE_SUBSCRIPT:
		open, end = "[", "]"
	case SCOPE_STATEMENT:
		open, end = ":[", "];"
	case SCOPE_SCOPE:
		open, end = "{", "}"
	}
	return open + inner + end
}

// String renders the layer and its contents, one item per line.
func (layer *Layer) String() string {
	var inner strings.Builder
	for _, node := range layer.Items {
		inner.WriteString(strings.ReplaceAll("\n"+node.String()+",", "\n", "\n  "))
	}
	if inner.Len() > 0 {
		inner.WriteByte('\n')
	}
	return bracket(layer.Tag, inner.String())
}

// Line renders a statement on one line, with nested scopes elided.
func (layer *Layer) Line() string {
	var items []string
	for _, node := range layer.Items {
		if sub, ok := node.(*Layer); ok && sub.Tag == SCOPE_SCOPE {
			items = append(items, bracket(SCOPE_SCOPE, "..."))
		} else {
			items = append(items, compact(node))
		}
	}
	return bracket(layer.Tag, strings.Join(items, ", "))
}

// compact renders a node on one line.
func compact(node Node) string {
	layer, ok := node.(*Layer)
	if !ok {
		return node.String()
	}
	var items []string
	for _, item := range layer.Items {
		items = append(items, compact(item))
	}
	return bracket(layer.Tag, strings.Join(items, ", "))
}

// Tree is the nesting structure of a token stream.
type Tree struct {
	Global Layer
}

func (tree *Tree) String() string {
	return tree.Global.String()
}

// frame is an open layer, and its index among the layers of its parent.
type frame struct {
	layer *Layer
	index int
}

// Builder builds a Tree from a token stream, tracking the open layers.
type Builder struct {
	Verbose bool // If set, logs every push and pop.

	tree  *Tree
	stack []frame
}

// NewBuilder returns a Builder whose only open layer is the global scope.
func NewBuilder() (b *Builder) {
	b = &Builder{
		tree: &Tree{Global: Layer{Tag: SCOPE_SCOPE}},
	}
	b.stack = []frame{{layer: &b.tree.Global}}
	return
}

// current returns the innermost open layer.
func (b *Builder) current() *Layer {
	return b.stack[len(b.stack)-1].layer
}

// Depth returns the number of open layers, including the global scope.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Path renders the open layers, outermost first.
func (b *Builder) Path() string {
	var path []string
	for _, fr := range b.stack {
		path = append(path, bracket(fr.layer.Tag, fmt.Sprintf("%d", fr.index)))
	}
	return strings.Join(path, "->")
}

// impliedPath returns the layers opened by a scope control: a scope
// always holds a statement, and expressions and subscripts always hold
// an inline item.
func impliedPath(tag ScopeType) []ScopeType {
	switch tag {
	case SCOPE_SCOPE:
		return []ScopeType{tag, SCOPE_STATEMENT}
	case SCOPE_EXPRESSION, SCOPE_SUBSCRIPT:
		return []ScopeType{tag, SCOPE_INLINE}
	default:
		return []ScopeType{tag}
	}
}

func (b *Builder) pushScopes(tags []ScopeType) (err error) {
	for _, tag := range tags {
		layer := &Layer{Tag: tag}
		parent := b.current()
		index := 0
		for _, node := range parent.Items {
			if _, ok := node.(*Layer); ok {
				index++
			}
		}
		err = parent.Add(layer)
		if err != nil {
			return
		}
		b.stack = append(b.stack, frame{layer: layer, index: index})
	}
	return
}

func (b *Builder) popScopes(tags []ScopeType) (err error) {
	for n := len(tags) - 1; n >= 0; n-- {
		tag := tags[n]
		if len(b.stack) == 1 {
			err = ErrPopGlobal
			return
		}
		layer := b.current()
		if layer.Tag != tag {
			err = ErrPopMismatch{Tag: tag, Current: layer.Tag}
			return
		}
		b.stack = b.stack[:len(b.stack)-1]

		// Implied layers left empty are dropped.
		if len(layer.Items) == 0 && (tag == SCOPE_STATEMENT || tag == SCOPE_INLINE) {
			parent := b.current()
			parent.Items = parent.Items[:len(parent.Items)-1]
		}
	}

	// Closing a scope also ends the statement that holds it.
	if tags[0] == SCOPE_SCOPE && b.current().Tag == SCOPE_STATEMENT {
		err = b.popScopes(impliedPath(SCOPE_STATEMENT))
	}

	return
}

// Push adds a token to the tree. Scope controls open or close layers,
// and every other token is an atom of the innermost layer.
func (b *Builder) Push(tok Token) (err error) {
	missing := impliedPath(b.current().Tag)[1:]
	if len(missing) > 0 {
		err = b.pushScopes(missing)
		if err != nil {
			return
		}
	}

	if tok.Kind == TOKEN_SCOPE {
		path := impliedPath(tok.Scope)
		if b.Verbose {
			log.Printf("tree: %v %v %v", b.Path(), tok.Direction, path)
		}
		if tok.Direction == DIR_PUSH {
			err = b.pushScopes(path)
		} else {
			err = b.popScopes(path)
		}
		return
	}

	if b.Verbose {
		log.Printf("tree: %v += %v", b.Path(), tok)
	}
	err = b.current().Add(&Atom{Token: tok})
	return
}

// Build finishes the tree. A trailing statement directly under the global
// scope is closed; any other open layer is an error.
func (b *Builder) Build() (tree *Tree, err error) {
	if len(b.stack) == 2 && b.current().Tag == SCOPE_STATEMENT {
		err = b.popScopes(impliedPath(SCOPE_STATEMENT))
		if err != nil {
			return
		}
	}

	if len(b.stack) != 1 {
		err = ErrUnterminated(b.Path())
		return
	}

	tree = b.tree
	return
}
