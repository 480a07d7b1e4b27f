package nadesy

import (
	"errors"

	"github.com/ezrec/nade/translate"
)

var f = translate.From

var (
	// Tree errors
	ErrPopGlobal = errors.New(f("cannot pop global scope"))

	// Lowering errors
	ErrElseLonely       = errors.New(f("'else' cannot start a statement"))
	ErrConditionMissing = errors.New(f("if statement must ask something"))
	ErrBodyMissing      = errors.New(f("if statement must do something"))
)

// ErrPopMismatch is a closing scope control that does not match the open layer.
type ErrPopMismatch struct {
	Tag     ScopeType
	Current ScopeType
}

func (err ErrPopMismatch) Error() string {
	return f("cannot pop %v scope when current scope is %v", err.Tag, err.Current)
}

// ErrNotValid is a node placed in a layer that cannot hold it.
type ErrNotValid struct {
	Node string
	Tag  ScopeType
}

func (err ErrNotValid) Error() string {
	return f("%v is not valid in %v", err.Node, err.Tag)
}

// ErrUnterminated is source that ends with layers still open.
type ErrUnterminated string

func (err ErrUnterminated) Error() string {
	return f("unterminated %v", string(err))
}
