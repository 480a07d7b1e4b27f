package lex

import (
	"errors"

	"github.com/ezrec/nade/translate"
)

var f = translate.From

var (
	ErrPattern  = errors.New(f("invalid pattern"))
	ErrReserved = errors.New(f("empty reserved word"))
)

// ErrUnknownWord is a word that matched no reserved word or rule.
type ErrUnknownWord struct {
	Text   string
	Offset int
}

func (err ErrUnknownWord) Error() string {
	return f("unknown word \"%v\" at offset %d", err.Text, err.Offset)
}
