// Package lex implements a generic regular expression tokenizer.
//
// A Tokenizer classifies the words of a source text into caller supplied
// tokens: literal reserved words first (longest first), then a numeric
// literal rule, then an identifier rule. Text that matches none of them
// is reported as an unknown word instead of being dropped.
package lex

import (
	"cmp"
	"errors"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Converter turns the text of a matched word into a token.
type Converter[T any] func(word string) (token T, err error)

// Reserved is a literal reserved word and its token.
type Reserved[T any] struct {
	Text  string
	Token T
}

// Rule is a pattern and the converter for the words it matches.
type Rule[T any] struct {
	Pattern string
	Convert Converter[T]
}

// Config describes a language to tokenize.
type Config[T any] struct {
	Reserved            []Reserved[T] // Literal reserved words. Not patterns.
	Number              Rule[T]       // Numeric literals.
	Identifier          Rule[T]       // Names.
	Comment             string        // Pattern of comments, removed before tokenizing.
	WhitespaceSensitive bool          // If false, newlines and runs of blanks become a single space.
}

// Word is one tokenized word.
type Word[T any] struct {
	Text   string // Matched text.
	Offset int    // Byte offset in the normalized source.
	Token  T      // Token, if Ok.
	Ok     bool   // False if the word is unknown.
}

// Tokenizer splits source text into Words.
type Tokenizer[T any] struct {
	reWord     *regexp.Regexp
	reComment  *regexp.Regexp
	number     Rule[T]
	identifier Rule[T]
	reNumber   *regexp.Regexp
	reIdent    *regexp.Regexp
	reserved   map[string]T

	whitespaceSensitive bool
}

var reBlanks = regexp.MustCompile(`[ \t\r]+`)

// isWordByte returns true if the byte is a regexp `\w` character.
func isWordByte(b byte) bool {
	return b == '_' || b < 0x80 && (unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)))
}

// literal quotes a reserved word, anchoring its word-character edges so
// that a reserved word never matches inside a longer name.
func literal(text string) string {
	pattern := regexp.QuoteMeta(text)
	if isWordByte(text[0]) {
		pattern = `\b` + pattern
	}
	if isWordByte(text[len(text)-1]) {
		pattern = pattern + `\b`
	}
	return pattern
}

// compile compiles a pattern, anchored to match a whole word if whole is set.
func compile(pattern string, whole bool) (re *regexp.Regexp, err error) {
	if whole {
		pattern = `^(?:` + pattern + `)$`
	}
	re, err = regexp.Compile(pattern)
	if err != nil {
		err = errors.Join(ErrPattern, err)
	}
	return
}

// New creates a Tokenizer for a language.
func New[T any](config Config[T]) (tk *Tokenizer[T], err error) {
	reserved := slices.Clone(config.Reserved)
	slices.SortStableFunc(reserved, func(a, b Reserved[T]) int {
		return cmp.Compare(len(b.Text), len(a.Text))
	})

	tk = &Tokenizer[T]{
		number:              config.Number,
		identifier:          config.Identifier,
		reserved:            make(map[string]T, len(reserved)),
		whitespaceSensitive: config.WhitespaceSensitive,
	}

	var alternates []string
	for _, word := range reserved {
		if len(word.Text) == 0 {
			return nil, ErrReserved
		}
		alternates = append(alternates, literal(word.Text))
		tk.reserved[word.Text] = word.Token
	}
	for _, rule := range []Rule[T]{config.Number, config.Identifier} {
		if len(rule.Pattern) > 0 {
			alternates = append(alternates, `(?:`+rule.Pattern+`)`)
		}
	}

	tk.reWord, err = compile(strings.Join(alternates, "|"), false)
	if err != nil {
		return nil, err
	}

	if len(config.Number.Pattern) > 0 {
		tk.reNumber, err = compile(config.Number.Pattern, true)
		if err != nil {
			return nil, err
		}
	}

	if len(config.Identifier.Pattern) > 0 {
		tk.reIdent, err = compile(config.Identifier.Pattern, true)
		if err != nil {
			return nil, err
		}
	}

	if len(config.Comment) > 0 {
		tk.reComment, err = compile(config.Comment, false)
		if err != nil {
			return nil, err
		}
	}

	return tk, nil
}

// Normalize removes comments and, unless whitespace sensitive, folds
// newlines and runs of blanks into single spaces.
func (tk *Tokenizer[T]) Normalize(code string) string {
	if tk.reComment != nil {
		code = tk.reComment.ReplaceAllLiteralString(code, " ")
	}
	if !tk.whitespaceSensitive {
		code = strings.ReplaceAll(code, "\n", " ")
		code = reBlanks.ReplaceAllLiteralString(code, " ")
	}
	return code
}

// classify converts a matched word into its token.
func (tk *Tokenizer[T]) classify(text string, offset int) (word Word[T]) {
	word = Word[T]{Text: text, Offset: offset}

	if token, ok := tk.reserved[text]; ok {
		word.Token, word.Ok = token, true
		return
	}

	for _, rule := range []struct {
		re   *regexp.Regexp
		rule Rule[T]
	}{
		{tk.reNumber, tk.number},
		{tk.reIdent, tk.identifier},
	} {
		if rule.re == nil || !rule.re.MatchString(text) {
			continue
		}
		if rule.rule.Convert == nil {
			return
		}
		token, err := rule.rule.Convert(text)
		if err != nil {
			return
		}
		word.Token, word.Ok = token, true
		return
	}

	return
}

// unknown appends the blank separated words of unmatched text.
func (tk *Tokenizer[T]) unknown(words []Word[T], text string, offset int) []Word[T] {
	start := -1
	for n := 0; n <= len(text); n++ {
		blank := n == len(text) || strings.IndexByte(" \t\r\n", text[n]) >= 0
		switch {
		case blank && start >= 0:
			words = append(words, Word[T]{Text: text[start:n], Offset: offset + start})
			start = -1
		case !blank && start < 0:
			start = n
		}
	}
	return words
}

// Tokenize splits source code into words, in order.
func (tk *Tokenizer[T]) Tokenize(code string) (words []Word[T]) {
	code = tk.Normalize(code)

	last := 0
	for _, loc := range tk.reWord.FindAllStringIndex(code, -1) {
		if loc[0] == loc[1] {
			continue
		}
		words = tk.unknown(words, code[last:loc[0]], last)
		words = append(words, tk.classify(code[loc[0]:loc[1]], loc[0]))
		last = loc[1]
	}
	words = tk.unknown(words, code[last:], last)

	return
}

// Unknown returns the first unknown word as an ErrUnknownWord, or nil.
func Unknown[T any](words []Word[T]) error {
	for _, word := range words {
		if !word.Ok {
			return ErrUnknownWord{Text: word.Text, Offset: word.Offset}
		}
	}
	return nil
}
