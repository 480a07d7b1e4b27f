package lex

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testToken string

func testTokenizer(t *testing.T, sensitive bool) *Tokenizer[testToken] {
	tk, err := New(Config[testToken]{
		Reserved: []Reserved[testToken]{
			{"if", "IF"},
			{"else", "ELSE"},
			{"else if", "ELSEIF"},
			{"=", "ASSIGN"},
			{"==", "EQ"},
			{"..", "RANGE"},
			{"{", "LBRACE"},
			{"}", "RBRACE"},
		},
		Number: Rule[testToken]{
			Pattern: `[0-9]+`,
			Convert: func(word string) (token testToken, err error) {
				value, err := strconv.ParseInt(word, 10, 16)
				token = testToken("NUM:" + strconv.Itoa(int(value)))
				return
			},
		},
		Identifier: Rule[testToken]{
			Pattern: `[a-zA-Z_][a-zA-Z_0-9]*`,
			Convert: func(word string) (testToken, error) {
				return testToken("VAR:" + word), nil
			},
		},
		Comment:             `(?s)//.*?(?:\n|$)|/\*.*?\*/`,
		WhitespaceSensitive: sensitive,
	})
	if err != nil {
		t.Fatal(err)
	}
	return tk
}

func tokens(words []Word[testToken]) (list []testToken) {
	for _, word := range words {
		if word.Ok {
			list = append(list, word.Token)
		} else {
			list = append(list, testToken("?"+word.Text))
		}
	}
	return
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	tk := testTokenizer(t, false)

	table := [](struct {
		code   string
		tokens []testToken
	}){
		{"", nil},
		{"if a == 3", []testToken{"IF", "VAR:a", "EQ", "NUM:3"}},
		{"a=b", []testToken{"VAR:a", "ASSIGN", "VAR:b"}},
		{"else if x", []testToken{"ELSEIF", "VAR:x"}},
		{"else   if x", []testToken{"ELSEIF", "VAR:x"}},
		{"else\n\tif x", []testToken{"ELSEIF", "VAR:x"}},
		{"else iffy", []testToken{"ELSE", "VAR:iffy"}},
		{"elsewhere if", []testToken{"VAR:elsewhere", "IF"}},
		{"0..4", []testToken{"NUM:0", "RANGE", "NUM:4"}},
		{"{}", []testToken{"LBRACE", "RBRACE"}},
		{"a @ b", []testToken{"VAR:a", "?@", "VAR:b"}},
		{"99999", []testToken{"?99999"}},
		{"a // line comment\nb", []testToken{"VAR:a", "VAR:b"}},
		{"a/* block\ncomment */b", []testToken{"VAR:a", "VAR:b"}},
		{"if /* x */ a // trailing", []testToken{"IF", "VAR:a"}},
		{"else/**/if", []testToken{"ELSEIF"}},
	}

	for _, entry := range table {
		assert.Equal(entry.tokens, tokens(tk.Tokenize(entry.code)), entry.code)
	}
}

func TestTokenizeWhitespaceSensitive(t *testing.T) {
	assert := assert.New(t)

	tk := testTokenizer(t, true)

	assert.Equal([]testToken{"ELSE", "IF", "VAR:x"}, tokens(tk.Tokenize("else\nif x")))
	assert.Equal([]testToken{"ELSE", "IF"}, tokens(tk.Tokenize("else  if")))
	assert.Equal("a\n b", tk.Normalize("a\n/* c */b"))
}

func TestTokenizeOffset(t *testing.T) {
	assert := assert.New(t)

	tk := testTokenizer(t, false)

	words := tk.Tokenize("if  ab == $ 12")
	if assert.Equal(5, len(words)) {
		assert.Equal(Word[testToken]{Text: "if", Offset: 0, Token: "IF", Ok: true}, words[0])
		assert.Equal(Word[testToken]{Text: "ab", Offset: 3, Token: "VAR:ab", Ok: true}, words[1])
		assert.Equal(Word[testToken]{Text: "==", Offset: 6, Token: "EQ", Ok: true}, words[2])
		assert.Equal(Word[testToken]{Text: "$", Offset: 9}, words[3])
		assert.Equal(Word[testToken]{Text: "12", Offset: 11, Token: "NUM:12", Ok: true}, words[4])
	}

	err := Unknown(words)
	var unknown ErrUnknownWord
	if assert.True(errors.As(err, &unknown)) {
		assert.Equal("$", unknown.Text)
		assert.Equal(9, unknown.Offset)
	}

	assert.NoError(Unknown(words[:3]))
}

func TestNewErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := New(Config[int]{Reserved: []Reserved[int]{{"", 1}}})
	assert.ErrorIs(err, ErrReserved)

	_, err = New(Config[int]{Identifier: Rule[int]{Pattern: `[a-`}})
	assert.ErrorIs(err, ErrPattern)

	_, err = New(Config[int]{Comment: `(`})
	assert.ErrorIs(err, ErrPattern)

	tk, err := New(Config[int]{})
	assert.NoError(err)
	assert.Equal([]Word[int]{{Text: "x", Offset: 0}}, tk.Tokenize("x"))
}
