package nadesy

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/ezrec/nade/lex"
)

// TokenKind is the class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_KEYWORD  = TokenKind(0) // kw
	TOKEN_VARIABLE = TokenKind(1) // var
	TOKEN_NUMBER   = TokenKind(2) // num
	TOKEN_OPERATOR = TokenKind(3) // op
	TOKEN_SCOPE    = TokenKind(4) // scope
)

// Keyword is a reserved word of the language.
type Keyword int

//go:generate go tool stringer -linecomment -type=Keyword
const (
	KW_IF      = Keyword(0) // if
	KW_ELSE    = Keyword(1) // else
	KW_ELSE_IF = Keyword(2) // else if
	KW_FOR     = Keyword(3) // for
	KW_IN      = Keyword(4) // in
	KW_WHILE   = Keyword(5) // while
	KW_LET     = Keyword(6) // let
	KW_CONST   = Keyword(7) // const
)

// Operator is an arithmetic, logical, comparison or assignment operator.
type Operator int

//go:generate go tool stringer -linecomment -type=Operator
const (
	OP_ADD              = Operator(0)  // +
	OP_SUBTRACT         = Operator(1)  // -
	OP_MULTIPLY         = Operator(2)  // *
	OP_DIVIDE           = Operator(3)  // /
	OP_REMAINDER        = Operator(4)  // %
	OP_BIT_AND          = Operator(5)  // &
	OP_BIT_OR           = Operator(6)  // |
	OP_BIT_XOR          = Operator(7)  // ^
	OP_BIT_NOT          = Operator(8)  // ~
	OP_ADD_ASSIGN       = Operator(9)  // +=
	OP_SUBTRACT_ASSIGN  = Operator(10) // -=
	OP_MULTIPLY_ASSIGN  = Operator(11) // *=
	OP_DIVIDE_ASSIGN    = Operator(12) // /=
	OP_REMAINDER_ASSIGN = Operator(13) // %=
	OP_BIT_AND_ASSIGN   = Operator(14) // &=
	OP_BIT_OR_ASSIGN    = Operator(15) // |=
	OP_BIT_XOR_ASSIGN   = Operator(16) // ^=
	OP_LOGIC_AND        = Operator(17) // &&
	OP_LOGIC_OR         = Operator(18) // ||
	OP_LOGIC_NOT        = Operator(19) // !
	OP_ASSIGN           = Operator(20) // =
	OP_EQUAL            = Operator(21) // ==
	OP_NOT_EQUAL        = Operator(22) // !=
	OP_GREATER          = Operator(23) // >
	OP_GREATER_EQUAL    = Operator(24) // >=
	OP_LESS             = Operator(25) // <
	OP_LESS_EQUAL       = Operator(26) // <=
	OP_FAT_ARROW        = Operator(27) // =>
	OP_RANGE            = Operator(28) // ..
)

// ScopeType is the kind of a nesting layer.
type ScopeType int

//go:generate go tool stringer -linecomment -type=ScopeType
const (
	SCOPE_EXPRESSION = ScopeType(0) // expression
	SCOPE_SUBSCRIPT  = ScopeType(1) // subscript
	SCOPE_INLINE     = ScopeType(2) // inline
	SCOPE_SCOPE      = ScopeType(3) // scope
	SCOPE_STATEMENT  = ScopeType(4) // statement
)

// Direction is whether a scope control opens or closes a layer.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIR_PUSH = Direction(0) // push
	DIR_POP  = Direction(1) // pop
)

// Token is a classified word. Only the fields of its Kind are meaningful.
type Token struct {
	Kind      TokenKind
	Keyword   Keyword
	Operator  Operator
	Name      string
	Value     int16
	Scope     ScopeType
	Direction Direction
}

func MakeKeyword(kw Keyword) Token {
	return Token{Kind: TOKEN_KEYWORD, Keyword: kw}
}

func MakeOperator(op Operator) Token {
	return Token{Kind: TOKEN_OPERATOR, Operator: op}
}

func MakeVariable(name string) Token {
	return Token{Kind: TOKEN_VARIABLE, Name: name}
}

func MakeNumber(value int16) Token {
	return Token{Kind: TOKEN_NUMBER, Value: value}
}

func MakePush(tag ScopeType) Token {
	return Token{Kind: TOKEN_SCOPE, Scope: tag, Direction: DIR_PUSH}
}

func MakePop(tag ScopeType) Token {
	return Token{Kind: TOKEN_SCOPE, Scope: tag, Direction: DIR_POP}
}

// IsKeyword returns true if the token is the keyword kw.
func (tok Token) IsKeyword(kw Keyword) bool {
	return tok.Kind == TOKEN_KEYWORD && tok.Keyword == kw
}

func (tok Token) String() string {
	var inner string
	switch tok.Kind {
	case TOKEN_KEYWORD:
		inner = tok.Keyword.String()
	case TOKEN_VARIABLE:
		inner = tok.Name
	case TOKEN_NUMBER:
		inner = strconv.Itoa(int(tok.Value))
	case TOKEN_OPERATOR:
		inner = tok.Operator.String()
	case TOKEN_SCOPE:
		sign := "+"
		if tok.Direction == DIR_POP {
			sign = "-"
		}
		inner = bracket(tok.Scope, sign)
	}
	return fmt.Sprintf("%v(%v)", tok.Kind, inner)
}

// reserved is every reserved word of the language.
var reserved = []lex.Reserved[Token]{
	{Text: "else if", Token: MakeKeyword(KW_ELSE_IF)},
	{Text: "if", Token: MakeKeyword(KW_IF)},
	{Text: "else", Token: MakeKeyword(KW_ELSE)},
	{Text: "for", Token: MakeKeyword(KW_FOR)},
	{Text: "in", Token: MakeKeyword(KW_IN)},
	{Text: "while", Token: MakeKeyword(KW_WHILE)},
	{Text: "let", Token: MakeKeyword(KW_LET)},
	{Text: "const", Token: MakeKeyword(KW_CONST)},
	{Text: ",", Token: MakePop(SCOPE_INLINE)},
	{Text: ";", Token: MakePop(SCOPE_STATEMENT)},
	{Text: "(", Token: MakePush(SCOPE_EXPRESSION)},
	{Text: ")", Token: MakePop(SCOPE_EXPRESSION)},
	{Text: "{", Token: MakePush(SCOPE_SCOPE)},
	{Text: "}", Token: MakePop(SCOPE_SCOPE)},
	{Text: "[", Token: MakePush(SCOPE_SUBSCRIPT)},
	{Text: "]", Token: MakePop(SCOPE_SUBSCRIPT)},
}

func init() {
	for op := OP_ADD; op <= OP_RANGE; op++ {
		reserved = append(reserved, lex.Reserved[Token]{Text: op.String(), Token: MakeOperator(op)})
	}
}

// tokenizer is built on first use.
var tokenizer = sync.OnceValues(func() (*lex.Tokenizer[Token], error) {
	return lex.New(lex.Config[Token]{
		Reserved: reserved,
		Number: lex.Rule[Token]{
			Pattern: `[0-9]+`,
			Convert: func(word string) (tok Token, err error) {
				value, err := strconv.ParseInt(word, 10, 16)
				tok = MakeNumber(int16(value))
				return
			},
		},
		Identifier: lex.Rule[Token]{
			Pattern: `[a-zA-Z_][a-zA-Z_0-9]*`,
			Convert: func(word string) (Token, error) {
				return MakeVariable(word), nil
			},
		},
		Comment: `(?s)//.*?(?:\n|$)|/\*.*?\*/`,
	})
})

// Tokenize splits source text into tokens. An unknown word is an
// lex.ErrUnknownWord error.
func Tokenize(source string) (tokens []Token, err error) {
	tk, err := tokenizer()
	if err != nil {
		return
	}

	words := tk.Tokenize(source)
	err = lex.Unknown(words)
	if err != nil {
		return
	}

	tokens = make([]Token, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, word.Token)
	}

	return
}
