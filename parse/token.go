// Package parse converts streams of CSS declaration-value tokens into
// style bytecode, one grammar per longhand property.
package parse

import (
	"fmt"

	"github.com/zhuyadong/libcss/intern"
)

// TokenType represents the type of a CSS token.
type TokenType int

const (
	TokenIdent TokenType = iota
	TokenString
	TokenNumber
	TokenPercentage
	TokenDimension
	TokenURI
	TokenFunction
	TokenHash
	TokenChar
	TokenWhitespace
)

// Token is one lexed token. Idents, strings, URIs, functions and hashes
// carry the original interned text in Value and a case-folded interned
// twin in Lower; keyword comparison is pointer identity against the
// context's pre-interned table. Numeric tokens carry their source text in
// Data (for dimensions, number and unit concatenated).
type Token struct {
	Type  TokenType
	Data  string
	Value *intern.String
	Lower *intern.String
	Char  rune
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdent:
		return fmt.Sprintf("<IDENT %q>", t.Data)
	case TokenString:
		return fmt.Sprintf("<STRING %q>", t.Data)
	case TokenNumber:
		return fmt.Sprintf("<NUMBER %s>", t.Data)
	case TokenPercentage:
		return fmt.Sprintf("<PERCENTAGE %s%%>", t.Data)
	case TokenDimension:
		return fmt.Sprintf("<DIMENSION %s>", t.Data)
	case TokenURI:
		return fmt.Sprintf("<URI %q>", t.Data)
	case TokenFunction:
		return fmt.Sprintf("<FUNCTION %q>", t.Data)
	case TokenHash:
		return fmt.Sprintf("<HASH %q>", t.Data)
	case TokenChar:
		return fmt.Sprintf("<CHAR %q>", string(t.Char))
	case TokenWhitespace:
		return "<WS>"
	}
	return fmt.Sprintf("<UNKNOWN %d>", t.Type)
}

// IsChar reports whether the token is the given punctuation character.
func (t *Token) IsChar(c rune) bool {
	return t != nil && t.Type == TokenChar && t.Char == c
}

// TokenVector is a read-only view over a declaration value's tokens.
// Parsers address it through an integer cursor they own, so a failed
// parse restores its entry cursor and leaves no trace.
type TokenVector struct {
	tokens []Token
}

// NewTokenVector wraps a token slice.
func NewTokenVector(tokens []Token) *TokenVector {
	return &TokenVector{tokens: tokens}
}

// Len returns the number of tokens.
func (v *TokenVector) Len() int { return len(v.tokens) }

// Iterate returns the token at the cursor and advances, or nil at the
// end.
func (v *TokenVector) Iterate(ctx *int) *Token {
	if *ctx >= len(v.tokens) {
		return nil
	}
	t := &v.tokens[*ctx]
	*ctx++
	return t
}

// Peek returns the token at the cursor without advancing, or nil.
func (v *TokenVector) Peek(ctx int) *Token {
	if ctx >= len(v.tokens) {
		return nil
	}
	return &v.tokens[ctx]
}

// ConsumeWhitespace advances the cursor past any whitespace tokens.
func (v *TokenVector) ConsumeWhitespace(ctx *int) {
	for *ctx < len(v.tokens) && v.tokens[*ctx].Type == TokenWhitespace {
		*ctx++
	}
}
