/*
Token Types and Modifiers:
------------------------

	+-------------+     +-----------+
	| TokenType   | --> | Position  |
	+-------------+     +-----------+
	      |                  |
	      v                  v
	[Block,            [Offset, Text]
	 Element,
	 Modifier,
	 Js, Qa]

Each token carries both its type and position information.
*/
package semtok

import (
	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/position"
)

// TokenType represents the semantic meaning of a token
type TokenType uint32

const (
	TokenBlock TokenType = iota + 1
	TokenElement
	TokenBemModifier
	TokenJs
	TokenQa
)

// TokenModifier represents additional characteristics of a token
type TokenModifier uint32

const (
	// ModifierNone indicates no special characteristics
	ModifierNone TokenModifier = 0

	// ModifierDeclaration is set on the first occurrence of a class name in
	// the scanned text
	ModifierDeclaration TokenModifier = 1 << 0
)

// Token represents a semantic token with its type, modifiers, and position
type Token struct {
	Type     TokenType
	Modifier TokenModifier
	Range    position.RawPosition
}

// TokenTypeFor maps a bem category to its token type.
func TokenTypeFor(c bem.Category) TokenType {
	switch c {
	case bem.Block:
		return TokenBlock
	case bem.Element:
		return TokenElement
	case bem.Modifier:
		return TokenBemModifier
	case bem.Js:
		return TokenJs
	case bem.Qa:
		return TokenQa
	default:
		return 0
	}
}

// Category is the inverse of TokenTypeFor.
func (t TokenType) Category() bem.Category {
	switch t {
	case TokenBlock:
		return bem.Block
	case TokenElement:
		return bem.Element
	case TokenBemModifier:
		return bem.Modifier
	case TokenJs:
		return bem.Js
	case TokenQa:
		return bem.Qa
	default:
		return 0
	}
}

// String returns a human-readable representation of the token type
func (t TokenType) String() string {
	return t.Category().String()
}

// String returns a human-readable representation of the token modifier
func (m TokenModifier) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierDeclaration:
		return "declaration"
	default:
		return "unknown"
	}
}
