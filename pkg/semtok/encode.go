package semtok

import (
	"sort"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/position"
)

var ErrInvalidLegend = errors.Base("invalid semantic token legend")

// Legend is what the server announces to the client. TokenTypes is indexed
// by category order, so TokenTypes[0] names Block.
type Legend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

var defaultTypeNames = map[bem.Category]string{
	bem.Block:    "class",
	bem.Element:  "property",
	bem.Modifier: "enumMember",
	bem.Js:       "function",
	bem.Qa:       "decorator",
}

func DefaultLegend() Legend {
	legend, _ := NewLegend(nil)
	return legend
}

// NewLegend builds a legend from per-category token type names. Categories
// missing from names keep their default name.
func NewLegend(names map[bem.Category]string) (Legend, error) {
	legend := Legend{
		TokenTypes:     make([]string, 0, len(bem.Categories)),
		TokenModifiers: []string{"declaration"},
	}

	for c := range names {
		if _, ok := defaultTypeNames[c]; !ok {
			return Legend{}, errors.Errorf("category %d: %w", uint8(c), ErrInvalidLegend)
		}
	}

	owner := make(map[string]bem.Category, len(bem.Categories))
	for _, c := range bem.Categories {
		name := defaultTypeNames[c]
		if override, ok := names[c]; ok {
			if override == "" {
				return Legend{}, errors.Errorf("empty token type for %s: %w", c, ErrInvalidLegend)
			}
			name = override
		}
		// clients index types by name, two categories cannot share one
		if prev, ok := owner[name]; ok {
			return Legend{}, errors.Errorf("token type %q used by %s and %s: %w", name, prev, c, ErrInvalidLegend)
		}
		owner[name] = c
		legend.TokenTypes = append(legend.TokenTypes, name)
	}

	return legend, nil
}

// Encode converts tokens to the LSP relative encoding. Every token becomes
// five integers: deltaLine, deltaStart, length, tokenType, tokenModifiers.
// Tokens are sorted by position first; the input slice is not modified.
func Encode(tokens []Token, content string) []uint32 {
	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range.Offset < sorted[j].Range.Offset
	})

	idx := position.NewIndex(content)
	data := make([]uint32, 0, len(sorted)*5)
	var prevLine, prevChar uint32

	for _, tok := range sorted {
		if tok.Type < TokenBlock || tok.Type > TokenQa {
			continue
		}

		start := idx.Place(tok.Range.Offset)
		end := idx.Place(tok.Range.End())
		line := uint32(start.Line)
		char := uint32(start.Character)
		length := uint32(end.Character - start.Character)

		deltaLine := line - prevLine
		deltaStart := char
		if deltaLine == 0 {
			deltaStart = char - prevChar
		}

		data = append(data,
			deltaLine,
			deltaStart,
			length,
			uint32(tok.Type-TokenBlock),
			uint32(tok.Modifier),
		)

		prevLine = line
		prevChar = char
	}

	return data
}

// Decoded is one entry of an encoded token stream in absolute coordinates.
type Decoded struct {
	Line      int
	Character int
	Length    int
	Type      TokenType
	Modifier  TokenModifier
}

// Decode reverses Encode. It is used by clients of the CLI output and by
// tests to check an encoded stream.
func Decode(data []uint32) ([]Decoded, error) {
	if len(data)%5 != 0 {
		return nil, errors.Errorf("data length %d is not a multiple of 5", len(data))
	}

	out := make([]Decoded, 0, len(data)/5)
	var line, char int
	for i := 0; i < len(data); i += 5 {
		if data[i] > 0 {
			line += int(data[i])
			char = int(data[i+1])
		} else {
			char += int(data[i+1])
		}
		out = append(out, Decoded{
			Line:      line,
			Character: char,
			Length:    int(data[i+2]),
			Type:      TokenType(data[i+3]) + TokenBlock,
			Modifier:  TokenModifier(data[i+4]),
		})
	}

	return out, nil
}
