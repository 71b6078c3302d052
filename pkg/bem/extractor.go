package bem

import (
	"github.com/walteh/bemhl/pkg/position"
)

// ClassToken is one class name found inside an attribute.
type ClassToken struct {
	position.RawPosition
}

// ExtractTokens splits a match into its class names, left to right. Every
// run of class-name bytes in the raw text becomes a token except runs that
// are exactly "class", which drops the attribute keyword (and, as a side
// effect, a class literally named "class"). Duplicates are kept.
func ExtractTokens(m AttributeMatch) []ClassToken {
	var tokens []ClassToken

	for i := 0; i < len(m.Text); {
		if !isClassByte(m.Text[i]) {
			i++
			continue
		}

		j := i + 1
		for j < len(m.Text) && isClassByte(m.Text[j]) {
			j++
		}

		if run := m.Text[i:j]; run != attributeKeyword {
			tokens = append(tokens, ClassToken{position.NewBasicPosition(run, m.Start+i)})
		}
		i = j
	}

	return tokens
}
