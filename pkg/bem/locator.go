package bem

import (
	"strings"
)

const attributeKeyword = "class"

// AttributeMatch is one class="..." occurrence. All offsets are absolute
// byte offsets into the document.
type AttributeMatch struct {
	// Start and End bound the raw text, from the keyword to the closing quote
	Start int
	End   int

	// ValueStart and ValueEnd bound the content between the quotes
	ValueStart int
	ValueEnd   int

	// Text is the raw matched text, e.g. `class="card js-card"`
	Text string
}

// Value returns the content between the quotes.
func (m AttributeMatch) Value() string {
	return m.Text[m.ValueStart-m.Start : m.ValueEnd-m.Start]
}

// LocateAttributes returns every class="..." occurrence in region, in order
// and without overlap. base is the absolute offset of region within the
// document and is added to every reported offset.
//
// The value may only hold class-name bytes and whitespace. A candidate that
// contains anything else, or that is not closed before the end of region,
// is skipped and scanning resumes after its keyword.
func LocateAttributes(region string, base int) []AttributeMatch {
	var matches []AttributeMatch

	for i := 0; i < len(region); {
		k := strings.Index(region[i:], attributeKeyword)
		if k < 0 {
			break
		}
		at := i + k

		m, ok := scanAttribute(region, at)
		if !ok {
			i = at + len(attributeKeyword)
			continue
		}

		i = m.End
		m.Start += base
		m.End += base
		m.ValueStart += base
		m.ValueEnd += base
		matches = append(matches, m)
	}

	return matches
}

// scanAttribute reads `class\s*=\s*"[value]"` starting at the keyword. The
// returned offsets are relative to s.
func scanAttribute(s string, at int) (AttributeMatch, bool) {
	p := skipSpace(s, at+len(attributeKeyword))
	if p >= len(s) || s[p] != '=' {
		return AttributeMatch{}, false
	}

	p = skipSpace(s, p+1)
	if p >= len(s) || s[p] != '"' {
		return AttributeMatch{}, false
	}
	p++

	valueStart := p
	for ; p < len(s); p++ {
		c := s[p]
		switch {
		case c == '"':
			return AttributeMatch{
				Start:      at,
				End:        p + 1,
				ValueStart: valueStart,
				ValueEnd:   p,
				Text:       s[at : p+1],
			}, true
		case isClassByte(c), isSpace(c):
		default:
			return AttributeMatch{}, false
		}
	}

	// unterminated
	return AttributeMatch{}, false
}

func skipSpace(s string, p int) int {
	for p < len(s) && isSpace(s[p]) {
		p++
	}
	return p
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isClassByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' || c == '-'
}
