package bem

import (
	"gitlab.com/tozd/go/errors"
)

var ErrInvalidRange = errors.Base("invalid range")

// Range is a half-open byte range [Start, End) of a document.
type Range struct {
	Start int
	End   int
}

// Validate reports whether the range fits a document of length n.
func (r Range) Validate(n int) error {
	if r.Start < 0 || r.Start > r.End || r.End > n {
		return errors.Errorf("[%d, %d) in document of length %d: %w", r.Start, r.End, n, ErrInvalidRange)
	}
	return nil
}

// Span is the result of classifying one token.
type Span struct {
	Start    int      `json:"start"`
	Length   int      `json:"length"`
	Category Category `json:"category"`
}

func (s Span) End() int {
	return s.Start + s.Length
}

// ClassifiedToken is a token together with its category.
type ClassifiedToken struct {
	ClassToken
	Category Category
}

func (t ClassifiedToken) Span() Span {
	return Span{Start: t.Offset, Length: t.Length(), Category: t.Category}
}

// Classify returns the classified spans of every class name in text, or in
// rng when it is not nil. Offsets are always absolute to text. The only error
// is ErrInvalidRange; ranges are never clamped.
func Classify(text string, rng *Range) ([]Span, error) {
	tokens, err := ClassifyTokens(text, rng)
	if err != nil {
		return nil, err
	}

	spans := make([]Span, len(tokens))
	for i, tok := range tokens {
		spans[i] = tok.Span()
	}
	return spans, nil
}

// ClassifyTokens is Classify but keeps each token's text.
func ClassifyTokens(text string, rng *Range) ([]ClassifiedToken, error) {
	r := Range{Start: 0, End: len(text)}
	if rng != nil {
		if err := rng.Validate(len(text)); err != nil {
			return nil, err
		}
		r = *rng
	}

	var out []ClassifiedToken
	for _, m := range LocateAttributes(text[r.Start:r.End], r.Start) {
		for _, tok := range ExtractTokens(m) {
			out = append(out, ClassifiedToken{
				ClassToken: tok,
				Category:   Categorize(tok.Text),
			})
		}
	}

	return out, nil
}

// TokenAt returns the classified token under offset. An offset touching
// either edge of a token counts, so a cursor placed right after a class
// name still selects it.
func TokenAt(text string, offset int) (ClassifiedToken, bool) {
	if offset < 0 || offset > len(text) {
		return ClassifiedToken{}, false
	}

	tokens, err := ClassifyTokens(text, nil)
	if err != nil {
		return ClassifiedToken{}, false
	}

	for _, tok := range tokens {
		if tok.Offset > offset {
			break
		}
		if offset <= tok.End() {
			return tok, true
		}
	}

	return ClassifiedToken{}, false
}
