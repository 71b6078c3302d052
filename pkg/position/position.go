package position

import (
	"fmt"
)

// Place is a zero-based line/character pair. Character counts UTF-16 code
// units, which is the default position encoding of LSP clients.
type Place struct {
	Line      int
	Character int
}

type Range struct {
	Start Place
	End   Place
}

// RawPosition represents a position in the source text
type RawPosition struct {
	// Offset is the byte offset in the source text
	Offset int
	// Text is the actual text at this position
	Text string
}

// ID returns a unique identifier for this position based on offset and text
func (p RawPosition) ID() string {
	return fmt.Sprintf("%s@%d", p.Text, p.Offset)
}

// Length returns the length of the text at this position
func (p RawPosition) Length() int {
	return len(p.Text)
}

// End returns the byte offset one past the last byte of the text.
func (p RawPosition) End() int {
	return p.Offset + p.Length()
}

func NewBasicPosition(text string, offset int) RawPosition {
	return RawPosition{Text: text, Offset: offset}
}

func (p RawPosition) HasRangeOverlapWith(start RawPosition) bool {
	startOffset := start.Offset
	endOffset := start.End()

	posOffset := p.Offset
	posEndOffset := p.End()

	// a zero-length position overlaps if it falls within the other range
	if p.Length() == 0 {
		return posOffset >= startOffset && posOffset <= endOffset
	}
	if start.Length() == 0 {
		return startOffset >= posOffset && startOffset <= posEndOffset
	}

	return startOffset < posEndOffset && endOffset > posOffset
}

func (p RawPosition) String() string {
	return p.ID()
}
