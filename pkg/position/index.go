package position

import (
	"sort"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"gitlab.com/tozd/go/errors"
)

var ErrOutOfBounds = errors.Base("position out of bounds")

// Index maps between byte offsets and line/character places of one document.
//
//	text:   "ab\ncd\n"
//	starts: [0, 3, 6]
//	        line 0 -> "ab", line 1 -> "cd", line 2 -> ""
type Index struct {
	text   string
	starts []int
}

func NewIndex(text string) *Index {
	starts := make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{text: text, starts: starts}
}

// LineCount returns the number of lines, counting the (possibly empty) line
// after a trailing newline.
func (me *Index) LineCount() int {
	return len(me.starts)
}

// LineText returns the content of the line without its line terminator.
func (me *Index) LineText(line int) string {
	if line < 0 || line >= len(me.starts) {
		return ""
	}
	return me.text[me.starts[line]:me.lineEnd(line)]
}

// LineStart returns the byte offset where the line begins.
func (me *Index) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(me.starts) {
		return len(me.text)
	}
	return me.starts[line]
}

func (me *Index) lineEnd(line int) int {
	end := len(me.text)
	if line+1 < len(me.starts) {
		end = me.starts[line+1] - 1
	}
	if end > me.starts[line] && me.text[end-1] == '\r' {
		end--
	}
	return end
}

// LineOf returns the zero-based line containing offset. Offsets past the end
// of the text resolve to the last line.
func (me *Index) LineOf(offset int) int {
	return sort.Search(len(me.starts), func(i int) bool { return me.starts[i] > offset }) - 1
}

// Place converts a byte offset into a zero-based line and UTF-16 character.
func (me *Index) Place(offset int) Place {
	if offset < 0 {
		offset = 0
	}
	if offset > len(me.text) {
		offset = len(me.text)
	}
	line := me.LineOf(offset)
	return Place{
		Line:      line,
		Character: utf16Len(me.text[me.starts[line]:offset]),
	}
}

// Offset converts a place back into a byte offset. A character past the end
// of its line resolves to the end of that line, as LSP clients expect.
func (me *Index) Offset(p Place) (int, error) {
	if p.Line < 0 || p.Line >= len(me.starts) || p.Character < 0 {
		return 0, errors.Errorf("line %d character %d: %w", p.Line, p.Character, ErrOutOfBounds)
	}

	start, end := me.starts[p.Line], me.lineEnd(p.Line)
	units := 0
	for i, r := range me.text[start:end] {
		if units >= p.Character {
			return start + i, nil
		}
		units += utf16.RuneLen(r)
	}

	return end, nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// DisplayColumn returns the 1-based visual column of byteCol within lineText.
// Grapheme clusters count as one column and tabs advance to the next multiple
// of tabWidth.
func DisplayColumn(lineText string, byteCol int, tabWidth int) int {
	if byteCol > len(lineText) {
		byteCol = len(lineText)
	}
	if tabWidth <= 0 {
		tabWidth = 1
	}

	prefix := []byte(lineText[:byteCol])
	clusters, err := textseg.AllTokens(prefix, textseg.ScanGraphemeClusters)
	if err != nil {
		return utf8.RuneCount(prefix) + 1
	}

	col := 0
	for _, c := range clusters {
		if len(c) == 1 && c[0] == '\t' {
			col += tabWidth - col%tabWidth
			continue
		}
		col++
	}

	return col + 1
}
