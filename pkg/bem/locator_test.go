package bem_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/bemhl/pkg/bem"
)

func TestLocateAttributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "no attribute", input: "<div id=\"x\">hello</div>", want: nil},
		{name: "simple", input: `<a class="card">`, want: []string{`class="card"`}},
		{name: "empty value", input: `<a class="">`, want: []string{`class=""`}},
		{name: "spaces around equals", input: `<a class = "card">`, want: []string{`class = "card"`}},
		{name: "leading and trailing whitespace", input: `<a class=" card  x ">`, want: []string{`class=" card  x "`}},
		{name: "unterminated", input: `<a class="card x`, want: nil},
		{name: "digit in value", input: `<a class="col-12 row">`, want: nil},
		{name: "razor expression in value", input: `<a class="card @cls">`, want: nil},
		{name: "single quotes", input: `<a class='card'>`, want: nil},
		{name: "className is not class", input: `<a className="card">`, want: nil},
		{name: "no word boundary before keyword", input: `<a data-class="card">`, want: []string{`class="card"`}},
		{
			name:  "bad attribute does not hide the next one",
			input: `<a class="c1"><b class="ok">`,
			want:  []string{`class="ok"`},
		},
		{
			name:  "multiple attributes",
			input: "<a class=\"one\">\n<b class=\"two three\">",
			want:  []string{`class="one"`, `class="two three"`},
		},
		{
			name:  "value spanning lines",
			input: "<a class=\"one\n  two\">",
			want:  []string{"class=\"one\n  two\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := bem.LocateAttributes(tt.input, 0)

			var got []string
			for _, m := range matches {
				got = append(got, m.Text)
				assert.Equal(t, m.Text, tt.input[m.Start:m.End])
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LocateAttributes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLocateAttributesOffsets(t *testing.T) {
	region := `<b class="x">`
	matches := bem.LocateAttributes(region, 100)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 103, m.Start)
	assert.Equal(t, 112, m.End)
	assert.Equal(t, 110, m.ValueStart)
	assert.Equal(t, 111, m.ValueEnd)
	assert.Equal(t, "x", m.Value())
}

func TestLocateAttributesNoOverlap(t *testing.T) {
	input := `class="a" class="b"class="c" class=class="d"`
	matches := bem.LocateAttributes(input, 0)

	require.Len(t, matches, 4)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].End, matches[i].Start)
	}
	assert.Equal(t, "d", matches[3].Value())
}
