package bem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/walteh/bemhl/pkg/bem"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		token string
		want  bem.Category
	}{
		{token: "block", want: bem.Block},
		{token: "block__elem", want: bem.Element},
		{token: "block--mod", want: bem.Modifier},
		{token: "block__elem--mod", want: bem.Modifier},
		{token: "js-toggle", want: bem.Js},
		{token: "js-qa-x", want: bem.Js},
		{token: "qa-card", want: bem.Qa},
		{token: "qa-foo--bar", want: bem.Qa},
		{token: "qa-block__elem", want: bem.Qa},
		{token: "JS-toggle", want: bem.Block},
		{token: "QA-card--x", want: bem.Modifier},
		{token: "x-js-toggle", want: bem.Block},
		{token: "-", want: bem.Block},
		{token: "a-b", want: bem.Block},
		{token: "a_b", want: bem.Block},
		{token: "--", want: bem.Modifier},
		{token: "__", want: bem.Element},
		{token: "js-", want: bem.Js},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, bem.Categorize(tt.token))
		})
	}
}

func TestCategorizeHookPrefixesWin(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rest := rapid.StringMatching(`[A-Za-z_-]{0,16}`).Draw(rt, "rest")
		prefix := rapid.SampledFrom([]string{"js-", "qa-"}).Draw(rt, "prefix")

		want := bem.Js
		if prefix == "qa-" {
			want = bem.Qa
		}
		if got := bem.Categorize(prefix + rest); got != want {
			rt.Fatalf("Categorize(%q) = %s, want %s", prefix+rest, got, want)
		}
	})
}

func TestCategoryText(t *testing.T) {
	for _, c := range bem.Categories {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back bem.Category
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}

	_, err := bem.ParseCategory("wrapper")
	assert.ErrorIs(t, err, bem.ErrUnknownCategory)

	_, err = bem.Category(0).MarshalText()
	assert.ErrorIs(t, err, bem.ErrUnknownCategory)
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "BEMIT Class: Block", bem.Block.DisplayName())
	assert.Equal(t, "BEMIT Class: Element", bem.Element.DisplayName())
	assert.Equal(t, "BEMIT Class: Modifier", bem.Modifier.DisplayName())
	assert.Equal(t, "BEMIT Class: JS", bem.Js.DisplayName())
	assert.Equal(t, "BEMIT Class: QA", bem.Qa.DisplayName())
}
