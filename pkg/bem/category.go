package bem

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Category is the kind of class name a token was recognised as.
type Category uint8

const (
	// Block is a standalone component name (e.g., card)
	Block Category = iota + 1

	// Element is a part of a block (e.g., card__title)
	Element

	// Modifier is a variant of a block or element (e.g., card--active)
	Modifier

	// Js is a hook used by scripts (e.g., js-toggle)
	Js

	// Qa is a hook used by automated tests (e.g., qa-card)
	Qa
)

// Categories lists every category in declaration order.
var Categories = []Category{Block, Element, Modifier, Js, Qa}

var ErrUnknownCategory = errors.Base("unknown category")

// Categorize returns the category of a single class name. Hook prefixes win
// over structural markers, so qa-block--mod is Qa.
func Categorize(token string) Category {
	switch {
	case strings.HasPrefix(token, "js-"):
		return Js
	case strings.HasPrefix(token, "qa-"):
		return Qa
	case strings.Contains(token, "--"):
		return Modifier
	case strings.Contains(token, "__"):
		return Element
	default:
		return Block
	}
}

// String returns the lower-case name used in config files and output.
func (c Category) String() string {
	switch c {
	case Block:
		return "block"
	case Element:
		return "element"
	case Modifier:
		return "modifier"
	case Js:
		return "js"
	case Qa:
		return "qa"
	default:
		return "unknown"
	}
}

// DisplayName returns the user facing label of the category.
func (c Category) DisplayName() string {
	switch c {
	case Js:
		return "BEMIT Class: JS"
	case Qa:
		return "BEMIT Class: QA"
	case Block, Element, Modifier:
		name := c.String()
		return "BEMIT Class: " + strings.ToUpper(name[:1]) + name[1:]
	default:
		return "BEMIT Class: Unknown"
	}
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, errors.Errorf("%q: %w", s, ErrUnknownCategory)
}

func (c Category) MarshalText() ([]byte, error) {
	if c < Block || c > Qa {
		return nil, errors.Errorf("category %d: %w", uint8(c), ErrUnknownCategory)
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
