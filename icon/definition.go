package icon

import (
	"fmt"
	"strings"

	"svg-sprite-generator/markup"
)

// Lookup identifies a registered icon by style prefix and icon name.
type Lookup struct {
	Prefix   string `yaml:"prefix"`
	IconName string `yaml:"name"`
}

// String returns the lookup in "prefix/name" form.
func (l Lookup) String() string {
	return l.Prefix + "/" + l.IconName
}

// IsZero returns true if neither prefix nor name are set.
func (l Lookup) IsZero() bool {
	return l.Prefix == "" && l.IconName == ""
}

// ParseLookup parses the "prefix/name" shorthand.
func ParseLookup(s string) (Lookup, error) {
	prefix, name, ok := strings.Cut(s, "/")
	if !ok || prefix == "" || name == "" || strings.Contains(name, "/") {
		return Lookup{}, fmt.Errorf("invalid icon lookup %q (expected prefix/name)", s)
	}

	return Lookup{Prefix: prefix, IconName: name}, nil
}

// Definition describes the geometry of a single icon.
type Definition struct {
	Lookup `yaml:",inline"`

	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Ligatures []string `yaml:"ligatures,omitempty"`
	Unicode   string   `yaml:"unicode,omitempty"`
	Path      string   `yaml:"path"`
}

// Icon is a rendered icon.
type Icon struct {
	Lookup
	// Abstract holds the root elements of the rendered icon.
	Abstract []*markup.Element
}

// HTML renders each root element of the icon.
func (i *Icon) HTML() []string {
	return markup.ToHTMLAll(i.Abstract)
}
