package sprite

import (
	"encoding/json"

	"svg-sprite-generator/icon"
	"svg-sprite-generator/markup"
)

// MissingAttribute is reported in SymbolAttributes when the rendered symbol
// has no class or viewBox attribute. It is kept as "undefined" so attribute
// files stay identical to those of existing sprites.
const MissingAttribute = "undefined"

// SymbolAttributes are the attributes needed to use a symbol correctly.
// They can be serialized to JSON for template engines.
type SymbolAttributes struct {
	// Class is the CSS class list of the icon. Adding it to the <svg>
	// around <use> sizes the icon like an inline one.
	Class string `json:"class"`
	// ViewBox must be set on the <svg> around <use> for the icon to scale
	// with its aspect ratio preserved.
	ViewBox string `json:"viewBox"`
	// Title is the accessible title of the icon, if any.
	Title string `json:"title,omitempty"`
}

// IconSymbol is a single icon contained as <symbol> in a sprite.
type IconSymbol struct {
	// ID is unique within the sprite.
	ID string
	// Icon is the rendered icon the symbol was built from.
	Icon *icon.Icon
	// Symbol is the stripped <symbol> element included in the sprite.
	Symbol *markup.Element
	// Attributes holds the side-channel attributes of the symbol.
	Attributes SymbolAttributes
}

// Sprite is a generated SVG sprite.
type Sprite struct {
	// Abstract is the tree of the sprite document.
	Abstract *markup.Element
	// SVG is the serialized sprite document.
	SVG string
	// Symbols are the symbols of the sprite in input order.
	Symbols []IconSymbol
	// Attributes maps each symbol id to its attributes.
	Attributes map[string]SymbolAttributes
}

// IDs returns the symbol ids in sprite order.
func (s *Sprite) IDs() []string {
	ids := make([]string, len(s.Symbols))
	for i := range s.Symbols {
		ids[i] = s.Symbols[i].ID
	}

	return ids
}

// MarshalAttributes returns the symbol attributes as indented JSON.
func (s *Sprite) MarshalAttributes() ([]byte, error) {
	attrs := s.Attributes
	if attrs == nil {
		attrs = map[string]SymbolAttributes{}
	}

	return json.MarshalIndent(attrs, "", "  ")
}
