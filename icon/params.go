package icon

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultSize is the size of an untransformed icon.
const DefaultSize = 16

// Params are optional rendering parameters.
type Params struct {
	// Symbol requests a <symbol> wrapped variant of the icon.
	Symbol SymbolMode `yaml:"symbol,omitempty"`
	// Title is the accessible title of the icon.
	Title string `yaml:"title,omitempty"`
	// TitleID overrides the id of the generated <title> element.
	TitleID string `yaml:"title_id,omitempty"`
	// Classes are additional CSS classes.
	Classes []string `yaml:"classes,omitempty"`
	// Transform is an optional visual transform.
	Transform *Transform `yaml:"transform,omitempty"`
}

// Clone returns a copy of the parameters that shares no mutable state with p.
func (p Params) Clone() Params {
	c := p
	if p.Classes != nil {
		c.Classes = append([]string(nil), p.Classes...)
	}

	if p.Transform != nil {
		t := *p.Transform
		c.Transform = &t
	}

	return c
}

// SymbolMode selects whether and how an icon is rendered as a <symbol>.
// The zero value disables symbol mode.
type SymbolMode struct {
	// Auto requests an id generated from the icon lookup.
	Auto bool
	// ID requests a specific symbol id. It takes precedence over Auto.
	ID string
}

// AutoSymbol requests a symbol with a generated id.
func AutoSymbol() SymbolMode {
	return SymbolMode{Auto: true}
}

// SymbolID requests a symbol with the given id.
func SymbolID(id string) SymbolMode {
	return SymbolMode{ID: id}
}

// IsSet returns true if symbol mode is enabled.
func (m SymbolMode) IsSet() bool {
	return m.Auto || m.ID != ""
}

// UnmarshalYAML accepts either a boolean or an explicit symbol id.
func (m *SymbolMode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: symbol must be a boolean or a string", node.Line)
	}

	if node.ShortTag() == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}

		*m = SymbolMode{Auto: b}

		return nil
	}

	*m = SymbolMode{ID: node.Value}

	return nil
}

// Transform is a Font Awesome style visual transform.
type Transform struct {
	// Size in sixteenths of the icon size. Zero means DefaultSize.
	Size float64 `yaml:"size,omitempty"`
	// X and Y translate the icon in sixteenths of its size.
	X float64 `yaml:"x,omitempty"`
	Y float64 `yaml:"y,omitempty"`
	// Rotate is the rotation in degrees.
	Rotate float64 `yaml:"rotate,omitempty"`
	FlipX  bool    `yaml:"flip_x,omitempty"`
	FlipY  bool    `yaml:"flip_y,omitempty"`
}

// EffectiveSize returns the size with the default applied.
func (t Transform) EffectiveSize() float64 {
	if t.Size == 0 {
		return DefaultSize
	}

	return t.Size
}

// IsMeaningful returns true if the transform changes the rendered icon.
func (t Transform) IsMeaningful() bool {
	return t.EffectiveSize() != DefaultSize ||
		t.X != 0 || t.Y != 0 || t.Rotate != 0 ||
		t.FlipX || t.FlipY
}
