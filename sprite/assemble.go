package sprite

import (
	"svg-sprite-generator/icon"
	"svg-sprite-generator/markup"
)

// assemble combines symbols into a sprite. Symbol order is preserved.
func assemble(symbols []IconSymbol, opts Options) (*Sprite, error) {
	children := make([]markup.Node, 0, len(symbols))
	attributes := make(map[string]SymbolAttributes, len(symbols))

	for _, s := range symbols {
		if _, ok := attributes[s.ID]; ok {
			return nil, &DuplicateIDError{ID: s.ID}
		}

		children = append(children, s.Symbol)
		attributes[s.ID] = s.Attributes
	}

	abstract := &markup.Element{
		Tag:        "svg",
		Attributes: markup.Attrs("xmlns", icon.SVGNamespace),
		Children:   children,
	}

	return &Sprite{
		Abstract:   abstract,
		SVG:        opts.prefix() + markup.ToHTML(abstract),
		Symbols:    symbols,
		Attributes: attributes,
	}, nil
}
