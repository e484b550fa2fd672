package sprite

import (
	"svg-sprite-generator/icon"
	"svg-sprite-generator/internal/common"
	"svg-sprite-generator/markup"
)

// allowedAttributes are copied from the rendered symbol onto the sprite
// symbol, in this order, after its id.
var allowedAttributes = []string{"viewBox", "aria-labelledby"}

// prepareSymbol validates the shape of a rendered icon and builds its symbol.
// The rendered tree is not modified; the returned symbol is a copy.
func prepareSymbol(ic *icon.Icon, customID string) (IconSymbol, error) {
	var roots []*markup.Element
	if ic != nil {
		roots = ic.Abstract
	}

	svg, ok := common.Single(roots)
	if !ok {
		return IconSymbol{}, structureError(StructureRootCount,
			"Unexpected number of root elements (%d):\n%s", len(roots), common.JoinFunc(roots, "\n", renderElement))
	}

	if tag := markup.TagOf(svg); tag != "svg" {
		return IconSymbol{}, structureError(StructureRootTag, "Unexpected root tag: '%s' (expected 'svg')", tag)
	}

	if common.IsEmpty(svg.Children) {
		return IconSymbol{}, structureError(StructureNoChildren, "SVG has no children")
	}

	child, ok := common.Single(svg.Children)
	if !ok {
		return IconSymbol{}, structureError(StructureChildCount,
			"Multiple elements included in SVG:\n%s", common.JoinFunc(svg.Children, "\n", markup.ToHTML))
	}

	symbol, _ := child.(*markup.Element)
	if tag := markup.TagOf(child); tag != "symbol" || symbol == nil {
		return IconSymbol{}, structureError(StructureChildTag,
			"Unexpected element in SVG: '%s' (expected 'symbol'). Did you set {symbol: true}?", tag)
	}

	original := symbol.Attributes

	attributes := SymbolAttributes{
		Class:   attributeString(original, "class"),
		ViewBox: attributeString(original, "viewBox"),
	}

	if title, ok := symbol.Find("title"); ok {
		attributes.Title = title.TextContent()
	}

	id := customID
	if id == "" {
		id = attributeString(original, "id")
	}

	stripped := symbol.Clone()
	stripped.Attributes = markup.Attrs("id", id)

	for _, name := range allowedAttributes {
		if v, ok := original.Get(name); ok {
			stripped.Attributes.Set(name, v)
		}
	}

	return IconSymbol{
		ID:         id,
		Icon:       ic,
		Symbol:     stripped,
		Attributes: attributes,
	}, nil
}

func attributeString(attrs markup.Attributes, name string) string {
	if v, ok := attrs.Get(name); ok {
		return v
	}

	return MissingAttribute
}

func renderElement(el *markup.Element) string {
	return markup.ToHTML(el)
}
