package sprite

import (
	"fmt"
	"strconv"

	"svg-sprite-generator/icon"
)

// Renderer renders a single icon. *icon.Library implements Renderer.
type Renderer interface {
	Render(lookup icon.Lookup, params icon.Params) (*icon.Icon, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(lookup icon.Lookup, params icon.Params) (*icon.Icon, error)

// Render calls f(lookup, params).
func (f RendererFunc) Render(lookup icon.Lookup, params icon.Params) (*icon.Icon, error) {
	return f(lookup, params)
}

// Generator generates sprites using a Renderer.
type Generator struct {
	renderer Renderer
}

// New creates a Generator that renders icons with r.
func New(r Renderer) *Generator {
	return &Generator{renderer: r}
}

// Generate generates a sprite for icons.
// Errors wrap a *RenderError, *StructureError or *DuplicateIDError.
func (g *Generator) Generate(icons Icons, opts Options) (*Sprite, error) {
	symbols, err := g.prepareSymbols(icons)
	if err != nil {
		return nil, err
	}

	return assemble(symbols, opts)
}

// Symbols loads and normalizes the symbols of icons without assembling a sprite.
func (g *Generator) Symbols(icons Icons) ([]IconSymbol, error) {
	return g.prepareSymbols(icons)
}

func (g *Generator) prepareSymbols(icons Icons) ([]IconSymbol, error) {
	symbols := make([]IconSymbol, 0, icons.Len())

	for i, entry := range icons.entries {
		ic, err := g.loadSymbol(entry.Descriptor, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("icon %s: %w", entryLabel(i, entry), err)
		}

		s, err := prepareSymbol(ic, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("icon %s (%s): %w", entryLabel(i, entry), describe(entry.Descriptor), err)
		}

		symbols = append(symbols, s)
	}

	return symbols, nil
}

func entryLabel(i int, entry Entry) string {
	if entry.ID != "" {
		return strconv.Quote(entry.ID)
	}

	return strconv.Itoa(i)
}
