package sprite

import (
	"errors"
	"fmt"

	"svg-sprite-generator/icon"
)

var (
	errNoRenderer    = errors.New("no renderer configured")
	errNilDescriptor = errors.New("nil descriptor")
)

// loadSymbol resolves a descriptor into a rendered icon in symbol mode.
// Unless the descriptor already requests a symbol id, id is used, and an
// empty id lets the renderer generate one.
func (g *Generator) loadSymbol(d Descriptor, id string) (*icon.Icon, error) {
	switch p := d.(type) {
	case nil:
		return nil, &RenderError{Err: errNilDescriptor}
	case *PreRenderedIcon:
		if p == nil {
			return nil, &RenderError{Descriptor: d, Err: errNilDescriptor}
		}

		d = *p
	case *Query:
		if p == nil {
			return nil, &RenderError{Descriptor: d, Err: errNilDescriptor}
		}

		d = *p
	}

	switch d := d.(type) {
	case PreRenderedIcon:
		return d.Icon, nil

	case Query:
		var params icon.Params
		if d.Params != nil {
			params = d.Params.Clone()
		}

		if !params.Symbol.IsSet() {
			if id != "" {
				params.Symbol = icon.SymbolID(id)
			} else {
				params.Symbol = icon.AutoSymbol()
			}
		}

		if g.renderer == nil {
			return nil, &RenderError{Descriptor: d, Err: errNoRenderer}
		}

		ic, err := g.renderer.Render(d.Lookup, params)
		if err != nil || ic == nil {
			return nil, &RenderError{Descriptor: d, Err: err}
		}

		return ic, nil

	default:
		return nil, &RenderError{Descriptor: d, Err: fmt.Errorf("unsupported descriptor %T", d)}
	}
}
