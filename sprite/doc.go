// Package sprite assembles SVG sprites from individually rendered icons.
//
// Every requested icon is turned into a <symbol> element with a unique id and
// all symbols are combined into a single SVG document that can be referenced
// with fragment identifiers:
//
//	<svg viewBox="0 0 448 512"><use href="sprite.svg#dice"></use></svg>
//
// Generation runs in three stages:
//
//   - load: resolve each Descriptor into a rendered icon, forcing symbol mode
//   - normalize: validate the rendered tree, extract the side-channel
//     SymbolAttributes and strip the symbol down to its id and the
//     attributes needed to render it
//   - assemble: check ids are unique and serialize the sprite
//
// Each stage fails fast; a failed Generate call never returns a partial sprite.
//
// The rendering backend is injected as a Renderer, usually an *icon.Library:
//
//	lib := icon.NewLibrary(defs...)
//	s, err := sprite.New(lib).Generate(sprite.Named(
//		sprite.Entry{ID: "dice", Descriptor: sprite.Lookup("fas", "dice-one")},
//	), sprite.DefaultOptions())
package sprite
