// Package icon is an in-memory icon registry and renderer that produces
// Font Awesome style abstract SVG trees.
//
// Icons are registered in a Library as Definitions (prefix, name, size and
// path data) and rendered with Library.Render. Rendering supports the
// parameters the sprite generator relies on:
//
//   - symbol mode: wrap the icon in a <symbol> with a generated or explicit id
//   - titles: add an accessible <title> and aria-labelledby reference
//   - transforms: scale, translate, rotate and flip the icon path
//   - extra CSS classes
//
// Libraries can be loaded from YAML:
//
//	icons:
//	  - prefix: fas
//	    name: dice-one
//	    width: 448
//	    height: 512
//	    unicode: f525
//	    path: M384 32H64C28.65 32 0 60.65 0 96v320c0 ...
package icon
