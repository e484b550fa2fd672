package sprite

// XMLDeclaration is prepended to the sprite when Options.XMLDeclaration is set.
const XMLDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// LicenseFree is the attribution notice for Font Awesome Free.
const LicenseFree = `
Font Awesome Free by @fontawesome - https://fontawesome.com
License - https://fontawesome.com/license (Icons: CC BY 4.0, Fonts: SIL OFL 1.1, Code: MIT License)
`

// Options controls the serialization of a sprite.
type Options struct {
	// XMLDeclaration prepends the XML declaration.
	XMLDeclaration bool
	// License is wrapped in an XML comment before the <svg> element.
	// An empty license omits the comment.
	License string
}

// DefaultOptions returns the default options: XML declaration and the
// Font Awesome Free license notice.
func DefaultOptions() Options {
	return Options{
		XMLDeclaration: true,
		License:        LicenseFree,
	}
}

// prefix returns the text written before the <svg> element.
func (o Options) prefix() string {
	var s string
	if o.XMLDeclaration {
		s += XMLDeclaration
	}

	if o.License != "" {
		s += "<!--" + o.License + "-->\n"
	}

	return s
}
