package manifest

import (
	"strconv"

	"svg-sprite-generator/icon"
	"svg-sprite-generator/markup"
)

// CurrentVersion is the only supported manifest version.
const CurrentVersion = "1"

// File is a parsed sprite manifest.
type File struct {
	// Version of the manifest schema. Defaults to CurrentVersion.
	Version string `yaml:"version"`
	// Options override the default sprite options.
	Options OptionsSpec `yaml:"options,omitempty"`
	// Icons are the icons of the sprite.
	Icons IconList `yaml:"icons"`
}

// OptionsSpec holds sprite options; nil fields keep their defaults.
type OptionsSpec struct {
	XMLDeclaration *bool   `yaml:"xml_declaration,omitempty"`
	License        *string `yaml:"license,omitempty"`
}

// IconList is either a sequence of icons or a mapping from symbol id to icon.
type IconList struct {
	// Named is true if the list was given as a mapping.
	Named   bool
	Entries []IconEntry
}

// IconEntry is a single icon of the manifest.
// It is either a lookup (Prefix, Name and optional Params) or a
// pre-rendered Abstract tree.
type IconEntry struct {
	// ID is the mapping key of a named entry.
	ID string `yaml:"-"`
	// Shorthand is the raw "prefix/name" form, if used.
	Shorthand string `yaml:"-"`

	Prefix   string            `yaml:"prefix,omitempty"`
	Name     string            `yaml:"name,omitempty"`
	Params   *icon.Params      `yaml:"params,omitempty"`
	Abstract []*markup.Element `yaml:"abstract,omitempty"`
}

// Lookup returns the icon lookup of the entry.
func (e *IconEntry) Lookup() icon.Lookup {
	return icon.Lookup{Prefix: e.Prefix, IconName: e.Name}
}

// IsPreRendered returns true if the entry carries an abstract tree.
func (e *IconEntry) IsPreRendered() bool {
	return e.Abstract != nil
}

// label identifies the entry in diagnostics and errors.
func (l *IconList) label(i int) string {
	if l.Named {
		return "icons[" + strconv.Quote(l.Entries[i].ID) + "]"
	}

	return "icons[" + strconv.Itoa(i) + "]"
}
