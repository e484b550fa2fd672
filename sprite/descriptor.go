package sprite

import (
	"svg-sprite-generator/icon"
)

// Descriptor selects a single icon for a sprite. It is one of
// PreRenderedIcon or Query, built with PreRendered, Lookup,
// LookupWithParams or FromLookup.
type Descriptor interface {
	// String describes the descriptor in error messages.
	String() string
	descriptor()
}

// PreRenderedIcon is an icon that was already rendered in symbol mode.
// Its tree is used as-is and never modified.
type PreRenderedIcon struct {
	Icon *icon.Icon
}

// Query is an icon that is rendered by the Renderer.
type Query struct {
	Lookup icon.Lookup
	// Params are optional rendering parameters; nil means none.
	Params *icon.Params
}

func (PreRenderedIcon) descriptor() {}
func (Query) descriptor()           {}

func (p PreRenderedIcon) String() string {
	if p.Icon == nil || p.Icon.Lookup.IsZero() {
		return "pre-rendered icon"
	}

	return "pre-rendered icon " + p.Icon.Lookup.String()
}

func (q Query) String() string {
	return q.Lookup.String()
}

// PreRendered wraps an already rendered icon.
func PreRendered(ic *icon.Icon) Descriptor {
	return PreRenderedIcon{Icon: ic}
}

// Lookup selects a registered icon by prefix and name.
func Lookup(prefix, name string) Descriptor {
	return Query{Lookup: icon.Lookup{Prefix: prefix, IconName: name}}
}

// LookupWithParams selects a registered icon and renders it with params.
func LookupWithParams(prefix, name string, params icon.Params) Descriptor {
	return Query{
		Lookup: icon.Lookup{Prefix: prefix, IconName: name},
		Params: &params,
	}
}

// FromLookup selects a registered icon by lookup.
func FromLookup(lookup icon.Lookup) Descriptor {
	return Query{Lookup: lookup}
}

// Entry is a descriptor with an optional caller-chosen symbol id.
type Entry struct {
	ID         string
	Descriptor Descriptor
}

// Icons is an ordered collection of descriptors.
type Icons struct {
	entries []Entry
	named   bool
}

// List creates a collection whose symbol ids are assigned automatically.
func List(descriptors ...Descriptor) Icons {
	entries := make([]Entry, len(descriptors))
	for i, d := range descriptors {
		entries[i] = Entry{Descriptor: d}
	}

	return Icons{entries: entries}
}

// Named creates a collection with explicit symbol ids, kept in the given order.
// An entry with an empty id falls back to the id chosen by the renderer.
func Named(entries ...Entry) Icons {
	return Icons{entries: append([]Entry(nil), entries...), named: true}
}

// Len returns the number of descriptors.
func (i Icons) Len() int {
	return len(i.entries)
}

// IsNamed returns true if the collection was created with Named.
func (i Icons) IsNamed() bool {
	return i.named
}

// Entries returns a copy of the collection entries.
func (i Icons) Entries() []Entry {
	return append([]Entry(nil), i.entries...)
}
