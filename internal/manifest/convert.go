package manifest

import (
	"svg-sprite-generator/icon"
	"svg-sprite-generator/sprite"
)

// SpriteIcons converts the manifest icons into sprite descriptors.
// It returns the validation error if the manifest is invalid.
func (f *File) SpriteIcons() (sprite.Icons, error) {
	if err := Validate(f).Err(); err != nil {
		return sprite.Icons{}, err
	}

	entries := make([]sprite.Entry, len(f.Icons.Entries))
	for i := range f.Icons.Entries {
		e := &f.Icons.Entries[i]
		entries[i] = sprite.Entry{ID: e.ID, Descriptor: e.descriptor()}
	}

	if f.Icons.Named {
		return sprite.Named(entries...), nil
	}

	descriptors := make([]sprite.Descriptor, len(entries))
	for i := range entries {
		descriptors[i] = entries[i].Descriptor
	}

	return sprite.List(descriptors...), nil
}

// SpriteOptions applies the manifest options on top of base.
func (f *File) SpriteOptions(base sprite.Options) sprite.Options {
	if f.Options.XMLDeclaration != nil {
		base.XMLDeclaration = *f.Options.XMLDeclaration
	}

	if f.Options.License != nil {
		base.License = *f.Options.License
	}

	return base
}

func (e *IconEntry) descriptor() sprite.Descriptor {
	if e.IsPreRendered() {
		return sprite.PreRendered(&icon.Icon{Abstract: e.Abstract})
	}

	if e.Params != nil {
		return sprite.LookupWithParams(e.Prefix, e.Name, *e.Params)
	}

	return sprite.FromLookup(e.Lookup())
}
