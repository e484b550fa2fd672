package manifest

import (
	"fmt"

	"svg-sprite-generator/internal/diagnostic"
)

// Validate checks a manifest before any icon is rendered.
// Rendering problems, like unknown icons, are only detected by the generator.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported manifest version %q (expected %q)", f.Version, CurrentVersion), "", "version")
	}

	if len(f.Icons.Entries) == 0 {
		res.AddWarning("empty_sprite", "manifest has no icons, the sprite will be empty", "", "icons")
	}

	// Explicit ids: mapping keys, or forced symbol ids in a sequence.
	seenIDs := map[string]string{}

	for i := range f.Icons.Entries {
		e := &f.Icons.Entries[i]
		label := f.Icons.label(i)

		validateEntry(res, label, e)

		id, field := explicitID(f.Icons.Named, e)
		if f.Icons.Named && id == "" {
			res.AddError("empty_id", "icon id is empty", label, "")
			continue
		}

		if id == "" {
			continue
		}

		if first, ok := seenIDs[id]; ok {
			res.AddError("duplicate_id", fmt.Sprintf("symbol id %q is already used by %s", id, first), label, field)
			continue
		}

		seenIDs[id] = label
	}

	return res
}

func validateEntry(res *diagnostic.Diagnostics, label string, e *IconEntry) {
	if e.IsPreRendered() {
		if e.Prefix != "" || e.Name != "" || e.Shorthand != "" {
			res.AddError("conflicting_entry", "icon has both an abstract tree and a lookup", label, "abstract")
		}

		if e.Params != nil {
			res.AddWarning("params_ignored", "params are ignored for pre-rendered icons", label, "params")
		}

		if len(e.Abstract) == 0 {
			res.AddError("empty_abstract", "abstract tree has no root element", label, "abstract")
		}

		return
	}

	if e.Shorthand != "" && (e.Prefix == "" || e.Name == "") {
		res.AddError("invalid_lookup", fmt.Sprintf("invalid icon lookup %q (expected prefix/name)", e.Shorthand), label, "")
		return
	}

	if e.Prefix == "" {
		res.AddError("missing_prefix", "icon prefix is empty", label, "prefix")
	}

	if e.Name == "" {
		res.AddError("missing_name", "icon name is empty", label, "name")
	}
}

// explicitID returns the id the entry requests and the field it comes from.
func explicitID(named bool, e *IconEntry) (string, string) {
	if named {
		return e.ID, ""
	}

	if e.Params != nil && e.Params.Symbol.ID != "" && !e.IsPreRendered() {
		return e.Params.Symbol.ID, "params.symbol"
	}

	return "", ""
}
