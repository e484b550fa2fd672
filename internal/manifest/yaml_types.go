package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"svg-sprite-generator/icon"
)

// --- IconList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for IconList.
// Accepts either a sequence of entries or a mapping from id to entry.
// Mapping order is preserved.
func (l *IconList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		entries := make([]IconEntry, len(node.Content))
		for i, item := range node.Content {
			if err := item.Decode(&entries[i]); err != nil {
				return err
			}
		}

		*l = IconList{Entries: entries}

		return nil

	case yaml.MappingNode:
		entries := make([]IconEntry, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: icon id must be a string", key.Line)
			}

			var entry IconEntry
			if err := value.Decode(&entry); err != nil {
				return err
			}

			entry.ID = key.Value
			entries = append(entries, entry)
		}

		*l = IconList{Named: true, Entries: entries}

		return nil

	default:
		return fmt.Errorf("line %d: icons must be a sequence or a mapping", node.Line)
	}
}

// --- IconEntry YAML methods ---

// iconEntryFields has the fields of IconEntry without its YAML methods.
type iconEntryFields IconEntry

// UnmarshalYAML implements custom YAML unmarshaling for IconEntry.
// Accepts:
//   - Shorthand string: "fas/dice-one"
//   - Lookup: {prefix: fas, name: dice-one, params: {...}}
//   - Pre-rendered tree: {abstract: [...]}
func (e *IconEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		entry := IconEntry{Shorthand: s}
		if lookup, err := icon.ParseLookup(s); err == nil {
			entry.Prefix = lookup.Prefix
			entry.Name = lookup.IconName
		}

		*e = entry

		return nil

	case yaml.MappingNode:
		var fields iconEntryFields
		if err := node.Decode(&fields); err != nil {
			return err
		}

		*e = IconEntry(fields)

		return nil

	default:
		return fmt.Errorf("line %d: icon must be a string or a mapping", node.Line)
	}
}
