package markup

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Element.
// Accepts a mapping with the keys "tag", "attributes" and "children".
// Attribute order follows the YAML document; scalar attribute values of any
// type are kept in their textual form. Children are either nested elements
// or plain scalars, which become Text nodes.
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected element mapping, got %s", node.Line, kindName(node.Kind))
	}

	var el Element

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		case "tag":
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: tag must be a string", value.Line)
			}

			el.Tag = value.Value

		case "attributes":
			attrs, err := decodeAttributes(value)
			if err != nil {
				return err
			}

			el.Attributes = attrs

		case "children":
			children, err := decodeChildren(value)
			if err != nil {
				return err
			}

			el.Children = children

		default:
			return fmt.Errorf("line %d: unknown element field %q", key.Line, key.Value)
		}
	}

	if el.Tag == "" {
		return fmt.Errorf("line %d: element has no tag", node.Line)
	}

	*e = el

	return nil
}

func decodeAttributes(node *yaml.Node) (Attributes, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: attributes must be a mapping, got %s", node.Line, kindName(node.Kind))
	}

	attrs := make(Attributes, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: attribute %q must be a scalar", value.Line, key.Value)
		}

		attrs.Set(key.Value, value.Value)
	}

	return attrs, nil
}

func decodeChildren(node *yaml.Node) ([]Node, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: children must be a sequence, got %s", node.Line, kindName(node.Kind))
	}

	children := make([]Node, 0, len(node.Content))

	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			children = append(children, Text(item.Value))

		case yaml.MappingNode:
			child := &Element{}
			if err := item.Decode(child); err != nil {
				return nil, err
			}

			children = append(children, child)

		default:
			return nil, fmt.Errorf("line %d: expected element or text, got %s", item.Line, kindName(item.Kind))
		}
	}

	return children, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
