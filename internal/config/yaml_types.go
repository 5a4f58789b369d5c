package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare theme name or a mapping.
func (t *ThemeConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&t.Name)
	}
	type plain ThemeConfig
	return node.Decode((*plain)(t))
}

// PluginList holds enabled plugin names in order. Entries may be written as
// plain names or as single-key mappings carrying per-plugin options; only
// the names are kept.
type PluginList []string

// UnmarshalYAML accepts a sequence of names/mappings or a mapping keyed by name.
func (p *PluginList) UnmarshalYAML(node *yaml.Node) error {
	out := PluginList{}
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, item.Value)
			case yaml.MappingNode:
				for i := 0; i < len(item.Content); i += 2 {
					out = append(out, item.Content[i].Value)
				}
			default:
				return fmt.Errorf("line %d: plugin entry must be a name or mapping", item.Line)
			}
		}
	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			out = append(out, node.Content[i].Value)
		}
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return fmt.Errorf("line %d: plugins must be a list", node.Line)
		}
	default:
		return fmt.Errorf("line %d: plugins must be a list", node.Line)
	}
	*p = out
	return nil
}
