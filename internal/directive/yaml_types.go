package directive

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for RuleList.
// Accepts:
//   - A sequence of rules: [{from: "= null", to: "= 0"}, ...]
//   - An ordered mapping: {"= null": "= 0", ...}
func (rl *RuleList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var rules []Rule

		err := node.Decode(&rules)
		if err != nil {
			return err
		}

		*rl = rules

		return nil

	case yaml.MappingNode:
		// Node content alternates key, value and keeps document order.
		rules := make([]Rule, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var from, to string

			if err := node.Content[i].Decode(&from); err != nil {
				return err
			}

			if err := node.Content[i+1].Decode(&to); err != nil {
				return err
			}

			rules = append(rules, Rule{From: from, To: to})
		}

		*rl = rules

		return nil

	default:
		return fmt.Errorf("line %d: expected rule list or mapping, got %v", node.Line, kindName(node.Kind))
	}
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
		return "unknown node"
	}
}
