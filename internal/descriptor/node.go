// Where: internal/descriptor/node.go
// What: YAML node helpers for mapping lookup and in-place mutation.
// Why: Keep node surgery concise and out of the descriptor accessors.
package descriptor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func mapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func decodeValue(node *yaml.Node) (any, bool) {
	if node == nil {
		return nil, false
	}
	var out any
	if err := node.Decode(&out); err != nil {
		return nil, false
	}
	return out, true
}

// asMapping reports whether the node is usable as a mapping, converting a
// null scalar (an empty YAML value) into an empty mapping in place.
func asMapping(node *yaml.Node) bool {
	if node.Kind == yaml.MappingNode {
		return true
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		node.Kind = yaml.MappingNode
		node.Tag = "!!map"
		node.Value = ""
		return true
	}
	return false
}

func ensureMapping(node *yaml.Node, key string) (*yaml.Node, error) {
	if existing := mapValue(node, key); existing != nil {
		if !asMapping(existing) {
			return nil, fmt.Errorf("%s is not a mapping", key)
		}
		return existing, nil
	}
	child := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	node.Content = append(node.Content, scalarNode(key), child)
	return child, nil
}

func ensureSequence(node *yaml.Node, key string) (*yaml.Node, error) {
	if existing := mapValue(node, key); existing != nil {
		if existing.Kind == yaml.ScalarNode && existing.Tag == "!!null" {
			existing.Kind = yaml.SequenceNode
			existing.Tag = "!!seq"
			existing.Value = ""
			return existing, nil
		}
		if existing.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%s is not a sequence", key)
		}
		return existing, nil
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	node.Content = append(node.Content, scalarNode(key), seq)
	return seq, nil
}

func appendScalar(seq *yaml.Node, value string) {
	seq.Content = append(seq.Content, scalarNode(value))
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
