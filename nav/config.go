package nav

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// RestPlaceholder is the mapping key that marks a substituted rest entry in
// a nav configuration.
const RestPlaceholder = "AWESOME_PAGES_REST"

// ConfigKind discriminates nav configuration nodes.
type ConfigKind int

const (
	// ConfigScalar is a string leaf.
	ConfigScalar ConfigKind = iota
	// ConfigSequence is an ordered list.
	ConfigSequence
	// ConfigMapping is an ordered list of key/value pairs.
	ConfigMapping
)

// ConfigNode is a node of the hand-written nav configuration. Mapping key
// order is kept, since it defines the navigation order.
type ConfigNode struct {
	Kind  ConfigKind
	Value string
	Items []*ConfigNode
	Pairs []ConfigPair
}

// ConfigPair is one key/value pair of a mapping node.
type ConfigPair struct {
	Key   string
	Value *ConfigNode
}

// Scalar returns a scalar node.
func Scalar(value string) *ConfigNode {
	return &ConfigNode{Kind: ConfigScalar, Value: value}
}

// Sequence returns a sequence node.
func Sequence(items ...*ConfigNode) *ConfigNode {
	return &ConfigNode{Kind: ConfigSequence, Items: items}
}

// Mapping returns a mapping node with a single pair.
func Mapping(key string, value *ConfigNode) *ConfigNode {
	return &ConfigNode{Kind: ConfigMapping, Pairs: []ConfigPair{{Key: key, Value: value}}}
}

// IsPlaceholder reports whether the node is a substituted rest entry and
// returns the rest entry it stands for.
func (n *ConfigNode) IsPlaceholder() (string, bool) {
	if n == nil || n.Kind != ConfigMapping || len(n.Pairs) != 1 || n.Pairs[0].Key != RestPlaceholder {
		return "", false
	}
	v := n.Pairs[0].Value
	if v == nil || v.Kind != ConfigScalar || len(v.Value) == 0 || v.Value[0] != '/' {
		return "", false
	}
	return v.Value[1:], true
}

// Clone returns a deep copy of the node.
func (n *ConfigNode) Clone() *ConfigNode {
	if n == nil {
		return nil
	}
	c := &ConfigNode{Kind: n.Kind, Value: n.Value}
	for _, it := range n.Items {
		c.Items = append(c.Items, it.Clone())
	}
	for _, p := range n.Pairs {
		c.Pairs = append(c.Pairs, ConfigPair{Key: p.Key, Value: p.Value.Clone()})
	}
	return c
}

// UnmarshalYAML decodes a nav configuration keeping mapping order.
func (n *ConfigNode) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := configFromYAML(value)
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

func configFromYAML(node *yaml.Node) (*ConfigNode, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, fmt.Errorf("nav: line %d: empty document", node.Line)
		}
		return configFromYAML(node.Content[0])
	case yaml.AliasNode:
		return configFromYAML(node.Alias)
	case yaml.ScalarNode:
		return Scalar(node.Value), nil
	case yaml.SequenceNode:
		seq := &ConfigNode{Kind: ConfigSequence, Items: make([]*ConfigNode, 0, len(node.Content))}
		for _, child := range node.Content {
			c, err := configFromYAML(child)
			if err != nil {
				return nil, err
			}
			seq.Items = append(seq.Items, c)
		}
		return seq, nil
	case yaml.MappingNode:
		m := &ConfigNode{Kind: ConfigMapping}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("nav: line %d: mapping keys must be strings", key.Line)
			}
			v, err := configFromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Pairs = append(m.Pairs, ConfigPair{Key: key.Value, Value: v})
		}
		return m, nil
	}
	return nil, fmt.Errorf("nav: line %d: unsupported node", node.Line)
}
