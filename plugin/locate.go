package plugin

import (
	"errors"

	"github.com/marcovoc/awesomepages/meta"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// LocateRest registers every rest entry of a navigation configuration and
// returns a copy of it in which each rest entry is replaced, at the same
// position, by a placeholder mapping. cfg itself is not modified.
//
// A pattern found twice is a *pageserrors.DuplicateRestItemError naming
// source.
func LocateRest(cfg *nav.ConfigNode, source string) (*nav.ConfigNode, *meta.RestItemList, error) {
	registry := meta.NewRestItemList()
	out := cfg.Clone()
	if out == nil {
		return nil, registry, nil
	}
	if err := locateRest(out, registry, source); err != nil {
		return nil, nil, err
	}
	return out, registry, nil
}

func locateRest(n *nav.ConfigNode, registry *meta.RestItemList, source string) error {
	switch n.Kind {
	case nav.ConfigSequence:
		for i, child := range n.Items {
			if child.Kind == nav.ConfigScalar && meta.IsRest(child.Value) {
				if err := register(registry, child.Value, source); err != nil {
					return err
				}
				n.Items[i] = nav.Mapping(nav.RestPlaceholder, nav.Scalar("/"+child.Value))
				continue
			}
			if err := locateRest(child, registry, source); err != nil {
				return err
			}
		}
	case nav.ConfigMapping:
		for _, p := range n.Pairs {
			if err := locateRest(p.Value, registry, source); err != nil {
				return err
			}
		}
	case nav.ConfigScalar:
	}
	return nil
}

func register(registry *meta.RestItemList, value, source string) error {
	item, err := meta.ParseRestItem(value)
	if err != nil {
		return &pageserrors.ConfigError{Option: "nav", Value: value, Message: "invalid rest entry in " + source, Cause: err}
	}
	if err := registry.Add(item); err != nil {
		var dup *pageserrors.DuplicateRestItemError
		if errors.As(err, &dup) {
			dup.Source = source
		}
		return err
	}
	return nil
}
