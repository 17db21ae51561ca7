package nav

import (
	"fmt"

	"github.com/marcovoc/awesomepages/meta"
)

// RestBlocks holds, for every registered rest item, the items it collected.
type RestBlocks struct {
	registry *meta.RestItemList
	blocks   map[string][]*Item
}

// Block returns the items collected by rest.
func (b *RestBlocks) Block(rest *meta.RestItem) []*Item {
	return b.blocks[rest.Key()]
}

// Lookup returns the items collected by the rest entry written as value.
func (b *RestBlocks) Lookup(value string) ([]*Item, bool) {
	rest := b.registry.Lookup(value)
	if rest == nil {
		return nil, false
	}
	return b.blocks[rest.Key()], true
}

// GenerateRestBlocks distributes the pages of the unconstrained tree that are
// not consumed by the hand-written tree among the registered rest items.
//
// Traversal is depth-first. A page goes to the first item, in registration
// order, whose pattern matches its source path; a page matching nothing is
// dropped. Pages of a section are wrapped in a new section with the same
// title and directory, unless the item is flat, in which case they are
// spliced in directly. items is not modified.
func GenerateRestBlocks(items []*Item, consumed map[string]bool, registry *meta.RestItemList) *RestBlocks {
	return &RestBlocks{
		registry: registry,
		blocks:   collectRest(items, consumed, registry),
	}
}

func collectRest(items []*Item, consumed map[string]bool, registry *meta.RestItemList) map[string][]*Item {
	result := make(map[string][]*Item, registry.Len())
	for _, it := range items {
		switch it.Kind {
		case KindPage:
			if consumed[it.File.SrcPath] {
				continue
			}
			if rest := registry.Match(it.File.SrcPath); rest != nil {
				result[rest.Key()] = append(result[rest.Key()], it)
			}
		case KindSection:
			child := collectRest(it.Children, consumed, registry)
			for _, rest := range registry.Items() {
				children := child[rest.Key()]
				if len(children) == 0 {
					continue
				}
				if rest.Flat {
					result[rest.Key()] = append(result[rest.Key()], children...)
				} else {
					result[rest.Key()] = append(result[rest.Key()], NewSection(it.Title, it.Dir, children))
				}
			}
		case KindLink, KindPlaceholder:
		}
	}
	return result
}

// InsertRest replaces every placeholder of the draft with the items of its
// rest block, in block order, and returns the finished navigation. An empty
// block removes the placeholder.
func InsertRest(d *Draft, blocks *RestBlocks) (*Navigation, error) {
	items, err := insertRest(d.Items, blocks)
	if err != nil {
		return nil, err
	}
	return &Navigation{Items: items}, nil
}

func insertRest(items []*Item, blocks *RestBlocks) ([]*Item, error) {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case KindPlaceholder:
			block, ok := blocks.Lookup(it.Rest)
			if !ok {
				return nil, fmt.Errorf("nav: no rest block for placeholder %q", it.Rest)
			}
			out = append(out, block...)
		case KindSection:
			children, err := insertRest(it.Children, blocks)
			if err != nil {
				return nil, err
			}
			it.Children = children
			out = append(out, it)
		case KindPage, KindLink:
			out = append(out, it)
		}
	}
	return out, nil
}
