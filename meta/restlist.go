package meta

import (
	"github.com/marcovoc/awesomepages/pageserrors"
)

// RestItemList is an insertion-ordered registry of rest items that rejects
// duplicates. Registration order is the matching priority.
type RestItemList struct {
	items []*RestItem
	index map[string]*RestItem
}

// NewRestItemList returns an empty registry.
func NewRestItemList() *RestItemList {
	return &RestItemList{index: make(map[string]*RestItem)}
}

// Add registers item. A second item with the same pattern is rejected with a
// *pageserrors.DuplicateRestItemError; the caller fills in its Source.
func (l *RestItemList) Add(item *RestItem) error {
	if _, exists := l.index[item.Key()]; exists {
		return &pageserrors.DuplicateRestItemError{Pattern: item.Value}
	}
	l.items = append(l.items, item)
	l.index[item.Key()] = item
	return nil
}

// Contains reports whether an item with the same pattern is registered.
func (l *RestItemList) Contains(item *RestItem) bool {
	_, ok := l.index[item.Key()]
	return ok
}

// Lookup returns the registered item for a rest entry value, or nil.
func (l *RestItemList) Lookup(value string) *RestItem {
	item, err := ParseRestItem(value)
	if err != nil {
		return nil
	}
	return l.index[item.Key()]
}

// Items returns the registered items in registration order.
func (l *RestItemList) Items() []*RestItem {
	out := make([]*RestItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of registered items.
func (l *RestItemList) Len() int {
	return len(l.items)
}

// Match returns the first registered item matching path, or nil.
func (l *RestItemList) Match(path string) *RestItem {
	for _, item := range l.items {
		if item.Matches(path) {
			return item
		}
	}
	return nil
}
