package nav

import (
	"fmt"

	"github.com/disiqueira/gotree/v3"
)

// Render draws the navigation as a text tree.
func Render(n *Navigation, rootLabel string) string {
	root := gotree.New(rootLabel)
	addItems(root, n.Items)
	return root.Print()
}

func addItems(parent gotree.Tree, items []*Item) {
	for _, it := range items {
		switch it.Kind {
		case KindPage:
			parent.Add(fmt.Sprintf("%s (%s)", it.Title, it.File.SrcPath))
		case KindSection:
			addItems(parent.Add(it.Title+"/"), it.Children)
		case KindLink:
			parent.Add(fmt.Sprintf("%s -> %s", it.Title, it.URL))
		case KindPlaceholder:
			parent.Add("<" + it.Rest + ">")
		}
	}
}
