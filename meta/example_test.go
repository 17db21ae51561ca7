package meta_test

import (
	"fmt"

	"github.com/marcovoc/awesomepages/meta"
)

func ExampleParseRestItem() {
	for _, value := range []string{"...", "... | flat | api/**", "... | regex=^guides/.*\\.md$"} {
		item, err := meta.ParseRestItem(value)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s flat=%t api/v1.md=%t guides/a.md=%t\n",
			item.Key(), item.Flat, item.Matches("api/v1.md"), item.Matches("guides/a.md"))
	}
	// Output:
	// glob: flat=false api/v1.md=true guides/a.md=true
	// glob:api/** flat=true api/v1.md=true guides/a.md=false
	// regex:^guides/.*\.md$ flat=false api/v1.md=false guides/a.md=true
}

func ExampleRestItemList() {
	list := meta.NewRestItemList()
	for _, value := range []string{"... | guides/**", "...", "... | flat | guides/**"} {
		item, err := meta.ParseRestItem(value)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := list.Add(item); err != nil {
			fmt.Println("error:", err)
		}
	}
	fmt.Println(list.Match("guides/setup.md"))
	fmt.Println(list.Match("index.md"))
	// Output:
	// error: duplicate rest item "... | flat | guides/**": each rest pattern may only be used once
	// ... | guides/**
	// ...
}
