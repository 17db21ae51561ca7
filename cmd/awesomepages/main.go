package main

import (
	"fmt"
	"os"

	"github.com/marcovoc/awesomepages"
	"github.com/marcovoc/awesomepages/cmd/awesomepages/commands"
)

var commandNames = []string{"build", "nav", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Println(awesomepages.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "build":
		if err := commands.HandleBuild(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "nav":
		if err := commands.HandleNav(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the command within edit distance 2 of input, if any.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`awesomepages - Navigation from .pages files for Markdown documentation sites

Usage:
  awesomepages <command> [options]

Commands:
  build       Build the site described by mkdocs.yml
  nav         Print the navigation the site would be built with
  version     Show version information
  help        Show this help message

Examples:
  awesomepages build
  awesomepages build -f docs/mkdocs.yml --lenient
  awesomepages nav --format yaml

Run 'awesomepages <command> --help' for more information on a command.`)
}
