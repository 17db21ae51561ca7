package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/marcovoc/awesomepages/internal/cliutil"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/plugin"
	"github.com/marcovoc/awesomepages/site"
)

// NavFlags contains flags for the nav command
type NavFlags struct {
	ConfigFile string
	Format     string
	Lenient    bool
	Verbose    bool
}

// SetupNavFlags creates and configures a FlagSet for the nav command.
// Returns the FlagSet and a NavFlags struct with bound flag variables.
func SetupNavFlags() (*flag.FlagSet, *NavFlags) {
	fs := flag.NewFlagSet("nav", flag.ContinueOnError)
	flags := &NavFlags{}

	fs.StringVar(&flags.ConfigFile, "f", "", "configuration file (default mkdocs.yml)")
	fs.StringVar(&flags.ConfigFile, "config-file", "", "configuration file (default mkdocs.yml)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Lenient, "lenient", false, "report navigation and metadata problems as warnings instead of failing")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose: log every step at debug level")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: awesomepages nav [flags]\n\n")
		cliutil.Writef(fs.Output(), "Print the navigation the site would be built with. Nothing is written.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Tree view\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  awesomepages nav\n")
		cliutil.Writef(fs.Output(), "  awesomepages nav --format json | jq '.[].title'\n")
	}

	return fs, flags
}

// HandleNav executes the nav command
func HandleNav(args []string) error {
	fs, flags := SetupNavFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("nav command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	return RunNav(context.Background(), os.Stdout, os.Stderr, flags)
}

// RunNav prints the navigation described by flags to out.
func RunNav(ctx context.Context, out, logOut io.Writer, flags *NavFlags) error {
	cfg, err := loadConfig(flags.ConfigFile)
	if err != nil {
		return err
	}

	opts := []site.Option{site.WithLogger(newLogger(logOut, flags.Verbose, false))}
	if flags.Lenient {
		opts = append(opts, site.WithPluginOptions(plugin.WithStrict(false)))
	}
	n, warnings, err := site.Navigation(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("building navigation for %s: %w", cfg.Path, err)
	}

	if flags.Format != FormatText {
		return OutputStructured(out, NavReport{Nav: NavEntries(n.Items), Warnings: WarningEntries(warnings)}, flags.Format)
	}
	cliutil.Writef(out, "%s", nav.Render(n, cfg.SiteName))
	cliutil.WriteList(out, "Warnings", warnings)
	return nil
}
