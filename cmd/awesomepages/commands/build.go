package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marcovoc/awesomepages/internal/cliutil"
	"github.com/marcovoc/awesomepages/plugin"
	"github.com/marcovoc/awesomepages/site"
)

// BuildFlags contains flags for the build command
type BuildFlags struct {
	ConfigFile  string
	Lenient     bool
	Verbose     bool
	Quiet       bool
	Concurrency int
	MetricsFile string
}

// SetupBuildFlags creates and configures a FlagSet for the build command.
// Returns the FlagSet and a BuildFlags struct with bound flag variables.
func SetupBuildFlags() (*flag.FlagSet, *BuildFlags) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	flags := &BuildFlags{}

	fs.StringVar(&flags.ConfigFile, "f", "", "configuration file (default mkdocs.yml)")
	fs.StringVar(&flags.ConfigFile, "config-file", "", "configuration file (default mkdocs.yml)")
	fs.BoolVar(&flags.Lenient, "lenient", false, "report navigation and metadata problems as warnings instead of failing")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose: log every step at debug level")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet: only print errors")
	fs.IntVar(&flags.Concurrency, "j", 8, "number of static files copied concurrently")
	fs.StringVar(&flags.MetricsFile, "metrics-file", "", "write build metrics to this file in Prometheus text format")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: awesomepages build [flags]\n\n")
		cliutil.Writef(fs.Output(), "Build the site, arranging the navigation from .pages files and pruning\n")
		cliutil.Writef(fs.Output(), "unreferenced files in folders that request it.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  awesomepages build\n")
		cliutil.Writef(fs.Output(), "  awesomepages build -f docs/mkdocs.yml --lenient\n")
		cliutil.Writef(fs.Output(), "  STAGE=prod awesomepages build -v\n")
		cliutil.Writef(fs.Output(), "  awesomepages build --metrics-file /var/lib/node_exporter/docs.prom\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Site built\n")
		cliutil.Writef(fs.Output(), "  1    Build failed\n")
	}

	return fs, flags
}

// HandleBuild executes the build command
func HandleBuild(args []string) error {
	fs, flags := SetupBuildFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("build command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return RunBuild(ctx, os.Stdout, os.Stderr, flags)
}

// RunBuild builds the site described by flags, printing the summary to out
// and log records to logOut.
func RunBuild(ctx context.Context, out, logOut io.Writer, flags *BuildFlags) error {
	cfg, err := loadConfig(flags.ConfigFile)
	if err != nil {
		return err
	}

	opts := []site.Option{
		site.WithLogger(newLogger(logOut, flags.Verbose, flags.Quiet)),
		site.WithConcurrency(flags.Concurrency),
	}
	if flags.Lenient {
		opts = append(opts, site.WithPluginOptions(plugin.WithStrict(false)))
	}
	var reg *prometheus.Registry
	if flags.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		m, err := site.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, site.WithMetrics(m))
	}

	res, err := site.Build(ctx, cfg, opts...)
	if reg != nil {
		if werr := prometheus.WriteToTextfile(flags.MetricsFile, reg); werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return fmt.Errorf("building %s: %w", cfg.Path, err)
	}
	if flags.Quiet {
		return nil
	}

	cliutil.Writef(out, "Built %d pages and %d files into %s in %v\n",
		len(res.Pages), len(res.StaticFiles), cfg.SiteDir, res.Duration.Round(time.Millisecond))
	cliutil.WriteList(out, "Excluded pages", cliutil.Strings(res.DeletedFiles).Items())
	cliutil.WriteList(out, "Pruned files", cliutil.Strings(res.PrunedFiles).Items())
	cliutil.WriteList(out, "Warnings", res.Warnings)
	return nil
}
