package plugin

import (
	"fmt"
	"strings"

	"github.com/marcovoc/awesomepages/config"
	"github.com/marcovoc/awesomepages/internal/envcond"
	"github.com/marcovoc/awesomepages/meta"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// Option is a function that configures a Plugin.
type Option func(*pluginConfig) error

// pluginConfig holds the plugin configuration.
type pluginConfig struct {
	filename            string
	collapseSinglePages bool
	strict              bool
	logger              Logger

	// env overrides the process environment for visibility conditions.
	env envcond.Env
}

func applyOptions(opts ...Option) (*pluginConfig, error) {
	cfg := &pluginConfig{
		filename: meta.DefaultFilename,
		strict:   true,
		logger:   NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithFilename sets the name of the per-directory metadata file.
// Default: ".pages"
func WithFilename(name string) Option {
	return func(cfg *pluginConfig) error {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return &pageserrors.ConfigError{Option: "filename", Value: name, Message: "must be a plain file name"}
		}
		cfg.filename = name
		return nil
	}
}

// WithCollapseSinglePages collapses every section holding a single child
// into that child, unless a directory's metadata says otherwise.
// Default: false
func WithCollapseSinglePages(enabled bool) Option {
	return func(cfg *pluginConfig) error {
		cfg.collapseSinglePages = enabled
		return nil
	}
}

// WithStrict makes configuration anomalies fatal. When disabled they are
// recorded as warnings and the build continues.
// Default: true
func WithStrict(enabled bool) Option {
	return func(cfg *pluginConfig) error {
		cfg.strict = enabled
		return nil
	}
}

// WithLogger sets a structured logger. By default nothing is logged.
func WithLogger(l Logger) Option {
	return func(cfg *pluginConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithEnv evaluates visibility conditions against env instead of the
// process environment.
func WithEnv(env map[string]string) Option {
	return func(cfg *pluginConfig) error {
		cfg.env = envcond.Env(env)
		return nil
	}
}

type rawOptions struct {
	Filename            *string `yaml:"filename"`
	CollapseSinglePages *bool   `yaml:"collapse_single_pages"`
	Strict              *bool   `yaml:"strict"`
}

// OptionsFromConfig returns the options set for this plugin in the site
// configuration's plugins list. A site that does not list the plugin, or
// lists it without options, yields no options.
func OptionsFromConfig(cfg *config.Config) ([]Option, error) {
	entry, ok := cfg.Plugin(Name)
	if !ok {
		return nil, nil
	}
	var raw rawOptions
	if err := entry.Decode(&raw); err != nil {
		return nil, fmt.Errorf("plugin: %w", err)
	}

	var opts []Option
	if raw.Filename != nil {
		opts = append(opts, WithFilename(*raw.Filename))
	}
	if raw.CollapseSinglePages != nil {
		opts = append(opts, WithCollapseSinglePages(*raw.CollapseSinglePages))
	}
	if raw.Strict != nil {
		opts = append(opts, WithStrict(*raw.Strict))
	}
	return opts, nil
}
