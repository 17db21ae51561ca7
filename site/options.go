package site

import (
	"github.com/marcovoc/awesomepages/pageserrors"
	"github.com/marcovoc/awesomepages/plugin"
)

// Option is a function that configures a build.
type Option func(*buildConfig) error

type buildConfig struct {
	logger        plugin.Logger
	collaborators []plugin.Collaborator
	pluginOptions []plugin.Option
	concurrency   int
	metrics       *Metrics
}

func applyOptions(opts ...Option) (*buildConfig, error) {
	cfg := &buildConfig{
		logger:      plugin.NopLogger{},
		concurrency: 8,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger shared by the build and the plugin.
func WithLogger(l plugin.Logger) Option {
	return func(cfg *buildConfig) error {
		if l == nil {
			l = plugin.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithCollaborators registers other plugins. A collaborator runs at the
// position the configuration's plugins list gives its name, or after every
// listed plugin when the list does not name it.
func WithCollaborators(c ...plugin.Collaborator) Option {
	return func(cfg *buildConfig) error {
		cfg.collaborators = append(cfg.collaborators, c...)
		return nil
	}
}

// WithPluginOptions configures the awesome-pages plugin. These options are
// applied after the ones read from the configuration file.
func WithPluginOptions(opts ...plugin.Option) Option {
	return func(cfg *buildConfig) error {
		cfg.pluginOptions = append(cfg.pluginOptions, opts...)
		return nil
	}
}

// WithConcurrency bounds the number of static files copied at once.
// Default: 8
func WithConcurrency(n int) Option {
	return func(cfg *buildConfig) error {
		if n < 1 {
			return &pageserrors.ConfigError{Option: "concurrency", Value: n, Message: "must be at least 1"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithMetrics reports every build to m.
func WithMetrics(m *Metrics) Option {
	return func(cfg *buildConfig) error {
		cfg.metrics = m
		return nil
	}
}
