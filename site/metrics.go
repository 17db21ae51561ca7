package site

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors a build reports to. Create them once
// per registry and share them between builds.
type Metrics struct {
	BuildsTotal          *prometheus.CounterVec
	BuildDurationSeconds prometheus.Histogram
	PagesRendered        prometheus.Counter
	StaticFilesCopied    prometheus.Counter
	PagesExcluded        prometheus.Counter
	FilesPruned          prometheus.Counter
	WarningsTotal        *prometheus.CounterVec
}

// NewMetrics registers the build collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		BuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awesomepages_builds_total",
				Help: "Builds run, by result.",
			},
			[]string{"result"},
		),
		BuildDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "awesomepages_build_duration_seconds",
			Help:    "Wall time of successful builds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		PagesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "awesomepages_pages_rendered_total",
			Help: "Pages rendered to the site directory.",
		}),
		StaticFilesCopied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "awesomepages_static_files_copied_total",
			Help: "Static files copied to the site directory.",
		}),
		PagesExcluded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "awesomepages_pages_excluded_total",
			Help: "Pages removed because their visibility condition was false.",
		}),
		FilesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "awesomepages_files_pruned_total",
			Help: "Unreferenced files deleted after the build.",
		}),
		WarningsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awesomepages_warnings_total",
				Help: "Build warnings, by category.",
			},
			[]string{"category"},
		),
	}
	for _, c := range []prometheus.Collector{
		m.BuildsTotal,
		m.BuildDurationSeconds,
		m.PagesRendered,
		m.StaticFilesCopied,
		m.PagesExcluded,
		m.FilesPruned,
		m.WarningsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(res *Result, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.BuildsTotal.WithLabelValues("error").Inc()
		return
	}
	m.BuildsTotal.WithLabelValues("ok").Inc()
	m.BuildDurationSeconds.Observe(res.Duration.Seconds())
	m.PagesRendered.Add(float64(len(res.Pages)))
	m.StaticFilesCopied.Add(float64(len(res.StaticFiles)))
	m.PagesExcluded.Add(float64(len(res.DeletedFiles)))
	m.FilesPruned.Add(float64(len(res.PrunedFiles)))
	for _, w := range res.Warnings {
		m.WarningsTotal.WithLabelValues(string(w.Category)).Inc()
	}
}
