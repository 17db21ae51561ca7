package site

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcovoc/awesomepages/internal/testutil"
	"github.com/marcovoc/awesomepages/plugin"
)

// gathered returns the metric families of reg by name.
func gathered(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func counterValue(t *testing.T, families map[string]*dto.MetricFamily, name, label string) float64 {
	t.Helper()
	f, ok := families[name]
	if !ok {
		return 0
	}
	for _, m := range f.GetMetric() {
		if label == "" || (len(m.GetLabel()) == 1 && m.GetLabel()[0].GetValue() == label) {
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestNewMetricsRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err, "registering the same collectors twice")
}

func TestBuildMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	cfgPath := testutil.NewSite(t, "nav:\n  - index.md\n  - missing.md\n", map[string]string{
		".pages":        "filter_not_referenced: true\n",
		"index.md":      "# Home\n\n![logo](logo.png)\n",
		"logo.png":      "png",
		"unused.png":    "png",
		"secret.md":     "# Secret\n",
		"drafts/.pages": "nav:\n  - wip.md:\n      if: STAGE=dev\n",
		"drafts/wip.md": "# WIP\n",
	})

	res, err := BuildFile(context.Background(), cfgPath,
		WithMetrics(m),
		WithPluginOptions(plugin.WithStrict(false), plugin.WithEnv(map[string]string{})))
	require.NoError(t, err)

	families := gathered(t, reg)
	assert.Equal(t, 1.0, counterValue(t, families, "awesomepages_builds_total", "ok"))
	assert.Equal(t, float64(len(res.Pages)), counterValue(t, families, "awesomepages_pages_rendered_total", ""))
	assert.Equal(t, float64(len(res.StaticFiles)), counterValue(t, families, "awesomepages_static_files_copied_total", ""))
	assert.Equal(t, 1.0, counterValue(t, families, "awesomepages_pages_excluded_total", ""))
	assert.Equal(t, float64(len(res.PrunedFiles)), counterValue(t, families, "awesomepages_files_pruned_total", ""))
	assert.Equal(t, float64(len(res.Warnings.ByCategory(plugin.WarnNavEntry))),
		counterValue(t, families, "awesomepages_warnings_total", string(plugin.WarnNavEntry)))

	hist := families["awesomepages_build_duration_seconds"].GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(1), hist.GetSampleCount())

	t.Run("failed build", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "nav:\n  - \"...\"\n  - \"...\"\n", map[string]string{"a.md": "a"})
		_, err := BuildFile(context.Background(), cfgPath, WithMetrics(m))
		require.Error(t, err)

		families := gathered(t, reg)
		assert.Equal(t, 1.0, counterValue(t, families, "awesomepages_builds_total", "error"))
		assert.Equal(t, 1.0, counterValue(t, families, "awesomepages_builds_total", "ok"))
	})
}
