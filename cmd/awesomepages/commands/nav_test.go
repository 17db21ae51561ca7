package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/marcovoc/awesomepages/internal/severity"
	"github.com/marcovoc/awesomepages/internal/testutil"
)

func navSite(t *testing.T) string {
	t.Helper()
	return testutil.NewSite(t, "site_name: Handbook\nnav:\n  - b.md\n  - \"...\"\n  - Repo: https://example.com\n", map[string]string{
		"a.md":     "# Alpha\n",
		"b.md":     "# Beta\n",
		"sub/c.md": "# Gamma\n",
	})
}

func TestHandleNav_Help(t *testing.T) {
	assert.NoError(t, HandleNav([]string{"--help"}))
}

func TestHandleNav_InvalidFormat(t *testing.T) {
	assert.Error(t, HandleNav([]string{"--format", "xml"}))
}

func TestRunNav_Text(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, RunNav(context.Background(), &out, &logs, &NavFlags{ConfigFile: navSite(t), Format: FormatText}))

	text := out.String()
	assert.Contains(t, text, "Handbook\n")
	assert.Contains(t, text, "Beta (b.md)")
	assert.Contains(t, text, "Alpha (a.md)")
	assert.Contains(t, text, "Sub/")
	assert.Contains(t, text, "Gamma (sub/c.md)")
	assert.Contains(t, text, "Repo -> https://example.com")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Beta")), bytes.Index(out.Bytes(), []byte("Alpha")))
}

func TestRunNav_Structured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var out, logs bytes.Buffer
		require.NoError(t, RunNav(context.Background(), &out, &logs, &NavFlags{ConfigFile: navSite(t), Format: FormatJSON}))

		var report NavReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		assert.Empty(t, report.Warnings)
		entries := report.Nav
		require.Len(t, entries, 4)
		assert.Equal(t, NavEntry{Title: "Beta", Kind: "page", Page: "b.md", URL: "b.html"}, entries[0])
		assert.Equal(t, "section", entries[2].Kind)
		assert.Equal(t, "sub/c.md", entries[2].Children[0].Page)
		assert.Equal(t, NavEntry{Title: "Repo", Kind: "link", URL: "https://example.com"}, entries[3])
	})

	t.Run("yaml", func(t *testing.T) {
		var out, logs bytes.Buffer
		require.NoError(t, RunNav(context.Background(), &out, &logs, &NavFlags{ConfigFile: navSite(t), Format: FormatYAML}))

		var report NavReport
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
		require.Len(t, report.Nav, 4)
		assert.Equal(t, "Alpha", report.Nav[1].Title)
	})

	t.Run("warnings", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "nav:\n  - missing.md\n  - \"...\"\n", map[string]string{"index.md": "# Home\n"})
		var out, logs bytes.Buffer
		require.NoError(t, RunNav(context.Background(), &out, &logs, &NavFlags{ConfigFile: cfgPath, Format: FormatJSON, Lenient: true}))

		assert.Contains(t, out.String(), `"severity": "error"`)
		var report NavReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, "nav_entry", report.Warnings[0].Category)
		assert.Equal(t, severity.SeverityError, report.Warnings[0].Severity)
	})
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}
