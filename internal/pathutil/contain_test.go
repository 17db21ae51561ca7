package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithin(t *testing.T) {
	root := filepath.FromSlash("/site/docs")
	tests := []struct {
		name string
		p    string
		want bool
	}{
		{"root itself", "/site/docs", true},
		{"direct child", "/site/docs/a.png", true},
		{"nested child", "/site/docs/img/a.png", true},
		{"sibling sharing a prefix", "/site/docs-old/a.png", false},
		{"parent", "/site", false},
		{"unclean path escaping root", "/site/docs/../other/a.png", false},
		{"unclean path inside root", "/site/docs/img/../a.png", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(root, filepath.FromSlash(tt.p)))
		})
	}

	t.Run("filesystem root", func(t *testing.T) {
		assert.True(t, Within(string(filepath.Separator), filepath.FromSlash("/any/thing")))
	})
}

func TestNormalize(t *testing.T) {
	base := filepath.FromSlash("/site/guide")
	assert.Equal(t, filepath.FromSlash("/site/guide/img/a.png"), Normalize(base, filepath.FromSlash("img/./a.png")))
	assert.Equal(t, filepath.FromSlash("/site/a.png"), Normalize(base, filepath.FromSlash("../a.png")))
	assert.Equal(t, filepath.FromSlash("/abs/a.png"), Normalize(base, filepath.FromSlash("/abs/x/../a.png")))
}
