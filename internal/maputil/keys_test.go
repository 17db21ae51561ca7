package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]bool
		expected []string
	}{
		{"sorted paths", map[string]bool{"/site/z.png": true, "/site/a/b.png": true, "/site/a.png": true},
			[]string{"/site/a.png", "/site/a/b.png", "/site/z.png"}},
		{"single key", map[string]bool{"only": true}, []string{"only"}},
		{"empty map", map[string]bool{}, []string{}},
		{"nil map", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SortedKeys(tt.input))
		})
	}
}

func TestSortedKeys_PointerValues(t *testing.T) {
	type item struct{ name string }
	input := map[string]*item{"z": {name: "z"}, "a": {name: "a"}}
	assert.Equal(t, []string{"a", "z"}, SortedKeys(input))
}
