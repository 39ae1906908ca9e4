package input

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"space":   "space",
		" Space ": "space",
		"RETURN":  "enter",
		"esc":     "escape",
		"r":       "r",
		"7":       "7",
	}
	for in, want := range cases {
		got, ok := NormalizeKey(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "f13", "spacebar", "ctrl"} {
		_, ok := NormalizeKey(bad)
		assert.False(t, ok, bad)
	}
}

func TestKeyNamesSorted(t *testing.T) {
	names := KeyNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "space")

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", KeyNames()[0])
}
