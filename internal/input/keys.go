// Package input samples mouse and keyboard state for the game.
package input

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownKey is returned for a restart key name that is not supported.
var ErrUnknownKey = errors.New("unknown key")

// keyNames lists the restart keys that can be configured by name.
var keyNames = []string{
	"space", "enter", "backspace", "escape", "tab",
	"r", "n", "y",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// NormalizeKey lowercases and trims name, reporting whether it is a
// supported restart key.
func NormalizeKey(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "return":
		n = "enter"
	case "esc":
		n = "escape"
	}
	for _, k := range keyNames {
		if k == n {
			return n, true
		}
	}
	return "", false
}

// KeyNames returns the supported restart key names in sorted order.
func KeyNames() []string {
	names := append([]string(nil), keyNames...)
	sort.Strings(names)
	return names
}
