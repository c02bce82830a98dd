package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Trees", "trees"},
		{"CityLife", "citylife"},
		{"City Life!!", "city-life"},
		{"  Black & White  ", "black-white"},
		{"--Night__Sky--", "night-sky"},
		{"2024 Trip", "2024-trip"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input), "Slugify(%q)", tt.input)
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	for _, input := range []string{"City Life!!", "Trees", "a--b", "Ünïcode Théme", "x_y z"} {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "Slugify(Slugify(%q))", input)
	}
}

func TestThemePageFileName(t *testing.T) {
	assert.Equal(t, "city-life.html", Theme{Name: "City Life"}.PageFileName())
}

func TestNewThemesKeepsOrder(t *testing.T) {
	themes := NewThemes([]string{"Trees", "CityLife", "Landscapes"})

	assert.Equal(t, []Theme{{Name: "Trees"}, {Name: "CityLife"}, {Name: "Landscapes"}}, themes)
}
