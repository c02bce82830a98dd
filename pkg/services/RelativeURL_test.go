package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeURL(t *testing.T) {
	root := filepath.FromSlash("/site")

	tests := []struct {
		path     string
		expected string
	}{
		{"/site/media/photography/Trees/a.jpg", "media/photography/Trees/a.jpg"},
		{"/site/media/photography/City Life/b c.png", "media/photography/City%20Life/b%20c.png"},
		{"/site/media/photography/Trees/100%.jpg", "media/photography/Trees/100%25.jpg"},
		{"/site/media/photography/Trees/q?.jpg", "media/photography/Trees/q%3F.jpg"},
	}

	for _, tt := range tests {
		got, err := RelativeURL(root, filepath.FromSlash(tt.path))
		require.NoError(t, err, "RelativeURL(%q)", tt.path)
		assert.Equal(t, tt.expected, got, "RelativeURL(%q)", tt.path)
	}
}

func TestRelativeURLOutsideRoot(t *testing.T) {
	root := filepath.FromSlash("/site")

	_, err := RelativeURL(root, filepath.FromSlash("/elsewhere/a.jpg"))
	assert.Error(t, err)

	_, err = RelativeURL(root, root)
	assert.Error(t, err)
}

func TestEscapeSegment(t *testing.T) {
	tests := []struct {
		segment  string
		expected string
	}{
		{"a+b.jpg", "a%2Bb.jpg"},
		{"a=b@c$.jpg", "a%3Db%40c%24.jpg"},
		{"x&y:z.jpg", "x%26y%3Az.jpg"},
		{"café.jpg", "caf%C3%A9.jpg"},
		{"~_-.jpg", "~_-.jpg"},
		{"sun set #1.jpg", "sun%20set%20%231.jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EscapeSegment(tt.segment), "EscapeSegment(%q)", tt.segment)
	}
}
