package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout(themes ...string) SiteLayout {
	return SiteLayout{
		RootDir:   filepath.FromSlash("/site"),
		MediaDir:  filepath.FromSlash("media/photography"),
		OutputDir: "themes",
		IndexFile: "index.html",
		Themes:    NewThemes(themes),
	}
}

func TestSiteLayoutPaths(t *testing.T) {
	layout := testLayout("City Life")
	theme := layout.Themes[0]

	assert.Equal(t, filepath.FromSlash("/site/media/photography/City Life"), layout.ThemeFolder(theme))
	assert.Equal(t, filepath.FromSlash("/site/themes/city-life.html"), layout.PagePath(theme))
	assert.Equal(t, filepath.FromSlash("/site/index.html"), layout.IndexPath())
	assert.Equal(t, "themes", layout.PagesHref())
	assert.Equal(t, "../", layout.RootPrefix())
}

func TestSiteLayoutRootPrefixForNestedOutput(t *testing.T) {
	layout := testLayout("Trees")
	layout.OutputDir = filepath.FromSlash("gallery/themes")

	assert.Equal(t, "../../", layout.RootPrefix())
	assert.Equal(t, "gallery/themes", layout.PagesHref())
}

func TestSiteLayoutValidate(t *testing.T) {
	require.NoError(t, testLayout("Trees", "CityLife", "Landscapes").Validate())

	err := testLayout("City Life", "city-life").Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "city-life")

	assert.Error(t, testLayout("Trees", "???").Validate())
	assert.Error(t, testLayout().Validate())
}

func TestThemeImagesCover(t *testing.T) {
	images := ThemeImages{
		"Trees": {{FileName: "a.jpg"}, {FileName: "b.png"}},
	}

	cover, ok := images.Cover("Trees")
	assert.True(t, ok)
	assert.Equal(t, "a.jpg", cover.FileName)

	_, ok = images.Cover("CityLife")
	assert.False(t, ok)
}
