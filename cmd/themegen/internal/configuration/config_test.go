package configuration

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/adampresley/themegen/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(root string) Config {
	return Config{
		Author:           "Arvind",
		Extensions:       ".jpg,.jpeg,.png,.webp",
		GridClass:        "grid cols-3",
		IndexFile:        "index.html",
		MediaDir:         "media/photography",
		OutputDir:        "themes",
		PlaceholderCover: "media/placeholder.jpg",
		RootDir:          root,
		Stylesheet:       "styles.css",
		Themes:           "Trees,CityLife,Landscapes",
	}
}

func TestSiteLayoutFromDefaults(t *testing.T) {
	root := t.TempDir()

	layout, err := defaultConfig(root).SiteLayout()
	require.NoError(t, err)

	assert.Equal(t, root, layout.RootDir)
	assert.Equal(t, []models.Theme{{Name: "Trees"}, {Name: "CityLife"}, {Name: "Landscapes"}}, layout.Themes)
	assert.Equal(t, []string{".jpg", ".jpeg", ".png", ".webp"}, layout.ValidExtensions)
	assert.Equal(t, filepath.Join(root, "themes", "trees.html"), layout.PagePath(layout.Themes[0]))
	assert.Equal(t, "../", layout.RootPrefix())
}

func TestSiteLayoutTrimsAndNormalizesLists(t *testing.T) {
	config := defaultConfig(t.TempDir())
	config.Themes = " Trees , ,City Life,"
	config.Extensions = "JPG, png ,.WebP"

	layout, err := config.SiteLayout()
	require.NoError(t, err)

	assert.Equal(t, []models.Theme{{Name: "Trees"}, {Name: "City Life"}}, layout.Themes)
	assert.Equal(t, []string{".jpg", ".png", ".webp"}, layout.ValidExtensions)
}

func TestSiteLayoutRejectsCollidingThemes(t *testing.T) {
	config := defaultConfig(t.TempDir())
	config.Themes = "City Life,city-life"

	_, err := config.SiteLayout()
	assert.Error(t, err)
}

func TestGeneratorSettingsUseNamespacedEnvironment(t *testing.T) {
	// Only the standard AWS credential variables are read unprefixed, and only publishing uses them.
	awsStandard := []string{"AWS_ENDPOINT_URL", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"}
	configType := reflect.TypeOf(Config{})

	for i := 0; i < configType.NumField(); i++ {
		field := configType.Field(i)
		name := field.Tag.Get("env")

		if strings.HasPrefix(field.Name, "Aws") && name != "THEMEGEN_AWS_BUCKET" {
			assert.Contains(t, awsStandard, name, "field %s", field.Name)
			continue
		}

		assert.True(t, strings.HasPrefix(name, "THEMEGEN_"), "field %s reads env %q", field.Name, name)
	}
}
