package configuration

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adampresley/configinator"
	"github.com/adampresley/themegen/pkg/models"
)

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"us-central-1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"THEMEGEN_AWS_BUCKET" default:"" description:"S3 bucket the generated pages are published to"`
	Author             string `flag:"author" env:"THEMEGEN_SITE_AUTHOR" default:"Arvind" description:"Name shown in page titles and footers"`
	Extensions         string `flag:"extensions" env:"THEMEGEN_IMAGE_EXTENSIONS" default:".jpg,.jpeg,.png,.webp" description:"Comma separated list of image file extensions"`
	GridClass          string `flag:"gridclass" env:"THEMEGEN_GRID_CLASS" default:"grid cols-3" description:"CSS class of the image grid"`
	IndexFile          string `flag:"index" env:"THEMEGEN_INDEX_FILE" default:"index.html" description:"Index page patched by --update-index, relative to the root"`
	LogLevel           string `flag:"loglevel" env:"THEMEGEN_LOG_LEVEL" default:"info" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MediaDir           string `flag:"media" env:"THEMEGEN_MEDIA_DIR" default:"media/photography" description:"Folder holding one sub folder per theme, relative to the root"`
	OutputDir          string `flag:"out" env:"THEMEGEN_OUTPUT_DIR" default:"themes" description:"Folder the theme pages are written to, relative to the root"`
	PlaceholderCover   string `flag:"placeholder" env:"THEMEGEN_PLACEHOLDER_COVER" default:"media/placeholder.jpg" description:"Cover used on the index for themes without images"`
	Publish            bool   `flag:"publish" env:"THEMEGEN_PUBLISH" default:"false" description:"Upload the generated pages to the S3 bucket"`
	PublishPrefix      string `flag:"prefix" env:"THEMEGEN_PUBLISH_PREFIX" default:"" description:"Key prefix inside the S3 bucket"`
	RootDir            string `flag:"root" env:"THEMEGEN_ROOT_DIR" default:"." description:"Root folder of the site"`
	Stylesheet         string `flag:"stylesheet" env:"THEMEGEN_STYLESHEET" default:"styles.css" description:"Stylesheet linked from every page, relative to the root"`
	Themes             string `flag:"themes" env:"THEMEGEN_THEMES" default:"Trees,CityLife,Landscapes" description:"Comma separated theme names in display order"`
	UpdateIndex        bool   `flag:"update-index" env:"THEMEGEN_UPDATE_INDEX" default:"false" description:"Also refresh the covers and photo counts on the index page"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

/*
SiteLayout converts the flat configuration into the layout handed to every
service. The root is made absolute so image paths can be made relative to
it later.
*/
func (c Config) SiteLayout() (models.SiteLayout, error) {
	var (
		err  error
		root string
	)

	if root, err = filepath.Abs(c.RootDir); err != nil {
		return models.SiteLayout{}, fmt.Errorf("error resolving root folder '%s': %w", c.RootDir, err)
	}

	layout := models.SiteLayout{
		RootDir:          root,
		MediaDir:         filepath.FromSlash(c.MediaDir),
		OutputDir:        filepath.FromSlash(c.OutputDir),
		IndexFile:        filepath.FromSlash(c.IndexFile),
		Stylesheet:       c.Stylesheet,
		Themes:           models.NewThemes(splitList(c.Themes)),
		ValidExtensions:  normalizeExtensions(splitList(c.Extensions)),
		GridClass:        c.GridClass,
		Author:           c.Author,
		PlaceholderCover: c.PlaceholderCover,
	}

	if err = layout.Validate(); err != nil {
		return layout, fmt.Errorf("error in site configuration: %w", err)
	}

	return layout, nil
}

func splitList(value string) []string {
	result := []string{}

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}

func normalizeExtensions(extensions []string) []string {
	result := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(ext)

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		result = append(result, ext)
	}

	return result
}
