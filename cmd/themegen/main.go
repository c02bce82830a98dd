package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/themegen/cmd/themegen/internal/configuration"
	"github.com/adampresley/themegen/cmd/themegen/internal/home"
	"github.com/adampresley/themegen/cmd/themegen/internal/pages"
	"github.com/adampresley/themegen/cmd/themegen/internal/publish"
	"github.com/adampresley/themegen/pkg/models"
	"github.com/adampresley/themegen/pkg/services"
)

var (
	Version string = "development"
	appName string = "themegen"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	indexPatcher home.IndexPatcher
	pageWriter   pages.ThemePageWriter
	publisher    publish.Publisher
	themeService services.ThemeServicer
)

func main() {
	var (
		err        error
		files      publish.Files
		layout     models.SiteLayout
		templateFS fs.FS
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("root", config.RootDir),
		slog.String("themes", config.Themes),
		slog.Bool("updateIndex", config.UpdateIndex),
		slog.Bool("publish", config.Publish),
	)

	if layout, err = config.SiteLayout(); err != nil {
		fatal("invalid configuration", err)
	}

	/*
	 * Setup services
	 */
	if templateFS, err = fs.Sub(appFS, "app"); err != nil {
		fatal("error opening embedded templates", err)
	}

	if err = setupServices(layout, templateFS); err != nil {
		fatal("error setting up services", err)
	}

	if config.Publish {
		setupPublisher(layout)
	}

	if files, err = run(layout, config.UpdateIndex); err != nil {
		fatal("error generating theme pages", err)
	}

	slog.Info("done", "numPages", len(files.Pages))
}

func setupServices(layout models.SiteLayout, templateFS fs.FS) error {
	var (
		err error
	)

	themeService = services.NewThemeService(services.ThemeServiceConfig{
		Layout: layout,
	})

	if pageWriter, err = pages.NewThemePageWriter(pages.ThemePageWriterConfig{
		Layout:     layout,
		TemplateFS: templateFS,
	}); err != nil {
		return fmt.Errorf("error setting up the page writer: %w", err)
	}

	indexPatcher = home.NewIndexPatcher(home.IndexPatcherConfig{
		Layout: layout,
	})

	return nil
}

/*
run scans every theme, writes every page, then optionally patches the index
and publishes. A missing index page is logged and does not fail the run.
Publishing only happens when a publisher has been set up.
*/
func run(layout models.SiteLayout, updateIndex bool) (publish.Files, error) {
	var (
		err         error
		files       publish.Files
		themeImages models.ThemeImages
	)

	if themeImages, err = themeService.ScanAll(); err != nil {
		return files, fmt.Errorf("error scanning themes: %w", err)
	}

	if files.Pages, err = pageWriter.WriteAll(themeImages); err != nil {
		return files, fmt.Errorf("error writing theme pages: %w", err)
	}

	if updateIndex {
		if _, err = indexPatcher.Patch(themeImages); err != nil {
			if !errors.Is(err, home.ErrIndexNotFound) {
				return files, fmt.Errorf("error updating the index page: %w", err)
			}

			slog.Error("index page not found. cannot update covers and counts", "path", layout.IndexPath())
		} else {
			files.Index = layout.IndexPath()
		}
	}

	if publisher != nil {
		if err = publisher.Publish(files); err != nil {
			return files, fmt.Errorf("error publishing pages: %w", err)
		}
	}

	return files, nil
}

func setupPublisher(layout models.SiteLayout) {
	var (
		err error
	)

	if config.AwsBucket == "" {
		fatal("cannot publish", errors.New("no S3 bucket configured"))
	}

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		fatal("error loading AWS config", err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		fatal("error creating S3 client", err)
	}

	publisher = publish.NewPublisher(publish.PublisherConfig{
		AwsBucket: config.AwsBucket,
		AwsRegion: config.AwsRegion,
		Layout:    layout,
		Prefix:    config.PublishPrefix,
		S3Client:  s3Client,
	})
}

func setupLogger(config *configuration.Config, version string) {
	var (
		level slog.Level
	)

	switch strings.ToLower(config.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler).With("version", version))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
