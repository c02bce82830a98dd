package services

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/themegen/pkg/models"
)

type ThemeServicer interface {
	FindImages(theme models.Theme) ([]models.Image, error)
	ScanAll() (models.ThemeImages, error)
}

type ThemeServiceConfig struct {
	Layout models.SiteLayout
}

type ThemeService struct {
	layout models.SiteLayout
}

func NewThemeService(config ThemeServiceConfig) ThemeService {
	return ThemeService{
		layout: config.Layout,
	}
}

/*
FindImages lists the image files directly inside the theme's folder, in
file name order. A missing folder is not an error and yields no images.
*/
func (s ThemeService) FindImages(theme models.Theme) ([]models.Image, error) {
	var (
		err      error
		entries  []os.DirEntry
		info     fs.FileInfo
		imageURL string
	)

	result := []models.Image{}
	folder := s.layout.ThemeFolder(theme)

	if entries, err = os.ReadDir(folder); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("theme folder not found", "theme", theme.Name, "folder", folder)
			return result, nil
		}

		return result, fmt.Errorf("error reading theme folder '%s': %w", folder, err)
	}

	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))

		if !slices.IsInSlice(ext, s.layout.ValidExtensions) {
			continue
		}

		path := filepath.Join(folder, entry.Name())

		// Stat rather than entry.Type() so symlinked files count as files.
		if info, err = os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("skipping broken link in theme folder", "theme", theme.Name, "path", path)
				continue
			}

			return result, fmt.Errorf("error reading file info for '%s': %w", path, err)
		}

		if !info.Mode().IsRegular() {
			continue
		}

		if imageURL, err = RelativeURL(s.layout.RootDir, path); err != nil {
			return result, err
		}

		result = append(result, models.Image{
			Path:     path,
			FileName: entry.Name(),
			URL:      imageURL,
		})
	}

	return result, nil
}

func (s ThemeService) ScanAll() (models.ThemeImages, error) {
	var (
		err    error
		images []models.Image
	)

	result := models.ThemeImages{}

	for _, theme := range s.layout.Themes {
		if images, err = s.FindImages(theme); err != nil {
			return result, fmt.Errorf("error scanning theme '%s': %w", theme.Name, err)
		}

		slog.Info("scanned theme", "theme", theme.Name, "numImages", len(images))
		result[theme.Name] = images
	}

	return result, nil
}
