package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adampresley/themegen/cmd/themegen/internal/viewmodels"
	"github.com/adampresley/themegen/pkg/models"
)

const themePageTemplate = "pages/theme.html"

type ThemePageWriter interface {
	Render(theme models.Theme, images []models.Image) ([]byte, error)
	Write(theme models.Theme, images []models.Image) (string, error)
	WriteAll(themeImages models.ThemeImages) ([]string, error)
}

type ThemePageWriterConfig struct {
	Layout     models.SiteLayout
	TemplateFS fs.FS

	// Now defaults to time.Now. Pages only differ between runs by this date.
	Now func() time.Time
}

type ThemePageWriterService struct {
	layout models.SiteLayout
	now    func() time.Time
	tmpl   *template.Template
}

func NewThemePageWriter(config ThemePageWriterConfig) (ThemePageWriterService, error) {
	var (
		err  error
		tmpl *template.Template
	)

	if config.Now == nil {
		config.Now = time.Now
	}

	if tmpl, err = template.ParseFS(config.TemplateFS, themePageTemplate); err != nil {
		return ThemePageWriterService{}, fmt.Errorf("error parsing theme page template: %w", err)
	}

	return ThemePageWriterService{
		layout: config.Layout,
		now:    config.Now,
		tmpl:   tmpl,
	}, nil
}

func (w ThemePageWriterService) Render(theme models.Theme, images []models.Image) ([]byte, error) {
	var (
		buf bytes.Buffer
	)

	rootPrefix := w.layout.RootPrefix()

	viewData := viewmodels.ThemePage{
		BaseViewModel: viewmodels.BaseViewModel{
			Author:     w.layout.Author,
			IndexPage:  filepath.ToSlash(w.layout.IndexFile),
			RootPrefix: rootPrefix,
			Stylesheet: w.layout.Stylesheet,
			Updated:    w.now().Format(time.DateOnly),
		},
		ThemeName: theme.Name,
		GridClass: w.layout.GridClass,
		Photos:    make([]viewmodels.ThemePagePhoto, 0, len(images)),
	}

	for _, img := range images {
		viewData.Photos = append(viewData.Photos, viewmodels.ThemePagePhoto{
			FileName: img.FileName,
			Src:      rootPrefix + img.URL,
		})
	}

	if err := w.tmpl.Execute(&buf, viewData); err != nil {
		return nil, fmt.Errorf("error rendering page for theme '%s': %w", theme.Name, err)
	}

	return buf.Bytes(), nil
}

/*
Write renders the theme's page and overwrites <output>/<slug>.html,
returning the path written.
*/
func (w ThemePageWriterService) Write(theme models.Theme, images []models.Image) (string, error) {
	var (
		err  error
		page []byte
	)

	outPath := w.layout.PagePath(theme)

	if page, err = w.Render(theme, images); err != nil {
		return outPath, err
	}

	if err = os.MkdirAll(w.layout.OutputPath(), 0o755); err != nil {
		return outPath, fmt.Errorf("error creating output folder '%s': %w", w.layout.OutputPath(), err)
	}

	if err = os.WriteFile(outPath, page, 0o644); err != nil {
		return outPath, fmt.Errorf("error writing theme page '%s': %w", outPath, err)
	}

	slog.Info("wrote theme page", "theme", theme.Name, "path", outPath, "numImages", len(images))
	return outPath, nil
}

/*
WriteAll writes one page per configured theme in display order. Themes
missing from themeImages get the empty page.
*/
func (w ThemePageWriterService) WriteAll(themeImages models.ThemeImages) ([]string, error) {
	var (
		err     error
		outPath string
	)

	written := make([]string, 0, len(w.layout.Themes))

	for _, theme := range w.layout.Themes {
		if outPath, err = w.Write(theme, themeImages[theme.Name]); err != nil {
			return written, err
		}

		written = append(written, outPath)
	}

	return written, nil
}
