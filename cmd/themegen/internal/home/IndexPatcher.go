package home

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"os"
	"regexp"

	"github.com/adampresley/themegen/pkg/models"
)

var (
	ErrIndexNotFound = fmt.Errorf("index file not found")
)

type IndexPatcher interface {
	Patch(themeImages models.ThemeImages) (PatchReport, error)
	PatchContent(content string, themeImages models.ThemeImages) (string, PatchReport)
}

type IndexPatcherConfig struct {
	Layout models.SiteLayout
}

type IndexPatcherService struct {
	layout models.SiteLayout
}

/*
PatchReport says which theme cards were found and rewritten. Themes whose
card could not be located are listed in Missing.
*/
type PatchReport struct {
	Updated []string
	Missing []string
	Changed bool
}

func NewIndexPatcher(config IndexPatcherConfig) IndexPatcherService {
	return IndexPatcherService{
		layout: config.Layout,
	}
}

/*
Patch rewrites the cover image and photo count of every theme card on the
index page in place. It returns ErrIndexNotFound when the index file does not
exist. The file is only written when something changed.
*/
func (p IndexPatcherService) Patch(themeImages models.ThemeImages) (PatchReport, error) {
	var (
		err     error
		content []byte
		report  PatchReport
		patched string
	)

	indexPath := p.layout.IndexPath()

	if content, err = os.ReadFile(indexPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("%w: %s", ErrIndexNotFound, indexPath)
		}

		return report, fmt.Errorf("error reading index file '%s': %w", indexPath, err)
	}

	patched, report = p.PatchContent(string(content), themeImages)

	if !report.Changed {
		slog.Info("index already up to date", "path", indexPath)
		return report, nil
	}

	if err = os.WriteFile(indexPath, []byte(patched), 0o644); err != nil {
		return report, fmt.Errorf("error writing index file '%s': %w", indexPath, err)
	}

	slog.Info("updated index covers and counts", "path", indexPath, "themes", report.Updated)
	return report, nil
}

/*
PatchContent applies the cover and count substitution to content for each
theme in display order, replacing at most the first matching card per theme.
*/
func (p IndexPatcherService) PatchContent(content string, themeImages models.ThemeImages) (string, PatchReport) {
	report := PatchReport{
		Updated: []string{},
		Missing: []string{},
	}

	result := content

	for _, theme := range p.layout.Themes {
		images := themeImages[theme.Name]
		l := slog.With("theme", theme.Name)

		pattern := p.cardPattern(theme)
		loc := pattern.FindStringSubmatchIndex(result)

		if loc == nil {
			l.Warn("no card found on the index page for theme", "href", p.pageHref(theme))
			report.Missing = append(report.Missing, theme.Name)
			continue
		}

		if matches := pattern.FindAllStringIndex(result, 2); len(matches) > 1 {
			l.Warn("more than one card found for theme. only the first is updated")
		}

		cover := html.EscapeString(p.coverSrc(themeImages, theme))
		count := PhotoCount(len(images))

		// Groups 2 and 4 are the src value and the count text.
		result = result[:loc[4]] + cover + result[loc[5]:loc[8]] + count + result[loc[9]:]
		report.Updated = append(report.Updated, theme.Name)
	}

	report.Changed = result != content
	return result, report
}

/*
PhotoCount formats n as "1 photo" or "n photos".
*/
func PhotoCount(n int) string {
	if n == 1 {
		return "1 photo"
	}

	return fmt.Sprintf("%d photos", n)
}

func (p IndexPatcherService) coverSrc(themeImages models.ThemeImages, theme models.Theme) string {
	if cover, ok := themeImages.Cover(theme.Name); ok {
		return cover.URL
	}

	return p.layout.PlaceholderCover
}

func (p IndexPatcherService) pageHref(theme models.Theme) string {
	return p.layout.PagesHref() + "/" + theme.PageFileName()
}

/*
cardPattern matches one theme card:

	<a class="card" href="themes/<slug>.html"> ... <img src="SRC" ...
	  <div class="body"><strong>Theme</strong><div class="muted">COUNT</div></div></a>

The theme name may appear raw or HTML-escaped in the hand written index,
and the closing tags may be split across lines.
*/
func (p IndexPatcherService) cardPattern(theme models.Theme) *regexp.Regexp {
	name := regexp.QuoteMeta(theme.Name)

	if escaped := html.EscapeString(theme.Name); escaped != theme.Name {
		name = `(?:` + name + `|` + regexp.QuoteMeta(escaped) + `)`
	}

	return regexp.MustCompile(
		`(?s)(<a\s+class="card"\s+href="` + regexp.QuoteMeta(p.pageHref(theme)) + `">.*?<img\s+src=")` +
			`([^"]*)` +
			`(".*?<div\s+class="body"><strong>` + name + `</strong><div\s+class="muted">)` +
			`([^<]*)` +
			`(</div>\s*</div>\s*</a>)`,
	)
}
