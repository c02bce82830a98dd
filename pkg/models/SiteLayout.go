package models

import (
	"fmt"
	"path/filepath"
)

/*
SiteLayout describes where things live in the project being built. It is
created once at startup and never modified.
*/
type SiteLayout struct {
	RootDir          string
	MediaDir         string
	OutputDir        string
	IndexFile        string
	Stylesheet       string
	Themes           []Theme
	ValidExtensions  []string
	GridClass        string
	Author           string
	PlaceholderCover string
}

func (l SiteLayout) ThemeFolder(theme Theme) string {
	return filepath.Join(l.RootDir, l.MediaDir, theme.Name)
}

func (l SiteLayout) OutputPath() string {
	return filepath.Join(l.RootDir, l.OutputDir)
}

func (l SiteLayout) PagePath(theme Theme) string {
	return filepath.Join(l.OutputPath(), theme.PageFileName())
}

func (l SiteLayout) IndexPath() string {
	return filepath.Join(l.RootDir, l.IndexFile)
}

/*
PagesHref is the href, relative to the root, of the folder holding the
generated pages. For the default layout this is "themes".
*/
func (l SiteLayout) PagesHref() string {
	return filepath.ToSlash(filepath.Clean(l.OutputDir))
}

/*
RootPrefix is the relative path from a generated page back to the root,
always ending in a slash ("../" for the default layout).
*/
func (l SiteLayout) RootPrefix() string {
	rel, err := filepath.Rel(l.OutputPath(), l.RootDir)
	if err != nil || rel == "." {
		return ""
	}

	return filepath.ToSlash(rel) + "/"
}

/*
Validate rejects theme lists whose slugs are empty or collide, since both
the output file names and the index patterns are keyed on the slug.
*/
func (l SiteLayout) Validate() error {
	if len(l.Themes) == 0 {
		return fmt.Errorf("no themes configured")
	}

	seen := map[string]string{}

	for _, theme := range l.Themes {
		slug := theme.Slug()

		if slug == "" {
			return fmt.Errorf("theme '%s' has an empty slug", theme.Name)
		}

		if other, ok := seen[slug]; ok {
			return fmt.Errorf("themes '%s' and '%s' share the slug '%s'", other, theme.Name, slug)
		}

		seen[slug] = theme.Name
	}

	if filepath.IsAbs(l.OutputDir) {
		return fmt.Errorf("output folder '%s' must be relative to the root", l.OutputDir)
	}

	return nil
}
