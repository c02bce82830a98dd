package models

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type Theme struct {
	Name string
}

/*
Slugify lowercases s, collapses every run of characters outside [a-z0-9]
into a single hyphen and trims hyphens from both ends.
*/
func Slugify(s string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func (t Theme) Slug() string {
	return Slugify(t.Name)
}

// PageFileName is the file name of the generated gallery page for this theme.
func (t Theme) PageFileName() string {
	return t.Slug() + ".html"
}

func NewThemes(names []string) []Theme {
	result := make([]Theme, 0, len(names))

	for _, name := range names {
		result = append(result, Theme{Name: name})
	}

	return result
}
