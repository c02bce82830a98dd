package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

const upperHex = "0123456789ABCDEF"

/*
RelativeURL turns a path under root into a slash separated path relative to
root, percent-encoding each segment so file names with spaces and the like
survive inside HTML attributes.
*/
func RelativeURL(root, path string) (string, error) {
	var (
		err error
		rel string
	)

	if rel, err = filepath.Rel(root, path); err != nil {
		return "", fmt.Errorf("error making '%s' relative to '%s': %w", path, root, err)
	}

	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path '%s' is not under '%s'", path, root)
	}

	segments := strings.Split(filepath.ToSlash(rel), "/")

	for i, segment := range segments {
		segments[i] = EscapeSegment(segment)
	}

	return strings.Join(segments, "/"), nil
}

/*
EscapeSegment percent-encodes every byte of segment except the RFC 3986
unreserved characters (letters, digits, '-', '.', '_' and '~').
*/
func EscapeSegment(segment string) string {
	var b strings.Builder

	for i := 0; i < len(segment); i++ {
		c := segment[i]

		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}

	return false
}
