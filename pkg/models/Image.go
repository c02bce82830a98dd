package models

/*
Image is one file found in a theme folder. URL is the path relative to the
project root with each segment percent-encoded.
*/
type Image struct {
	Path     string
	FileName string
	URL      string
}

/*
ThemeImages maps a theme name to its images in directory order.
*/
type ThemeImages map[string][]Image

/*
Cover returns the first image of the theme and false if the theme has none.
*/
func (ti ThemeImages) Cover(themeName string) (Image, bool) {
	images := ti[themeName]

	if len(images) == 0 {
		return Image{}, false
	}

	return images[0], true
}
