package viewmodels

type ThemePage struct {
	BaseViewModel

	ThemeName string
	GridClass string
	Photos    []ThemePagePhoto
}

type ThemePagePhoto struct {
	FileName string
	Src      string
}
