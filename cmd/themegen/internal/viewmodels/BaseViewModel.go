package viewmodels

/*
BaseViewModel carries what every generated page needs to link back into
the site and sign itself.
*/
type BaseViewModel struct {
	Author     string
	IndexPage  string
	RootPrefix string
	Stylesheet string
	Updated    string
}

func (m BaseViewModel) StylesheetHref() string {
	return m.RootPrefix + m.Stylesheet
}

func (m BaseViewModel) HomeHref() string {
	return m.RootPrefix + m.IndexPage
}
