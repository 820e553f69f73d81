package domain

// Page is the navigation state of the site.
type Page int

const (
	PageHome Page = iota
	PageAbout
	PageContact
	PageSearchResults
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageAbout:
		return "about"
	case PageContact:
		return "contact"
	case PageSearchResults:
		return "search"
	}
	return "unknown"
}

// ShowsResults reports whether the results area is visible on p.
func (p Page) ShowsResults() bool { return p == PageHome || p == PageSearchResults }
