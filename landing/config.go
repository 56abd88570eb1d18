// Package landing holds the behaviour of the landing page which does not
// depend on the DOM: scroll thresholds, menu state, portfolio filtering and
// contact form validation.
package landing

// Selectors lists the DOM elements the page scripts bind to.
type Selectors struct {
	Header           string
	NavToggle        string
	NavMenu          string
	NavLinks         string
	BackToTop        string
	PortfolioFilters string
	PortfolioCards   string
	ContactForm      string
	Animated         string
	Sections         string
	Year             string
}

// Config is the static configuration of the page.
type Config struct {
	Selectors Selectors

	// HeaderOffset is the scroll offset after which the header is compacted.
	HeaderOffset float64
	// BackToTopOffset is the scroll offset after which the back to top
	// button is shown.
	BackToTopOffset float64
	// SectionOffset shifts section tops when computing the active link.
	SectionOffset float64

	RevealThreshold  float64
	RevealRootMargin string

	WhatsAppPhone string
}

// DefaultConfig returns the configuration of the published page.
func DefaultConfig() Config {
	return Config{
		Selectors: Selectors{
			Header:           "#header",
			NavToggle:        "#nav-toggle",
			NavMenu:          "#nav-menu",
			NavLinks:         ".nav__link",
			BackToTop:        "#back-to-top",
			PortfolioFilters: ".portfolio__filter",
			PortfolioCards:   ".portfolio-card",
			ContactForm:      "#contact-form",
			Animated:         ".animate-on-scroll",
			Sections:         "section[id]",
			Year:             "#current-year",
		},
		HeaderOffset:     50,
		BackToTopOffset:  500,
		SectionOffset:    100,
		RevealThreshold:  0.2,
		RevealRootMargin: "0px 0px -50px 0px",
		WhatsAppPhone:    "5511915572828",
	}
}
