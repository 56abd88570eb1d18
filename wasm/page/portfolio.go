//go:build js && wasm

package page

import (
	"syscall/js"
	"time"

	"github.com/dswdata/landing/landing"
)

// PortfolioFilter shows the portfolio cards of the selected category.
type PortfolioFilter struct {
	filters []js.Value
	cards   []js.Value
}

// NewPortfolioFilter binds the filter buttons, or returns nil when the
// page has no portfolio.
func NewPortfolioFilter(cfg landing.Config) *PortfolioFilter {
	p := &PortfolioFilter{
		filters: queryAll(cfg.Selectors.PortfolioFilters),
		cards:   queryAll(cfg.Selectors.PortfolioCards),
	}
	if len(p.filters) == 0 || len(p.cards) == 0 {
		return nil
	}
	for _, filter := range p.filters {
		filter := filter
		on(filter, "click", func(js.Value) {
			p.setActive(filter)
			p.Filter(dataset(filter, "filter"))
		})
	}
	return p
}

func (p *PortfolioFilter) setActive(active js.Value) {
	for _, f := range p.filters {
		setClass(f, "active", false)
	}
	setClass(active, "active", true)
}

// Filter shows the cards matching category and fades them in.
func (p *PortfolioFilter) Filter(category string) {
	for _, card := range p.cards {
		card := card
		if !landing.Matches(category, dataset(card, "category")) {
			setClass(card, "hidden", true)
			continue
		}
		setClass(card, "hidden", false)
		st := style(card)
		st.Set("opacity", "0")
		st.Set("transform", "translateY(20px)")
		after(50*time.Millisecond, func() {
			st.Set("transition", "opacity 0.3s ease, transform 0.3s ease")
			st.Set("opacity", "1")
			st.Set("transform", "translateY(0)")
		})
	}
}
