//go:build js && wasm

package page

import (
	"syscall/js"

	"github.com/dswdata/landing/landing"
)

// ScrollEffects toggles the header and back to top button on scroll.
type ScrollEffects struct {
	cfg        landing.Config
	header     js.Value
	backToTop  js.Value
	navigation *Navigation
}

// NewScrollEffects binds the scroll listener; nav may be nil.
func NewScrollEffects(cfg landing.Config, nav *Navigation) *ScrollEffects {
	s := &ScrollEffects{
		cfg:        cfg,
		header:     query(cfg.Selectors.Header),
		backToTop:  query(cfg.Selectors.BackToTop),
		navigation: nav,
	}
	s.handleScroll()
	on(window, "scroll", func(js.Value) {
		s.handleScroll()
	}, map[string]interface{}{"passive": true})

	if exists(s.backToTop) {
		on(s.backToTop, "click", func(js.Value) {
			scrollTo(0)
		})
	}
	return s
}

func (s *ScrollEffects) handleScroll() {
	y := window.Get("scrollY").Float()
	state := s.cfg.ScrollState(y)

	if exists(s.header) {
		setClass(s.header, "header--scrolled", state.HeaderScrolled)
	}
	if exists(s.backToTop) {
		setClass(s.backToTop, "visible", state.BackToTopVisible)
	}
	if s.navigation != nil {
		s.navigation.UpdateActiveOnScroll(y)
	}
}

func scrollTo(top float64) {
	window.Call("scrollTo", map[string]interface{}{
		"top":      top,
		"behavior": "smooth",
	})
}

// SmoothAnchors scrolls in-page links smoothly, leaving room for the header.
func SmoothAnchors(cfg landing.Config) {
	for _, anchor := range queryAll(`a[href^="#"]`) {
		anchor := anchor
		on(anchor, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			id := anchor.Call("getAttribute", "href").String()
			if id == "#" {
				return
			}
			target := query(id)
			if !exists(target) {
				return
			}
			headerHeight := 0.0
			if header := query(cfg.Selectors.Header); exists(header) {
				headerHeight = header.Get("offsetHeight").Float()
			}
			scrollTo(target.Get("offsetTop").Float() - headerHeight)
		})
	}
}
