//go:build js && wasm

package page

import (
	"syscall/js"

	"github.com/dswdata/landing/landing"
)

// Navigation controls the mobile menu and the active navigation link.
type Navigation struct {
	cfg    landing.Config
	toggle js.Value
	menu   js.Value
	links  []js.Value
	state  landing.Menu
}

// NewNavigation binds the menu. It returns nil when the page has no menu.
func NewNavigation(cfg landing.Config) *Navigation {
	n := &Navigation{
		cfg:    cfg,
		toggle: query(cfg.Selectors.NavToggle),
		menu:   query(cfg.Selectors.NavMenu),
		links:  queryAll(cfg.Selectors.NavLinks),
	}
	if !exists(n.toggle) || !exists(n.menu) {
		return nil
	}

	on(n.toggle, "click", func(js.Value) {
		n.state.Toggle()
		n.render()
	})
	for _, link := range n.links {
		link := link
		on(link, "click", func(js.Value) {
			n.Close()
			n.setActive(link)
		})
	}
	on(document, "click", func(ev js.Value) {
		target := ev.Get("target")
		if !n.menu.Call("contains", target).Bool() && !n.toggle.Call("contains", target).Bool() {
			n.Close()
		}
	})
	on(document, "keydown", func(ev js.Value) {
		if ev.Get("key").String() == "Escape" {
			n.Close()
		}
	})
	return n
}

// Close closes the mobile menu.
func (n *Navigation) Close() {
	n.state.Close()
	n.render()
}

func (n *Navigation) render() {
	open := n.state.Open()
	setClass(n.menu, "active", open)
	setClass(n.toggle, "active", open)
	style(document.Get("body")).Set("overflow", n.state.BodyOverflow())
}

func (n *Navigation) setActive(active js.Value) {
	for _, link := range n.links {
		setClass(link, "active", false)
	}
	setClass(active, "active", true)
}

// UpdateActiveOnScroll highlights the link of the section under the
// scroll offset y.
func (n *Navigation) UpdateActiveOnScroll(y float64) {
	var sections []landing.Section
	for _, el := range queryAll(n.cfg.Selectors.Sections) {
		sections = append(sections, landing.Section{
			ID:     el.Call("getAttribute", "id").String(),
			Top:    el.Get("offsetTop").Float(),
			Height: el.Get("offsetHeight").Float(),
		})
	}
	id, ok := n.cfg.ActiveSection(sections, y)
	if !ok {
		return
	}
	for _, link := range n.links {
		setClass(link, "active", link.Call("getAttribute", "href").String() == "#"+id)
	}
}
