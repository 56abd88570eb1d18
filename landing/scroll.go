package landing

// Scroll describes the visual state derived from the vertical scroll offset.
type Scroll struct {
	HeaderScrolled   bool
	BackToTopVisible bool
}

// ScrollState computes the header and back to top state at offset y.
func (c Config) ScrollState(y float64) Scroll {
	return Scroll{
		HeaderScrolled:   y > c.HeaderOffset,
		BackToTopVisible: y > c.BackToTopOffset,
	}
}

// Section is a page section as measured in the document.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the id of the section under the scroll offset y.
// When sections overlap the last one wins. The boolean is false when no
// section contains y.
func (c Config) ActiveSection(sections []Section, y float64) (string, bool) {
	var (
		id    string
		found bool
	)
	for _, s := range sections {
		top := s.Top - c.SectionOffset
		if y >= top && y < top+s.Height {
			id, found = s.ID, true
		}
	}
	return id, found
}

// Menu is the open/closed state of the mobile navigation menu.
type Menu struct {
	open bool
}

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// Close closes the menu.
func (m *Menu) Close() {
	m.open = false
}

// Open reports whether the menu is open.
func (m *Menu) Open() bool {
	return m.open
}

// BodyOverflow returns the body overflow style matching the menu state:
// page scrolling is locked while the menu is open.
func (m *Menu) BodyOverflow() string {
	if m.open {
		return "hidden"
	}
	return ""
}
