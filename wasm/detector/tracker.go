package detector

import "github.com/dswdata/landing/particle"

// PointerTarget receives pointer positions. *particle.System satisfies it.
type PointerTarget interface {
	Pointer() (particle.Point, bool)
	SetPointer(particle.Point)
	ClearPointer()
}

// Tracker forwards face positions as pointer positions. When the face is
// lost it clears only the pointer it placed itself, so a mouse pointer
// set in between is kept.
type Tracker struct {
	last   particle.Point
	placed bool
}

// Update reports the face position of one frame; found is false when no
// face was detected.
func (t *Tracker) Update(target PointerTarget, p particle.Point, found bool) {
	if found {
		target.SetPointer(p)
		t.last, t.placed = p, true
		return
	}
	if !t.placed {
		return
	}
	t.placed = false
	if cur, ok := target.Pointer(); ok && cur == t.last {
		target.ClearPointer()
	}
}
