package particle

// Surface is a 2D drawing target owned by a single System.
type Surface interface {
	SetSize(width, height float64)
	Clear()
	FillCircle(x, y, r float64, p Paint)
	StrokeLine(x0, y0, x1, y1, width float64, p Paint)
}

// Host is the environment a System binds to.
type Host interface {
	// Lookup returns the surface identified by selector.
	Lookup(selector string) (Surface, bool)
	// Viewport reports the current viewport dimensions.
	Viewport() (width, height float64)
}

// Scheduler invokes a callback once, on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}
