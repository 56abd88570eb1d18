package particle

// Circle is a recorded FillCircle call.
type Circle struct {
	X, Y, R float64
	Paint   Paint
}

// Line is a recorded StrokeLine call.
type Line struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Paint          Paint
}

// Recorder is a Surface keeping the draw calls of the current frame, for
// hosts which replay a frame later on their own render pass.
type Recorder struct {
	Width, Height float64
	Frames        int

	Circles []Circle
	Lines   []Line
}

// SetSize records the surface size.
func (r *Recorder) SetSize(w, h float64) {
	r.Width, r.Height = w, h
}

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.Frames++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(x, y, rad float64, p Paint) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, R: rad, Paint: p})
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	r.Lines = append(r.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Paint: p})
}
