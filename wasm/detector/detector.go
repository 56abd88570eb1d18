// Package detector turns webcam frames into a pointer position by locating
// the most prominent face with the pigo cascade classifier.
package detector

import (
	"errors"

	pigo "github.com/esimov/pigo/core"

	"github.com/dswdata/landing/particle"
)

// minQuality discards weak detections.
const minQuality = 5.0

// Detector holds the unpacked face classifier and a reusable gray buffer.
type Detector struct {
	classifier *pigo.Pigo
	gray       []uint8

	MinSize int
	MaxSize int
}

// NewDetector unpacks a facefinder cascade file.
func NewDetector(cascade []byte) (*Detector, error) {
	if len(cascade) == 0 {
		return nil, errors.New("empty facefinder cascade file")
	}
	// Unpack the binary file. This will return the number of cascade trees,
	// the tree depth, the threshold and the prediction from tree's leaf nodes.
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, errors.New("error unpacking the facefinder cascade file")
	}
	return &Detector{
		classifier: classifier,
		MinSize:    60,
		MaxSize:    600,
	}, nil
}

// DetectFace runs the cluster detection over an RGBA frame and returns the
// detection with the highest score.
func (d *Detector) DetectFace(rgba []uint8, width, height int) (pigo.Detection, bool) {
	d.gray = Grayscale(d.gray, rgba)
	cParams := pigo.CascadeParams{
		MinSize:     d.MinSize,
		MaxSize:     d.MaxSize,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: d.gray,
			Rows:   height,
			Cols:   width,
			Dim:    width,
		},
	}

	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := d.classifier.RunCascade(cParams, 0.0)
	// Calculate the intersection over union (IoU) of two clusters.
	dets = d.classifier.ClusterDetections(dets, 0.2)

	return Strongest(dets)
}

// Strongest returns the detection with the highest score above the
// quality threshold.
func Strongest(dets []pigo.Detection) (pigo.Detection, bool) {
	var (
		best  pigo.Detection
		found bool
	)
	for _, det := range dets {
		if det.Q < minQuality {
			continue
		}
		if !found || det.Q > best.Q {
			best, found = det, true
		}
	}
	return best, found
}

// Grayscale converts RGBA pixels to luma, reusing dst when it is large
// enough.
func Grayscale(dst, rgba []uint8) []uint8 {
	n := len(rgba) / 4
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		r, g, b := float64(rgba[4*i]), float64(rgba[4*i+1]), float64(rgba[4*i+2])
		dst[i] = uint8(0.299*r + 0.587*g + 0.114*b + 0.5)
	}
	return dst
}

// ToPointer maps the face centre from frame coordinates to the viewport,
// mirrored horizontally so the pointer follows the viewer like a mirror.
func ToPointer(det pigo.Detection, frameW, frameH int, viewW, viewH float64) particle.Point {
	return particle.Point{
		X: (1 - float64(det.Col)/float64(frameW)) * viewW,
		Y: float64(det.Row) / float64(frameH) * viewH,
	}
}
