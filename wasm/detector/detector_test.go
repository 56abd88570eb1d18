package detector

import (
	"testing"

	pigo "github.com/esimov/pigo/core"
)

func TestGrayscale(t *testing.T) {
	rgba := []uint8{
		255, 255, 255, 255,
		0, 0, 0, 255,
		255, 0, 0, 255,
	}
	gray := Grayscale(nil, rgba)
	want := []uint8{255, 0, 76}
	if len(gray) != len(want) {
		t.Fatalf("expected %d pixels, got %d", len(want), len(gray))
	}
	for i := range want {
		if gray[i] != want[i] {
			t.Errorf("pixel %d = %d, want %d", i, gray[i], want[i])
		}
	}

	again := Grayscale(gray, rgba[:8])
	if len(again) != 2 || &again[0] != &gray[0] {
		t.Error("expected the buffer to be reused")
	}
}

func TestStrongest(t *testing.T) {
	dets := []pigo.Detection{
		{Row: 10, Col: 10, Scale: 50, Q: 3},
		{Row: 20, Col: 30, Scale: 80, Q: 12},
		{Row: 40, Col: 50, Scale: 90, Q: 8},
	}
	best, ok := Strongest(dets)
	if !ok || best.Row != 20 || best.Col != 30 {
		t.Errorf("Strongest() = %+v, %v", best, ok)
	}

	if _, ok := Strongest(dets[:1]); ok {
		t.Error("weak detection should be discarded")
	}
}

func TestToPointerMirrors(t *testing.T) {
	det := pigo.Detection{Row: 120, Col: 160}
	p := ToPointer(det, 640, 480, 1280, 960)
	if p.X != 960 || p.Y != 240 {
		t.Errorf("ToPointer() = %+v, want {960 240}", p)
	}
}

func TestNewDetectorRejectsEmptyCascade(t *testing.T) {
	if _, err := NewDetector(nil); err == nil {
		t.Error("expected an error for an empty cascade")
	}
}
