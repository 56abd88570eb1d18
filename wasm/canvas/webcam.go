//go:build js && wasm

package canvas

import (
	"errors"
	"syscall/js"
	"time"

	"github.com/dswdata/landing/particle"
	"github.com/dswdata/landing/wasm/detector"
)

const (
	frameWidth  = 320
	frameHeight = 240
)

// Webcam grabs frames from the user camera into an offscreen canvas.
type Webcam struct {
	canvas *Canvas
	video  js.Value
	ctx    js.Value
	pixels []uint8
}

// StartWebcam asks for camera access and starts the video stream.
func (c *Canvas) StartWebcam() (*Webcam, error) {
	devices := c.window.Get("navigator").Get("mediaDevices")
	if devices.IsUndefined() {
		return nil, errors.New("media devices are not available")
	}

	video := c.doc.Call("createElement", "video")
	video.Set("muted", true)
	video.Call("setAttribute", "playsinline", "")

	offscreen := c.doc.Call("createElement", "canvas")
	offscreen.Set("width", frameWidth)
	offscreen.Set("height", frameHeight)

	streams := make(chan js.Value, 1)
	errs := make(chan error, 1)
	success := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		streams <- args[0]
		return nil
	})
	failure := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		errs <- errors.New(args[0].Call("toString").String())
		return nil
	})
	defer success.Release()
	defer failure.Release()

	constraints := map[string]interface{}{
		"audio": false,
		"video": map[string]interface{}{"width": frameWidth, "height": frameHeight},
	}
	devices.Call("getUserMedia", constraints).Call("then", success).Call("catch", failure)

	select {
	case stream := <-streams:
		video.Set("srcObject", stream)
		video.Call("play")
	case err := <-errs:
		return nil, err
	}

	return &Webcam{
		canvas: c,
		video:  video,
		ctx:    offscreen.Call("getContext", "2d"),
		pixels: make([]uint8, frameWidth*frameHeight*4),
	}, nil
}

// Render feeds the face position of every sampled frame to the system as
// its pointer, until stop is closed.
func (w *Webcam) Render(d *detector.Detector, sys *particle.System, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / 15)
	defer ticker.Stop()

	var tracker detector.Tracker

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		w.ctx.Call("drawImage", w.video, 0, 0, frameWidth, frameHeight)
		data := w.ctx.Call("getImageData", 0, 0, frameWidth, frameHeight).Get("data")
		js.CopyBytesToGo(w.pixels, data)

		face, ok := d.DetectFace(w.pixels, frameWidth, frameHeight)
		if !ok {
			tracker.Update(sys, particle.Point{}, false)
			continue
		}
		vw, vh := w.canvas.Viewport()
		tracker.Update(sys, detector.ToPointer(face, frameWidth, frameHeight, vw, vh), true)
	}
}
