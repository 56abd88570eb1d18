//go:build js && wasm

package main

import (
	"log"
	"net/url"
	"syscall/js"

	"github.com/dswdata/landing/emailjs"
	"github.com/dswdata/landing/landing"
	"github.com/dswdata/landing/particle"
	"github.com/dswdata/landing/wasm/canvas"
	"github.com/dswdata/landing/wasm/detector"
	"github.com/dswdata/landing/wasm/page"
)

func main() {
	page.Ready()
	log.Println("DSW Data - initializing")
	page.LogLifecycle(log.Default())

	cfg := particle.DefaultConfig()
	c := canvas.NewCanvas()
	sys := particle.NewSystem(cfg, c, canvas.NewFrameScheduler())
	sys.Initialize(cfg.Selector)
	sys.Start()
	if sys.State() != particle.Uninitialized {
		canvas.Bind(sys)
	}

	lc := landing.DefaultConfig()
	page.InjectStyles()
	nav := page.NewNavigation(lc)
	page.NewScrollEffects(lc, nav)
	page.NewPortfolioFilter(lc)
	page.Reveal(lc)
	page.NewContactForm(lc, emailjs.NewClient(), log.Default())
	page.UpdateYear(lc)
	page.SmoothAnchors(lc)
	page.CardHover()
	page.LazyImages()

	canvas.LiveReload()
	if faceTracking() && sys.State() != particle.Uninitialized {
		go trackFace(c, sys)
	}

	log.Println("DSW Data - ready")
	select {}
}

// cascadePath is where the pigo facefinder cascade is served, see web/cascade.
const cascadePath = "/cascade/facefinder"

func faceTracking() bool {
	u, err := url.Parse(js.Global().Get("location").Get("href").String())
	if err != nil {
		return false
	}
	return u.Query().Get("face") == "1"
}

// trackFace drives the particle pointer with the viewer's face.
func trackFace(c *canvas.Canvas, sys *particle.System) {
	cascade, err := detector.ParseCascade(cascadePath)
	if err != nil {
		log.Printf("face tracking disabled, %s must be served from the page root: %v", cascadePath, err)
		return
	}
	d, err := detector.NewDetector(cascade)
	if err != nil {
		log.Println(err)
		return
	}
	webcam, err := c.StartWebcam()
	if err != nil {
		c.Alert("Webcam not detected!")
		return
	}
	webcam.Render(d, sys, make(chan struct{}))
}
