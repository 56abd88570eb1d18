package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dswdata/landing/desktop"
	"github.com/dswdata/landing/emailjs"
	"github.com/dswdata/landing/particle"
)

func main() {
	cfg := particle.DefaultConfig()
	mailer := emailjs.NewClient()

	width := flag.Int("w", 1280, "window width")
	height := flag.Int("h", 720, "window height")
	flag.IntVar(&cfg.Count, "n", cfg.Count, "number of particles")
	flag.StringVar(&mailer.PublicKey, "emailjs-key", mailer.PublicKey, "EmailJS public key")
	flag.StringVar(&mailer.ServiceID, "emailjs-service", mailer.ServiceID, "EmailJS service id")
	flag.StringVar(&mailer.TemplateID, "emailjs-template", mailer.TemplateID, "EmailJS template id")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("DSW Data - particles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := desktop.NewGame(cfg, mailer, log.Default())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalln(err)
	}
}
