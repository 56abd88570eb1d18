package main

import (
	"flag"
	"log"

	"github.com/dswdata/landing/particle"
	"github.com/dswdata/landing/terminal"
)

func main() {
	cfg := particle.DefaultConfig()
	flag.IntVar(&cfg.Count, "n", cfg.Count, "number of particles")
	flag.Float64Var(&cfg.ConnectionDistance, "link", cfg.ConnectionDistance, "connection distance in pixels")
	flag.Float64Var(&cfg.PointerRadius, "pointer", cfg.PointerRadius, "pointer influence radius in pixels")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	term := terminal.New(cfg)
	if err := term.Render(); err != nil {
		log.Fatalln(err)
	}
}
