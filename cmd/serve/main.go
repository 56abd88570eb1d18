package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	params "github.com/dswdata/landing/http"
	"github.com/dswdata/landing/websocket"
)

func main() {
	p := params.DefaultParams()
	p.Bind(flag.CommandLine)
	debounce := flag.Duration("debounce", 200*time.Millisecond, "delay coalescing file changes before a reload")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := websocket.NewServer(p, log.Default())
	if err != nil {
		log.Fatalln(err)
	}
	if err := s.ListenAndServe(ctx, *debounce); err != nil {
		log.Fatalln(err)
	}
}
