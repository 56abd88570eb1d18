// Package http holds the parameters shared by the development server and
// the browser bundle connecting back to it.
package http

import "flag"

// ReloadMessage is pushed to every page when the served files change.
const ReloadMessage = "reload"

// Params configures the development server.
type Params struct {
	Address    string
	Prefix     string
	Root       string
	ReloadPath string
}

// DefaultParams returns the parameters used when no flag is given.
func DefaultParams() Params {
	return Params{
		Address:    "localhost:5000",
		Prefix:     "/",
		Root:       ".",
		ReloadPath: "/ws",
	}
}

// Bind registers the parameters on a flag set.
func (p *Params) Bind(fs *flag.FlagSet) {
	fs.StringVar(&p.Address, "a", p.Address, "address to serve(host:port)")
	fs.StringVar(&p.Prefix, "p", p.Prefix, "prefix path under")
	fs.StringVar(&p.Root, "r", p.Root, "root path to serve")
	fs.StringVar(&p.ReloadPath, "ws", p.ReloadPath, "live reload websocket path")
}
