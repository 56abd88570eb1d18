//go:build js && wasm

package page

import (
	"syscall/js"

	"github.com/dswdata/landing/landing"
)

// Reveal marks animated elements visible the first time they scroll into
// view. Browsers without IntersectionObserver are left alone.
func Reveal(cfg landing.Config) {
	elements := queryAll(cfg.Selectors.Animated)
	ctor := window.Get("IntersectionObserver")
	if len(elements) == 0 || !exists(ctor) {
		return
	}

	callback := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		observer := args[1]
		for _, entry := range nodes(args[0]) {
			if entry.Get("isIntersecting").Bool() {
				target := entry.Get("target")
				setClass(target, "visible", true)
				observer.Call("unobserve", target)
			}
		}
		return nil
	})
	observer := ctor.New(callback, map[string]interface{}{
		"threshold":  cfg.RevealThreshold,
		"rootMargin": cfg.RevealRootMargin,
	})
	for _, el := range elements {
		observer.Call("observe", el)
	}
}
