//go:build js && wasm

package page

import (
	"fmt"
	"log"
	"strconv"
	"syscall/js"
	"time"

	"github.com/dswdata/landing/landing"
)

const injectedCSS = `
@keyframes spin {
    to { transform: rotate(360deg); }
}
.spin {
    animation: spin 1s linear infinite;
}
.form__input--error {
    border-color: #ef4444 !important;
}`

// InjectStyles adds the rules used by the scripted form states.
func InjectStyles() {
	el := document.Call("createElement", "style")
	el.Set("textContent", injectedCSS)
	document.Get("head").Call("appendChild", el)
}

// UpdateYear writes the current year into the footer.
func UpdateYear(cfg landing.Config) {
	if el := query(cfg.Selectors.Year); exists(el) {
		el.Set("textContent", strconv.Itoa(time.Now().Year()))
	}
}

// CardHover exposes the pointer position inside cards as CSS variables
// for the spotlight effect.
func CardHover() {
	for _, card := range queryAll(".service-card, .portfolio-card") {
		card := card
		on(card, "mousemove", func(ev js.Value) {
			rect := card.Call("getBoundingClientRect")
			x := ev.Get("clientX").Float() - rect.Get("left").Float()
			y := ev.Get("clientY").Float() - rect.Get("top").Float()
			style(card).Call("setProperty", "--mouse-x", fmt.Sprintf("%gpx", x))
			style(card).Call("setProperty", "--mouse-y", fmt.Sprintf("%gpx", y))
		})
	}
}

// LazyImages loads images declared with data-src, natively when the
// browser supports it.
func LazyImages() {
	images := queryAll("img[data-src]")
	if len(images) == 0 {
		return
	}
	proto := window.Get("HTMLImageElement").Get("prototype")
	if window.Get("Reflect").Call("has", proto, "loading").Bool() {
		for _, img := range images {
			img.Set("src", dataset(img, "src"))
			img.Set("loading", "lazy")
		}
		return
	}

	ctor := window.Get("IntersectionObserver")
	if !exists(ctor) {
		for _, img := range images {
			img.Set("src", dataset(img, "src"))
		}
		return
	}
	callback := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		observer := args[1]
		for _, entry := range nodes(args[0]) {
			if entry.Get("isIntersecting").Bool() {
				img := entry.Get("target")
				img.Set("src", dataset(img, "src"))
				observer.Call("unobserve", img)
			}
		}
		return nil
	})
	observer := ctor.New(callback)
	for _, img := range images {
		observer.Call("observe", img)
	}
}

// LogLifecycle logs uncaught script errors and the end of page loading.
func LogLifecycle(logger *log.Logger) {
	on(window, "error", func(ev js.Value) {
		err := ev.Get("error")
		if err.IsNull() || err.IsUndefined() {
			err = ev.Get("message")
		}
		logger.Printf("error captured: %s", err.Call("toString").String())
	})
	if document.Get("readyState").String() == "complete" {
		logger.Println("page fully loaded")
		return
	}
	on(window, "load", func(js.Value) {
		logger.Println("page fully loaded")
	})
}
