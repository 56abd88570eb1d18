//go:build js && wasm

// Package page wires the landing page behaviour to the DOM.
package page

import (
	"syscall/js"
	"time"
)

var (
	window   = js.Global()
	document = window.Get("document")
)

func query(selector string) js.Value {
	return document.Call("querySelector", selector)
}

func queryAll(selector string) []js.Value {
	return nodes(document.Call("querySelectorAll", selector))
}

func nodes(list js.Value) []js.Value {
	n := list.Get("length").Int()
	out := make([]js.Value, n)
	for i := 0; i < n; i++ {
		out[i] = list.Index(i)
	}
	return out
}

func exists(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

// on registers an event listener. Listeners live as long as the page.
func on(target js.Value, event string, fn func(ev js.Value), options ...interface{}) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	args := []interface{}{event, f}
	args = append(args, options...)
	target.Call("addEventListener", args...)
}

// after runs fn once, d from now, on the browser event loop.
func after(d time.Duration, fn func()) {
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f.Release()
		fn()
		return nil
	})
	window.Call("setTimeout", f, d.Milliseconds())
}

func setClass(el js.Value, class string, on bool) {
	if on {
		el.Get("classList").Call("add", class)
	} else {
		el.Get("classList").Call("remove", class)
	}
}

func dataset(el js.Value, key string) string {
	v := el.Get("dataset").Get(key)
	if !exists(v) {
		return ""
	}
	return v.String()
}

func style(el js.Value) js.Value {
	return el.Get("style")
}

// Ready blocks until the document has been parsed.
func Ready() {
	if document.Get("readyState").String() != "loading" {
		return
	}
	done := make(chan struct{})
	on(document, "DOMContentLoaded", func(js.Value) {
		close(done)
	})
	<-done
}
