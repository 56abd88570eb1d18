//go:build js && wasm

package canvas

import (
	"log"
	"syscall/js"

	params "github.com/dswdata/landing/http"
)

// LiveReload connects to the development server and reloads the page when
// it announces a change. It does nothing outside of localhost.
func LiveReload() {
	location := js.Global().Get("location")
	switch location.Get("hostname").String() {
	case "localhost", "127.0.0.1":
	default:
		return
	}

	url := "ws://" + location.Get("host").String() + params.DefaultParams().ReloadPath
	socket := js.Global().Get("WebSocket").New(url)

	var onMessage, onClose js.Func
	onMessage = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if args[0].Get("data").String() == params.ReloadMessage {
			location.Call("reload")
		}
		return nil
	})
	onClose = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		log.Println("live reload: connection closed")
		onMessage.Release()
		onClose.Release()
		return nil
	})
	socket.Set("onmessage", onMessage)
	socket.Set("onclose", onClose)
}
