//go:build js && wasm

package detector

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"syscall/js"
	"time"
)

// ParseCascade loads the cascade file from the page origin through the
// `location.href` of the current document and returns its bytes.
func ParseCascade(path string) ([]byte, error) {
	href := js.Global().Get("location").Get("href")
	u, err := url.Parse(href.String())
	if err != nil {
		return nil, err
	}
	u.Path = path
	u.RawQuery = fmt.Sprint(time.Now().UnixNano())

	log.Println("loading cascade file: " + u.String())
	resp, err := http.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("loading cascade file: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
