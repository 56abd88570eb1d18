package websocket

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	params "github.com/dswdata/landing/http"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<canvas id=\"particles-canvas\"></canvas>"), 0644); err != nil {
		t.Fatal(err)
	}
	p := params.DefaultParams()
	p.Root = root

	s, err := NewServer(p, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, root
}

func TestServesStaticFiles(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/index.html")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "particles-canvas") {
		t.Errorf("unexpected response %d: %s", resp.StatusCode, body)
	}
}

func TestBroadcastReload(t *testing.T) {
	s, ts, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.Clients() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("connection never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if n := s.Broadcast(params.ReloadMessage); n != 1 {
		t.Fatalf("broadcast reached %d pages", n)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != params.ReloadMessage {
		t.Errorf("got %q, want %q", msg, params.ReloadMessage)
	}

	conn.Close()
	for s.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("closed connection never dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func newTestWatcher(t *testing.T, root string) (chan struct{}, context.CancelFunc, chan struct{}) {
	t.Helper()
	w, err := NewWatcher(root, 20*time.Millisecond, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 16)
	done := make(chan struct{})
	go func() {
		w.Watch(ctx, func() { changes <- struct{}{} })
		close(done)
	}()
	t.Cleanup(cancel)
	return changes, cancel, done
}

func waitChange(t *testing.T, changes <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s not reported", what)
	}
}

func TestWatcherDetectsChanges(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.wasm")
	if err := os.WriteFile(file, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}
	changes, _, _ := newTestWatcher(t, root)

	if err := os.WriteFile(file, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}
	waitChange(t, changes, "modification")

	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}
	waitChange(t, changes, "removal")
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	changes, _, _ := newTestWatcher(t, root)

	sub := filepath.Join(root, "css")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	waitChange(t, changes, "new directory")

	if err := os.WriteFile(filepath.Join(sub, "style.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}
	waitChange(t, changes, "file in new directory")
}

func TestWatcherIgnoresHiddenFiles(t *testing.T) {
	root := t.TempDir()
	changes, _, _ := newTestWatcher(t, root)

	if err := os.WriteFile(filepath.Join(root, ".swp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
		t.Error("hidden file change reported")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchStopsWithContext(t *testing.T) {
	_, cancel, done := newTestWatcher(t, t.TempDir())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
