// Package websocket serves the landing page during development and tells
// connected pages to reload when a file under the root changes.
package websocket

import (
	"context"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	params "github.com/dswdata/landing/http"
)

const writeWait = 5 * time.Second

// A server application calls the Upgrade method from an HTTP request handler to initiate a connection
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server serves static files and live reload notifications.
type Server struct {
	params params.Params
	logger *log.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewServer resolves the served root and prepares the server.
func NewServer(p params.Params, logger *log.Logger) (*Server, error) {
	root, err := filepath.Abs(p.Root)
	if err != nil {
		return nil, err
	}
	p.Root = root
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		params: p,
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}, nil
}

// Handler returns the request logging handler serving files and the
// reload endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(s.params.Prefix, http.StripPrefix(s.params.Prefix, http.FileServer(http.Dir(s.params.Root))))
	mux.HandleFunc(s.params.ReloadPath, s.wsHandler)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		if filepath.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		mux.ServeHTTP(w, r)
	})
}

// ListenAndServe serves until ctx is done, reloading pages when files under
// the root change. Changes closer than debounce are coalesced.
func (s *Server) ListenAndServe(ctx context.Context, debounce time.Duration) error {
	srv := &http.Server{
		Addr:    s.params.Address,
		Handler: s.Handler(),
	}

	watcher, err := NewWatcher(s.params.Root, debounce, s.logger)
	if err != nil {
		return err
	}
	go watcher.Watch(ctx, func() {
		n := s.Broadcast(params.ReloadMessage)
		s.logger.Printf("change detected, reloading %d page(s)", n)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		s.closeAll()
	}()

	s.logger.Printf("serving %s as %s on %s", s.params.Root, s.params.Prefix, s.params.Address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Broadcast sends msg to every connected page and returns how many
// received it. Pages failing to receive are dropped.
func (s *Server) Broadcast(msg string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	sent := 0
	for conn := range s.conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			s.logger.Println(err)
			conn.Close()
			delete(s.conns, conn)
			continue
		}
		sent++
	}
	return sent
}

// Clients returns the number of connected pages.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// wsHandler defines the websocket connection endpoint
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	// Upgrade the http connection to a WebSocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		var hsErr websocket.HandshakeError
		if !errors.As(err, &hsErr) {
			s.logger.Println(err)
		}
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	go s.readSocket(conn)
}

// readSocket drains the connection until the page goes away.
func (s *Server) readSocket(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("error: %v", err)
			}
			return
		}
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(writeWait))
		conn.Close()
		delete(s.conns, conn)
	}
}
