package emailjs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSend(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := NewClient()
	c.Endpoint = srv.URL
	c.HTTPClient = srv.Client()

	params := map[string]string{"name": "Ana", "email": "ana@example.com"}
	if err := c.Send(context.Background(), params); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if got.ServiceID != DefaultServiceID || got.TemplateID != DefaultTemplateID || got.UserID != DefaultPublicKey {
		t.Errorf("unexpected account fields %+v", got)
	}
	if got.TemplateParams["name"] != "Ana" || got.TemplateParams["email"] != "ana@example.com" {
		t.Errorf("unexpected template params %v", got.TemplateParams)
	}
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The public key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient()
	c.Endpoint = srv.URL

	err := c.Send(context.Background(), nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
}

func TestSendNotConfigured(t *testing.T) {
	c := &Client{}
	if err := c.Send(context.Background(), nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSendCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := NewClient()
	c.Endpoint = srv.URL
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Send(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
