package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"status":"online","message":"RAG agent ready"}`)
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Health(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != "RAG agent ready" {
		t.Errorf("Health() = %q", got)
	}
}

func TestHealthFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"online"}`)
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Health(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != "online" {
		t.Errorf("Health() = %q", got)
	}
}

func TestHealthUnreachable(t *testing.T) {
	if _, err := NewClient("http://127.0.0.1:1").Health(context.Background()); err == nil {
		t.Error("Health() against closed port returned nil error")
	}
}

func TestChatStreamRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL).ChatStream(context.Background(), ChatRequest{Message: "hi"})
	if err == nil {
		body.Close()
		t.Fatal("ChatStream on 503 returned nil error")
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"message":"ok"}`)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL + "/").Reset(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/reset" {
		t.Errorf("request path = %q, want /reset", gotPath)
	}
}
