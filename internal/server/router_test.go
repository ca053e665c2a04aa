package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tripdeck/internal/db/mock"
	"tripdeck/internal/handlers"
)

func TestNewRouterRegistersHealthRoute(t *testing.T) {
	router := newRouter(t.TempDir())
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json content type, got %q", ct)
	}
}

func TestNewRouterServesAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o600); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	rr := httptest.NewRecorder()
	newRouter(dir).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/app.css", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "body{}" {
		t.Fatalf("expected asset to be served, got %d %q", rr.Code, rr.Body.String())
	}
}

func TestNewRouterResolvesPathValues(t *testing.T) {
	db, err := mock.New(context.Background())
	if err != nil {
		t.Fatalf("mock database: %v", err)
	}
	handlers.Configure(nil, db)
	t.Cleanup(func() { handlers.Configure(nil, nil) })
	router := newRouter(t.TempDir())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gallery/destinations/1/media?index=1", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "queenstown-2.jpg") {
		t.Fatalf("expected carousel fragment, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/gallery/destinations/1/tags/hiking", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected tag removal to succeed, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", rr.Code)
	}
}
