package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripdeck/internal/views/theme"
)

func preferenceRequest(value string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/gallery/preferences/theme", strings.NewReader("theme="+value))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if isHTMX(req) {
		t.Fatal("expected false when no HTMX headers present")
	}
	req.Header.Set("HX-Request", "true")
	if !isHTMX(req) {
		t.Fatal("expected true when HX-Request header present")
	}
}

func TestUpdatePreferencesStoresTheme(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	rec := b.do(UpdatePreferences, preferenceRequest("Nature"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON response, got %q", ct)
	}
	var resp preferencesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Theme != "nature" || resp.Label != "Nature" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if rec.Header().Get("HX-Refresh") != "" {
		t.Fatal("expected no refresh header outside HTMX")
	}

	if !strings.Contains(b.gallery(), `data-theme="nature"`) {
		t.Fatal("expected gallery to use the stored theme")
	}
}

func TestUpdatePreferencesRefreshesHTMXClients(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	req := preferenceRequest("vibe")
	req.Header.Set("HX-Request", "true")
	rec := b.do(UpdatePreferences, req)
	if rec.Header().Get("HX-Refresh") != "true" {
		t.Fatal("expected HX-Refresh header")
	}
}

func TestUpdatePreferencesEmptyRestoresDefault(t *testing.T) {
	b := newBrowser(t, withGallery(t))
	ConfigureTheme(theme.Indulge)

	b.do(UpdatePreferences, preferenceRequest("vibe"))
	rec := b.do(UpdatePreferences, preferenceRequest(""))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"theme":"indulge"`) {
		t.Fatalf("expected configured default, got %s", rec.Body.String())
	}
	if !strings.Contains(b.gallery(), `data-theme="indulge"`) {
		t.Fatal("expected gallery to use the configured default")
	}
}

func TestUpdatePreferencesRejectsInvalidInput(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	if rec := b.do(UpdatePreferences, preferenceRequest("space")); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown theme, got %d", rec.Code)
	}
	get := httptest.NewRequest(http.MethodGet, "/gallery/preferences/theme", nil)
	if rec := b.do(UpdatePreferences, get); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET, got %d", rec.Code)
	}
	if !strings.Contains(b.gallery(), `data-theme="adventure"`) {
		t.Fatal("expected rejected updates to leave the default theme")
	}
}

func TestConfigureThemeFallsBack(t *testing.T) {
	t.Cleanup(func() { ConfigureTheme(theme.DefaultKey) })
	ConfigureTheme("space")
	if defaultTheme != theme.DefaultKey {
		t.Fatalf("expected default theme, got %s", defaultTheme)
	}
}
