package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"

	"tripdeck/internal/db/mock"
	"tripdeck/internal/views/pages"
	"tripdeck/internal/views/theme"
)

// Mock catalogue ids follow seed order.
const (
	queenstownID = "1"
	banffID      = "3"
)

func withGallery(t *testing.T) *scs.SessionManager {
	t.Helper()
	catalogue, err := mock.New(context.Background())
	if err != nil {
		t.Fatalf("mock database: %v", err)
	}
	sm := scs.New()
	Configure(sm, catalogue)
	t.Cleanup(func() {
		Configure(nil, nil)
		ConfigureTheme(theme.DefaultKey)
	})
	return sm
}

// browser replays the session cookie across requests.
type browser struct {
	t      *testing.T
	sm     *scs.SessionManager
	cookie *http.Cookie
}

func newBrowser(t *testing.T, sm *scs.SessionManager) *browser {
	return &browser{t: t, sm: sm}
}

func (b *browser) do(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	rec := httptest.NewRecorder()
	b.sm.LoadAndSave(handler).ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == b.sm.Cookie.Name {
			b.cookie = cookie
		}
	}
	return rec
}

func (b *browser) gallery() string {
	b.t.Helper()
	rec := b.do(Gallery, httptest.NewRequest(http.MethodGet, "/gallery", nil))
	if rec.Code != http.StatusOK {
		b.t.Fatalf("expected gallery status 200, got %d", rec.Code)
	}
	return rec.Body.String()
}

func withPath(req *http.Request, values ...string) *http.Request {
	for i := 0; i+1 < len(values); i += 2 {
		req.SetPathValue(values[i], values[i+1])
	}
	return req
}

func TestGalleryRendersFullPage(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	rec := b.do(Gallery, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Fatalf("expected full document, got %.60s", body)
	}
	for _, slug := range []string{"queenstown", "ibiza", "banff", "maldives", "kyoto"} {
		if !strings.Contains(body, `data-destination="`+slug+`"`) {
			t.Fatalf("expected %s card in gallery", slug)
		}
	}
}

func TestGalleryHTMXRendersPartial(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
	req.Header.Set("HX-Request", "true")
	body := b.do(Gallery, req).Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatal("expected partial without document shell")
	}
	if !strings.HasPrefix(body, "<div") || !strings.Contains(body, `id="gallery"`) {
		t.Fatalf("expected gallery container, got %.80s", body)
	}
}

func TestGalleryRoutingErrors(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	if rec := b.do(Gallery, httptest.NewRequest(http.MethodGet, "/missing", nil)); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", rec.Code)
	}
	if rec := b.do(Gallery, httptest.NewRequest(http.MethodPost, "/gallery", nil)); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST, got %d", rec.Code)
	}
}

func TestGalleryAppliesFilters(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	body := b.do(Gallery, httptest.NewRequest(http.MethodGet, "/gallery?theme=nature", nil)).Body.String()
	if !strings.Contains(body, `data-destination="banff"`) {
		t.Fatal("expected banff in nature filter")
	}
	if strings.Contains(body, `data-destination="queenstown"`) {
		t.Fatal("expected queenstown to be filtered out")
	}
}

func TestGalleryWithoutDatabaseStillRenders(t *testing.T) {
	sm := scs.New()
	Configure(sm, nil)
	t.Cleanup(func() { Configure(nil, nil) })

	rec := newBrowser(t, sm).do(Gallery, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `data-count="0"`) {
		t.Fatal("expected empty destination grid")
	}
}

func TestDestinationMediaPersistsIndex(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	req := withPath(httptest.NewRequest(http.MethodGet, "/gallery/destinations/1/media?index=2", nil), "id", queenstownID)
	rec := b.do(DestinationMedia, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<div") || !strings.Contains(body, `id="media-1"`) {
		t.Fatalf("expected carousel fragment, got %.80s", body)
	}
	if !strings.Contains(body, "/assets/img/queenstown-3.jpg") {
		t.Fatalf("expected third image: %s", body)
	}

	if !strings.Contains(b.gallery(), "/assets/img/queenstown-3.jpg") {
		t.Fatal("expected the gallery to keep the carousel position")
	}
}

func TestDestinationMediaClampsIndex(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	req := withPath(httptest.NewRequest(http.MethodGet, "/gallery/destinations/3/media?index=12", nil), "id", banffID)
	body := b.do(DestinationMedia, req).Body.String()
	if !strings.Contains(body, "/assets/img/banff-2.jpg") {
		t.Fatalf("expected last banff image: %s", body)
	}
}

func TestDestinationMediaErrors(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	cases := []struct {
		name   string
		method string
		id     string
		index  string
		want   int
	}{
		{"unknown destination", http.MethodGet, "99", "0", http.StatusNotFound},
		{"invalid id", http.MethodGet, "abc", "0", http.StatusNotFound},
		{"invalid index", http.MethodGet, queenstownID, "next", http.StatusBadRequest},
		{"wrong method", http.MethodPost, queenstownID, "0", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		req := withPath(httptest.NewRequest(tc.method, "/gallery/destinations/x/media?index="+tc.index, nil), "id", tc.id)
		if rec := b.do(DestinationMedia, req); rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}
}

func TestToggleFlipsState(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	toggle := func() string {
		req := withPath(httptest.NewRequest(http.MethodPost, "/gallery/toggles/family-friendly", nil), "key", "family-friendly")
		rec := b.do(Toggle, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		return rec.Body.String()
	}

	if body := toggle(); !strings.Contains(body, `aria-pressed="true"`) || !strings.Contains(body, `id="toggle-family-friendly"`) {
		t.Fatalf("expected pressed toggle, got %s", body)
	}
	if !strings.Contains(b.gallery(), `hx-post="/gallery/toggles/family-friendly"`) {
		t.Fatal("expected toggle in gallery")
	}
	if body := toggle(); !strings.Contains(body, `aria-pressed="false"`) {
		t.Fatalf("expected released toggle, got %s", body)
	}
}

func TestToggleShortlistAndUnknownKeys(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	req := withPath(httptest.NewRequest(http.MethodPost, "/gallery/toggles/shortlist-kyoto", nil), "key", "shortlist-kyoto")
	if rec := b.do(Toggle, req); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `aria-pressed="true"`) {
		t.Fatalf("expected shortlist toggle to be pressed, got %d", rec.Code)
	}

	req = withPath(httptest.NewRequest(http.MethodPost, "/gallery/toggles/unknown", nil), "key", "unknown")
	if rec := b.do(Toggle, req); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown toggle, got %d", rec.Code)
	}

	req = withPath(httptest.NewRequest(http.MethodGet, "/gallery/toggles/shortlist-kyoto", nil), "key", "shortlist-kyoto")
	if rec := b.do(Toggle, req); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET, got %d", rec.Code)
	}
}

func TestRemoveTagHidesTagForSession(t *testing.T) {
	b := newBrowser(t, withGallery(t))
	bungee := pages.TagURL(1, "bungee")

	if !strings.Contains(b.gallery(), bungee) {
		t.Fatal("expected bungee tag before removal")
	}

	req := withPath(httptest.NewRequest(http.MethodDelete, bungee, nil), "id", queenstownID, "slug", "bungee")
	rec := b.do(RemoveTag, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}

	body := b.gallery()
	if strings.Contains(body, bungee) {
		t.Fatal("expected bungee tag to stay removed")
	}
	if !strings.Contains(body, pages.TagURL(1, "hiking")) {
		t.Fatal("expected other tags to remain")
	}
}

func TestRemoveTagErrors(t *testing.T) {
	b := newBrowser(t, withGallery(t))

	req := withPath(httptest.NewRequest(http.MethodDelete, "/gallery/destinations/1/tags/spa", nil), "id", queenstownID, "slug", "spa")
	if rec := b.do(RemoveTag, req); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a tag of another destination, got %d", rec.Code)
	}
	req = withPath(httptest.NewRequest(http.MethodDelete, "/gallery/destinations/42/tags/spa", nil), "id", "42", "slug", "spa")
	if rec := b.do(RemoveTag, req); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown destination, got %d", rec.Code)
	}
	req = withPath(httptest.NewRequest(http.MethodPost, "/gallery/destinations/1/tags/bungee", nil), "id", queenstownID, "slug", "bungee")
	if rec := b.do(RemoveTag, req); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST, got %d", rec.Code)
	}
}
