// Package icons provides inline SVG glyphs sized with Tailwind classes.
package icons

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const defaultClass = "h-4 w-4"

// Glyph renders a stroked 24x24 icon. The zero value renders nothing.
type Glyph struct {
	name  string
	paths string
}

// Name identifies the glyph in the data-icon attribute.
func (g Glyph) Name() string {
	return g.name
}

// Class returns the glyph as a component using the given size classes.
func (g Glyph) Class(class string) templ.Component {
	if g.paths == "" {
		return templ.NopComponent
	}
	if class == "" {
		class = defaultClass
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="`+
			g.name+`" class="`+templ.EscapeString(class)+`">`+g.paths+`</svg>`)
		return err
	})
}

// Render satisfies templ.Component with the default size.
func (g Glyph) Render(ctx context.Context, w io.Writer) error {
	return g.Class(defaultClass).Render(ctx, w)
}

var (
	ChevronLeft   = Glyph{"chevron-left", `<path d="m15 18-6-6 6-6"/>`}
	ChevronRight  = Glyph{"chevron-right", `<path d="m9 18 6-6-6-6"/>`}
	Close         = Glyph{"x", `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`}
	Check         = Glyph{"check", `<path d="M20 6 9 17l-5-5"/>`}
	CheckCircle   = Glyph{"check-circle", `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`}
	AlertCircle   = Glyph{"alert-circle", `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`}
	AlertTriangle = Glyph{"alert-triangle", `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3"/><path d="M12 9v4"/><path d="M12 17h.01"/>`}
	Clock         = Glyph{"clock", `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`}
	PauseCircle   = Glyph{"pause-circle", `<circle cx="12" cy="12" r="10"/><line x1="10" x2="10" y1="15" y2="9"/><line x1="14" x2="14" y1="15" y2="9"/>`}
	TrendingUp    = Glyph{"trending-up", `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`}
	TrendingDown  = Glyph{"trending-down", `<polyline points="22 17 13.5 8.5 8.5 13.5 2 7"/><polyline points="16 17 22 17 22 11"/>`}
	Minus         = Glyph{"minus", `<path d="M5 12h14"/>`}
	Info          = Glyph{"info", `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`}
	Zap           = Glyph{"zap", `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`}
	DollarSign    = Glyph{"dollar-sign", `<line x1="12" x2="12" y1="2" y2="22"/><path d="M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"/>`}
	Passport      = Glyph{"passport", `<rect width="16" height="20" x="4" y="2" rx="2"/><circle cx="12" cy="10" r="3"/><path d="M8 17h8"/>`}
	Mountain      = Glyph{"mountain", `<path d="m8 3 4 8 5-5 5 15H2L8 3z"/>`}
	Music         = Glyph{"music", `<path d="M9 18V5l12-2v13"/><circle cx="6" cy="18" r="3"/><circle cx="18" cy="16" r="3"/>`}
	Leaf          = Glyph{"leaf", `<path d="M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z"/><path d="M2 21c0-3 1.85-5.36 5.08-6"/>`}
	Gem           = Glyph{"gem", `<path d="M6 3h12l4 6-10 13L2 9Z"/><path d="M11 3 8 9l4 13 4-13-3-6"/><path d="M2 9h20"/>`}
	Compass       = Glyph{"compass", `<circle cx="12" cy="12" r="10"/><polygon points="16.24 7.76 14.12 14.12 7.76 16.24 9.88 9.88 16.24 7.76"/>`}
	Star          = Glyph{"star", `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"/>`}
	Users         = Glyph{"users", `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`}
	Heart         = Glyph{"heart", `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`}
)

// Spinner renders the animated loading indicator.
func Spinner(class string) templ.Component {
	if class == "" {
		class = defaultClass
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" aria-hidden="true" data-slot="spinner" class="animate-spin `+
			templ.EscapeString(class)+`"><circle class="opacity-25" cx="12" cy="12" r="10" stroke="currentColor" stroke-width="4"></circle><path class="opacity-75" fill="currentColor" d="M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4z"></path></svg>`)
		return err
	})
}
