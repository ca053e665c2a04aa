package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"tripdeck/internal/views/style"
	"tripdeck/internal/views/theme"
)

// Layout renders the document shell: head assets, a theme strip, the nav and
// the main content region the gallery swaps into.
func Layout(title string, def ThemeDefinition, nav, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`+
			templ.EscapeString(title)+
			`</title><link rel="stylesheet" href="/assets/app.css"><script src="/assets/htmx.min.js" defer></script></head><body class="`+
			templ.EscapeString(bodyClass(def))+`" data-theme="`+templ.EscapeString(def.Key.String())+`"><div class="`+
			templ.EscapeString(stripClass(def))+`" aria-hidden="true"></div><header class="border-b border-white/10 px-6 py-4">`); err != nil {
			return err
		}
		if nav != nil {
			if err := nav.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</header><main id="gallery-root" class="`+mainClass+`">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

const mainClass = "mx-auto max-w-7xl space-y-12 px-6 py-10"

func bodyClass(def ThemeDefinition) string {
	return style.Join("min-h-screen bg-slate-950 text-white antialiased", "theme-"+def.Key.String())
}

func stripClass(def ThemeDefinition) string {
	return style.Join("h-1 w-full bg-gradient-to-r", theme.PaletteFor(def.Key).Gradient)
}
