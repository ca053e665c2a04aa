package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"tripdeck/internal/views/style"
)

// CardVariant selects the surface of a Card.
type CardVariant int

const (
	CardGlass CardVariant = iota
	CardSolid
	CardOutline
	CardMinimal
)

func (v CardVariant) String() string {
	switch v {
	case CardSolid:
		return "solid"
	case CardOutline:
		return "outline"
	case CardMinimal:
		return "minimal"
	default:
		return "glass"
	}
}

// CardProps configures the Card container.
type CardProps struct {
	Variant CardVariant
	// Hover lifts the card on pointer hover.
	Hover bool
	// Interactive adds a pressable scale transform.
	Interactive bool
	OnClick     templ.Attributes
	Class       string
	Attrs       templ.Attributes
}

const cardBase = "relative overflow-hidden rounded-2xl"

func cardVariantClasses(v CardVariant) string {
	switch v {
	case CardSolid:
		return "bg-slate-800 border border-slate-700 shadow-lg"
	case CardOutline:
		return "bg-transparent border border-white/20"
	case CardMinimal:
		return "bg-transparent"
	default:
		return "bg-white/10 backdrop-blur-md border border-white/20 shadow-xl"
	}
}

// CardClasses composes the class list a Card renders with.
func CardClasses(props CardProps) string {
	_, override := overrideClass(props.Class, props.Attrs)
	return cardClasses(props, override)
}

func cardClasses(props CardProps, override string) string {
	return style.Compose(style.Layers{
		Base:    cardBase,
		Variant: cardVariantClasses(props.Variant),
		States: []string{
			style.If(props.Hover, "transition-all duration-300 hover:-translate-y-0.5 hover:bg-white/15 hover:shadow-2xl"),
			style.If(props.Interactive, "cursor-pointer transform transition-transform hover:scale-[1.02] active:scale-[0.98]"),
		},
		Override: override,
	})
}

// Card is a container for arbitrary children. It assumes nothing about the
// layout of its content.
func Card(props CardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, children, _ := childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)

		passthrough := mergeAttrs(props.OnClick, attrs)

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.reserve(passthrough)
		h.attr("class", cardClasses(props, override))
		h.attr("data-slot", "card")
		h.attr("data-variant", props.Variant.String())
		if props.Interactive && props.OnClick != nil {
			h.attr("role", "button")
			h.attr("tabindex", "0")
		}
		h.attrs(passthrough)
		h.raw(">")
		h.component(children)
		h.raw("</div>")
		return h.err
	})
}

// CardHeaderProps configures a CardHeader. Title is required.
type CardHeaderProps struct {
	Title    string
	Subtitle string
	// Flag is a leading glyph, usually a country flag emoji.
	Flag string
	// Badge is rendered on the trailing edge.
	Badge templ.Component
	Class string
	Attrs templ.Attributes
}

// CardHeader lays out title, subtitle, flag and badge. Children are appended
// below the title row.
func CardHeader(props CardHeaderProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, children, _ := childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.reserve(attrs)
		h.attr("class", style.Join("space-y-2 px-4 pt-4", override))
		h.attr("data-slot", "card-header")
		h.attrs(attrs)
		h.raw(`><div class="flex items-start justify-between gap-3"><div class="flex min-w-0 items-start gap-3">`)
		if props.Flag != "" {
			h.raw(`<span class="text-2xl leading-none" data-slot="flag" aria-hidden="true">`)
			h.text(props.Flag)
			h.raw("</span>")
		}
		h.raw(`<div class="min-w-0"><h3 class="truncate text-lg font-semibold text-white" data-slot="title">`)
		h.text(props.Title)
		h.raw("</h3>")
		if props.Subtitle != "" {
			h.raw(`<p class="truncate text-sm text-white/60" data-slot="subtitle">`)
			h.text(props.Subtitle)
			h.raw("</p>")
		}
		h.raw("</div></div>")
		if props.Badge != nil {
			h.raw(`<div class="shrink-0" data-slot="badge">`)
			h.component(props.Badge)
			h.raw("</div>")
		}
		h.raw("</div>")
		h.component(children)
		h.raw("</div>")
		return h.err
	})
}

// CardContentProps configures a CardContent.
type CardContentProps struct {
	Class string
	Attrs templ.Attributes
}

// CardContent pads its children.
func CardContent(props CardContentProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, children, _ := childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.reserve(attrs)
		h.attr("class", style.Join("space-y-3 p-4", override))
		h.attr("data-slot", "card-content")
		h.attrs(attrs)
		h.raw(">")
		h.component(children)
		h.raw("</div>")
		return h.err
	})
}
