package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"tripdeck/internal/views/icons"
	"tripdeck/internal/views/style"
	"tripdeck/internal/views/theme"
)

// BadgeVariant selects a semantic color for a Badge.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgeSecondary
	BadgeSuccess
	BadgeWarning
	BadgeDanger
	BadgeInfo
	BadgeOutline
	BadgeGlass
)

func (v BadgeVariant) String() string {
	switch v {
	case BadgeSecondary:
		return "secondary"
	case BadgeSuccess:
		return "success"
	case BadgeWarning:
		return "warning"
	case BadgeDanger:
		return "danger"
	case BadgeInfo:
		return "info"
	case BadgeOutline:
		return "outline"
	case BadgeGlass:
		return "glass"
	default:
		return "default"
	}
}

// BadgeSize is independent from the variant.
type BadgeSize int

const (
	BadgeMD BadgeSize = iota
	BadgeSM
	BadgeLG
)

func (s BadgeSize) String() string {
	switch s {
	case BadgeSM:
		return "sm"
	case BadgeLG:
		return "lg"
	default:
		return "md"
	}
}

// BadgeProps configures a Badge.
type BadgeProps struct {
	Variant BadgeVariant
	Size    BadgeSize
	// Theme colors a default badge. It is ignored by every other variant and
	// left unset means "no theme".
	Theme theme.Key
	Icon  templ.Component
	Label string
	// Removable renders a dismiss control when OnRemove is also set.
	Removable bool
	OnRemove  templ.Attributes
	// OnClick makes the badge itself activatable.
	OnClick templ.Attributes
	Class   string
	Attrs   templ.Attributes
}

const badgeBase = "inline-flex items-center gap-1 rounded-full border font-medium whitespace-nowrap transition-colors"

func badgeSizeClasses(s BadgeSize) string {
	switch s {
	case BadgeSM:
		return "px-2 py-0.5 text-xs"
	case BadgeLG:
		return "px-3 py-1.5 text-sm"
	default:
		return "px-2.5 py-1 text-xs"
	}
}

func badgeVariantClasses(v BadgeVariant) string {
	switch v {
	case BadgeSecondary:
		return "bg-slate-500/20 text-slate-300 border-slate-500/30"
	case BadgeSuccess:
		return "bg-emerald-500/20 text-emerald-300 border-emerald-500/30"
	case BadgeWarning:
		return "bg-amber-500/20 text-amber-300 border-amber-500/30"
	case BadgeDanger:
		return "bg-red-500/20 text-red-300 border-red-500/30"
	case BadgeInfo:
		return "bg-blue-500/20 text-blue-300 border-blue-500/30"
	case BadgeOutline:
		return "bg-transparent text-white/80 border-white/30"
	case BadgeGlass:
		return "bg-white/10 backdrop-blur-md text-white border-white/20"
	default:
		return "bg-white/10 text-white border-white/20"
	}
}

// badgeColorClasses applies the color rule: a default badge with an explicit
// theme takes the theme palette, everything else takes the variant palette.
func badgeColorClasses(v BadgeVariant, k theme.Key) string {
	if v == BadgeDefault && k != "" {
		return theme.PaletteFor(k).Soft
	}
	return badgeVariantClasses(v)
}

// BadgeIconClass sizes a glyph to match a badge of size s.
func BadgeIconClass(s BadgeSize) string {
	switch s {
	case BadgeSM:
		return "h-3 w-3"
	case BadgeLG:
		return "h-4 w-4"
	default:
		return "h-3.5 w-3.5"
	}
}

// BadgeClasses composes the class list a Badge renders with.
func BadgeClasses(props BadgeProps) string {
	_, override := overrideClass(props.Class, props.Attrs)
	return badgeClasses(props, override)
}

func badgeClasses(props BadgeProps, override string) string {
	return style.Compose(style.Layers{
		Base:    badgeBase,
		Size:    badgeSizeClasses(props.Size),
		Variant: badgeColorClasses(props.Variant, props.Theme),
		States: []string{
			style.If(props.OnClick != nil, "cursor-pointer hover:brightness-110"),
		},
		Override: override,
	})
}

// Badge renders a label chip.
func Badge(props BadgeProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, children, _ := childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)

		passthrough := mergeAttrs(props.OnClick, attrs)

		h := newHTMLWriter(ctx, w)
		h.raw("<span")
		h.reserve(passthrough)
		h.attr("class", badgeClasses(props, override))
		h.attr("data-variant", props.Variant.String())
		h.attrIf(props.Variant == BadgeDefault && props.Theme != "", "data-theme", theme.Validate(string(props.Theme)).String())
		if props.OnClick != nil {
			h.attr("role", "button")
			h.attr("tabindex", "0")
		}
		h.attrs(passthrough)
		h.raw(">")
		if props.Icon != nil {
			h.raw(`<span class="inline-flex shrink-0" data-slot="icon">`)
			h.component(props.Icon)
			h.raw("</span>")
		}
		if props.Label != "" {
			h.raw(`<span data-slot="label">`)
			h.text(props.Label)
			h.raw("</span>")
		}
		h.component(children)
		if props.Removable && props.OnRemove != nil {
			writeRemoveControl(h, props)
		}
		h.raw("</span>")
		return h.err
	})
}

// The dismiss control stops propagation so a click never reaches a handler
// bound to the badge.
func writeRemoveControl(h *htmlWriter, props BadgeProps) {
	label := "Remove"
	if props.Label != "" {
		label = "Remove " + props.Label
	}
	onRemove, onclick := splitAttr(props.OnRemove, "onclick")
	h.raw(`<button type="button" data-slot="remove" class="-mr-1 ml-0.5 inline-flex items-center justify-center rounded-full p-0.5 opacity-70 transition hover:bg-white/20 hover:opacity-100 focus:outline-none focus:ring-1 focus:ring-white/40"`)
	guard := "event.stopPropagation()"
	if onclick != "" {
		guard += "; " + onclick
	}
	h.attr("onclick", guard)
	h.reserve(onRemove)
	h.attr("aria-label", label)
	h.attrs(onRemove)
	h.raw(">")
	h.component(icons.Close.Class(BadgeIconClass(props.Size)))
	h.raw("</button>")
}

