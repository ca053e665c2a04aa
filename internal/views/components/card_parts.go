package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"tripdeck/internal/views/icons"
	"tripdeck/internal/views/style"
	"tripdeck/internal/views/theme"
)

// Stat is one cell of a CardStats grid.
type Stat struct {
	Icon  templ.Component
	Value string
	Label string
	// Color is a text color class for the value, e.g. text-emerald-400.
	Color string
}

// CardStatsProps configures a CardStats grid. Columns is 2, 3 or 4; any
// other value renders two columns.
type CardStatsProps struct {
	Stats   []Stat
	Columns int
	Class   string
	Attrs   templ.Attributes
}

func statColumns(n int) (int, string) {
	switch n {
	case 3:
		return 3, "grid-cols-3"
	case 4:
		return 4, "grid-cols-4"
	default:
		return 2, "grid-cols-2"
	}
}

// CardStats renders stats in order in a fixed-column grid.
func CardStats(props CardStatsProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, _, _ = childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		columns, columnClass := statColumns(props.Columns)

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.reserve(attrs)
		h.attr("class", style.Join("grid gap-3", columnClass, override))
		h.attr("data-slot", "card-stats")
		h.attr("data-columns", strconv.Itoa(columns))
		h.attrs(attrs)
		h.raw(">")
		for _, stat := range props.Stats {
			h.raw(`<div class="flex flex-col items-center rounded-xl bg-white/5 p-3 text-center" data-slot="stat">`)
			if stat.Icon != nil {
				h.raw(`<span class="mb-1 text-white/60" data-slot="icon">`)
				h.component(stat.Icon)
				h.raw("</span>")
			}
			h.raw("<span")
			h.attr("class", style.Join("text-lg font-semibold", style.Either(stat.Color != "", stat.Color, "text-white")))
			h.raw(` data-slot="value">`)
			h.text(stat.Value)
			h.raw(`</span><span class="text-xs text-white/60" data-slot="label">`)
			h.text(stat.Label)
			h.raw("</span></div>")
		}
		h.raw("</div>")
		return h.err
	})
}

// InsightTone selects the color of a CardInsight.
type InsightTone int

const (
	InsightInfo InsightTone = iota
	InsightPrice
	InsightTrend
	InsightUrgency
	InsightWarning
	InsightSuccess
)

func (t InsightTone) String() string {
	switch t {
	case InsightPrice:
		return "price"
	case InsightTrend:
		return "trend"
	case InsightUrgency:
		return "urgency"
	case InsightWarning:
		return "warning"
	case InsightSuccess:
		return "success"
	default:
		return "info"
	}
}

// InsightColors is the background, border and text triple of a tone.
type InsightColors struct {
	Background string
	Border     string
	Text       string
}

// InsightPalette returns the fixed colors of tone t.
func InsightPalette(t InsightTone) InsightColors {
	switch t {
	case InsightPrice:
		return InsightColors{"bg-emerald-500/10", "border-emerald-500/30", "text-emerald-300"}
	case InsightTrend:
		return InsightColors{"bg-blue-500/10", "border-blue-500/30", "text-blue-300"}
	case InsightUrgency:
		return InsightColors{"bg-red-500/10", "border-red-500/30", "text-red-300"}
	case InsightWarning:
		return InsightColors{"bg-amber-500/10", "border-amber-500/30", "text-amber-300"}
	case InsightSuccess:
		return InsightColors{"bg-green-500/10", "border-green-500/30", "text-green-300"}
	default:
		return InsightColors{"bg-white/5", "border-white/20", "text-white/80"}
	}
}

func insightGlyph(t InsightTone) icons.Glyph {
	switch t {
	case InsightPrice:
		return icons.DollarSign
	case InsightTrend:
		return icons.TrendingUp
	case InsightUrgency:
		return icons.Zap
	case InsightWarning:
		return icons.AlertTriangle
	case InsightSuccess:
		return icons.CheckCircle
	default:
		return icons.Info
	}
}

// CardInsightProps configures a CardInsight. Icon defaults to the tone's
// glyph.
type CardInsightProps struct {
	Tone    InsightTone
	Icon    templ.Component
	Message string
	Class   string
	Attrs   templ.Attributes
}

// CardInsight renders a single-message callout.
func CardInsight(props CardInsightProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, children, _ := childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		colors := InsightPalette(props.Tone)
		icon := props.Icon
		if icon == nil {
			icon = insightGlyph(props.Tone).Class("mt-0.5 h-4 w-4 shrink-0")
		}

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.reserve(attrs)
		h.attr("class", style.Join("flex items-start gap-2 rounded-xl border p-3 text-sm", colors.Background, colors.Border, colors.Text, override))
		h.attr("data-slot", "card-insight")
		h.attr("data-tone", props.Tone.String())
		h.attr("role", "note")
		h.attrs(attrs)
		h.raw(">")
		h.component(icon)
		h.raw(`<p class="leading-snug" data-slot="message">`)
		h.text(props.Message)
		h.raw("</p>")
		h.component(children)
		h.raw("</div>")
		return h.err
	})
}

// CardActionProps configures a CardAction.
type CardActionProps struct {
	Label    string
	Theme    theme.Key
	Loading  bool
	Disabled bool
	Icon     templ.Component
	// Type defaults to "button".
	Type    string
	OnClick templ.Attributes
	Class   string
	Attrs   templ.Attributes
}

const cardActionBase = "flex w-full items-center justify-center gap-2 rounded-xl px-4 py-3 text-sm font-semibold transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-offset-slate-900 disabled:cursor-not-allowed disabled:opacity-50"

// CardActionClasses composes the class list of the CardAction button. The
// color comes from the theme palette's solid entry, the same table every
// other component reads.
func CardActionClasses(props CardActionProps) string {
	_, override := overrideClass(props.Class, props.Attrs)
	return cardActionClasses(props, override)
}

func cardActionClasses(props CardActionProps, override string) string {
	p := theme.PaletteFor(props.Theme)
	return style.Compose(style.Layers{
		Base:     cardActionBase,
		Variant:  style.Join(p.Solid, p.Ring),
		States:   []string{style.If(props.Loading, "cursor-wait")},
		Override: override,
	})
}

// CardAction renders the full-width call to action of a card footer.
func CardAction(props CardActionProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, _, _ = childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		buttonType := props.Type
		if buttonType == "" {
			buttonType = "button"
		}

		passthrough := mergeAttrs(props.OnClick, attrs)

		h := newHTMLWriter(ctx, w)
		h.raw(`<div class="px-4 pb-4" data-slot="card-action"><button`)
		h.reserve(passthrough)
		h.attr("type", buttonType)
		h.attr("class", cardActionClasses(props, override))
		h.attr("data-theme", theme.Validate(string(props.Theme)).String())
		h.attrIf(props.Loading, "aria-busy", "true")
		h.flag("disabled", props.Loading || props.Disabled)
		h.attrs(passthrough)
		h.raw(">")
		if props.Loading {
			h.component(icons.Spinner("h-4 w-4"))
			h.raw(`<span data-slot="label">Loading...</span>`)
		} else {
			if props.Icon != nil {
				h.raw(`<span class="inline-flex shrink-0" data-slot="icon">`)
				h.component(props.Icon)
				h.raw("</span>")
			}
			h.raw(`<span data-slot="label">`)
			h.text(props.Label)
			h.raw("</span>")
		}
		h.raw("</button></div>")
		return h.err
	})
}
