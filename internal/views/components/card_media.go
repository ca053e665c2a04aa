package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"tripdeck/internal/views/icons"
	"tripdeck/internal/views/style"
)

// CardMediaProps configures a CardMedia carousel. The caller owns
// CurrentIndex; the carousel only asks for changes through OnImageChange.
type CardMediaProps struct {
	Images       []string
	CurrentIndex int
	// OnImageChange returns the request attributes that ask the owner to show
	// image index. It is called once per rendered control.
	OnImageChange func(index int) templ.Attributes
	Alt           string
	// Height defaults to h-48.
	Height string
	Class  string
	Attrs  templ.Attributes
}

// ClampIndex bounds index to [0, count-1]; it returns 0 when count is zero.
func ClampIndex(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}

// PrevIndex steps back from index, wrapping from the first image to the last.
func PrevIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	index = ClampIndex(index, count)
	if index == 0 {
		return count - 1
	}
	return index - 1
}

// NextIndex steps forward from index, wrapping from the last image to the
// first.
func NextIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	index = ClampIndex(index, count)
	if index == count-1 {
		return 0
	}
	return index + 1
}

const mediaNavClass = "absolute top-1/2 -translate-y-1/2 rounded-full bg-black/40 p-1.5 text-white backdrop-blur-sm transition hover:bg-black/60 focus:outline-none focus:ring-2 focus:ring-white/60"

// CardMedia renders an image carousel. Navigation controls and indicators
// appear only with more than one image and a change handler. Children are
// overlaid on the top edge of the media.
func CardMedia(props CardMediaProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, children, hasChildren := childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		count := len(props.Images)
		current := ClampIndex(props.CurrentIndex, count)
		height := props.Height
		if height == "" {
			height = "h-48"
		}

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.reserve(attrs)
		h.attr("class", style.Join("relative overflow-hidden bg-slate-900", height, override))
		h.attr("data-slot", "card-media")
		h.attr("data-count", strconv.Itoa(count))
		h.attrIf(count > 0, "data-index", strconv.Itoa(current))
		h.attrs(attrs)
		h.raw(">")

		if count == 0 {
			h.raw(`<div class="flex h-full w-full items-center justify-center bg-white/5 text-white/30" data-slot="media-empty"></div>`)
		} else {
			h.raw(`<img class="h-full w-full object-cover transition-opacity duration-300" loading="lazy"`)
			h.attr("src", string(templ.URL(props.Images[current])))
			h.attr("alt", mediaAlt(props.Alt, current, count))
			h.raw(`><div class="pointer-events-none absolute inset-0 bg-gradient-to-t from-black/60 via-transparent to-transparent"></div>`)
		}

		if count > 1 && props.OnImageChange != nil {
			writeMediaControls(h, props.OnImageChange, current, count)
		}

		if hasChildren {
			h.raw(`<div class="absolute inset-x-0 top-0 flex items-start justify-between gap-2 p-3" data-slot="media-overlay">`)
			h.component(children)
			h.raw("</div>")
		}
		h.raw("</div>")
		return h.err
	})
}

func writeMediaControls(h *htmlWriter, change func(int) templ.Attributes, current, count int) {
	h.raw(`<button type="button" data-slot="prev" aria-label="Previous image"`)
	h.attr("class", style.Join(mediaNavClass, "left-2"))
	h.attrs(change(PrevIndex(current, count)))
	h.raw(">")
	h.component(icons.ChevronLeft.Class("h-4 w-4"))
	h.raw("</button>")

	h.raw(`<button type="button" data-slot="next" aria-label="Next image"`)
	h.attr("class", style.Join(mediaNavClass, "right-2"))
	h.attrs(change(NextIndex(current, count)))
	h.raw(">")
	h.component(icons.ChevronRight.Class("h-4 w-4"))
	h.raw("</button>")

	h.raw(`<div class="absolute bottom-3 left-1/2 flex -translate-x-1/2 gap-1.5" data-slot="indicators">`)
	for i := 0; i < count; i++ {
		active := i == current
		h.raw(`<button type="button" data-slot="indicator"`)
		h.attr("class", style.Join("h-1.5 rounded-full transition-all", style.Either(active, "w-4 bg-white", "w-1.5 bg-white/50 hover:bg-white/80")))
		h.attr("aria-label", "Show image "+strconv.Itoa(i+1))
		h.attrIf(active, "aria-current", "true")
		h.attrs(change(i))
		h.raw("></button>")
	}
	h.raw("</div>")
}

func mediaAlt(alt string, index, count int) string {
	if count <= 1 {
		return alt
	}
	suffix := "image " + strconv.Itoa(index+1) + " of " + strconv.Itoa(count)
	if alt == "" {
		return suffix
	}
	return alt + ", " + suffix
}
