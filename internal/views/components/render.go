package components

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"tripdeck/internal/views/style"
)

// htmlWriter accumulates the first write error so rendering code can stay
// linear. Once err is set every further call is a no-op.
//
// reserved holds the caller attributes of the tag being written. Generated
// attributes with the same name are skipped so the caller's value, written by
// attrs, is the only one.
type htmlWriter struct {
	ctx      context.Context
	w        io.Writer
	err      error
	reserved templ.Attributes
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// reserve registers the caller attributes of the current tag. They are
// rendered, and released, by the next attrs call.
func (h *htmlWriter) reserve(attrs templ.Attributes) {
	h.reserved = attrs
}

func (h *htmlWriter) isReserved(name string) bool {
	_, ok := h.reserved[name]
	return ok
}

func (h *htmlWriter) attr(name, value string) {
	if h.isReserved(name) {
		return
	}
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) attrIf(cond bool, name, value string) {
	if cond {
		h.attr(name, value)
	}
}

func (h *htmlWriter) flag(name string, on bool) {
	if on && !h.isReserved(name) {
		h.raw(" " + name)
	}
}

func (h *htmlWriter) attrs(attrs templ.Attributes) {
	h.reserved = nil
	if h.err != nil || len(attrs) == 0 {
		return
	}
	h.err = templ.RenderAttributes(h.ctx, h.w, attrs)
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// childrenOf extracts the templ children of ctx and clears them so nested
// components do not render them again. Children are rendered up front: the
// report is false when they produce no markup, so optional wrappers can be
// omitted.
func childrenOf(ctx context.Context) (context.Context, templ.Component, bool) {
	children := templ.GetChildren(ctx)
	ctx = templ.ClearChildren(ctx)
	if children == nil {
		return ctx, nil, false
	}
	var buf bytes.Buffer
	if err := children.Render(ctx, &buf); err != nil {
		return ctx, failed(err), true
	}
	if buf.Len() == 0 {
		return ctx, nil, false
	}
	return ctx, templ.Raw(buf.String()), true
}

func failed(err error) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return err
	})
}

// splitAttr removes name from attrs and returns its value, so it can be merged
// into a generated value instead of rendered twice.
func splitAttr(attrs templ.Attributes, name string) (templ.Attributes, string) {
	raw, ok := attrs[name]
	if !ok {
		return attrs, ""
	}
	rest := make(templ.Attributes, len(attrs)-1)
	for k, v := range attrs {
		if k != name {
			rest[k] = v
		}
	}
	return rest, fmt.Sprint(raw)
}

// mergeAttrs copies sets left to right; later keys win.
func mergeAttrs(sets ...templ.Attributes) templ.Attributes {
	size := 0
	for _, set := range sets {
		size += len(set)
	}
	if size == 0 {
		return nil
	}
	merged := make(templ.Attributes, size)
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}

// overrideClass joins the caller's Class prop with any class passed through
// Attrs, in that order.
func overrideClass(class string, attrs templ.Attributes) (templ.Attributes, string) {
	rest, attrClass := splitAttr(attrs, "class")
	return rest, style.Join(class, attrClass)
}

// Text renders s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// With renders parent with children available through templ.GetChildren, the
// same way a templ call site passes a children block.
func With(parent templ.Component, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, templ.Join(children...)), w)
	})
}

// Element renders a plain tag around children. Tag must be a constant element
// name; class and attrs are escaped.
func Element(tag, class string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, _, _ = childrenOf(ctx)
		rest, override := overrideClass(class, attrs)

		h := newHTMLWriter(ctx, w)
		h.raw("<" + tag)
		h.attrIf(override != "", "class", override)
		h.attrs(rest)
		h.raw(">")
		for _, child := range children {
			h.component(child)
		}
		h.raw("</" + tag + ">")
		return h.err
	})
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func lowerKebab(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
