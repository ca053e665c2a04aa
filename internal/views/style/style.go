// Package style merges Tailwind class fragments into a single class list.
package style

import "strings"

// Layers are the class fragments of one element, in cascade order. Later
// layers come later in the output so caller overrides win conflicting
// utilities.
type Layers struct {
	Base    string
	Size    string
	Variant string
	States  []string
	// Override is the caller supplied class attribute.
	Override string
}

// Compose joins the layers as Base, Size, Variant, States, Override.
func Compose(l Layers) string {
	parts := make([]string, 0, 4+len(l.States))
	parts = append(parts, l.Base, l.Size, l.Variant)
	parts = append(parts, l.States...)
	parts = append(parts, l.Override)
	return Join(parts...)
}

// Join drops empty fragments, collapses whitespace and joins the rest with a
// single space, preserving order.
func Join(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		for _, class := range strings.Fields(part) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(class)
		}
	}
	return b.String()
}

// If returns class when cond holds and the empty string otherwise.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Either picks between two fragments.
func Either(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
