package theme

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key identifies a destination theme used to derive consistent coloring.
type Key string

const (
	Adventure Key = "adventure"
	Vibe      Key = "vibe"
	Nature    Key = "nature"
	Indulge   Key = "indulge"
	Discover  Key = "discover"
)

const (
	// DefaultKey is substituted for any theme outside the known set.
	DefaultKey = Adventure
)

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

var keys = []Key{Adventure, Vibe, Nature, Indulge, Discover}

var titler = cases.Title(language.English)

// Validate returns candidate as a Key when it names a known theme and the
// default theme otherwise. It never fails.
func Validate(candidate string) Key {
	normalized := Key(strings.ToLower(strings.TrimSpace(candidate)))
	if Known(normalized) {
		return normalized
	}
	return DefaultKey
}

// Known reports whether k is one of the registered themes.
func Known(k Key) bool {
	switch k {
	case Adventure, Vibe, Nature, Indulge, Discover:
		return true
	}
	return false
}

// Keys lists the registered themes in display order.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// Label returns the human readable name of a theme.
func Label(k Key) string {
	return titler.String(string(Validate(string(k))))
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	options := make([]Option, 0, len(keys))
	for _, k := range keys {
		options = append(options, Option{Value: string(k), Label: Label(k)})
	}
	return options
}

func (k Key) String() string {
	return string(k)
}
