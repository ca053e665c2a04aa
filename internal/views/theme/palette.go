package theme

// Palette holds the Tailwind class fragments a theme contributes to a
// component. Every component derives theme colors from this table.
type Palette struct {
	Key Key
	// Solid is a filled surface with readable foreground and hover state.
	Solid string
	// Soft is a translucent tint used by chips and callouts.
	Soft string
	// Border colors an outline.
	Border string
	// Text colors foreground copy on dark surfaces.
	Text string
	// Ring colors the focus ring.
	Ring string
	// Gradient is used for hero strips and media overlays.
	Gradient string
}

// PaletteFor resolves the palette of k, validating it first so unknown keys
// map onto the default theme's palette.
func PaletteFor(k Key) Palette {
	switch Validate(string(k)) {
	case Vibe:
		return Palette{
			Key:      Vibe,
			Solid:    "bg-pink-500 text-white hover:bg-pink-600",
			Soft:     "bg-pink-500/20 text-pink-300 border-pink-500/30",
			Border:   "border-pink-500",
			Text:     "text-pink-400",
			Ring:     "focus:ring-pink-500",
			Gradient: "from-pink-500 to-rose-500",
		}
	case Nature:
		return Palette{
			Key:      Nature,
			Solid:    "bg-green-600 text-white hover:bg-green-700",
			Soft:     "bg-green-500/20 text-green-300 border-green-500/30",
			Border:   "border-green-500",
			Text:     "text-green-400",
			Ring:     "focus:ring-green-500",
			Gradient: "from-green-500 to-lime-500",
		}
	case Indulge:
		return Palette{
			Key:      Indulge,
			Solid:    "bg-purple-600 text-white hover:bg-purple-700",
			Soft:     "bg-purple-500/20 text-purple-300 border-purple-500/30",
			Border:   "border-purple-500",
			Text:     "text-purple-400",
			Ring:     "focus:ring-purple-500",
			Gradient: "from-purple-500 to-indigo-500",
		}
	case Discover:
		return Palette{
			Key:      Discover,
			Solid:    "bg-cyan-600 text-white hover:bg-cyan-700",
			Soft:     "bg-cyan-500/20 text-cyan-300 border-cyan-500/30",
			Border:   "border-cyan-500",
			Text:     "text-cyan-400",
			Ring:     "focus:ring-cyan-500",
			Gradient: "from-cyan-500 to-sky-500",
		}
	default:
		return Palette{
			Key:      Adventure,
			Solid:    "bg-orange-500 text-white hover:bg-orange-600",
			Soft:     "bg-orange-500/20 text-orange-300 border-orange-500/30",
			Border:   "border-orange-500",
			Text:     "text-orange-400",
			Ring:     "focus:ring-orange-500",
			Gradient: "from-orange-500 to-red-500",
		}
	}
}
