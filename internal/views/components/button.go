package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"tripdeck/internal/views/icons"
	"tripdeck/internal/views/style"
	"tripdeck/internal/views/theme"
)

// ButtonVariant selects the visual style of a Button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonGlass
	ButtonOutline
	ButtonGhost
	ButtonToggle
	ButtonIcon
)

func (v ButtonVariant) String() string {
	switch v {
	case ButtonGlass:
		return "glass"
	case ButtonOutline:
		return "outline"
	case ButtonGhost:
		return "ghost"
	case ButtonToggle:
		return "toggle"
	case ButtonIcon:
		return "icon"
	default:
		return "primary"
	}
}

// ButtonSize is independent from the variant.
type ButtonSize int

const (
	ButtonMD ButtonSize = iota
	ButtonSM
	ButtonLG
	ButtonXL
)

func (s ButtonSize) String() string {
	switch s {
	case ButtonSM:
		return "sm"
	case ButtonLG:
		return "lg"
	case ButtonXL:
		return "xl"
	default:
		return "md"
	}
}

// ButtonProps configures a Button. The zero value is a medium primary button
// in the default theme.
type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
	Theme   theme.Key
	// Selected fills a toggle button. Other variants ignore it.
	Selected bool
	// Loading shows a spinner in place of Icon and disables the control.
	Loading   bool
	Disabled  bool
	Icon      templ.Component
	Label     string
	FullWidth bool
	// Type defaults to "button".
	Type    string
	OnClick templ.Attributes
	Class   string
	Attrs   templ.Attributes
}

const buttonBase = "inline-flex items-center justify-center font-medium rounded-xl transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-offset-slate-900 disabled:opacity-50 disabled:cursor-not-allowed"

func buttonSizeClasses(s ButtonSize) string {
	switch s {
	case ButtonSM:
		return "px-3 py-1.5 text-sm gap-1.5"
	case ButtonLG:
		return "px-6 py-3 text-base gap-2"
	case ButtonXL:
		return "px-8 py-4 text-lg gap-3"
	default:
		return "px-4 py-2 text-sm gap-2"
	}
}

// Icon buttons are fixed squares with no text padding.
func buttonIconSizeClasses(s ButtonSize) string {
	switch s {
	case ButtonSM:
		return "h-8 w-8 p-0"
	case ButtonLG:
		return "h-12 w-12 p-0"
	case ButtonXL:
		return "h-14 w-14 p-0"
	default:
		return "h-10 w-10 p-0"
	}
}

func buttonVariantClasses(v ButtonVariant, p theme.Palette, selected bool) string {
	switch v {
	case ButtonGlass:
		return "bg-white/10 backdrop-blur-md border border-white/20 text-white hover:bg-white/20 focus:ring-white/40"
	case ButtonOutline:
		return style.Join("border-2 bg-transparent hover:bg-white/5", p.Border, p.Text, p.Ring)
	case ButtonGhost:
		return "bg-transparent text-white/80 hover:text-white hover:bg-white/10 focus:ring-white/30"
	case ButtonToggle:
		if selected {
			return style.Join("border", p.Border, p.Solid, p.Ring)
		}
		return "border border-white/20 bg-white/5 text-white/70 hover:bg-white/10 hover:text-white focus:ring-white/30"
	case ButtonIcon:
		return "rounded-full bg-white/10 text-white hover:bg-white/20 focus:ring-white/40"
	default:
		return style.Join(p.Solid, "shadow-lg", p.Ring)
	}
}

// ButtonClasses composes the class list a Button renders with.
func ButtonClasses(props ButtonProps) string {
	_, override := overrideClass(props.Class, props.Attrs)
	return buttonClasses(props, override)
}

func buttonClasses(props ButtonProps, override string) string {
	size := buttonSizeClasses(props.Size)
	if props.Variant == ButtonIcon {
		size = buttonIconSizeClasses(props.Size)
	}
	return style.Compose(style.Layers{
		Base:    buttonBase,
		Size:    size,
		Variant: buttonVariantClasses(props.Variant, theme.PaletteFor(props.Theme), props.Selected),
		States: []string{
			style.If(props.FullWidth, "w-full"),
			style.If(props.Loading, "cursor-wait"),
		},
		Override: override,
	})
}

func buttonSpinnerClass(s ButtonSize) string {
	switch s {
	case ButtonSM:
		return "h-3.5 w-3.5"
	case ButtonLG, ButtonXL:
		return "h-5 w-5"
	default:
		return "h-4 w-4"
	}
}

// Button renders a single interactive control. Loading or Disabled set the
// native disabled attribute so the browser suppresses activation.
func Button(props ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, children, _ := childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		buttonType := props.Type
		if buttonType == "" {
			buttonType = "button"
		}

		passthrough := mergeAttrs(props.OnClick, attrs)

		h := newHTMLWriter(ctx, w)
		h.raw("<button")
		h.reserve(passthrough)
		h.attr("type", buttonType)
		h.attr("class", buttonClasses(props, override))
		h.attr("data-variant", props.Variant.String())
		h.attr("data-size", props.Size.String())
		h.attrIf(props.Variant == ButtonToggle, "aria-pressed", boolString(props.Selected))
		h.attrIf(props.Loading, "aria-busy", "true")
		h.flag("disabled", props.Loading || props.Disabled)
		h.attrs(passthrough)
		h.raw(">")

		switch {
		case props.Loading:
			h.component(icons.Spinner(buttonSpinnerClass(props.Size)))
		case props.Icon != nil:
			h.raw(`<span class="inline-flex shrink-0" data-slot="icon">`)
			h.component(props.Icon)
			h.raw("</span>")
		}
		if props.Label != "" {
			labelClass := "truncate"
			if props.Variant == ButtonIcon {
				labelClass = "sr-only"
			}
			h.raw(`<span class="` + labelClass + `" data-slot="label">`)
			h.text(props.Label)
			h.raw("</span>")
		}
		h.component(children)
		h.raw("</button>")
		return h.err
	})
}

// ToggleButtonProps configures a ToggleButton.
type ToggleButtonProps struct {
	Size     ButtonSize
	Theme    theme.Key
	Selected bool
	Disabled bool
	Icon     templ.Component
	Label    string
	OnClick  templ.Attributes
	Class    string
	Attrs    templ.Attributes
}

// ToggleButton is a Button fixed to the toggle variant.
func ToggleButton(props ToggleButtonProps) templ.Component {
	return Button(ButtonProps{
		Variant:  ButtonToggle,
		Size:     props.Size,
		Theme:    props.Theme,
		Selected: props.Selected,
		Disabled: props.Disabled,
		Icon:     props.Icon,
		Label:    props.Label,
		OnClick:  props.OnClick,
		Class:    props.Class,
		Attrs:    props.Attrs,
	})
}
