package components

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"tripdeck/internal/views/icons"
	"tripdeck/internal/views/style"
)

// Form fields render whatever Value or Checked the caller passes and keep no
// state of their own, so the caller decides who owns the value.

// FieldVariant selects the input surface of a form control.
type FieldVariant int

const (
	FieldDefault FieldVariant = iota
	FieldGlass
	FieldFilled
)

// FieldID returns id when set, otherwise the label lower-cased with runs of
// whitespace replaced by hyphens. Two fields with the same label and no id
// collide; giving them ids is up to the caller.
func FieldID(label, id string) string {
	if id != "" {
		return id
	}
	return lowerKebab(label)
}

const inputBase = "w-full rounded-xl px-4 py-2.5 text-sm text-white placeholder-white/40 transition-colors duration-200 focus:outline-none focus:ring-2 disabled:cursor-not-allowed disabled:opacity-50"

func fieldSurface(v FieldVariant) string {
	switch v {
	case FieldGlass:
		return "bg-white/10 backdrop-blur-md border"
	case FieldFilled:
		return "bg-white/15 border"
	default:
		return "bg-white/5 border"
	}
}

func fieldTone(v FieldVariant, hasError bool) string {
	if hasError {
		return "border-red-500 focus:border-red-500 focus:ring-red-500/40"
	}
	switch v {
	case FieldGlass:
		return "border-white/20 focus:border-white/40 focus:ring-white/20"
	case FieldFilled:
		return "border-transparent focus:border-blue-500 focus:ring-blue-500/40"
	default:
		return "border-white/20 focus:border-blue-500 focus:ring-blue-500/40"
	}
}

// InputClasses returns the input styling for a variant. An error replaces the
// variant's border and ring with the error palette.
func InputClasses(v FieldVariant, hasError bool) string {
	return style.Join(inputBase, fieldSurface(v), fieldTone(v, hasError))
}

// fieldChrome is the label, error and help text shared by every field.
type fieldChrome struct {
	id       string
	label    string
	required bool
	err      string
	help     string
}

func (c fieldChrome) describedBy() string {
	return style.Join(
		style.If(c.err != "" && c.id != "", c.id+"-error"),
		style.If(c.help != "" && c.id != "", c.id+"-help"),
	)
}

func (c fieldChrome) writeLabel(h *htmlWriter, class string) {
	if c.label == "" {
		return
	}
	h.raw("<label")
	h.attrIf(c.id != "", "for", c.id)
	h.attr("class", class)
	h.raw(">")
	h.text(c.label)
	if c.required {
		h.raw(`<span class="ml-0.5 text-red-400" aria-hidden="true" data-slot="required">*</span>`)
	}
	h.raw("</label>")
}

func (c fieldChrome) writeMessages(h *htmlWriter) {
	if c.err != "" {
		h.raw(`<p class="mt-1.5 text-sm text-red-400" role="alert" data-slot="error"`)
		h.attrIf(c.id != "", "id", c.id+"-error")
		h.raw(">")
		h.text(c.err)
		h.raw("</p>")
	}
	if c.help != "" {
		h.raw(`<p class="mt-1.5 text-sm text-white/50" data-slot="help"`)
		h.attrIf(c.id != "", "id", c.id+"-help")
		h.raw(">")
		h.text(c.help)
		h.raw("</p>")
	}
}

// controlID is the id of a field control: an id passed through attrs wins,
// then FieldID.
func controlID(label, id string, attrs templ.Attributes) string {
	if v, ok := attrs["id"]; ok {
		if s := fmt.Sprint(v); s != "" {
			return s
		}
	}
	return FieldID(label, id)
}

// writeControlAttrs renders the attributes every control shares.
func (c fieldChrome) writeControlAttrs(h *htmlWriter, name string, disabled bool) {
	h.attrIf(c.id != "", "id", c.id)
	h.attrIf(name != "", "name", name)
	h.flag("required", c.required)
	h.flag("disabled", disabled)
	h.attrIf(c.err != "", "aria-invalid", "true")
	if describedBy := c.describedBy(); describedBy != "" {
		h.attr("aria-describedby", describedBy)
	}
}

const fieldLabelClass = "mb-1.5 block text-sm font-medium text-white/80"

// FormFieldProps configures a labelled text input.
type FormFieldProps struct {
	Label string
	ID    string
	Name  string
	// Type defaults to "text".
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Disabled    bool
	Error       string
	HelpText    string
	Variant     FieldVariant
	// Class is appended to the input; WrapperClass to the surrounding div.
	Class        string
	WrapperClass string
	Attrs        templ.Attributes
}

// FormField renders a labelled input.
func FormField(props FormFieldProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, _, _ = childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		chrome := fieldChrome{
			id:       controlID(props.Label, props.ID, attrs),
			label:    props.Label,
			required: props.Required,
			err:      props.Error,
			help:     props.HelpText,
		}
		inputType := props.Type
		if inputType == "" {
			inputType = "text"
		}

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.attr("class", style.Join("w-full", props.WrapperClass))
		h.raw(` data-slot="form-field">`)
		chrome.writeLabel(h, fieldLabelClass)
		h.raw("<input")
		h.reserve(attrs)
		h.attr("type", inputType)
		chrome.writeControlAttrs(h, props.Name, props.Disabled)
		h.attrIf(props.Value != "", "value", props.Value)
		h.attrIf(props.Placeholder != "", "placeholder", props.Placeholder)
		h.attr("class", style.Join(InputClasses(props.Variant, props.Error != ""), override))
		h.attrs(attrs)
		h.raw(">")
		chrome.writeMessages(h)
		h.raw("</div>")
		return h.err
	})
}

// SelectOption is one choice of a SelectField.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// SelectFieldProps configures a labelled select.
type SelectFieldProps struct {
	Label   string
	ID      string
	Name    string
	Options []SelectOption
	// Value marks the matching option as selected.
	Value string
	// Placeholder adds a leading disabled option when set.
	Placeholder  string
	Required     bool
	Disabled     bool
	Error        string
	HelpText     string
	Variant      FieldVariant
	Class        string
	WrapperClass string
	Attrs        templ.Attributes
}

// SelectField renders a labelled select.
func SelectField(props SelectFieldProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, _, _ = childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		chrome := fieldChrome{
			id:       controlID(props.Label, props.ID, attrs),
			label:    props.Label,
			required: props.Required,
			err:      props.Error,
			help:     props.HelpText,
		}

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.attr("class", style.Join("w-full", props.WrapperClass))
		h.raw(` data-slot="select-field">`)
		chrome.writeLabel(h, fieldLabelClass)
		h.raw(`<div class="relative"><select`)
		h.reserve(attrs)
		chrome.writeControlAttrs(h, props.Name, props.Disabled)
		h.attr("class", style.Join(InputClasses(props.Variant, props.Error != ""), "appearance-none pr-10", override))
		h.attrs(attrs)
		h.raw(">")
		if props.Placeholder != "" {
			h.raw(`<option value="" disabled`)
			h.flag("selected", props.Value == "")
			h.raw(">")
			h.text(props.Placeholder)
			h.raw("</option>")
		}
		for _, option := range props.Options {
			h.raw("<option")
			h.attr("value", option.Value)
			h.flag("selected", props.Value != "" && option.Value == props.Value)
			h.flag("disabled", option.Disabled)
			h.raw(">")
			h.text(option.Label)
			h.raw("</option>")
		}
		h.raw(`</select><span class="pointer-events-none absolute inset-y-0 right-3 flex items-center text-white/50">`)
		h.component(icons.ChevronRight.Class("h-4 w-4 rotate-90"))
		h.raw("</span></div>")
		chrome.writeMessages(h)
		h.raw("</div>")
		return h.err
	})
}

// TextAreaFieldProps configures a labelled textarea.
type TextAreaFieldProps struct {
	Label       string
	ID          string
	Name        string
	Value       string
	Placeholder string
	// Rows defaults to 4.
	Rows         int
	Required     bool
	Disabled     bool
	Error        string
	HelpText     string
	Variant      FieldVariant
	Class        string
	WrapperClass string
	Attrs        templ.Attributes
}

// TextAreaField renders a labelled textarea.
func TextAreaField(props TextAreaFieldProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, _, _ = childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		chrome := fieldChrome{
			id:       controlID(props.Label, props.ID, attrs),
			label:    props.Label,
			required: props.Required,
			err:      props.Error,
			help:     props.HelpText,
		}
		rows := props.Rows
		if rows <= 0 {
			rows = 4
		}

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.attr("class", style.Join("w-full", props.WrapperClass))
		h.raw(` data-slot="textarea-field">`)
		chrome.writeLabel(h, fieldLabelClass)
		h.raw("<textarea")
		h.reserve(attrs)
		chrome.writeControlAttrs(h, props.Name, props.Disabled)
		h.attr("rows", strconv.Itoa(rows))
		h.attrIf(props.Placeholder != "", "placeholder", props.Placeholder)
		h.attr("class", style.Join(InputClasses(props.Variant, props.Error != ""), "min-h-[100px] resize-y", override))
		h.attrs(attrs)
		h.raw(">")
		h.text(props.Value)
		h.raw("</textarea>")
		chrome.writeMessages(h)
		h.raw("</div>")
		return h.err
	})
}

// CheckboxFieldProps configures a checkbox with a label and description.
type CheckboxFieldProps struct {
	Label        string
	ID           string
	Name         string
	Value        string
	Description  string
	Checked      bool
	Required     bool
	Disabled     bool
	Error        string
	HelpText     string
	Class        string
	WrapperClass string
	Attrs        templ.Attributes
}

// CheckboxField renders the input left of a stacked label and description.
// The label is bound with for, so clicking it toggles the checkbox natively.
func CheckboxField(props CheckboxFieldProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, _, _ = childrenOf(ctx)
		attrs, override := overrideClass(props.Class, props.Attrs)
		chrome := fieldChrome{
			id:       controlID(props.Label, props.ID, attrs),
			label:    props.Label,
			required: props.Required,
			err:      props.Error,
			help:     props.HelpText,
		}

		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.attr("class", style.Join("flex items-start gap-3", props.WrapperClass))
		h.raw(` data-slot="checkbox-field"><input`)
		h.reserve(attrs)
		h.attr("type", "checkbox")
		chrome.writeControlAttrs(h, props.Name, props.Disabled)
		h.attrIf(props.Value != "", "value", props.Value)
		h.flag("checked", props.Checked)
		h.attr("class", style.Join(
			"mt-0.5 h-4 w-4 shrink-0 cursor-pointer rounded bg-white/10 text-blue-500 focus:ring-2 focus:ring-offset-0",
			style.Either(props.Error != "", "border-red-500 focus:ring-red-500/40", "border-white/30 focus:ring-blue-500/40"),
			override,
		))
		h.attrs(attrs)
		h.raw(`><div class="flex flex-col">`)
		chrome.writeLabel(h, "cursor-pointer text-sm font-medium text-white/90")
		if props.Description != "" {
			h.raw(`<p class="text-sm text-white/50" data-slot="description">`)
			h.text(props.Description)
			h.raw("</p>")
		}
		chrome.writeMessages(h)
		h.raw("</div></div>")
		return h.err
	})
}
