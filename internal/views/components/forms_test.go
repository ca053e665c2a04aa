package components

import (
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestFieldID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label, id, want string
	}{
		{"Email Address", "", "email-address"},
		{"  Departure   City ", "", "departure-city"},
		{"Name", "traveller-name", "traveller-name"},
		{"", "", ""},
		{"Visa", "", "visa"},
	}
	for _, tt := range tests {
		if got := FieldID(tt.label, tt.id); got != tt.want {
			t.Fatalf("FieldID(%q, %q) = %q, want %q", tt.label, tt.id, got, tt.want)
		}
	}
}

func TestFormFieldDerivesIDFromLabel(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, FormField(FormFieldProps{Label: "Email Address", Type: "email", Required: true})))
	input := findOne(t, doc, byTag("input"))
	if v, _ := attr(input, "id"); v != "email-address" {
		t.Fatalf("expected derived id, got %q", v)
	}
	if v, _ := attr(input, "type"); v != "email" {
		t.Fatalf("unexpected type %q", v)
	}
	if !hasAttr(input, "required") {
		t.Fatal("expected required attribute")
	}
	label := findOne(t, doc, byTag("label"))
	if v, _ := attr(label, "for"); v != "email-address" {
		t.Fatalf("expected label bound to input, got %q", v)
	}
	if len(findAll(label, bySlot("required"))) != 1 {
		t.Fatal("expected required marker")
	}
}

func TestFormFieldDefaultsToTextInput(t *testing.T) {
	t.Parallel()

	input := findOne(t, parse(t, render(t, FormField(FormFieldProps{Label: "City", Value: "Porto"}))), byTag("input"))
	if v, _ := attr(input, "type"); v != "text" {
		t.Fatalf("expected default text type, got %q", v)
	}
	if v, _ := attr(input, "value"); v != "Porto" {
		t.Fatalf("expected value to be rendered, got %q", v)
	}
	if hasAttr(input, "aria-invalid") || hasAttr(input, "aria-describedby") {
		t.Fatal("expected no error wiring on a clean field")
	}
}

func TestFormFieldShowsErrorAndHelp(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, FormField(FormFieldProps{
		Label:    "Passport Number",
		Error:    "Required",
		HelpText: "As printed on the photo page",
	})))
	input := findOne(t, doc, byTag("input"))
	classes, _ := attr(input, "class")
	containsAll(t, classes, "border-red-500 focus:ring-red-500/40")
	containsNone(t, classes, "border-white/20")
	if v, _ := attr(input, "aria-invalid"); v != "true" {
		t.Fatal("expected aria-invalid")
	}
	if v, _ := attr(input, "aria-describedby"); v != "passport-number-error passport-number-help" {
		t.Fatalf("unexpected aria-describedby %q", v)
	}
	errorText := findOne(t, doc, bySlot("error"))
	if got := textOf(errorText); got != "Required" {
		t.Fatalf("unexpected error text %q", got)
	}
	if v, _ := attr(errorText, "role"); v != "alert" {
		t.Fatal("expected error to be announced")
	}
	if got := textOf(findOne(t, doc, bySlot("help"))); got != "As printed on the photo page" {
		t.Fatalf("unexpected help text %q", got)
	}
}

func TestInputClassesVariants(t *testing.T) {
	t.Parallel()

	variants := []FieldVariant{FieldDefault, FieldGlass, FieldFilled}
	seen := map[string]bool{}
	for _, v := range variants {
		got := InputClasses(v, false)
		if seen[got] {
			t.Fatalf("variant %d shares classes with another variant", v)
		}
		seen[got] = true
		containsNone(t, got, "border-red-500")
		containsAll(t, InputClasses(v, true), "border-red-500")
	}
	if InputClasses(FieldVariant(42), false) != InputClasses(FieldDefault, false) {
		t.Fatal("expected unknown variant to fall back to default")
	}
}

func TestSelectFieldPlaceholderOnlyWhenSet(t *testing.T) {
	t.Parallel()

	options := []SelectOption{
		{Value: "adventure", Label: "Adventure"},
		{Value: "nature", Label: "Nature", Disabled: true},
		{Value: "vibe", Label: "Vibe"},
	}

	doc := parse(t, render(t, SelectField(SelectFieldProps{Label: "Theme", Options: options, Value: "vibe"})))
	rendered := findAll(doc, byTag("option"))
	if len(rendered) != len(options) {
		t.Fatalf("expected %d options, got %d", len(options), len(rendered))
	}
	for i, o := range rendered {
		if got := textOf(o); got != options[i].Label {
			t.Fatalf("option %d = %q, want %q", i, got, options[i].Label)
		}
	}
	if !hasAttr(rendered[1], "disabled") {
		t.Fatal("expected disabled option")
	}
	if !hasAttr(rendered[2], "selected") || hasAttr(rendered[0], "selected") {
		t.Fatal("expected only the matching option to be selected")
	}

	doc = parse(t, render(t, SelectField(SelectFieldProps{Label: "Theme", Options: options, Placeholder: "Pick one"})))
	rendered = findAll(doc, byTag("option"))
	if len(rendered) != len(options)+1 {
		t.Fatalf("expected placeholder plus options, got %d", len(rendered))
	}
	first := rendered[0]
	if v, _ := attr(first, "value"); v != "" || !hasAttr(first, "disabled") || !hasAttr(first, "selected") {
		t.Fatal("expected a disabled, selected, empty placeholder option")
	}
	if got := textOf(first); got != "Pick one" {
		t.Fatalf("unexpected placeholder %q", got)
	}
	sel := findOne(t, doc, byTag("select"))
	if v, _ := attr(sel, "id"); v != "theme" {
		t.Fatalf("expected derived id, got %q", v)
	}
}

func TestTextAreaField(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, TextAreaField(TextAreaFieldProps{Label: "Notes", Value: "<b>bring boots</b>"})))
	area := findOne(t, doc, byTag("textarea"))
	if v, _ := attr(area, "rows"); v != "4" {
		t.Fatalf("expected default rows, got %q", v)
	}
	if got := textOf(area); got != "<b>bring boots</b>" {
		t.Fatalf("expected escaped value to round trip, got %q", got)
	}
	if len(findAll(doc, byTag("b"))) != 0 {
		t.Fatal("value must not be rendered as markup")
	}

	area = findOne(t, parse(t, render(t, TextAreaField(TextAreaFieldProps{Label: "Notes", Rows: 8}))), byTag("textarea"))
	if v, _ := attr(area, "rows"); v != "8" {
		t.Fatalf("expected 8 rows, got %q", v)
	}
}

func TestCheckboxFieldBindsLabel(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, CheckboxField(CheckboxFieldProps{
		Label:       "Visa free only",
		Description: "Hide destinations that need a visa",
		Checked:     true,
	})))
	input := findOne(t, doc, byTag("input"))
	id, _ := attr(input, "id")
	if id != "visa-free-only" {
		t.Fatalf("unexpected id %q", id)
	}
	if v, _ := attr(input, "type"); v != "checkbox" {
		t.Fatalf("unexpected type %q", v)
	}
	if !hasAttr(input, "checked") {
		t.Fatal("expected checked attribute")
	}
	label := findOne(t, doc, byTag("label"))
	if v, _ := attr(label, "for"); v != id {
		t.Fatalf("expected label for=%q, got %q", id, v)
	}
	if got := textOf(findOne(t, doc, bySlot("description"))); got != "Hide destinations that need a visa" {
		t.Fatalf("unexpected description %q", got)
	}

	out := render(t, CheckboxField(CheckboxFieldProps{Label: "Visa free only"}))
	if strings.Index(out, "<input") > strings.Index(out, "<label") {
		t.Fatal("expected the input to precede its label")
	}
	if hasAttr(findOne(t, parse(t, out), byTag("input")), "checked") {
		t.Fatal("expected unchecked by default")
	}
}

func TestFieldClassAppliesToControlAndWrapperClassToWrapper(t *testing.T) {
	t.Parallel()

	doc := parse(t, render(t, FormField(FormFieldProps{
		Label:        "City",
		Class:        "tracking-wide",
		WrapperClass: "col-span-2",
		Attrs:        templ.Attributes{"autocomplete": "off"},
	})))
	input := findOne(t, doc, byTag("input"))
	classes, _ := attr(input, "class")
	containsAll(t, classes, "tracking-wide")
	if v, _ := attr(input, "autocomplete"); v != "off" {
		t.Fatal("expected passthrough attributes on the input")
	}
	wrapper := findOne(t, doc, bySlot("form-field"))
	classes, _ = attr(wrapper, "class")
	containsAll(t, classes, "col-span-2")
	containsNone(t, classes, "tracking-wide")
}

func TestFieldCallerIDBindsLabelAndMessages(t *testing.T) {
	t.Parallel()

	out := render(t, FormField(FormFieldProps{
		Label: "Email Address",
		Error: "Required",
		Attrs: templ.Attributes{"id": "contact-email", "type": "email"},
	}))
	if n := strings.Count(out, ` id="contact-email"`); n != 1 {
		t.Fatalf("expected one caller id on the input, got %d in %s", n, out)
	}
	if strings.Contains(out, `"email-address"`) {
		t.Fatalf("expected derived id to be replaced, got %s", out)
	}
	if n := strings.Count(out, ` type=`); n != 1 || !strings.Contains(out, `type="email"`) {
		t.Fatalf("expected a single caller type, got %s", out)
	}
	for _, want := range []string{`for="contact-email"`, `aria-describedby="contact-email-error"`, `id="contact-email-error"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestCheckboxAndSelectCallerAttributesWin(t *testing.T) {
	t.Parallel()

	checkbox := render(t, CheckboxField(CheckboxFieldProps{
		Label: "Visa free",
		Name:  "visa",
		Attrs: templ.Attributes{"name": "visa_free"},
	}))
	if n := strings.Count(checkbox, ` name=`); n != 1 || !strings.Contains(checkbox, `name="visa_free"`) {
		t.Fatalf("expected caller name only, got %s", checkbox)
	}
	if !strings.Contains(checkbox, `type="checkbox"`) {
		t.Fatalf("expected checkbox type, got %s", checkbox)
	}

	sel := render(t, SelectField(SelectFieldProps{
		Label:    "Theme",
		Disabled: true,
		Attrs:    templ.Attributes{"disabled": false},
	}))
	if hasAttr(findOne(t, parse(t, sel), byTag("select")), "disabled") {
		t.Fatalf("expected caller to clear disabled, got %s", sel)
	}
}
