package pages

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	c "tripdeck/internal/views/components"
	"tripdeck/internal/views/icons"
	"tripdeck/internal/views/layout"
	"tripdeck/internal/views/theme"
	"tripdeck/models"
)

// ThemePreferenceURL receives theme picker submissions.
const ThemePreferenceURL = "/gallery/preferences/theme"

// MediaURL asks for image index of a destination carousel.
func MediaURL(destinationID uint, index int) string {
	return fmt.Sprintf("/gallery/destinations/%d/media?index=%d", destinationID, index)
}

// ToggleURL flips the toggle with key.
func ToggleURL(key string) string {
	return "/gallery/toggles/" + url.PathEscape(key)
}

// TagURL removes a tag from a destination card.
func TagURL(destinationID uint, slug string) string {
	return fmt.Sprintf("/gallery/destinations/%d/tags/%s", destinationID, url.PathEscape(slug))
}

// MediaElementID is the DOM id of a destination carousel.
func MediaElementID(destinationID uint) string {
	return fmt.Sprintf("media-%d", destinationID)
}

// gridSwap re-renders only the destination grid out of a gallery response.
var gridSwap = templ.Attributes{
	"hx-target":   "#destination-grid",
	"hx-select":   "#destination-grid",
	"hx-swap":     "outerHTML",
	"hx-push-url": "true",
}

// GalleryPage renders the full document.
func GalleryPage(s GallerySnapshot) templ.Component {
	return layout.Layout("tripdeck component gallery", layout.ThemeByKey(s.Theme), galleryNav(s), GalleryPartial(s))
}

// GalleryPartial renders the gallery body served to HTMX requests.
func GalleryPartial(s GallerySnapshot) templ.Component {
	return c.Element("div", "space-y-12", templ.Attributes{"id": "gallery", "data-theme": s.Theme.String()},
		section("Destinations", "Cards composed from the fixture catalogue.", FilterForm(s.Filters), DestinationGrid(s)),
		section("Cards", "Surfaces and insight tones.", CardShowcase(s)),
		section("Buttons", "Variants, sizes, states and toggles.", ButtonShowcase(s)),
		section("Badges", "Variants, sizes and presets.", BadgeShowcase(s)),
		section("Forms", "Field variants with label, help and error chrome.", FormShowcase()),
	)
}

func section(title, subtitle string, body ...templ.Component) templ.Component {
	header := c.Element("div", "space-y-1", nil,
		c.Element("h2", "text-lg font-semibold text-white", nil, c.Text(title)),
		c.Element("p", "text-sm text-white/60", nil, c.Text(subtitle)),
	)
	return c.Element("section", "space-y-4", templ.Attributes{"data-section": TagSlug(title)},
		append([]templ.Component{header}, body...)...)
}

func row(children ...templ.Component) templ.Component {
	return c.Element("div", "flex flex-wrap items-center gap-3", nil, children...)
}

func galleryNav(s GallerySnapshot) templ.Component {
	return c.Element("div", "mx-auto flex max-w-7xl flex-wrap items-end justify-between gap-4", nil,
		c.Element("h1", "text-xl font-semibold", nil, c.Text("tripdeck components")),
		ThemePicker(s.Theme),
	)
}

func themeSelectOptions() []c.SelectOption {
	defs := layout.ThemeOptions()
	options := make([]c.SelectOption, 0, len(defs))
	for _, def := range defs {
		options = append(options, c.SelectOption{Value: def.Key.String(), Label: def.Label})
	}
	return options
}

// ThemePicker posts the preferred theme whenever the selection changes.
func ThemePicker(current theme.Key) templ.Component {
	return c.Element("form", "w-64", templ.Attributes{
		"hx-post":    ThemePreferenceURL,
		"hx-trigger": "change",
		"hx-swap":    "none",
		"data-slot":  "theme-picker",
	}, c.SelectField(c.SelectFieldProps{
		Label:    "Theme",
		ID:       "preferred-theme",
		Name:     "theme",
		Options:  themeSelectOptions(),
		Value:    theme.Validate(string(current)).String(),
		HelpText: layout.ThemeByKey(current).Description,
		Variant:  c.FieldGlass,
	}))
}

// FilterForm narrows the destination grid.
func FilterForm(f GalleryFilters) templ.Component {
	options := []c.SelectOption{{Value: "", Label: "All themes"}}
	for _, opt := range theme.Options() {
		options = append(options, c.SelectOption{Value: opt.Value, Label: opt.Label})
	}
	attrs := mergeAttributes(templ.Attributes{
		"hx-get":     "/gallery",
		"hx-trigger": "change, keyup changed delay:300ms from:input[name=q]",
		"data-slot":  "filters",
	}, gridSwap)
	return c.Element("form", "grid items-end gap-4 md:grid-cols-3", attrs,
		c.FormField(c.FormFieldProps{
			Label:       "Search",
			ID:          "filter-q",
			Name:        "q",
			Type:        "search",
			Value:       f.Query,
			Placeholder: "City, country or tag",
			Variant:     c.FieldGlass,
		}),
		c.SelectField(c.SelectFieldProps{
			Label:   "Theme",
			ID:      "filter-theme",
			Name:    "theme",
			Options: options,
			Value:   f.Theme.String(),
			Variant: c.FieldGlass,
		}),
		c.CheckboxField(c.CheckboxFieldProps{
			Label:       "Visa free only",
			ID:          "filter-visa-free",
			Name:        "visa_free",
			Value:       "on",
			Checked:     f.VisaFreeOnly,
			Description: "Hide destinations that need a visa",
		}),
	)
}

// DestinationGrid renders one card per visible destination.
func DestinationGrid(s GallerySnapshot) templ.Component {
	visible := s.Visible()
	attrs := templ.Attributes{"id": "destination-grid", "data-count": fmt.Sprint(len(visible))}
	if len(visible) == 0 {
		return c.Element("div", "", attrs, c.CardInsight(c.CardInsightProps{
			Tone:    c.InsightInfo,
			Message: "No destinations match these filters.",
		}))
	}
	cards := make([]templ.Component, 0, len(visible))
	for _, d := range visible {
		cards = append(cards, DestinationCard(d, s))
	}
	return c.Element("div", "grid gap-6 md:grid-cols-2 xl:grid-cols-3", attrs, cards...)
}

// DestinationCard composes the card family for one destination.
func DestinationCard(d models.Destination, s GallerySnapshot) templ.Component {
	k := theme.Validate(d.Theme)
	content := []templ.Component{
		c.CardStats(c.CardStatsProps{Columns: 3, Stats: destinationStats(d)}),
	}
	if d.Insight != "" {
		content = append(content, c.CardInsight(c.CardInsightProps{Tone: InsightToneFor(d.InsightTone), Message: d.Insight}))
	}
	content = append(content,
		TagRow(d, s),
		c.Element("div", "flex items-center justify-between gap-2", nil,
			c.PriceBadge(c.PriceBadgeProps{Trend: TrendFor(d.PriceTrend), Label: "from " + FormatPrice(d.PriceFrom)}),
			ToggleChip(ToggleSpec{Key: ShortlistKey(d), Label: "Shortlist", Theme: k}, s.Toggles[ShortlistKey(d)]),
		),
	)

	return c.With(c.Card(c.CardProps{
		Hover: true,
		Attrs: templ.Attributes{"id": fmt.Sprintf("destination-%d", d.ID), "data-destination": d.Slug},
	}),
		DestinationMedia(d, s.ImageIndex(d)),
		c.CardHeader(c.CardHeaderProps{
			Title:    d.Name,
			Subtitle: d.Country,
			Flag:     d.Flag,
			Badge:    c.StatusBadge(c.StatusBadgeProps{Status: StatusFor(d.Status), Size: c.BadgeSM}),
		}),
		c.With(c.CardContent(c.CardContentProps{}), content...),
		c.CardAction(c.CardActionProps{
			Label:   "Explore " + theme.Label(k) + " trips",
			Theme:   k,
			Icon:    icons.ChevronRight.Class("h-4 w-4"),
			OnClick: mergeAttributes(templ.Attributes{"hx-get": "/gallery?theme=" + k.String()}, gridSwap),
		}),
	)
}

func mergeAttributes(sets ...templ.Attributes) templ.Attributes {
	merged := templ.Attributes{}
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}

func destinationStats(d models.Destination) []c.Stat {
	return []c.Stat{
		{Icon: icons.Star.Class("h-4 w-4"), Value: FormatRating(d.Rating), Label: "Rating", Color: "text-amber-300"},
		{Icon: icons.Users.Class("h-4 w-4"), Value: FormatCount(d.Travellers), Label: "Travellers"},
		{Icon: icons.Clock.Class("h-4 w-4"), Value: DefaultDash(d.BestMonths), Label: "Best time"},
	}
}

// DestinationMedia renders the carousel of d at index. Its controls ask the
// server for the neighbouring image, which swaps this element in place.
func DestinationMedia(d models.Destination, index int) templ.Component {
	k := theme.Validate(d.Theme)
	overlay := []templ.Component{c.ThemeBadge(c.ThemeBadgeProps{Theme: k, Size: c.BadgeSM})}
	if d.VisaFree {
		overlay = append(overlay, c.VisaFreeBadge(c.VisaFreeBadgeProps{Size: c.BadgeSM}))
	}
	target := "#" + MediaElementID(d.ID)
	return c.With(c.CardMedia(c.CardMediaProps{
		Images:       d.ImageURLs(),
		CurrentIndex: index,
		Alt:          d.Name,
		OnImageChange: func(i int) templ.Attributes {
			return templ.Attributes{"hx-get": MediaURL(d.ID, i), "hx-target": target, "hx-swap": "outerHTML"}
		},
		Attrs: templ.Attributes{"id": MediaElementID(d.ID)},
	}), overlay...)
}

// TagRow renders the tags of d that are still visible as removable badges.
func TagRow(d models.Destination, s GallerySnapshot) templ.Component {
	labels := s.VisibleTags(d)
	if len(labels) == 0 {
		return templ.NopComponent
	}
	k := theme.Validate(d.Theme)
	badges := make([]templ.Component, 0, len(labels))
	for _, label := range labels {
		slug := TagSlug(label)
		badges = append(badges, c.Badge(c.BadgeProps{
			Theme:     k,
			Size:      c.BadgeSM,
			Label:     label,
			Removable: true,
			OnRemove: templ.Attributes{
				"hx-delete": TagURL(d.ID, slug),
				"hx-target": "closest [data-tag]",
				"hx-swap":   "outerHTML",
			},
			Attrs: templ.Attributes{"data-tag": slug},
		}))
	}
	return c.Element("div", "flex flex-wrap gap-1.5", templ.Attributes{"data-slot": "tags"}, badges...)
}

// ToggleChip renders a toggle whose state lives in the session.
func ToggleChip(spec ToggleSpec, selected bool) templ.Component {
	var icon templ.Component
	if selected {
		icon = icons.Check.Class("h-4 w-4")
	}
	return c.ToggleButton(c.ToggleButtonProps{
		Size:     c.ButtonSM,
		Theme:    spec.Theme,
		Selected: selected,
		Icon:     icon,
		Label:    spec.Label,
		OnClick:  templ.Attributes{"hx-post": ToggleURL(spec.Key), "hx-swap": "outerHTML"},
		Attrs:    templ.Attributes{"id": "toggle-" + spec.Key, "data-toggle": spec.Key},
	})
}

// CardShowcase renders each card surface and insight tone.
func CardShowcase(s GallerySnapshot) templ.Component {
	surfaces := []struct {
		variant c.CardVariant
		label   string
	}{
		{c.CardGlass, "Glass"},
		{c.CardSolid, "Solid"},
		{c.CardOutline, "Outline"},
		{c.CardMinimal, "Minimal"},
	}
	cards := make([]templ.Component, 0, len(surfaces))
	for _, surface := range surfaces {
		cards = append(cards, c.With(c.Card(c.CardProps{Variant: surface.variant, Interactive: true}),
			c.CardHeader(c.CardHeaderProps{Title: surface.label, Subtitle: surface.variant.String() + " surface"}),
			c.With(c.CardContent(c.CardContentProps{}), c.Text("Cards assume nothing about their content.")),
		))
	}

	tones := []struct {
		tone    c.InsightTone
		message string
	}{
		{c.InsightPrice, "Fares dropped 12% this week."},
		{c.InsightTrend, "Searches up 3x since last month."},
		{c.InsightUrgency, "Only 4 rooms left at this price."},
		{c.InsightInfo, "Prices include taxes and fees."},
		{c.InsightWarning, "Entry rules changed recently."},
		{c.InsightSuccess, "All suppliers synced."},
	}
	insights := make([]templ.Component, 0, len(tones))
	for _, t := range tones {
		insights = append(insights, c.CardInsight(c.CardInsightProps{Tone: t.tone, Message: t.message}))
	}

	return c.Element("div", "space-y-6", nil,
		c.Element("div", "grid gap-4 md:grid-cols-4", nil, cards...),
		c.Element("div", "grid gap-3 md:grid-cols-3", nil, insights...),
		c.Element("div", "max-w-sm", nil, c.CardAction(c.CardActionProps{Label: "Booking", Theme: s.Theme, Loading: true})),
	)
}

// ButtonShowcase renders every button variant, size and state.
func ButtonShowcase(s GallerySnapshot) templ.Component {
	variants := []struct {
		variant c.ButtonVariant
		label   string
	}{
		{c.ButtonPrimary, "Primary"},
		{c.ButtonGlass, "Glass"},
		{c.ButtonOutline, "Outline"},
		{c.ButtonGhost, "Ghost"},
	}
	variantRow := make([]templ.Component, 0, len(variants)+1)
	for _, v := range variants {
		variantRow = append(variantRow, c.Button(c.ButtonProps{Variant: v.variant, Theme: s.Theme, Label: v.label}))
	}
	variantRow = append(variantRow, c.Button(c.ButtonProps{Variant: c.ButtonIcon, Theme: s.Theme, Icon: icons.Heart.Class("h-5 w-5"), Label: "Favourite"}))

	sizes := []struct {
		size  c.ButtonSize
		label string
	}{
		{c.ButtonSM, "Small"},
		{c.ButtonMD, "Medium"},
		{c.ButtonLG, "Large"},
		{c.ButtonXL, "Extra large"},
	}
	sizeRow := make([]templ.Component, 0, len(sizes))
	for _, size := range sizes {
		sizeRow = append(sizeRow, c.Button(c.ButtonProps{Size: size.size, Theme: s.Theme, Label: size.label}))
	}

	stateRow := []templ.Component{
		c.Button(c.ButtonProps{Theme: s.Theme, Icon: icons.Compass.Class("h-4 w-4"), Label: "With icon"}),
		c.Button(c.ButtonProps{Theme: s.Theme, Loading: true, Label: "Saving"}),
		c.Button(c.ButtonProps{Theme: s.Theme, Disabled: true, Label: "Disabled"}),
	}

	var toggleRow []templ.Component
	for _, spec := range s.ToggleSpecs()[:len(showcaseToggles)] {
		toggleRow = append(toggleRow, ToggleChip(spec, s.Toggles[spec.Key]))
	}

	var themeRow []templ.Component
	for _, k := range theme.Keys() {
		themeRow = append(themeRow, c.Button(c.ButtonProps{Theme: k, Label: theme.Label(k)}))
	}

	return c.Element("div", "space-y-4", nil,
		row(variantRow...), row(sizeRow...), row(stateRow...), row(toggleRow...), row(themeRow...))
}

// BadgeShowcase renders every badge variant, size and preset.
func BadgeShowcase(s GallerySnapshot) templ.Component {
	variants := []struct {
		variant c.BadgeVariant
		label   string
	}{
		{c.BadgeDefault, "Default"},
		{c.BadgeSecondary, "Secondary"},
		{c.BadgeSuccess, "Success"},
		{c.BadgeWarning, "Warning"},
		{c.BadgeDanger, "Danger"},
		{c.BadgeInfo, "Info"},
		{c.BadgeOutline, "Outline"},
		{c.BadgeGlass, "Glass"},
	}
	variantRow := make([]templ.Component, 0, len(variants))
	for _, v := range variants {
		variantRow = append(variantRow, c.Badge(c.BadgeProps{Variant: v.variant, Label: v.label}))
	}

	sizeRow := []templ.Component{
		c.Badge(c.BadgeProps{Theme: s.Theme, Size: c.BadgeSM, Label: "Small"}),
		c.Badge(c.BadgeProps{Theme: s.Theme, Size: c.BadgeMD, Label: "Medium"}),
		c.Badge(c.BadgeProps{Theme: s.Theme, Size: c.BadgeLG, Label: "Large"}),
	}

	presetRow := []templ.Component{
		c.StatusBadge(c.StatusBadgeProps{Status: c.StatusActive}),
		c.StatusBadge(c.StatusBadgeProps{Status: c.StatusPending}),
		c.StatusBadge(c.StatusBadgeProps{Status: c.StatusInactive}),
		c.StatusBadge(c.StatusBadgeProps{Status: c.StatusError}),
		c.PriceBadge(c.PriceBadgeProps{Trend: c.TrendUp}),
		c.PriceBadge(c.PriceBadgeProps{Trend: c.TrendDown}),
		c.PriceBadge(c.PriceBadgeProps{Trend: c.TrendStable}),
		c.VisaFreeBadge(c.VisaFreeBadgeProps{}),
	}

	var themeRow []templ.Component
	for _, k := range theme.Keys() {
		themeRow = append(themeRow, c.ThemeBadge(c.ThemeBadgeProps{Theme: k}))
	}

	return c.Element("div", "space-y-4", nil, row(variantRow...), row(sizeRow...), row(presetRow...), row(themeRow...))
}

// FormShowcase renders the field family in its main states.
func FormShowcase() templ.Component {
	return c.Element("div", "grid gap-6 md:grid-cols-2", nil,
		c.FormField(c.FormFieldProps{
			Label:       "Email Address",
			Type:        "email",
			Placeholder: "ops@tripdeck.travel",
			Required:    true,
			HelpText:    "Booking alerts go here.",
		}),
		c.FormField(c.FormFieldProps{
			Label:    "Passport Number",
			Variant:  c.FieldFilled,
			Error:    "Passport number is required.",
			HelpText: "As printed on the photo page.",
		}),
		c.SelectField(c.SelectFieldProps{
			Label:       "Preferred Cabin",
			Placeholder: "Choose a cabin",
			Options: []c.SelectOption{
				{Value: "economy", Label: "Economy"},
				{Value: "premium", Label: "Premium economy"},
				{Value: "business", Label: "Business"},
				{Value: "first", Label: "First", Disabled: true},
			},
		}),
		c.FormField(c.FormFieldProps{
			Label:    "Booking Reference",
			Value:    "TD-2041",
			Disabled: true,
			Variant:  c.FieldGlass,
		}),
		c.TextAreaField(c.TextAreaFieldProps{
			Label:       "Trip Notes",
			Placeholder: "Dietary needs, accessibility, celebrations",
			Rows:        3,
		}),
		c.CheckboxField(c.CheckboxFieldProps{
			Label:       "Travel insurance",
			Description: "Cover cancellations and medical costs.",
		}),
	)
}
