package views

import (
	"embed"
	"html/template"
	"io"

	"mealforecast/locales"
)

//go:embed templates/*.html
var templateFS embed.FS

var index = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Option is one radio button or select entry.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// LookbackInput is one prior-day quantity field.
type LookbackInput struct {
	Label    string
	Quantity int
}

// Page is everything the form template renders.
type Page struct {
	Locale          *locales.Locales
	Date            string
	SelectedDate    string
	Vacation        bool
	Holidays        []Option
	Meals           []Option
	NoServiceHint   bool
	PriorSalesTitle string
	Lookback        []LookbackInput
	Error           string
	Warning         string
	Success         string
}

// RenderIndex writes the form page.
func RenderIndex(w io.Writer, page Page) error {
	if page.Locale == nil {
		page.Locale = &locales.L
	}
	return index.Execute(w, page)
}
