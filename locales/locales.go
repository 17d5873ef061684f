package locales

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mealforecast/models"
)

//go:embed locales.json
var localesJSON []byte

// Locales holds every user-facing string of the form (pt-BR).
type Locales struct {
	Weekdays []string                           `json:"weekdays"`
	Months   []string                           `json:"months"`
	Meals    map[models.MealType]string         `json:"meals"`
	Holidays map[models.HolidayCondition]string `json:"holidays"`
	Form     Form                               `json:"form"`
	Messages Messages                           `json:"messages"`
	Footer   string                             `json:"footer"`
}

type Form struct {
	Title         string `json:"title"`
	Date          string `json:"date"`
	SelectedDate  string `json:"selected_date"`
	Vacation      string `json:"vacation"`
	Holiday       string `json:"holiday"`
	Meal          string `json:"meal"`
	NoServiceHint string `json:"no_service_hint"`
	PriorSales    string `json:"prior_sales"`
	Submit        string `json:"submit"`
}

type Messages struct {
	MealRequired     string `json:"meal_required"`
	NoSales          string `json:"no_sales"`
	Prediction       string `json:"prediction"`
	InvalidInput     string `json:"invalid_input"`
	PredictionFailed string `json:"prediction_failed"`
}

// L is the loaded locale.
var L Locales

func init() {
	if err := json.Unmarshal(localesJSON, &L); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse locales.json")
	}
}

// Weekday returns the Portuguese weekday name of t.
func Weekday(t time.Time) string {
	return L.Weekdays[(int(t.Weekday())+6)%7]
}

// Month returns the Portuguese month name of t.
func Month(t time.Time) string {
	return L.Months[t.Month()-1]
}

// SelectedDate renders the target date, e.g. "10 de Junho (Segunda-feira)".
func SelectedDate(t time.Time) string {
	return fmt.Sprintf("%d de %s (%s)", t.Day(), Month(t), Weekday(t))
}

// LookbackLabel renders a prior-day input label, e.g. "Segunda-feira (03/06/2024)".
func LookbackLabel(t time.Time) string {
	return fmt.Sprintf("%s (%s)", Weekday(t), t.Format("02/01/2006"))
}

// PriorSales renders the heading above the n prior-day inputs.
func PriorSales(n int) string {
	return fmt.Sprintf(L.Form.PriorSales, n)
}

// Prediction renders the result line for a rounded quantity.
func Prediction(quantity int) string {
	return fmt.Sprintf(L.Messages.Prediction, quantity)
}
