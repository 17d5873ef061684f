package models

import (
	"math"
	"time"
)

// Feature names expected by the trained artifact.
const (
	FeatureVacation    = "É_FÉRIAS"
	FeatureHoliday     = "FERIADO"
	FeaturePreHoliday  = "PRÉ_FERIADO"
	FeaturePostHoliday = "PÓS_FERIADO"
	FeatureWeekdaySin  = "DIA_SEM_SIN"
	FeatureWeekdayCos  = "DIA_SEM_COS"
	FeatureMonthSin    = "MES_SIN"
	FeatureMonthCos    = "MES_COS"

	// FeatureSalesPrefix is followed by 1..N, 1 being the oldest lookback day.
	FeatureSalesPrefix = "POLO_QUANTIDADE_"
)

// DateLayout is the wire format for dates in forms and the JSON API.
const DateLayout = "2006-01-02"

// MealType is the dish served on the target date.
type MealType string

const (
	MealNone          MealType = "none"
	MealPoultry       MealType = "poultry"
	MealCreamyPoultry MealType = "creamy_poultry"
	MealCreamyBeef    MealType = "creamy_beef"
	MealBeefStew      MealType = "beef_stew"
	MealMixed         MealType = "mixed"
	MealFishSeafood   MealType = "fish_seafood"
	MealNoService     MealType = "no_service"
	MealPork          MealType = "pork"
)

// MealTypes lists the selectable dishes in display order.
var MealTypes = []MealType{
	MealPoultry,
	MealCreamyPoultry,
	MealCreamyBeef,
	MealBeefStew,
	MealMixed,
	MealFishSeafood,
	MealNoService,
	MealPork,
}

var mealFeatureKeys = map[MealType]string{
	MealPoultry:       "prato_aves",
	MealCreamyPoultry: "prato_aves_cremosas",
	MealCreamyBeef:    "prato_bovino_cremosas",
	MealBeefStew:      "prato_bovino_ensopadas",
	MealMixed:         "prato_mistos",
	MealFishSeafood:   "prato_peixe_fruto_do_mar",
	MealNoService:     "prato_sem_serviço",
	MealPork:          "prato_suino",
}

// FeatureKey returns the one-hot column name for the meal type, or "" for
// MealNone and unknown values.
func (m MealType) FeatureKey() string {
	return mealFeatureKeys[m]
}

// Valid reports whether m is MealNone or one of MealTypes.
func (m MealType) Valid() bool {
	return m == MealNone || m.FeatureKey() != ""
}

// HolidayCondition is the target date's relation to a public holiday.
type HolidayCondition string

const (
	HolidayNone HolidayCondition = "none"
	HolidayOn   HolidayCondition = "holiday"
	HolidayPre  HolidayCondition = "pre_holiday"
	HolidayPost HolidayCondition = "post_holiday"
)

// HolidayConditions lists the radio options in display order.
var HolidayConditions = []HolidayCondition{HolidayNone, HolidayOn, HolidayPre, HolidayPost}

// Valid reports whether h is one of HolidayConditions.
func (h HolidayCondition) Valid() bool {
	switch h {
	case HolidayNone, HolidayOn, HolidayPre, HolidayPost:
		return true
	}
	return false
}

// PredictionRequest is one form submission. PriorSales are the quantities
// sold on the lookback days, oldest first.
type PredictionRequest struct {
	Date             string           `json:"date" form:"date"`
	Vacation         bool             `json:"vacation" form:"vacation"`
	HolidayCondition HolidayCondition `json:"holidayCondition" form:"holidayCondition"`
	MealType         MealType         `json:"mealType" form:"mealType"`
	PriorSales       []int            `json:"priorSales" form:"priorSales"`
}

// PredictionInput is the flat feature mapping handed to the model.
type PredictionInput map[string]float64

// PredictedQuantity is a non-negative model output.
type PredictedQuantity float64

// Rounded returns the quantity as displayed, rounding half to even.
func (q PredictedQuantity) Rounded() int {
	return int(math.RoundToEven(float64(q)))
}

// PredictionResult is returned to the form and the JSON API.
type PredictionResult struct {
	Date      string            `json:"date"`
	Quantity  PredictedQuantity `json:"quantity"`
	Rounded   int               `json:"rounded"`
	NoSales   bool              `json:"noSales"`
	ModelUsed bool              `json:"modelUsed"`
	Input     PredictionInput   `json:"input,omitempty"`
}

// BusinessDay is a calendar date with its weekday index,
// 0 for Monday through 6 for Sunday.
type BusinessDay struct {
	Date         time.Time `json:"-"`
	ISODate      string    `json:"date"`
	WeekdayIndex int       `json:"weekdayIndex"`
	Label        string    `json:"label"`
}

// IsBusinessDay reports whether the day falls Monday through Friday.
func (b BusinessDay) IsBusinessDay() bool {
	return b.WeekdayIndex < 5
}

// SalesHistory holds prior-day quantities read from the sales database.
type SalesHistory struct {
	Date       string        `json:"date"`
	Days       []BusinessDay `json:"days"`
	Quantities []int         `json:"quantities"`
}
