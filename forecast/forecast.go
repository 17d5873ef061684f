// Package forecast turns a form submission into a predicted meal count.
package forecast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"mealforecast/ml"
	"mealforecast/models"
	"mealforecast/utils"
)

// ErrMealTypeRequired is returned when no dish was selected.
var ErrMealTypeRequired = errors.New("forecast: meal type is required")

// ValidationError describes a malformed form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("forecast: invalid %s: %s", e.Field, e.Message)
}

// Predictor is the part of ml.Model the service needs.
type Predictor interface {
	PredictFrame(frame ml.Frame) ([]float64, error)
}

// Service validates requests and calls the model.
type Service struct {
	model        Predictor
	lookbackDays int
}

// NewService builds a service over model expecting lookbackDays prior sales.
func NewService(model Predictor, lookbackDays int) *Service {
	return &Service{model: model, lookbackDays: lookbackDays}
}

// LookbackDays is the number of prior business days the model consumes.
func (s *Service) LookbackDays() int {
	return s.lookbackDays
}

// LookbackDaysOf counts the contiguous POLO_QUANTIDADE_1..n columns in features.
func LookbackDaysOf(features []string) int {
	present := make(map[string]bool, len(features))
	for _, f := range features {
		present[f] = true
	}
	n := 0
	for present[models.FeatureSalesPrefix+strconv.Itoa(n+1)] {
		n++
	}
	return n
}

// Predict runs one prediction. Weekends and holidays short-circuit to zero
// without calling the model.
func (s *Service) Predict(req models.PredictionRequest) (models.PredictionResult, error) {
	target, err := s.Validate(req)
	if err != nil {
		return models.PredictionResult{}, err
	}

	result := models.PredictionResult{Date: target.Format(models.DateLayout)}
	if req.HolidayCondition == models.HolidayOn || utils.IsWeekend(target) {
		result.NoSales = true
		return result, nil
	}

	input := BuildInput(target, req)
	quantity, err := s.PredictInput(input)
	if err != nil {
		return models.PredictionResult{}, err
	}

	result.Quantity = quantity
	result.Rounded = quantity.Rounded()
	result.ModelUsed = true
	result.Input = input
	return result, nil
}

// PredictInput runs the model on a single feature mapping.
func (s *Service) PredictInput(input models.PredictionInput) (models.PredictedQuantity, error) {
	preds, err := s.model.PredictFrame(ml.Frame{input})
	if err != nil {
		return 0, fmt.Errorf("forecast: model prediction: %w", err)
	}
	if len(preds) != 1 {
		return 0, fmt.Errorf("forecast: model returned %d values for one row", len(preds))
	}
	if math.IsNaN(preds[0]) {
		return 0, fmt.Errorf("forecast: %w", ml.ErrNaNPrediction)
	}
	return models.PredictedQuantity(max(preds[0], 0)), nil
}

// Validate checks the request and returns the parsed target date.
func (s *Service) Validate(req models.PredictionRequest) (time.Time, error) {
	target, err := utils.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	if req.HolidayCondition != "" && !req.HolidayCondition.Valid() {
		return time.Time{}, &ValidationError{Field: "holidayCondition", Message: fmt.Sprintf("unknown value %q", req.HolidayCondition)}
	}
	if req.MealType == models.MealNone || req.MealType == "" {
		return time.Time{}, ErrMealTypeRequired
	}
	if !req.MealType.Valid() {
		return time.Time{}, &ValidationError{Field: "mealType", Message: fmt.Sprintf("unknown value %q", req.MealType)}
	}
	if len(req.PriorSales) != s.lookbackDays {
		return time.Time{}, &ValidationError{Field: "priorSales", Message: fmt.Sprintf("expected %d values, got %d", s.lookbackDays, len(req.PriorSales))}
	}
	for i, q := range req.PriorSales {
		if q < 0 {
			return time.Time{}, &ValidationError{Field: "priorSales", Message: fmt.Sprintf("value %d is negative", i+1)}
		}
	}
	return target, nil
}

// BuildInput assembles the feature mapping for target.
func BuildInput(target time.Time, req models.PredictionRequest) models.PredictionInput {
	weekdaySin, weekdayCos := utils.CyclicalEncode(utils.WeekdayIndex(target), 7)
	monthSin, monthCos := utils.CyclicalEncode(int(target.Month())-1, 12)

	input := models.PredictionInput{
		models.FeatureVacation:    indicator(req.Vacation),
		models.FeatureHoliday:     indicator(req.HolidayCondition == models.HolidayOn),
		models.FeaturePreHoliday:  indicator(req.HolidayCondition == models.HolidayPre),
		models.FeaturePostHoliday: indicator(req.HolidayCondition == models.HolidayPost),
		models.FeatureWeekdaySin:  weekdaySin,
		models.FeatureWeekdayCos:  weekdayCos,
		models.FeatureMonthSin:    monthSin,
		models.FeatureMonthCos:    monthCos,
	}
	for _, meal := range models.MealTypes {
		input[meal.FeatureKey()] = indicator(meal == req.MealType)
	}
	for i, q := range req.PriorSales {
		input[models.FeatureSalesPrefix+strconv.Itoa(i+1)] = float64(q)
	}
	return input
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
