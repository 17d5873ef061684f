package handlers

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"mealforecast/forecast"
	"mealforecast/locales"
	"mealforecast/logger"
	"mealforecast/models"
	"mealforecast/utils"
	"mealforecast/views"
)

// HandleGetForm renders the form for ?date= (today by default). The other
// form fields are read from the query too, so changing the date keeps what
// was already entered.
// GET /
func HandleGetForm(c *fiber.Ctx) error {
	req, _ := requestFromArgs(c.Context().QueryArgs(), true)

	target, err := utils.ParseDate(req.Date)
	if err != nil {
		target = utils.Today()
	}
	req.Date = target.Format(models.DateLayout)
	if !req.HolidayCondition.Valid() {
		req.HolidayCondition = models.HolidayNone
	}
	if !req.MealType.Valid() {
		req.MealType = models.MealNone
	}
	return renderForm(c, fiber.StatusOK, target, req, views.Page{})
}

// HandleSubmitForm runs a prediction from the posted form and re-renders it.
// POST /
func HandleSubmitForm(c *fiber.Ctx) error {
	req, err := requestFromArgs(c.Request().PostArgs(), false)
	target, dateErr := utils.ParseDate(req.Date)
	if dateErr != nil {
		target = utils.Today()
	}
	if err != nil || dateErr != nil {
		return renderForm(c, fiber.StatusBadRequest, target, req, views.Page{Error: locales.L.Messages.InvalidInput})
	}

	model, err := modelOrUnavailable()
	if err != nil {
		return renderForm(c, fiber.StatusServiceUnavailable, target, req, views.Page{Error: locales.L.Messages.PredictionFailed})
	}

	result, err := newService(model).Predict(req)
	var verr *forecast.ValidationError
	switch {
	case errors.Is(err, forecast.ErrMealTypeRequired):
		return renderForm(c, fiber.StatusBadRequest, target, req, views.Page{Error: locales.L.Messages.MealRequired})
	case errors.As(err, &verr):
		return renderForm(c, fiber.StatusBadRequest, target, req, views.Page{Error: locales.L.Messages.InvalidInput})
	case err != nil:
		logger.Component("form").Error().Err(err).Str("date", req.Date).Msg("Prediction failed")
		return renderForm(c, fiber.StatusInternalServerError, target, req, views.Page{Error: locales.L.Messages.PredictionFailed})
	}

	page := views.Page{Success: locales.Prediction(result.Rounded)}
	if result.NoSales {
		page.Warning = locales.L.Messages.NoSales
	}
	return renderForm(c, fiber.StatusOK, target, req, page)
}

// requestFromArgs reads the urlencoded form fields. Blank quantities count
// as zero; unparseable ones fail unless lenient is set, in which case they
// also count as zero.
func requestFromArgs(args *fasthttp.Args, lenient bool) (models.PredictionRequest, error) {
	vacation := string(args.Peek("vacation"))
	req := models.PredictionRequest{
		Date:             string(args.Peek("date")),
		Vacation:         vacation == "true" || vacation == "on",
		HolidayCondition: models.HolidayCondition(argOrDefault(args, "holidayCondition", string(models.HolidayNone))),
		MealType:         models.MealType(argOrDefault(args, "mealType", string(models.MealNone))),
	}

	for _, raw := range args.PeekMulti("priorSales") {
		value := strings.TrimSpace(string(raw))
		if value == "" {
			req.PriorSales = append(req.PriorSales, 0)
			continue
		}
		q, err := strconv.Atoi(value)
		if err != nil {
			if lenient {
				req.PriorSales = append(req.PriorSales, 0)
				continue
			}
			return req, err
		}
		req.PriorSales = append(req.PriorSales, q)
	}
	return req, nil
}

func argOrDefault(args *fasthttp.Args, key, defaultValue string) string {
	if value := args.Peek(key); len(value) > 0 {
		return string(value)
	}
	return defaultValue
}

func renderForm(c *fiber.Ctx, status int, target time.Time, req models.PredictionRequest, page views.Page) error {
	n := lookbackDays()

	page.Date = target.Format(models.DateLayout)
	page.SelectedDate = locales.SelectedDate(target)
	page.Vacation = req.Vacation
	page.NoServiceHint = req.MealType == models.MealNoService
	page.PriorSalesTitle = locales.PriorSales(n)

	for _, h := range models.HolidayConditions {
		page.Holidays = append(page.Holidays, views.Option{
			Value:    string(h),
			Label:    locales.L.Holidays[h],
			Selected: h == req.HolidayCondition,
		})
	}
	page.Meals = append(page.Meals, views.Option{
		Value:    string(models.MealNone),
		Label:    locales.L.Meals[models.MealNone],
		Selected: req.MealType == models.MealNone || req.MealType == "",
	})
	for _, m := range models.MealTypes {
		page.Meals = append(page.Meals, views.Option{
			Value:    string(m),
			Label:    locales.L.Meals[m],
			Selected: m == req.MealType,
		})
	}

	for i, day := range utils.BusinessDays(target, n, locales.LookbackLabel) {
		input := views.LookbackInput{Label: day.Label}
		if i < len(req.PriorSales) {
			input.Quantity = req.PriorSales[i]
		}
		page.Lookback = append(page.Lookback, input)
	}

	var buf bytes.Buffer
	if err := views.RenderIndex(&buf, page); err != nil {
		logger.Component("form").Error().Err(err).Msg("Failed to render form")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to render form")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
