package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"metargb/datepicker-service/internal/converter"
	"metargb/datepicker-service/internal/models"
	"metargb/datepicker-service/pkg/helpers"
)

// DateService is the service surface the HTTP handlers depend on.
type DateService interface {
	Today() models.TodayResponse
	Parse(text string) models.ParseResponse
	ToGregorian(year, month, day int) (*models.DateInfo, error)
	ToJalali(date string) (*models.DateInfo, bool)
	Format(jalaliText string, withMonthName bool) (*models.FormatResponse, error)
	MonthGrid(year, month int) (*models.MonthGrid, error)
	CacheStats() converter.Stats
}

// DatePickerHandler handles HTTP REST requests for date conversion
type DatePickerHandler struct {
	service   DateService
	validator *helpers.CustomValidator
	startTime time.Time
}

// NewDatePickerHandler creates a new HTTP handler
func NewDatePickerHandler(service DateService) *DatePickerHandler {
	return &DatePickerHandler{
		service:   service,
		validator: helpers.NewCustomValidator(),
		startTime: time.Now(),
	}
}

// HandleHealth handles GET /health
func (h *DatePickerHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: "datepicker-service",
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HandleToday handles GET /api/v1/date/today
func (h *DatePickerHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.service.Today())
}

// HandleParse handles POST /api/v1/date/parse
// Unparseable text is a 200 with valid=false, not an HTTP error.
func (h *DatePickerHandler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.ParseRequest
	if err := decodeJSONBody(r, &req); err != nil {
		if err == io.EOF {
			writeError(w, http.StatusBadRequest, "request body is required")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return
	}

	writeJSON(w, http.StatusOK, h.service.Parse(req.Text))
}

// HandleToGregorian handles POST /api/v1/date/to-gregorian
func (h *DatePickerHandler) HandleToGregorian(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	locale := requestLocale(r)

	var req models.ToGregorianRequest
	if err := decodeJSONBody(r, &req); err != nil {
		if err == io.EOF {
			writeError(w, http.StatusBadRequest, "request body is required")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			helpers.WriteValidationErrorResponse(w, validationErrors, locale)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	info, err := h.service.ToGregorian(req.Year, req.Month, req.Day)
	if err != nil {
		// Bounds passed struct validation but the triple is not a real
		// date, e.g. day 30 in a non-leap Esfand.
		t := helpers.GetLocaleTranslations(locale)
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			"day": fmt.Sprintf(t.Invalid, "day"),
		}, locale)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": info})
}

// HandleToJalali handles POST /api/v1/date/to-jalali
func (h *DatePickerHandler) HandleToJalali(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	locale := requestLocale(r)

	var req models.ToJalaliRequest
	if err := decodeJSONBody(r, &req); err != nil {
		if err == io.EOF {
			writeError(w, http.StatusBadRequest, "request body is required")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			helpers.WriteValidationErrorResponse(w, validationErrors, locale)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	info, ok := h.service.ToJalali(req.Date)
	if !ok {
		t := helpers.GetLocaleTranslations(locale)
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			"date": fmt.Sprintf(t.Invalid, "date"),
		}, locale)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": info})
}

// HandleFormat handles POST /api/v1/date/format
func (h *DatePickerHandler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	locale := requestLocale(r)

	var req models.FormatRequest
	if err := decodeJSONBody(r, &req); err != nil {
		if err == io.EOF {
			writeError(w, http.StatusBadRequest, "request body is required")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			helpers.WriteValidationErrorResponse(w, validationErrors, locale)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	resp, err := h.service.Format(req.Jalali, req.WithMonthName)
	if err != nil {
		t := helpers.GetLocaleTranslations(locale)
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			"jalali": fmt.Sprintf(t.JalaliDate, "jalali"),
		}, locale)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMonthGrid handles GET /api/v1/calendar/month
// Query params: year, month (Jalali)
func (h *DatePickerHandler) HandleMonthGrid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	locale := requestLocale(r)
	t := helpers.GetLocaleTranslations(locale)

	fieldErrors := make(map[string]string)

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		fieldErrors["year"] = fmt.Sprintf(t.Required, "year")
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		fieldErrors["month"] = fmt.Sprintf(t.Required, "month")
	}
	if len(fieldErrors) > 0 {
		helpers.WriteValidationErrorResponseFromMap(w, fieldErrors, locale)
		return
	}

	grid, err := h.service.MonthGrid(year, month)
	if err != nil {
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			"month": fmt.Sprintf(t.Invalid, "month"),
		}, locale)
		return
	}

	writeJSON(w, http.StatusOK, grid)
}

// HandleCacheStats handles GET /api/v1/cache/stats
func (h *DatePickerHandler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.service.CacheStats())
}

// RegisterRoutes registers all HTTP routes
func (h *DatePickerHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/api/v1/date/today", h.HandleToday)
	mux.HandleFunc("/api/v1/date/parse", h.HandleParse)
	mux.HandleFunc("/api/v1/date/to-gregorian", h.HandleToGregorian)
	mux.HandleFunc("/api/v1/date/to-jalali", h.HandleToJalali)
	mux.HandleFunc("/api/v1/date/format", h.HandleFormat)
	mux.HandleFunc("/api/v1/calendar/month", h.HandleMonthGrid)
	mux.HandleFunc("/api/v1/cache/stats", h.HandleCacheStats)
}

// Helper functions

// decodeJSONBody safely decodes JSON from request body, handling empty bodies
func decodeJSONBody(r *http.Request, v interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return io.EOF
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bodyBytes) == 0 {
		return io.EOF
	}

	return json.Unmarshal(bodyBytes, v)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// requestLocale picks the response locale from the Accept-Language
// header. Only fa is translated; everything else falls back to en.
func requestLocale(r *http.Request) string {
	header := r.Header.Get("Accept-Language")
	for _, lang := range strings.Split(header, ",") {
		lang = strings.TrimSpace(lang)
		if strings.HasPrefix(lang, "fa") {
			return "fa"
		}
	}
	return helpers.GetDefaultLocale()
}
