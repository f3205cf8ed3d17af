package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/persidate/core/internal/domain/jalali"
	"github.com/persidate/core/internal/infrastructure/logger"
	"github.com/persidate/core/internal/ports"
)

// DateHandler handles calendar conversion and arithmetic requests
type DateHandler struct {
	dateService      ports.DateService
	defaultAnchorDay int
	logger           *logger.Logger
}

// NewDateHandler creates a new date handler
func NewDateHandler(dateService ports.DateService, defaultAnchorDay int, logger *logger.Logger) *DateHandler {
	return &DateHandler{
		dateService:      dateService,
		defaultAnchorDay: defaultAnchorDay,
		logger:           logger,
	}
}

// Request/Response types

type ConvertRequest struct {
	Date string `json:"date" validate:"required"`
}

type ConvertResponse struct {
	Date string `json:"date"`
}

type DiffRequest struct {
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
	Adjustment int    `json:"adjustment"`
}

type DiffResponse struct {
	Days int `json:"days"`
}

type AddDaysRequest struct {
	Date string `json:"date" validate:"required"`
	Days int    `json:"days"`
}

type AddMonthsRequest struct {
	Date   string `json:"date" validate:"required"`
	Months int    `json:"months" validate:"required"`
}

type LeapYearResponse struct {
	LeapYear bool `json:"leap_year"`
}

type PeriodStateRequest struct {
	Date      string `json:"date" validate:"required"`
	AnchorDay *int   `json:"anchor_day" validate:"omitempty,min=1,max=31"`
}

type PeriodStateResponse struct {
	State string `json:"state"`
}

// ConvertJalaliToGregorian handles Jalali to Gregorian conversion
func (h *DateHandler) ConvertJalaliToGregorian(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	converted, err := h.dateService.ConvertJalaliToGregorian(c.Request().Context(), req.Date)
	if err != nil {
		h.logger.Warnw("Jalali to gregorian conversion failed", "error", err, "date", req.Date)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, ConvertResponse{Date: converted})
}

// ConvertGregorianToJalali handles Gregorian to Jalali conversion
func (h *DateHandler) ConvertGregorianToJalali(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	converted, err := h.dateService.ConvertGregorianToJalali(c.Request().Context(), req.Date)
	if err != nil {
		h.logger.Warnw("Gregorian to jalali conversion failed", "error", err, "date", req.Date)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, ConvertResponse{Date: converted})
}

// DiffDays handles signed day difference requests
func (h *DateHandler) DiffDays(c echo.Context) error {
	var req DiffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	days, err := h.dateService.DiffDaysAdjusted(c.Request().Context(), req.Start, req.End, req.Adjustment)
	if err != nil {
		h.logger.Warnw("Date difference failed", "error", err, "start", req.Start, "end", req.End)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, DiffResponse{Days: days})
}

// AddDays handles day addition requests
func (h *DateHandler) AddDays(c echo.Context) error {
	var req AddDaysRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shifted, err := h.dateService.AddDays(c.Request().Context(), req.Date, req.Days)
	if err != nil {
		h.logger.Warnw("Day addition failed", "error", err, "date", req.Date, "days", req.Days)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, ConvertResponse{Date: shifted})
}

// AddMonths handles month addition requests
func (h *DateHandler) AddMonths(c echo.Context) error {
	var req AddMonthsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shifted, err := h.dateService.AddMonths(c.Request().Context(), req.Date, req.Months)
	if err != nil {
		h.logger.Warnw("Month addition failed", "error", err, "date", req.Date, "months", req.Months)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, ConvertResponse{Date: shifted})
}

// Today handles current Jalali date requests
func (h *DateHandler) Today(c echo.Context) error {
	today, err := h.dateService.Today(c.Request().Context())
	if err != nil {
		h.logger.Errorw("Current date lookup failed", "error", err)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, ConvertResponse{Date: today})
}

// IsLeapYear handles leap year inspection requests
func (h *DateHandler) IsLeapYear(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	leap, err := h.dateService.IsLeapYear(c.Request().Context(), req.Date)
	if err != nil {
		h.logger.Warnw("Leap year inspection failed", "error", err, "date", req.Date)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, LeapYearResponse{LeapYear: leap})
}

// PeriodState handles period classification requests
func (h *DateHandler) PeriodState(c echo.Context) error {
	var req PeriodStateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	anchorDay := h.defaultAnchorDay
	if req.AnchorDay != nil {
		anchorDay = *req.AnchorDay
	}

	state, err := h.dateService.PeriodState(c.Request().Context(), req.Date, anchorDay)
	if err != nil {
		h.logger.Warnw("Period classification failed", "error", err, "date", req.Date, "anchor_day", anchorDay)
		return calendarError(err)
	}

	return c.JSON(http.StatusOK, PeriodStateResponse{State: state})
}

// calendarError maps the engine's error taxonomy to HTTP status codes:
// malformed input and bad arguments are the caller's fault (400), dates that
// parse but violate calendar rules are unprocessable (422).
func calendarError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, jalali.ErrFormat), errors.Is(err, jalali.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, jalali.ErrInvalidDate), errors.Is(err, jalali.ErrOverflow):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
