package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/persidate/core/internal/application/services"
	"github.com/persidate/core/internal/infrastructure/logger"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestHandler(t *testing.T) (*echo.Echo, *DateHandler) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	fixed := time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)
	svc := services.NewDateServiceWithClock(logger.NewNop(), func() time.Time { return fixed })
	return e, NewDateHandler(svc, 30, logger.NewNop())
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestConvertJalaliToGregorianHandler(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodPost, "/api/v1/convert/jalali-to-gregorian", `{"date":"1403/05/29"}`)
	if err := h.ConvertJalaliToGregorian(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Date != "2024-08-19" {
		t.Errorf("converted date = %q, want %q", resp.Date, "2024-08-19")
	}
}

func TestConvertHandlerRejectsMalformedDate(t *testing.T) {
	e, h := newTestHandler(t)

	c, _ := doJSON(e, http.MethodPost, "/api/v1/convert/jalali-to-gregorian", `{"date":"1403-05-29"}`)
	err := h.ConvertJalaliToGregorian(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error type = %T, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}

func TestConvertHandlerRejectsInvalidDate(t *testing.T) {
	e, h := newTestHandler(t)

	c, _ := doJSON(e, http.MethodPost, "/api/v1/convert/jalali-to-gregorian", `{"date":"1404/12/30"}`)
	err := h.ConvertJalaliToGregorian(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error type = %T, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", he.Code)
	}
}

func TestConvertHandlerRejectsMissingDate(t *testing.T) {
	e, h := newTestHandler(t)

	c, _ := doJSON(e, http.MethodPost, "/api/v1/convert/jalali-to-gregorian", `{}`)
	err := h.ConvertJalaliToGregorian(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error type = %T, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}

func TestConvertGregorianToJalaliHandler(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodPost, "/api/v1/convert/gregorian-to-jalali", `{"date":"2024-03-20"}`)
	if err := h.ConvertGregorianToJalali(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Date != "1403/01/01" {
		t.Errorf("converted date = %q, want %q", resp.Date, "1403/01/01")
	}
}

func TestDiffDaysHandler(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodPost, "/api/v1/dates/diff", `{"start":"1403/01/01","end":"1404/01/01"}`)
	if err := h.DiffDays(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp DiffResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Days != 366 {
		t.Errorf("days = %d, want 366", resp.Days)
	}
}

func TestDiffDaysHandlerWithAdjustment(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodPost, "/api/v1/dates/diff", `{"start":"1403/01/01","end":"1403/01/10","adjustment":5}`)
	if err := h.DiffDays(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	var resp DiffResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Days != 14 {
		t.Errorf("days = %d, want 14", resp.Days)
	}
}

func TestAddDaysHandler(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodPost, "/api/v1/dates/add-days", `{"date":"1403/12/30","days":1}`)
	if err := h.AddDays(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Date != "1404/01/01" {
		t.Errorf("shifted date = %q, want %q", resp.Date, "1404/01/01")
	}
}

func TestAddMonthsHandler(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodPost, "/api/v1/dates/add-months", `{"date":"1403/06/31","months":6}`)
	if err := h.AddMonths(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Date != "1403/12/30" {
		t.Errorf("shifted date = %q, want %q", resp.Date, "1403/12/30")
	}
}

func TestAddMonthsHandlerRejectsZeroMonths(t *testing.T) {
	e, h := newTestHandler(t)

	// The required tag rejects months=0 before the service is reached.
	c, _ := doJSON(e, http.MethodPost, "/api/v1/dates/add-months", `{"date":"1403/06/31","months":0}`)
	err := h.AddMonths(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error type = %T, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}

func TestTodayHandler(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodGet, "/api/v1/dates/today", "")
	if err := h.Today(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Date != "1404/06/03" {
		t.Errorf("today = %q, want %q", resp.Date, "1404/06/03")
	}
}

func TestIsLeapYearHandler(t *testing.T) {
	e, h := newTestHandler(t)

	c, rec := doJSON(e, http.MethodPost, "/api/v1/dates/leap-year", `{"date":"1403/01/01"}`)
	if err := h.IsLeapYear(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	var resp LeapYearResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.LeapYear {
		t.Error("leap_year = false, want true")
	}
}

func TestPeriodStateHandler(t *testing.T) {
	e, h := newTestHandler(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"explicit anchor", `{"date":"1403/05/15","anchor_day":15}`, "End"},
		{"default anchor", `{"date":"1403/08/01"}`, "Start"},
		{"middle of period", `{"date":"1403/05/20","anchor_day":15}`, "Middle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := doJSON(e, http.MethodPost, "/api/v1/periods/state", tt.body)
			if err := h.PeriodState(c); err != nil {
				t.Fatalf("handler failed: %v", err)
			}

			var resp PeriodStateResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.State != tt.want {
				t.Errorf("state = %q, want %q", resp.State, tt.want)
			}
		})
	}
}

func TestPeriodStateHandlerRejectsBadAnchor(t *testing.T) {
	e, h := newTestHandler(t)

	c, _ := doJSON(e, http.MethodPost, "/api/v1/periods/state", `{"date":"1403/05/15","anchor_day":32}`)
	err := h.PeriodState(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error type = %T, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}
