package controllers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/janakpur-hospital/census-backend/internal/dashboard/services"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"status":  http.StatusBadRequest,
		"message": msg,
		"data":    nil,
	})
}

func internalError(c echo.Context, msg string, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  http.StatusInternalServerError,
		"message": msg + ": " + err.Error(),
		"data":    nil,
	})
}

func okResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "OK",
		"data":    data,
	})
}

// departmentsParam splits the comma-separated departments query value.
func departmentsParam(c echo.Context) []string {
	raw := c.QueryParam("departments")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	depts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			depts = append(depts, p)
		}
	}
	return depts
}

// GetStats handles GET /api/dashboard/stats?date=. Stats always cover
// the whole hospital for the given date.
func (dc *DashboardController) GetStats(c echo.Context) error {
	date := c.QueryParam("date")
	if !dateRe.MatchString(date) {
		return badRequest(c, "date query parameter must be YYYY-MM-DD")
	}

	stats, err := dc.Service.GetDashboardStats(date)
	if err != nil {
		return internalError(c, "Failed to compute dashboard stats", err)
	}
	return okResponse(c, stats)
}

// GetOccupancy handles GET /api/dashboard/occupancy?departments=a,b.
// Departments with no entries yet are omitted from the result.
func (dc *DashboardController) GetOccupancy(c echo.Context) error {
	depts := departmentsParam(c)
	if len(depts) == 0 {
		return badRequest(c, "departments query parameter is required")
	}

	occupancy, err := dc.Service.GetDepartmentOccupancy(depts)
	if err != nil {
		return internalError(c, "Failed to compute department occupancy", err)
	}
	return okResponse(c, occupancy)
}

// GetHistorical handles GET /api/dashboard/historical?start=&end=&departments=a,b.
func (dc *DashboardController) GetHistorical(c echo.Context) error {
	start, end := c.QueryParam("start"), c.QueryParam("end")
	if !dateRe.MatchString(start) || !dateRe.MatchString(end) {
		return badRequest(c, "start and end query parameters must be YYYY-MM-DD")
	}
	depts := departmentsParam(c)
	if len(depts) == 0 {
		return badRequest(c, "departments query parameter is required")
	}

	series, err := dc.Service.GetHistoricalData(start, end, depts)
	if err != nil {
		return internalError(c, "Failed to compute historical data", err)
	}
	return okResponse(c, series)
}

// GetDischarges handles GET /api/dashboard/discharges?start=&end=&departments=a,b.
func (dc *DashboardController) GetDischarges(c echo.Context) error {
	start, end := c.QueryParam("start"), c.QueryParam("end")
	if !dateRe.MatchString(start) || !dateRe.MatchString(end) {
		return badRequest(c, "start and end query parameters must be YYYY-MM-DD")
	}
	depts := departmentsParam(c)
	if len(depts) == 0 {
		return badRequest(c, "departments query parameter is required")
	}

	breakdown, err := dc.Service.GetDischargeAnalytics(start, end, depts)
	if err != nil {
		return internalError(c, "Failed to compute discharge analytics", err)
	}
	return okResponse(c, breakdown)
}
