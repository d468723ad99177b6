package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/janakpur-hospital/census-backend/internal/audit/services"
)

type AuditController struct {
	Service *services.AuditService
}

func NewAuditController(service *services.AuditService) *AuditController {
	return &AuditController{Service: service}
}

// List handles GET /api/audit?limit=. Admin only; newest first.
func (ac *AuditController) List(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "Invalid limit parameter",
				"data":    nil,
			})
		}
		limit = n
	}

	logs, err := ac.Service.ListRecent(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to fetch audit logs: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "OK",
		"data":    logs,
	})
}
