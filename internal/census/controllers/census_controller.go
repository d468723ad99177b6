package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/janakpur-hospital/census-backend/internal/census/models"
	"github.com/janakpur-hospital/census-backend/internal/census/services"
	"github.com/janakpur-hospital/census-backend/internal/common/middlewares"
	"github.com/janakpur-hospital/census-backend/internal/departments"
	"github.com/janakpur-hospital/census-backend/pkg/utils"
	"github.com/janakpur-hospital/census-backend/ws"
)

type CensusController struct {
	Service  *services.CensusService
	Registry *departments.Registry
}

func NewCensusController(service *services.CensusService, registry *departments.Registry) *CensusController {
	return &CensusController{Service: service, Registry: registry}
}

func claimsFrom(c echo.Context) (*utils.Claims, bool) {
	claims, ok := c.Get(string(middlewares.ContextKeyClaims)).(*utils.Claims)
	return claims, ok && claims != nil
}

// SubmitCensus handles POST /api/census. Validation and authorization
// failures never reach the store; duplicate and locked rows come back
// as 409 so the UI can offer "view existing entry".
func (cc *CensusController) SubmitCensus(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Invalid or missing token claims",
			"data":    nil,
		})
	}

	var input models.CensusFormInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	entry, err := cc.Service.SubmitCensus(input, claims.UserID)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs), errors.Is(err, services.ErrUnknownDepartment):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "Invalid census entry: " + err.Error(),
				"data":    nil,
			})
		case errors.Is(err, services.ErrDuplicateEntry):
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Failed to submit census entry: " + err.Error(),
				"data":    nil,
			})
		}
	}

	broadcastCensusUpdate(entry)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  http.StatusCreated,
		"message": "Census entry created successfully",
		"data":    entry,
	})
}

// GenerateMessage handles POST /api/census/message. Pure formatting,
// nothing is persisted.
func (cc *CensusController) GenerateMessage(c echo.Context) error {
	var input models.CensusFormInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if err := input.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid census entry: " + err.Error(),
			"data":    nil,
		})
	}

	dept, ok := cc.Registry.GetDepartment(input.Department)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": services.ErrUnknownDepartment.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Message generated",
		"data": map[string]interface{}{
			"message": models.FormatWhatsAppMessage(dept.Name, input),
		},
	})
}

// GetByDate handles GET /api/census?department=&date=. Returns null
// data when no entry exists for the pair.
func (cc *CensusController) GetByDate(c echo.Context) error {
	department := c.QueryParam("department")
	date := c.QueryParam("date")
	if department == "" || date == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "department and date query parameters are required",
			"data":    nil,
		})
	}

	entry, err := cc.Service.GetByDate(department, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to fetch census entry: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "OK",
		"data":    entry,
	})
}

// GetLatest handles GET /api/census/latest?department=.
func (cc *CensusController) GetLatest(c echo.Context) error {
	department := c.QueryParam("department")
	if department == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "department query parameter is required",
			"data":    nil,
		})
	}

	entry, err := cc.Service.GetLatest(department)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to fetch latest census entry: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "OK",
		"data":    entry,
	})
}

// LockEntry handles PUT /api/census/lock?id=. Finalizes a day so no
// further edits are accepted.
func (cc *CensusController) LockEntry(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Invalid or missing token claims",
			"data":    nil,
		})
	}

	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id query parameter is required",
			"data":    nil,
		})
	}

	err := cc.Service.LockEntry(id, claims.UserID)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrEntryNotFound):
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": err.Error(),
			"data":    nil,
		})
	case errors.Is(err, services.ErrEntryLocked):
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"status":  http.StatusConflict,
			"message": err.Error(),
			"data":    nil,
		})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to lock census entry: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Census entry locked",
		"data":    nil,
	})
}

func broadcastCensusUpdate(entry *models.CensusEntry) {
	inner := map[string]interface{}{
		"department":       entry.Department,
		"date":             entry.Date,
		"current_patients": entry.CurrentPatients,
	}
	wrapper := map[string]interface{}{
		"type": "census_update",
		"data": inner,
	}
	if messageJSON, err := json.Marshal(wrapper); err == nil {
		ws.HubInstance.Broadcast <- messageJSON
	}
}
