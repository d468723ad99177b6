package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janakpur-hospital/census-backend/internal/departments"
)

type DepartmentController struct {
	Registry *departments.Registry
}

func NewDepartmentController(registry *departments.Registry) *DepartmentController {
	return &DepartmentController{Registry: registry}
}

type departmentView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TotalBeds int    `json:"totalBeds"`
	ParentID  string `json:"parentId,omitempty"`
	// Own beds plus all sub-units' beds.
	AggregateBeds int `json:"aggregateBeds"`
}

// List handles GET /api/departments: the flat registry in declaration
// order, each ward followed by its sub-units, with aggregate capacity.
func (dc *DepartmentController) List(c echo.Context) error {
	all := dc.Registry.GetAllDepartments()
	views := make([]departmentView, 0, len(all))
	for _, dept := range all {
		views = append(views, departmentView{
			ID:            dept.ID,
			Name:          dept.Name,
			TotalBeds:     dept.TotalBeds,
			ParentID:      dept.ParentID,
			AggregateBeds: dc.Registry.GetDepartmentTotalBeds(dept.ID),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "OK",
		"data": map[string]interface{}{
			"departments":       views,
			"totalHospitalBeds": dc.Registry.GetTotalHospitalBeds(),
		},
	})
}
