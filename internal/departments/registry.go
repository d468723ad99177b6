package departments

// Department is one ward or sub-unit of the hospital. Sub-units are
// separate physical bed allocations, not a subset of the parent's
// TotalBeds; the hierarchy is two levels deep at most.
type Department struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	TotalBeds int          `json:"totalBeds"`
	ParentID  string       `json:"parentId,omitempty"`
	SubUnits  []Department `json:"subUnits,omitempty"`
}

// Registry is the immutable department table, loaded once at process
// start. All lookups take the registry explicitly so tests can swap in
// fixtures.
type Registry struct {
	departments []Department
}

// NewRegistry builds a registry from a static department list.
func NewRegistry(depts []Department) *Registry {
	return &Registry{departments: depts}
}

// Hospital ward configuration. 60 beds in total including the cabin.
var defaultRegistry = NewRegistry([]Department{
	{ID: "general", Name: "General Ward", TotalBeds: 18},
	{ID: "post-op", Name: "Post Op", TotalBeds: 10, SubUnits: []Department{
		{ID: "cabin", Name: "Cabin", TotalBeds: 3, ParentID: "post-op"},
	}},
	{ID: "pediatric", Name: "Pediatric Ward", TotalBeds: 9},
	{ID: "nicu", Name: "NICU", TotalBeds: 8},
	{ID: "icu", Name: "ICU", TotalBeds: 5},
	{ID: "maternal", Name: "Maternal Ward", TotalBeds: 7},
})

// Default returns the registry holding the hospital's configured wards.
func Default() *Registry {
	return defaultRegistry
}

// GetDepartment looks up a department by id, checking top-level wards
// first and then each ward's sub-units. First match wins.
func (r *Registry) GetDepartment(id string) (Department, bool) {
	for _, dept := range r.departments {
		if dept.ID == id {
			return dept, true
		}
		for _, unit := range dept.SubUnits {
			if unit.ID == id {
				return unit, true
			}
		}
	}
	return Department{}, false
}

// GetParentDepartment returns the ward owning the given sub-unit id.
func (r *Registry) GetParentDepartment(id string) (Department, bool) {
	for _, dept := range r.departments {
		for _, unit := range dept.SubUnits {
			if unit.ID == id {
				return dept, true
			}
		}
	}
	return Department{}, false
}

// GetDepartmentTotalBeds returns a department's own beds plus the beds
// of all its sub-units, or 0 for an unknown id.
func (r *Registry) GetDepartmentTotalBeds(id string) int {
	dept, ok := r.GetDepartment(id)
	if !ok {
		return 0
	}
	total := dept.TotalBeds
	for _, unit := range dept.SubUnits {
		total += unit.TotalBeds
	}
	return total
}

// GetTotalHospitalBeds sums bed capacity over every top-level ward and
// its sub-units.
func (r *Registry) GetTotalHospitalBeds() int {
	total := 0
	for _, dept := range r.departments {
		total += dept.TotalBeds
		for _, unit := range dept.SubUnits {
			total += unit.TotalBeds
		}
	}
	return total
}

// IsValidDepartment reports whether the id names a ward or a sub-unit.
func (r *Registry) IsValidDepartment(id string) bool {
	_, ok := r.GetDepartment(id)
	return ok
}

// GetAllDepartments flattens the registry in declaration order, each
// ward immediately followed by its own sub-units.
func (r *Registry) GetAllDepartments() []Department {
	all := make([]Department, 0, len(r.departments))
	for _, dept := range r.departments {
		all = append(all, dept)
		all = append(all, dept.SubUnits...)
	}
	return all
}

// CalculateDepartmentOccupancy returns currentPatients as a percentage
// of the department's aggregate capacity. Returns 0 when capacity is 0
// rather than dividing by zero. Values above 100 are surfaced as-is.
func (r *Registry) CalculateDepartmentOccupancy(id string, currentPatients int) float64 {
	totalBeds := r.GetDepartmentTotalBeds(id)
	if totalBeds == 0 {
		return 0
	}
	return float64(currentPatients) / float64(totalBeds) * 100
}
