package departments

import "testing"

func testRegistry() *Registry {
	return NewRegistry([]Department{
		{ID: "icu", Name: "ICU", TotalBeds: 5},
		{ID: "post-op", Name: "Post Op", TotalBeds: 10, SubUnits: []Department{
			{ID: "cabin", Name: "Cabin", TotalBeds: 3, ParentID: "post-op"},
		}},
		{ID: "empty", Name: "Unstaffed Ward", TotalBeds: 0},
	})
}

func TestGetDepartment(t *testing.T) {
	r := testRegistry()

	dept, ok := r.GetDepartment("icu")
	if !ok || dept.Name != "ICU" {
		t.Fatalf("GetDepartment(icu) = %+v, %v", dept, ok)
	}

	unit, ok := r.GetDepartment("cabin")
	if !ok || unit.ParentID != "post-op" {
		t.Fatalf("GetDepartment(cabin) = %+v, %v", unit, ok)
	}

	if _, ok := r.GetDepartment("morgue"); ok {
		t.Fatal("expected unknown id to report not found")
	}
}

func TestGetParentDepartment(t *testing.T) {
	r := testRegistry()

	parent, ok := r.GetParentDepartment("cabin")
	if !ok || parent.ID != "post-op" {
		t.Fatalf("GetParentDepartment(cabin) = %+v, %v", parent, ok)
	}

	if _, ok := r.GetParentDepartment("icu"); ok {
		t.Fatal("top-level ward should have no parent")
	}
}

func TestGetDepartmentTotalBeds(t *testing.T) {
	r := testRegistry()

	tests := []struct {
		id   string
		want int
	}{
		{"icu", 5},
		{"post-op", 13}, // own 10 + cabin 3
		{"cabin", 3},
		{"empty", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := r.GetDepartmentTotalBeds(tt.id); got != tt.want {
			t.Errorf("GetDepartmentTotalBeds(%s) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestGetTotalHospitalBeds(t *testing.T) {
	if got := testRegistry().GetTotalHospitalBeds(); got != 18 {
		t.Fatalf("GetTotalHospitalBeds() = %d, want 18", got)
	}
	if got := Default().GetTotalHospitalBeds(); got != 60 {
		t.Fatalf("default registry total = %d, want 60", got)
	}
}

func TestIsValidDepartment(t *testing.T) {
	r := testRegistry()
	if !r.IsValidDepartment("icu") || !r.IsValidDepartment("cabin") {
		t.Fatal("known ids reported invalid")
	}
	if r.IsValidDepartment("morgue") {
		t.Fatal("unknown id reported valid")
	}
}

func TestGetAllDepartmentsOrder(t *testing.T) {
	all := testRegistry().GetAllDepartments()
	wantOrder := []string{"icu", "post-op", "cabin", "empty"}
	if len(all) != len(wantOrder) {
		t.Fatalf("got %d departments, want %d", len(all), len(wantOrder))
	}
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestCalculateDepartmentOccupancy(t *testing.T) {
	r := testRegistry()

	if got := r.CalculateDepartmentOccupancy("empty", 4); got != 0 {
		t.Errorf("zero-capacity ward occupancy = %v, want 0", got)
	}
	if got := r.CalculateDepartmentOccupancy("unknown", 4); got != 0 {
		t.Errorf("unknown ward occupancy = %v, want 0", got)
	}
	if got := r.CalculateDepartmentOccupancy("icu", 4); got != 80 {
		t.Errorf("occupancy = %v, want 80", got)
	}
	// Over-capacity wards report above 100, never clamped.
	if got := r.CalculateDepartmentOccupancy("icu", 6); got != 120 {
		t.Errorf("over-capacity occupancy = %v, want 120", got)
	}
}
