package services

import (
	censusServices "github.com/janakpur-hospital/census-backend/internal/census/services"
	"github.com/janakpur-hospital/census-backend/internal/dashboard/models"
	"github.com/janakpur-hospital/census-backend/internal/departments"
)

type DashboardService struct {
	Census   *censusServices.CensusService
	Registry *departments.Registry
}

func NewDashboardService(census *censusServices.CensusService, registry *departments.Registry) *DashboardService {
	return &DashboardService{Census: census, Registry: registry}
}

// GetDashboardStats summarizes one date across all departments. The
// department filter is deliberately not applied here: stats always
// cover the whole hospital, and occupancyRate is relative to total
// hospital capacity.
func (s *DashboardService) GetDashboardStats(date string) (models.DashboardStats, error) {
	entries, err := s.Census.FetchByDate(date)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return AggregateStats(entries, s.Registry.GetTotalHospitalBeds()), nil
}

// GetDepartmentOccupancy pairs each requested department's latest
// entry with its bed capacity. Departments with no entries yet are
// omitted from the result, not zero-filled; callers handle absence.
func (s *DashboardService) GetDepartmentOccupancy(depts []string) ([]models.DepartmentOccupancy, error) {
	entries, err := s.Census.FetchLatestPerDepartment(depts)
	if err != nil {
		return nil, err
	}

	out := make([]models.DepartmentOccupancy, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.DepartmentOccupancy{
			Department: e.Department,
			Current:    e.CurrentPatients,
			Total:      s.Registry.GetDepartmentTotalBeds(e.Department),
			Percentage: s.Registry.CalculateDepartmentOccupancy(e.Department, e.CurrentPatients),
		})
	}
	return out, nil
}

// GetHistoricalData returns one point per date present in the data,
// summing current_patients across the matched departments.
func (s *DashboardService) GetHistoricalData(startDate, endDate string, depts []string) ([]models.HistoricalPoint, error) {
	entries, err := s.Census.FetchRange(startDate, endDate, depts)
	if err != nil {
		return nil, err
	}
	return AggregateHistorical(entries), nil
}

// GetDischargeAnalytics sums the six outbound categories per matched
// department over the range.
func (s *DashboardService) GetDischargeAnalytics(startDate, endDate string, depts []string) ([]models.DischargeBreakdown, error) {
	entries, err := s.Census.FetchRange(startDate, endDate, depts)
	if err != nil {
		return nil, err
	}
	return AggregateDischarges(entries), nil
}
