package services

import (
	"sort"

	censusModels "github.com/janakpur-hospital/census-backend/internal/census/models"
	"github.com/janakpur-hospital/census-backend/internal/dashboard/models"
)

// AggregateStats sums one date's entries into the dashboard totals.
// occupancyRate divides by the hospital's full bed capacity; a zero
// capacity yields 0 rather than a division error.
func AggregateStats(entries []censusModels.CensusEntry, totalHospitalBeds int) models.DashboardStats {
	var stats models.DashboardStats
	for _, e := range entries {
		stats.TotalPatients += e.CurrentPatients
		stats.OTCases += e.OTCases
		stats.PatientFlow.In += e.TotalTransfersIn
		stats.PatientFlow.Out += e.TotalTransfersOut
	}
	if totalHospitalBeds > 0 {
		stats.OccupancyRate = float64(stats.TotalPatients) / float64(totalHospitalBeds) * 100
	}
	return stats
}

// AggregateHistorical groups entries by date and sums current_patients
// per date, ascending. Dates with no entries are simply absent; there
// is no zero-filling or interpolation.
func AggregateHistorical(entries []censusModels.CensusEntry) []models.HistoricalPoint {
	byDate := make(map[string]int)
	for _, e := range entries {
		byDate[e.Date] += e.CurrentPatients
	}

	points := make([]models.HistoricalPoint, 0, len(byDate))
	for date, total := range byDate {
		points = append(points, models.HistoricalPoint{Date: date, CurrentPatients: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// AggregateDischarges sums each of the six outbound categories per
// department across the matched entries. One row per department with
// at least one entry, ordered by department id so repeated calls over
// the same data return identical results.
func AggregateDischarges(entries []censusModels.CensusEntry) []models.DischargeBreakdown {
	byDept := make(map[string]*models.DischargeBreakdown)
	for _, e := range entries {
		row, ok := byDept[e.Department]
		if !ok {
			row = &models.DischargeBreakdown{Department: e.Department}
			byDept[e.Department] = row
		}
		row.Recovered += e.Recovered
		row.Lama += e.Lama
		row.Absconded += e.Absconded
		row.ReferredOut += e.ReferredOut
		row.NotImproved += e.NotImproved
		row.Deaths += e.Deaths
	}

	out := make([]models.DischargeBreakdown, 0, len(byDept))
	for _, row := range byDept {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}
