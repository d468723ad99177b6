package models

// PatientFlow is the day's total inbound and outbound movement.
type PatientFlow struct {
	In  int `json:"in"`
	Out int `json:"out"`
}

// DashboardStats is the point-in-time summary for one date across all
// departments.
type DashboardStats struct {
	TotalPatients int         `json:"totalPatients"`
	OTCases       int         `json:"otCases"`
	PatientFlow   PatientFlow `json:"patientFlow"`
	OccupancyRate float64     `json:"occupancyRate"`
}

// DepartmentOccupancy pairs a department's latest reported census with
// its bed capacity. Percentage may exceed 100 on over-capacity wards.
type DepartmentOccupancy struct {
	Department string  `json:"department"`
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// HistoricalPoint is one date's patient total summed across the
// matched departments. Not a running cumulative figure.
type HistoricalPoint struct {
	Date            string `json:"date"`
	CurrentPatients int    `json:"current_patients"`
}

// DischargeBreakdown sums each outbound-transfer category for one
// department over a date range.
type DischargeBreakdown struct {
	Department  string `json:"department"`
	Recovered   int    `json:"recovered"`
	Lama        int    `json:"lama"`
	Absconded   int    `json:"absconded"`
	ReferredOut int    `json:"referred_out"`
	NotImproved int    `json:"not_improved"`
	Deaths      int    `json:"deaths"`
}
