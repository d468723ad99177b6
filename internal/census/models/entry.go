package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CensusEntry is one department's patient-count snapshot for one
// calendar date, as stored in census_entries.
type CensusEntry struct {
	ID         string `json:"id"`
	Department string `json:"department"`
	Date       string `json:"date"`

	PreviousPatients int `json:"previous_patients"`

	// Transfers in
	Admissions            int `json:"admissions"`
	ReferralsIn           int `json:"referrals_in"`
	DepartmentTransfersIn int `json:"department_transfers_in"`

	// Transfers out
	Recovered   int `json:"recovered"`
	Lama        int `json:"lama"`
	Absconded   int `json:"absconded"`
	ReferredOut int `json:"referred_out"`
	NotImproved int `json:"not_improved"`
	Deaths      int `json:"deaths"`

	OTCases int `json:"ot_cases"`

	// Derived, written once at submission time
	TotalTransfersIn  int `json:"total_transfers_in"`
	TotalTransfersOut int `json:"total_transfers_out"`
	CurrentPatients   int `json:"current_patients"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsLocked  bool      `json:"is_locked"`
}

// CensusFormInput is the raw submission payload. Every transfer count
// is optional and normalizes to 0 when absent; this is the single
// defaulting boundary, derivation never re-applies defaults.
type CensusFormInput struct {
	Department string `json:"department" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`

	PreviousPatients int `json:"previous_patients" validate:"gte=0"`

	Admissions            int `json:"admissions" validate:"gte=0"`
	ReferralsIn           int `json:"referrals_in" validate:"gte=0"`
	DepartmentTransfersIn int `json:"department_transfers_in" validate:"gte=0"`

	Recovered   int `json:"recovered" validate:"gte=0"`
	Lama        int `json:"lama" validate:"gte=0"`
	Absconded   int `json:"absconded" validate:"gte=0"`
	ReferredOut int `json:"referred_out" validate:"gte=0"`
	NotImproved int `json:"not_improved" validate:"gte=0"`
	Deaths      int `json:"deaths" validate:"gte=0"`

	OTCases int `json:"ot_cases" validate:"gte=0"`
}

// Totals holds the three derived figures for an entry.
type Totals struct {
	TotalTransfersIn  int `json:"total_transfers_in"`
	TotalTransfersOut int `json:"total_transfers_out"`
	CurrentPatients   int `json:"current_patients"`
}

var validate = validator.New()

// Validate enforces field formats and non-negative counts. Department
// existence is checked against the registry by the service layer.
func (in *CensusFormInput) Validate() error {
	return validate.Struct(in)
}

// DeriveTotals computes the derived figures from raw counts. This is
// the single source of truth for the census arithmetic; persistence
// and message formatting both call it and never recompute ad hoc.
// CurrentPatients may come out negative on inconsistent manual entry;
// it is intentionally not clamped.
func DeriveTotals(in CensusFormInput) Totals {
	totalIn := in.Admissions + in.ReferralsIn + in.DepartmentTransfersIn
	totalOut := in.Recovered + in.Lama + in.Absconded + in.ReferredOut + in.NotImproved + in.Deaths
	return Totals{
		TotalTransfersIn:  totalIn,
		TotalTransfersOut: totalOut,
		CurrentPatients:   in.PreviousPatients + totalIn - totalOut,
	}
}
