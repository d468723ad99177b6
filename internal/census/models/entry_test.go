package models

import (
	"strconv"
	"strings"
	"testing"
)

func sampleInput() CensusFormInput {
	return CensusFormInput{
		Department:            "icu",
		Date:                  "2024-03-01",
		PreviousPatients:      10,
		Admissions:            3,
		ReferralsIn:           1,
		DepartmentTransfersIn: 0,
		Recovered:             2,
		Lama:                  0,
		Absconded:             0,
		ReferredOut:           1,
		NotImproved:           0,
		Deaths:                0,
		OTCases:               2,
	}
}

func TestDeriveTotals(t *testing.T) {
	got := DeriveTotals(sampleInput())

	if got.TotalTransfersIn != 4 {
		t.Errorf("TotalTransfersIn = %d, want 4", got.TotalTransfersIn)
	}
	if got.TotalTransfersOut != 3 {
		t.Errorf("TotalTransfersOut = %d, want 3", got.TotalTransfersOut)
	}
	if got.CurrentPatients != 11 {
		t.Errorf("CurrentPatients = %d, want 11", got.CurrentPatients)
	}
}

func TestDeriveTotalsZeroMovement(t *testing.T) {
	// A day with no admissions and no discharges is valid; current
	// carries over from the previous count.
	got := DeriveTotals(CensusFormInput{Department: "icu", Date: "2024-03-01", PreviousPatients: 7})

	if got.TotalTransfersIn != 0 || got.TotalTransfersOut != 0 {
		t.Errorf("totals = %+v, want zero movement", got)
	}
	if got.CurrentPatients != 7 {
		t.Errorf("CurrentPatients = %d, want 7", got.CurrentPatients)
	}
}

func TestDeriveTotalsNegativeNotClamped(t *testing.T) {
	in := CensusFormInput{Department: "icu", Date: "2024-03-01", PreviousPatients: 1, Recovered: 5}
	if got := DeriveTotals(in); got.CurrentPatients != -4 {
		t.Errorf("CurrentPatients = %d, want -4 (inconsistent entry surfaced, not clamped)", got.CurrentPatients)
	}
}

func TestDeriveTotalsIdentities(t *testing.T) {
	cases := []CensusFormInput{
		sampleInput(),
		{PreviousPatients: 0},
		{PreviousPatients: 50, Admissions: 10, ReferralsIn: 2, DepartmentTransfersIn: 3,
			Recovered: 8, Lama: 1, Absconded: 1, ReferredOut: 2, NotImproved: 1, Deaths: 2},
	}
	for i, in := range cases {
		got := DeriveTotals(in)
		wantIn := in.Admissions + in.ReferralsIn + in.DepartmentTransfersIn
		wantOut := in.Recovered + in.Lama + in.Absconded + in.ReferredOut + in.NotImproved + in.Deaths
		if got.TotalTransfersIn != wantIn {
			t.Errorf("case %d: TotalTransfersIn = %d, want %d", i, got.TotalTransfersIn, wantIn)
		}
		if got.TotalTransfersOut != wantOut {
			t.Errorf("case %d: TotalTransfersOut = %d, want %d", i, got.TotalTransfersOut, wantOut)
		}
		if got.CurrentPatients != in.PreviousPatients+wantIn-wantOut {
			t.Errorf("case %d: CurrentPatients = %d", i, got.CurrentPatients)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := sampleInput()
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	bad := sampleInput()
	bad.Deaths = -1
	if err := bad.Validate(); err == nil {
		t.Fatal("negative count accepted")
	}

	badDate := sampleInput()
	badDate.Date = "01/03/2024"
	if err := badDate.Validate(); err == nil {
		t.Fatal("malformed date accepted")
	}

	noDept := sampleInput()
	noDept.Department = ""
	if err := noDept.Validate(); err == nil {
		t.Fatal("missing department accepted")
	}
}

func TestFormatWhatsAppMessage(t *testing.T) {
	in := sampleInput()
	msg := FormatWhatsAppMessage("ICU", in)

	if !strings.HasPrefix(msg, "*ICU Daily Census Report*") {
		t.Errorf("unexpected header: %q", msg)
	}
	if !strings.Contains(msg, "Date: 01 Mar 2024") {
		t.Errorf("date missing or not human-readable: %q", msg)
	}
	if !strings.Contains(msg, "Total In: 4") || !strings.Contains(msg, "Total Out: 3") {
		t.Errorf("component totals missing: %q", msg)
	}
	if !strings.Contains(msg, "OT Cases: 2") {
		t.Errorf("OT cases missing: %q", msg)
	}

	// The message must carry the exact figure DeriveTotals produces.
	totals := DeriveTotals(in)
	if !strings.Contains(msg, "Current Patients: "+strconv.Itoa(totals.CurrentPatients)) {
		t.Errorf("current patients diverges from derived totals: %q", msg)
	}
}

func TestFormatWhatsAppMessageDeterministic(t *testing.T) {
	in := sampleInput()
	if FormatWhatsAppMessage("ICU", in) != FormatWhatsAppMessage("ICU", in) {
		t.Fatal("formatter is not deterministic")
	}
}
