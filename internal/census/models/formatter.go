package models

import (
	"fmt"
	"strings"
	"time"
)

// FormatWhatsAppMessage renders the shareable daily report for one
// submission. Totals come from DeriveTotals so the message can never
// diverge from the persisted figures. Pure function, no I/O.
func FormatWhatsAppMessage(deptName string, in CensusFormInput) string {
	totals := DeriveTotals(in)

	date := in.Date
	if d, err := time.Parse("2006-01-02", in.Date); err == nil {
		date = d.Format("02 Jan 2006")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s Daily Census Report*\n", deptName)
	fmt.Fprintf(&b, "Date: %s\n\n", date)
	fmt.Fprintf(&b, "Previous Patients: %d\n\n", in.PreviousPatients)
	b.WriteString("*Transfers In*\n")
	fmt.Fprintf(&b, "• Admissions: %d\n", in.Admissions)
	fmt.Fprintf(&b, "• Referrals: %d\n", in.ReferralsIn)
	fmt.Fprintf(&b, "• Department Transfers: %d\n", in.DepartmentTransfersIn)
	fmt.Fprintf(&b, "Total In: %d\n\n", totals.TotalTransfersIn)
	b.WriteString("*Transfers Out*\n")
	fmt.Fprintf(&b, "• Recovered: %d\n", in.Recovered)
	fmt.Fprintf(&b, "• LAMA: %d\n", in.Lama)
	fmt.Fprintf(&b, "• Absconded: %d\n", in.Absconded)
	fmt.Fprintf(&b, "• Referred Out: %d\n", in.ReferredOut)
	fmt.Fprintf(&b, "• Not Improved: %d\n", in.NotImproved)
	fmt.Fprintf(&b, "• Deaths: %d\n", in.Deaths)
	fmt.Fprintf(&b, "Total Out: %d\n\n", totals.TotalTransfersOut)
	fmt.Fprintf(&b, "Current Patients: %d\n", totals.CurrentPatients)
	fmt.Fprintf(&b, "OT Cases: %d", in.OTCases)
	return b.String()
}
