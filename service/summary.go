package service

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"fincalc/calculator"
	"fincalc/domain"
)

// Money renders an amount with thousands separators and two decimals.
func Money(v float64) string {
	return humanize.FormatFloat(displayFormat, calculator.RoundCents(v))
}

// Summarize describes a result in one sentence.
func Summarize(res domain.Result) string {
	switch r := res.(type) {
	case domain.SimpleInterestResult:
		return fmt.Sprintf("Simple interest of %s on %s brings the total to %s.",
			Money(r.Interest), Money(r.Principal), Money(r.Total))
	case domain.CompoundInterestResult:
		return fmt.Sprintf("%s grows to %s, earning %s in compound interest.",
			Money(r.Principal), Money(r.Total), Money(r.Interest))
	case domain.GSTResult:
		return fmt.Sprintf("GST of %s on %s makes the total %s.",
			Money(r.GSTAmount), Money(r.OriginalAmount), Money(r.TotalAmount))
	case domain.EMIResult:
		months := 0.0
		if r.MonthlyPayment != 0 {
			months = r.TotalPayment / r.MonthlyPayment
		}
		return fmt.Sprintf("A loan of %s costs %s per month for %s months (%.1f years): %s in total, of which %s is interest.",
			Money(r.LoanAmount), Money(r.MonthlyPayment), humanize.FormatFloat("#,###.", months),
			months/monthsPerYear, Money(r.TotalPayment), Money(r.TotalInterest))
	}
	return ""
}
