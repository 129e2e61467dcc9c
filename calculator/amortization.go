package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"fincalc/domain"
)

// MaxScheduleMonths bounds the size of a generated schedule.
const MaxScheduleMonths = 1200

// AmortizationSchedule splits an EMI loan into monthly installments. Money is
// carried in cents; the last installment absorbs rounding so the balance
// closes at exactly zero. The tenure must cover a whole number of months.
func AmortizationSchedule(in domain.EMIInput) (domain.AmortizationSchedule, error) {
	months := in.TenureYears * monthsPerYear
	if months <= 0 || months != math.Trunc(months) || months > MaxScheduleMonths {
		return domain.AmortizationSchedule{}, domain.NewInvalidNumber(domain.FieldTenure, formatRaw(in.TenureYears))
	}

	emi, err := EMI(in)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	n := int(months)
	payment := decimal.NewFromFloat(emi.MonthlyPayment).Round(2)
	monthlyRate := decimal.NewFromFloat(in.InterestRate / monthsPerYear / 100)
	remaining := decimal.NewFromFloat(in.LoanAmount)

	installments := make([]domain.Installment, 0, n)
	totalPaid := decimal.Zero
	totalInterest := decimal.Zero

	for month := 1; month <= n; month++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest)
		paid := payment

		if month == n {
			principal = remaining
			paid = principal.Add(interest)
		}

		remaining = remaining.Sub(principal)
		totalPaid = totalPaid.Add(paid)
		totalInterest = totalInterest.Add(interest)

		installments = append(installments, domain.Installment{
			Month:            month,
			Payment:          paid.InexactFloat64(),
			Principal:        principal.InexactFloat64(),
			Interest:         interest.InexactFloat64(),
			RemainingBalance: remaining.InexactFloat64(),
		})
	}

	return domain.AmortizationSchedule{
		Summary: domain.EMIResult{
			LoanAmount:     in.LoanAmount,
			MonthlyPayment: payment.InexactFloat64(),
			TotalPayment:   totalPaid.InexactFloat64(),
			TotalInterest:  totalInterest.InexactFloat64(),
		},
		Installments: installments,
	}, nil
}

// Schedule parses EMI fields and builds their amortization schedule.
func Schedule(raw domain.RawInputSet) (domain.AmortizationSchedule, error) {
	in, err := Parse(domain.ModeEMI, raw)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}
	schedule, err := AmortizationSchedule(in.(domain.EMIInput))
	if err != nil {
		return domain.AmortizationSchedule{}, withRawValue(err, raw)
	}
	return schedule, nil
}
