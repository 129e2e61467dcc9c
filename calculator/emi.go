package calculator

import (
	"math"

	"fincalc/domain"
)

const monthsPerYear = 12

// EMI computes the equated monthly installment of a loan.
//
// With m = R/12/100 and n = T*12:
//
//	emi = L * m * (1+m)^n / ((1+m)^n - 1)
//
// A zero rate repays the loan in a straight line. Fractional tenures give a
// fractional month count and are accepted; a zero tenure is rejected.
func EMI(in domain.EMIInput) (domain.EMIResult, error) {
	months := in.TenureYears * monthsPerYear
	if months == 0 {
		return domain.EMIResult{}, domain.NewInvalidNumber(domain.FieldTenure, formatRaw(in.TenureYears))
	}

	monthlyRate := in.InterestRate / monthsPerYear / 100
	growth := math.Pow(1+monthlyRate, months)

	// growth == 1 also catches rates too small to move 1+m away from 1.
	if monthlyRate == 0 || growth == 1 {
		emi := in.LoanAmount / months
		if !allFinite(emi) {
			return domain.EMIResult{}, domain.NewInvalidNumber(domain.FieldTenure, formatRaw(in.TenureYears))
		}
		return domain.EMIResult{
			LoanAmount:     in.LoanAmount,
			MonthlyPayment: emi,
			TotalPayment:   in.LoanAmount,
			TotalInterest:  0,
		}, nil
	}

	emi := in.LoanAmount * monthlyRate * growth / (growth - 1)
	total := emi * months
	interest := total - in.LoanAmount

	if !allFinite(emi, total, interest) {
		return domain.EMIResult{}, domain.NewInvalidNumber(domain.FieldInterestRate, formatRaw(in.InterestRate))
	}

	return domain.EMIResult{
		LoanAmount:     in.LoanAmount,
		MonthlyPayment: emi,
		TotalPayment:   total,
		TotalInterest:  interest,
	}, nil
}
