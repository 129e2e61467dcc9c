package calculator

import (
	"math"
	"strconv"

	"fincalc/domain"
)

// CompoundInterest computes amount = P*(1+R/100/N)^(N*T).
// Any positive frequency is accepted; the standard set is a display concern.
func CompoundInterest(in domain.CompoundInterestInput) (domain.CompoundInterestResult, error) {
	if in.Frequency <= 0 {
		return domain.CompoundInterestResult{}, domain.NewInvalidNumber(domain.FieldCompoundFrequency, strconv.Itoa(in.Frequency))
	}

	n := float64(in.Frequency)
	amount := in.Principal * math.Pow(1+in.Rate/100/n, n*in.Time)
	interest := amount - in.Principal

	// A rate below -100*N makes the base negative and the power undefined.
	if !allFinite(amount, interest) {
		return domain.CompoundInterestResult{}, domain.NewInvalidNumber(domain.FieldRate, formatRaw(in.Rate))
	}

	return domain.CompoundInterestResult{
		Principal: in.Principal,
		Interest:  interest,
		Total:     amount,
	}, nil
}
