package calculator

import "fincalc/domain"

// SimpleInterest computes interest = P*R*T/100 and total = P + interest.
func SimpleInterest(in domain.SimpleInterestInput) (domain.SimpleInterestResult, error) {
	interest := in.Principal * (in.Rate / 100) * in.Time
	total := in.Principal + interest

	if !allFinite(interest, total) {
		return domain.SimpleInterestResult{}, domain.NewInvalidNumber(domain.FieldPrincipal, formatRaw(in.Principal))
	}

	return domain.SimpleInterestResult{
		Principal: in.Principal,
		Interest:  interest,
		Total:     total,
	}, nil
}
