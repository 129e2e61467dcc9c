package calculator

import "fincalc/domain"

// GST applies a flat percentage tax to a pre-tax amount.
func GST(in domain.GSTInput) (domain.GSTResult, error) {
	gstAmount := in.Amount * (in.Rate / 100)
	total := in.Amount + gstAmount

	if !allFinite(gstAmount, total) {
		return domain.GSTResult{}, domain.NewInvalidNumber(domain.FieldAmount, formatRaw(in.Amount))
	}

	return domain.GSTResult{
		OriginalAmount: in.Amount,
		GSTAmount:      gstAmount,
		TotalAmount:    total,
	}, nil
}
