package calculator

import (
	"errors"
	"fmt"
	"strconv"

	"fincalc/domain"
)

// ErrUnknownMode is returned for a mode outside the four calculators.
var ErrUnknownMode = errors.New("unknown calculator mode")

// Parse validates the raw fields of one mode into its typed input.
func Parse(mode domain.Mode, raw domain.RawInputSet) (domain.Input, error) {
	f := &fields{raw: raw}

	var in domain.Input
	switch mode {
	case domain.ModeSimpleInterest:
		in = domain.SimpleInterestInput{
			Principal: f.float(domain.FieldPrincipal),
			Rate:      f.float(domain.FieldRate),
			Time:      f.float(domain.FieldTime),
		}
	case domain.ModeCompoundInterest:
		in = domain.CompoundInterestInput{
			Principal: f.float(domain.FieldPrincipal),
			Rate:      f.float(domain.FieldRate),
			Time:      f.float(domain.FieldTime),
			Frequency: f.count(domain.FieldCompoundFrequency),
		}
	case domain.ModeGST:
		in = domain.GSTInput{
			Amount: f.float(domain.FieldAmount),
			Rate:   f.float(domain.FieldGSTRate),
		}
	case domain.ModeEMI:
		in = domain.EMIInput{
			LoanAmount:   f.float(domain.FieldLoanAmount),
			InterestRate: f.float(domain.FieldInterestRate),
			TenureYears:  f.float(domain.FieldTenure),
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if f.err != nil {
		return nil, f.err
	}
	return in, nil
}

// Evaluate runs the calculator matching the input's type.
func Evaluate(in domain.Input) (domain.Result, error) {
	switch in := in.(type) {
	case domain.SimpleInterestInput:
		return result(SimpleInterest(in))
	case domain.CompoundInterestInput:
		return result(CompoundInterest(in))
	case domain.GSTInput:
		return result(GST(in))
	case domain.EMIInput:
		return result(EMI(in))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMode, in)
	}
}

func result[R domain.Result](r R, err error) (domain.Result, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Compute parses and evaluates one calculator invocation. It never retains
// or mutates raw.
func Compute(mode domain.Mode, raw domain.RawInputSet) (domain.Result, error) {
	in, err := Parse(mode, raw)
	if err != nil {
		return nil, err
	}

	res, err := Evaluate(in)
	if err != nil {
		return nil, withRawValue(err, raw)
	}
	return res, nil
}

// withRawValue reports the text the caller typed rather than its parsed form.
func withRawValue(err error, raw domain.RawInputSet) error {
	var invalid *domain.InvalidNumberError
	if !errors.As(err, &invalid) {
		return err
	}
	if v, ok := raw[invalid.Field]; ok {
		return domain.NewInvalidNumber(invalid.Field, v)
	}
	return err
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
