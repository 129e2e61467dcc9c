package service

import (
	"errors"

	"go.uber.org/zap"

	"fincalc/calculator"
	"fincalc/domain"
)

func roundTo2Decimals(value float64) float64 {
	return calculator.RoundCents(value)
}

type CalculatorService struct {
	logger *zap.Logger
}

// NewCalculatorService creates a CalculatorService. A nil logger is replaced
// by a no-op logger.
func NewCalculatorService(logger *zap.Logger) *CalculatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorService{logger: logger}
}

// Calculate runs one calculator and prepares the result for display.
// Nothing is stored between calls.
func (s *CalculatorService) Calculate(
	mode domain.Mode,
	raw domain.RawInputSet,
) (domain.Calculation, error) {

	res, err := calculator.Compute(mode, raw)
	if err != nil {
		s.logRejected(mode, err)
		return domain.Calculation{}, err
	}

	rounded := roundResult(res)
	s.logger.Debug("calculation completed",
		zap.String("mode", string(mode)),
		zap.Any("result", rounded),
	)

	return domain.Calculation{
		Mode:    mode,
		Result:  rounded,
		Display: display(res),
		Summary: Summarize(res),
	}, nil
}

// Schedule builds the month-by-month amortization of an EMI loan.
func (s *CalculatorService) Schedule(raw domain.RawInputSet) (domain.AmortizationSchedule, error) {
	schedule, err := calculator.Schedule(raw)
	if err != nil {
		s.logRejected(domain.ModeEMI, err)
		return domain.AmortizationSchedule{}, err
	}

	s.logger.Debug("amortization schedule built",
		zap.Int("months", len(schedule.Installments)),
		zap.Float64("monthly_payment", schedule.Summary.MonthlyPayment),
	)
	return schedule, nil
}

func (s *CalculatorService) logRejected(mode domain.Mode, err error) {
	var invalid *domain.InvalidNumberError
	if errors.As(err, &invalid) {
		s.logger.Info("calculation rejected",
			zap.String("mode", string(mode)),
			zap.String("field", invalid.Field),
			zap.String("value", invalid.Value),
		)
		return
	}
	s.logger.Warn("calculation failed", zap.String("mode", string(mode)), zap.Error(err))
}

func roundResult(res domain.Result) domain.Result {
	switch r := res.(type) {
	case domain.SimpleInterestResult:
		return domain.SimpleInterestResult{
			Principal: roundTo2Decimals(r.Principal),
			Interest:  roundTo2Decimals(r.Interest),
			Total:     roundTo2Decimals(r.Total),
		}
	case domain.CompoundInterestResult:
		return domain.CompoundInterestResult{
			Principal: roundTo2Decimals(r.Principal),
			Interest:  roundTo2Decimals(r.Interest),
			Total:     roundTo2Decimals(r.Total),
		}
	case domain.GSTResult:
		return domain.GSTResult{
			OriginalAmount: roundTo2Decimals(r.OriginalAmount),
			GSTAmount:      roundTo2Decimals(r.GSTAmount),
			TotalAmount:    roundTo2Decimals(r.TotalAmount),
		}
	case domain.EMIResult:
		return domain.EMIResult{
			LoanAmount:     roundTo2Decimals(r.LoanAmount),
			MonthlyPayment: roundTo2Decimals(r.MonthlyPayment),
			TotalPayment:   roundTo2Decimals(r.TotalPayment),
			TotalInterest:  roundTo2Decimals(r.TotalInterest),
		}
	}
	return res
}

func display(res domain.Result) map[string]string {
	f := calculator.FormatAmount
	switch r := res.(type) {
	case domain.SimpleInterestResult:
		return map[string]string{"principal": f(r.Principal), "interest": f(r.Interest), "total": f(r.Total)}
	case domain.CompoundInterestResult:
		return map[string]string{"principal": f(r.Principal), "interest": f(r.Interest), "total": f(r.Total)}
	case domain.GSTResult:
		return map[string]string{"originalAmount": f(r.OriginalAmount), "gstAmount": f(r.GSTAmount), "totalAmount": f(r.TotalAmount)}
	case domain.EMIResult:
		return map[string]string{
			"loanAmount":     f(r.LoanAmount),
			"monthlyPayment": f(r.MonthlyPayment),
			"totalPayment":   f(r.TotalPayment),
			"totalInterest":  f(r.TotalInterest),
		}
	}
	return nil
}
