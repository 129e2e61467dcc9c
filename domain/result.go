package domain

// Result is one of SimpleInterestResult, CompoundInterestResult, GSTResult or EMIResult.
type Result interface {
	Mode() Mode
	result()
}

type SimpleInterestResult struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Total     float64 `json:"total"`
}

type CompoundInterestResult struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Total     float64 `json:"total"`
}

type GSTResult struct {
	OriginalAmount float64 `json:"originalAmount"`
	GSTAmount      float64 `json:"gstAmount"`
	TotalAmount    float64 `json:"totalAmount"`
}

type EMIResult struct {
	LoanAmount     float64 `json:"loanAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

func (SimpleInterestResult) Mode() Mode   { return ModeSimpleInterest }
func (CompoundInterestResult) Mode() Mode { return ModeCompoundInterest }
func (GSTResult) Mode() Mode              { return ModeGST }
func (EMIResult) Mode() Mode              { return ModeEMI }

func (SimpleInterestResult) result()   {}
func (CompoundInterestResult) result() {}
func (GSTResult) result()              {}
func (EMIResult) result()              {}

// Installment is one month of an EMI amortization schedule.
type Installment struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type AmortizationSchedule struct {
	Summary      EMIResult     `json:"summary"`
	Installments []Installment `json:"installments"`
}

// Calculation is a result prepared for display: amounts rounded to cents,
// formatted strings per field, and a one-line summary.
type Calculation struct {
	Mode    Mode              `json:"mode"`
	Result  Result            `json:"result"`
	Display map[string]string `json:"display"`
	Summary string            `json:"summary"`
}
