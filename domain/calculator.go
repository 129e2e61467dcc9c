package domain

// Mode identifies one of the four calculators.
type Mode string

const (
	ModeSimpleInterest   Mode = "simple-interest"
	ModeCompoundInterest Mode = "compound-interest"
	ModeGST              Mode = "gst"
	ModeEMI              Mode = "emi"
)

// Field names accepted in a RawInputSet.
const (
	FieldPrincipal         = "principal"
	FieldRate              = "rate"
	FieldTime              = "time"
	FieldCompoundFrequency = "compoundFrequency"
	FieldAmount            = "amount"
	FieldGSTRate           = "gstRate"
	FieldLoanAmount        = "loanAmount"
	FieldInterestRate      = "interestRate"
	FieldTenure            = "tenure"
)

// RawInputSet holds the free-text values typed by the user, keyed by field name.
type RawInputSet map[string]string

// Input is one of SimpleInterestInput, CompoundInterestInput, GSTInput or EMIInput.
type Input interface {
	Mode() Mode
	input()
}

type SimpleInterestInput struct {
	Principal float64
	Rate      float64
	Time      float64
}

type CompoundInterestInput struct {
	Principal float64
	Rate      float64
	Time      float64
	Frequency int
}

type GSTInput struct {
	Amount float64
	Rate   float64
}

type EMIInput struct {
	LoanAmount   float64
	InterestRate float64
	TenureYears  float64
}

func (SimpleInterestInput) Mode() Mode   { return ModeSimpleInterest }
func (CompoundInterestInput) Mode() Mode { return ModeCompoundInterest }
func (GSTInput) Mode() Mode              { return ModeGST }
func (EMIInput) Mode() Mode              { return ModeEMI }

func (SimpleInterestInput) input()   {}
func (CompoundInterestInput) input() {}
func (GSTInput) input()              {}
func (EMIInput) input()              {}
