package calculator

import "fincalc/domain"

var defaults = map[string]string{
	domain.FieldCompoundFrequency: "12",
	domain.FieldGSTRate:           "18",
}

type FrequencyOption struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// StandardFrequencies are the compounding options offered to users. Compound
// accepts any positive frequency; this list is for display only.
var StandardFrequencies = []FrequencyOption{
	{Label: "Annually", Value: 1},
	{Label: "Semi-Annually", Value: 2},
	{Label: "Quarterly", Value: 4},
	{Label: "Monthly", Value: 12},
	{Label: "Daily", Value: 365},
}

type FieldInfo struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Default string `json:"default,omitempty"`
}

type ModeInfo struct {
	Mode        domain.Mode       `json:"mode"`
	Title       string            `json:"title"`
	Fields      []FieldInfo       `json:"fields"`
	Frequencies []FrequencyOption `json:"frequencies,omitempty"`
}

// Modes describes every calculator and its fields in display order.
func Modes() []ModeInfo {
	return []ModeInfo{
		{
			Mode:  domain.ModeSimpleInterest,
			Title: "Simple Interest",
			Fields: []FieldInfo{
				field(domain.FieldPrincipal, "Principal Amount"),
				field(domain.FieldRate, "Interest Rate (%)"),
				field(domain.FieldTime, "Time Period (Years)"),
			},
		},
		{
			Mode:  domain.ModeCompoundInterest,
			Title: "Compound Interest",
			Fields: []FieldInfo{
				field(domain.FieldPrincipal, "Principal Amount"),
				field(domain.FieldRate, "Interest Rate (%)"),
				field(domain.FieldTime, "Time Period (Years)"),
				field(domain.FieldCompoundFrequency, "Compound Frequency"),
			},
			Frequencies: StandardFrequencies,
		},
		{
			Mode:  domain.ModeGST,
			Title: "GST",
			Fields: []FieldInfo{
				field(domain.FieldAmount, "Amount"),
				field(domain.FieldGSTRate, "GST Rate (%)"),
			},
		},
		{
			Mode:  domain.ModeEMI,
			Title: "EMI",
			Fields: []FieldInfo{
				field(domain.FieldLoanAmount, "Loan Amount"),
				field(domain.FieldInterestRate, "Interest Rate (% per annum)"),
				field(domain.FieldTenure, "Loan Tenure (Years)"),
			},
		},
	}
}

func field(name, label string) FieldInfo {
	return FieldInfo{Name: name, Label: label, Default: defaults[name]}
}

// LookupMode reports whether name is one of the four calculators.
func LookupMode(name string) (domain.Mode, bool) {
	switch m := domain.Mode(name); m {
	case domain.ModeSimpleInterest, domain.ModeCompoundInterest, domain.ModeGST, domain.ModeEMI:
		return m, true
	}
	return "", false
}
