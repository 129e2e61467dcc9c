package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/domain"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		res  domain.Result
		want string
	}{
		{
			name: "simple interest",
			res:  domain.SimpleInterestResult{Principal: 10000, Interest: 1500, Total: 11500},
			want: "Simple interest of 1,500.00 on 10,000.00 brings the total to 11,500.00.",
		},
		{
			name: "compound interest",
			res:  domain.CompoundInterestResult{Principal: 10000, Interest: 4898.45708301605, Total: 14898.45708301605},
			want: "10,000.00 grows to 14,898.46, earning 4,898.46 in compound interest.",
		},
		{
			name: "emi zero rate",
			res:  domain.EMIResult{LoanAmount: 120000, MonthlyPayment: 1000, TotalPayment: 120000},
			want: "A loan of 120,000.00 costs 1,000.00 per month for 120 months (10.0 years): 120,000.00 in total, of which 0.00 is interest.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.res))
		})
	}
}
