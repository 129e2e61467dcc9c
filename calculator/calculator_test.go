package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func assertClose(t *testing.T, want, got float64) {
	t.Helper()
	tol := 1e-9 * math.Max(1, math.Abs(want))
	assert.InDelta(t, want, got, tol)
}

var (
	principals = []float64{0, 1, 999.99, 10000, 2_500_000}
	rates      = []float64{0, 0.5, 5, 8, 18, 36}
	periods    = []float64{0.5, 1, 3, 20}
)

func TestSimpleInterest_Formula(t *testing.T) {
	for _, p := range principals {
		for _, r := range rates {
			for _, tm := range periods {
				got, err := SimpleInterest(domain.SimpleInterestInput{Principal: p, Rate: r, Time: tm})
				require.NoError(t, err)
				assertClose(t, p*r*tm/100, got.Interest)
				assertClose(t, p+p*r*tm/100, got.Total)
			}
		}
	}
}

func TestCompoundInterest_Formula(t *testing.T) {
	for _, p := range principals {
		for _, r := range rates {
			for _, tm := range periods {
				for _, n := range []int{1, 2, 4, 12, 365, 7} {
					got, err := CompoundInterest(domain.CompoundInterestInput{Principal: p, Rate: r, Time: tm, Frequency: n})
					require.NoError(t, err)
					want := p * math.Pow(1+r/100/float64(n), float64(n)*tm)
					assertClose(t, want, got.Total)
					assertClose(t, want-p, got.Interest)
				}
			}
		}
	}
}

func TestCompoundInterest_RejectsNonPositiveFrequency(t *testing.T) {
	for _, n := range []int{0, -4} {
		_, err := CompoundInterest(domain.CompoundInterestInput{Principal: 1000, Rate: 5, Time: 1, Frequency: n})
		var invalid *domain.InvalidNumberError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.FieldCompoundFrequency, invalid.Field)
	}
}

func TestCompoundInterest_UndefinedPowerIsInvalid(t *testing.T) {
	_, err := CompoundInterest(domain.CompoundInterestInput{Principal: 1000, Rate: -500, Time: 0.5, Frequency: 1})
	var invalid *domain.InvalidNumberError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.FieldRate, invalid.Field)
}

func TestGST(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		rate      float64
		wantTax   float64
		wantTotal float64
	}{
		{name: "default rate", amount: 1000, rate: 18, wantTax: 180, wantTotal: 1180},
		{name: "zero rate", amount: 500, rate: 0, wantTax: 0, wantTotal: 500},
		{name: "negative amount passes through", amount: -100, rate: 18, wantTax: -18, wantTotal: -118},
		{name: "fractional rate", amount: 250, rate: 2.5, wantTax: 6.25, wantTotal: 256.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GST(domain.GSTInput{Amount: tt.amount, Rate: tt.rate})
			require.NoError(t, err)
			assert.Equal(t, tt.amount, got.OriginalAmount)
			assertClose(t, tt.wantTax, got.GSTAmount)
			assertClose(t, tt.wantTotal, got.TotalAmount)
		})
	}
}

func TestEMI_TotalIsInstallmentTimesMonths(t *testing.T) {
	for _, l := range []float64{1000, 200000, 5_000_000} {
		for _, r := range []float64{0.5, 8, 12, 24} {
			for _, tm := range []float64{0.5, 1, 20, 30} {
				got, err := EMI(domain.EMIInput{LoanAmount: l, InterestRate: r, TenureYears: tm})
				require.NoError(t, err)
				assertClose(t, got.MonthlyPayment*tm*12, got.TotalPayment)
				assertClose(t, got.TotalPayment-l, got.TotalInterest)
				assert.Greater(t, got.TotalInterest, 0.0)
			}
		}
	}
}

func TestEMI_ZeroRateIsStraightLine(t *testing.T) {
	got, err := EMI(domain.EMIInput{LoanAmount: 1200, InterestRate: 0, TenureYears: 1})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.MonthlyPayment)
	assert.Equal(t, 1200.0, got.TotalPayment)
	assert.Equal(t, 0.0, got.TotalInterest)
	assert.False(t, math.IsNaN(got.MonthlyPayment))
}

func TestEMI_VanishingRateIsStraightLine(t *testing.T) {
	got, err := EMI(domain.EMIInput{LoanAmount: 1200, InterestRate: 1e-15, TenureYears: 1})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.MonthlyPayment)
	assert.Equal(t, 0.0, got.TotalInterest)
}

func TestEMI_ZeroTenureIsInvalid(t *testing.T) {
	for _, r := range []float64{0, 8} {
		_, err := EMI(domain.EMIInput{LoanAmount: 1000, InterestRate: r, TenureYears: 0})
		var invalid *domain.InvalidNumberError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.FieldTenure, invalid.Field)
	}
}

func TestOverflowIsInvalid(t *testing.T) {
	_, err := SimpleInterest(domain.SimpleInterestInput{Principal: 1e308, Rate: 1e308, Time: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)

	_, err = GST(domain.GSTInput{Amount: 1e308, Rate: 1e308})
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)

	_, err = CompoundInterest(domain.CompoundInterestInput{Principal: 1e308, Rate: 100, Time: 10, Frequency: 1})
	var invalid *domain.InvalidNumberError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.FieldRate, invalid.Field)
}

func TestEMI_OverflowIsInvalid(t *testing.T) {
	tests := []struct {
		name      string
		in        domain.EMIInput
		wantField string
	}{
		{
			name:      "zero rate with tiny tenure",
			in:        domain.EMIInput{LoanAmount: 1e308, InterestRate: 0, TenureYears: 1e-10},
			wantField: domain.FieldTenure,
		},
		{
			name:      "vanishing growth with tiny tenure",
			in:        domain.EMIInput{LoanAmount: 1e300, InterestRate: 5, TenureYears: 1e-310},
			wantField: domain.FieldTenure,
		},
		{
			name:      "huge rate",
			in:        domain.EMIInput{LoanAmount: 1000, InterestRate: 1e308, TenureYears: 1},
			wantField: domain.FieldInterestRate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EMI(tt.in)
			var invalid *domain.InvalidNumberError
			require.ErrorAs(t, err, &invalid, "got %+v", got)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestLargeFiniteResultsAreAccepted(t *testing.T) {
	si, err := SimpleInterest(domain.SimpleInterestInput{Principal: 1e307, Rate: 100, Time: 1})
	require.NoError(t, err)
	assertClose(t, 1e307, si.Interest)

	gst, err := GST(domain.GSTInput{Amount: 1e307, Rate: 100})
	require.NoError(t, err)
	assertClose(t, 1e307, gst.GSTAmount)
}
