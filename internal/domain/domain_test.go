package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCurrency(t *testing.T) {
	tests := []struct {
		code       string
		wantCode   string
		wantSymbol string
	}{
		{"", "USD", "$"},
		{"usd", "USD", "$"},
		{" inr ", "INR", "₹"},
		{"BDT", "BDT", "৳"},
		{"JPY", "JPY", "¥"},
		{"CNY", "CNY", "¥"},
		{"CHF", "CHF", "CHF"},
		{"aed", "AED", "د.إ"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := LookupCurrency(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, c.Code)
			assert.Equal(t, tt.wantSymbol, c.Symbol)
		})
	}

	_, err := LookupCurrency("XBT")
	assert.ErrorContains(t, err, `unknown currency "XBT"`)
}

func TestCurrencyCatalogue(t *testing.T) {
	assert.Len(t, Currencies, 13)
	assert.Equal(t, "USD", DefaultCurrency().Code)

	seen := map[string]bool{}
	for _, c := range Currencies {
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
		assert.NotEmpty(t, c.Symbol)
		assert.NotEmpty(t, c.Name)
	}
}

func TestLoanTypeValid(t *testing.T) {
	for _, lt := range []LoanType{"", LoanTypeHome, LoanTypePersonal, LoanTypeCar} {
		assert.True(t, lt.Valid(), "%q", lt)
	}
	assert.False(t, LoanType("boat").Valid())
	assert.False(t, LoanType("Home").Valid())
}

func TestEMIResultTerms(t *testing.T) {
	r := EMIResult{MonthlyEMI: 1887.79, Principal: 25000, AnnualRatePercent: 9, TenureMonths: 14}
	assert.Equal(t, LoanTerms{Principal: 25000, AnnualRatePercent: 9, TenureMonths: 14}, r.Terms())
}

func TestTVMKindsAreDistinct(t *testing.T) {
	seen := map[TVMKind]bool{}
	for _, k := range TVMKinds {
		assert.False(t, seen[k])
		seen[k] = true
	}
	assert.Len(t, seen, 6)
}
