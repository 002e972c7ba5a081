package calculation

import (
	"math"
	"testing"

	"github.com/emicalc/loan-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTVMFormulas(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (float64, error)
		want float64
	}{
		{"present value", func() (float64, error) { return PresentValue(10000, 0.05, 10) }, 6139.1325},
		{"future value", func() (float64, error) { return FutureValue(10000, 0.05, 10) }, 16288.9463},
		{"future value fractional periods", func() (float64, error) { return FutureValue(10000, 0.05, 2.5) }, 11297.2632},
		{"future value negative rate", func() (float64, error) { return FutureValue(100, -0.1, 2) }, 81},
		{"zero rate present value", func() (float64, error) { return PresentValue(500, 0, 5) }, 500},
		{"zero periods", func() (float64, error) { return FutureValue(500, 0.07, 0) }, 500},
		{"annuity present value", func() (float64, error) { return AnnuityPresentValue(1000, 0.05, 10) }, 7721.7349},
		{"annuity future value", func() (float64, error) { return AnnuityFutureValue(1000, 0.05, 10) }, 12577.8925},
		{"perpetuity", func() (float64, error) { return Perpetuity(1000, 0.05) }, 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestPresentAndFutureValueAreInverses(t *testing.T) {
	fv, err := FutureValue(2500, 0.0425, 17)
	require.NoError(t, err)
	pv, err := PresentValue(fv, 0.0425, 17)
	require.NoError(t, err)
	assert.InDelta(t, 2500, pv, 1e-9)
}

func TestTVMRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"annuity pv zero rate", func() (float64, error) { return AnnuityPresentValue(1000, 0, 10) }},
		{"annuity fv zero rate", func() (float64, error) { return AnnuityFutureValue(1000, 0, 10) }},
		{"perpetuity zero rate", func() (float64, error) { return Perpetuity(1000, 0) }},
		{"perpetuity negative rate", func() (float64, error) { return Perpetuity(1000, -0.02) }},
		{"rate at -100%", func() (float64, error) { return PresentValue(1000, -1, 10) }},
		{"negative periods", func() (float64, error) { return FutureValue(1000, 0.05, -1) }},
		{"NaN amount", func() (float64, error) { return PresentValue(math.NaN(), 0.05, 1) }},
		{"infinite rate", func() (float64, error) { return FutureValue(1000, math.Inf(1), 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCompoundGrowth(t *testing.T) {
	tests := []struct {
		name      string
		frequency int
		want      float64
	}{
		{"annually", 1, 16288.9463},
		{"quarterly", 4, 16436.1946},
		{"monthly", 12, 16470.0950},
		{"daily", 365, 16486.6481},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CompoundGrowth(10000, 0.05, 10, tt.frequency)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, res.FutureValue, 0.0001)
			assert.InDelta(t, tt.want-10000, res.InterestEarned, 0.0001)
		})
	}

	t.Run("rejects", func(t *testing.T) {
		_, err := CompoundGrowth(10000, 0.05, 10, 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = CompoundGrowth(10000, 0.05, -1, 12)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = CompoundGrowth(10000, -12, 1, 12)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestEvaluateTVM(t *testing.T) {
	tests := []struct {
		req          domain.TVMRequest
		wantValue    float64
		wantInterest float64
	}{
		{domain.TVMRequest{Kind: domain.TVMPresentValue, Amount: 10000, Rate: 0.05, Periods: 10}, 6139.1325, 0},
		{domain.TVMRequest{Kind: domain.TVMFutureValue, Amount: 10000, Rate: 0.05, Periods: 10}, 16288.9463, 0},
		{domain.TVMRequest{Kind: domain.TVMAnnuityPresentValue, Amount: 1000, Rate: 0.05, Periods: 10}, 7721.7349, 0},
		{domain.TVMRequest{Kind: domain.TVMAnnuityFutureValue, Amount: 1000, Rate: 0.05, Periods: 10}, 12577.8925, 0},
		{domain.TVMRequest{Kind: domain.TVMPerpetuity, Amount: 1000, Rate: 0.05}, 20000, 0},
		{domain.TVMRequest{Kind: domain.TVMCompoundGrowth, Amount: 10000, Rate: 0.05, Years: 10, CompoundingsPerYear: 12}, 16470.0950, 6470.0950},
	}
	for _, tt := range tests {
		t.Run(string(tt.req.Kind), func(t *testing.T) {
			res, err := EvaluateTVM(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.req, res.Request)
			assert.InDelta(t, tt.wantValue, res.Value, 0.0001)
			assert.InDelta(t, tt.wantInterest, res.InterestEarned, 0.0001)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		_, err := EvaluateTVM(domain.TVMRequest{Kind: "irr", Amount: 1})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("errors name the formula", func(t *testing.T) {
		_, err := EvaluateTVM(domain.TVMRequest{Kind: domain.TVMPerpetuity, Amount: 1000})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "perpetuity")
	})
}
