//go:build unit

package payment_test

import (
	"testing"

	"bookify/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	t.Run("normalizes code", func(t *testing.T) {
		c, err := payment.NewCurrency(" USD ")
		require.NoError(t, err)
		assert.Equal(t, payment.Currency("usd"), c)
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, code := range []string{"", "us", "usdd", "u5d"} {
			_, err := payment.NewCurrency(code)
			assert.ErrorIs(t, err, payment.ErrInvalidCurrency, "code=%q", code)
		}
	})

	t.Run("minor units", func(t *testing.T) {
		assert.Equal(t, int64(18000), payment.Currency("usd").ToMinorUnits(18000))
		assert.Equal(t, int64(180), payment.Currency("jpy").ToMinorUnits(18000))
		assert.Equal(t, int64(10), payment.Currency("krw").ToMinorUnits(1050))
		assert.Equal(t, int64(12), payment.Currency("krw").ToMinorUnits(1150))
	})
}

func TestAmountFromMinor(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		currency payment.Currency
		want     string
		decimals int32
	}{
		{name: "two-decimal currency", minor: 1050, currency: "usd", want: "10.50", decimals: 2},
		{name: "zero-decimal currency", minor: 1050, currency: "jpy", want: "1050", decimals: 0},
		{name: "upper case code", minor: 1050, currency: "JPY", want: "1050", decimals: 0},
		{name: "sub-unit amount", minor: 5, currency: "eur", want: "0.05", decimals: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := payment.AmountFromMinor(tt.minor, tt.currency)
			assert.Equal(t, tt.want, a.String())
			assert.Equal(t, tt.decimals, a.Decimals())
			assert.Equal(t, tt.minor, a.Minor())
		})
	}
}
