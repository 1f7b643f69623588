package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStipend(t *testing.T) {
	t.Run("monthly shorthand", func(t *testing.T) {
		got := ParseStipend("15k")
		require.NotNil(t, got.Min)
		require.NotNil(t, got.Max)
		assert.Equal(t, 15000, *got.Min)
		assert.Equal(t, 15000, *got.Max)
		assert.False(t, got.Ambiguous)
	})

	t.Run("monthly range with currency and periodicity", func(t *testing.T) {
		got := ParseStipend("₹10k-20k /month")
		require.NotNil(t, got.Min)
		require.NotNil(t, got.Max)
		assert.Equal(t, 10000, *got.Min)
		assert.Equal(t, 20000, *got.Max)
	})

	t.Run("lpa converts to monthly", func(t *testing.T) {
		got := ParseStipend("3 LPA")
		require.NotNil(t, got.Min)
		assert.Equal(t, 25000, *got.Min)
		assert.Equal(t, 25000, *got.Max)
	})

	t.Run("fractional lpa", func(t *testing.T) {
		got := ParseStipend("2.4 lpa")
		require.NotNil(t, got.Min)
		assert.Equal(t, 20000, *got.Min)
	})

	t.Run("lakh per annum", func(t *testing.T) {
		got := ParseStipend("6 lakh per annum")
		require.NotNil(t, got.Min)
		assert.Equal(t, 50000, *got.Min)
	})

	t.Run("annual rounding is half-up", func(t *testing.T) {
		// 100000 / 12 = 8333.33; rounds down to 8333.
		got := ParseStipend("₹1,00,000 per year")
		require.NotNil(t, got.Min)
		assert.Equal(t, 8333, *got.Min)
	})

	t.Run("explicit monthly range", func(t *testing.T) {
		got := ParseStipend("25,000 - 35,000 per month")
		require.NotNil(t, got.Min)
		assert.Equal(t, 25000, *got.Min)
		assert.Equal(t, 35000, *got.Max)
	})

	t.Run("foreign currency is ambiguous", func(t *testing.T) {
		for _, raw := range []string{"USD 1000", "$500/month"} {
			got := ParseStipend(raw)
			assert.Nil(t, got.Min, raw)
			assert.Nil(t, got.Max, raw)
			assert.True(t, got.Ambiguous, raw)
		}
	})

	t.Run("empty input has no bounds and is not ambiguous", func(t *testing.T) {
		got := ParseStipend("")
		assert.Nil(t, got.Min)
		assert.Nil(t, got.Max)
		assert.False(t, got.Ambiguous)
	})

	t.Run("non-numeric text is ambiguous", func(t *testing.T) {
		got := ParseStipend("Unpaid")
		assert.Nil(t, got.Min)
		assert.True(t, got.Ambiguous)
	})

	t.Run("open range keeps the parsed bound on both sides", func(t *testing.T) {
		got := ParseStipend("up to 20k")
		require.NotNil(t, got.Min)
		assert.Equal(t, 20000, *got.Min)
		assert.Equal(t, 20000, *got.Max)
	})
}
