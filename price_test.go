package mensafeed_test

import (
	"testing"

	"github.com/openkassel/mensafeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPriceLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "three tiers", line: "2,95 € / 4,60 € / 5,50 €", want: true},
		{name: "single amount", line: "1,50€", want: true},
		{name: "dot decimal", line: "3.20 €", want: true},
		{name: "amount without currency symbol", line: "12,34", want: false},
		{name: "plain text", line: "mit Salatbeilage", want: false},
		{name: "integer with euro", line: "5 €", want: false},
		{name: "empty", line: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mensafeed.IsPriceLine(tt.line))
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  float64
		none  bool
	}{
		{name: "comma decimal with symbol", token: "2,95 €", want: 2.95},
		{name: "dot decimal", token: "4.60", want: 4.6},
		{name: "surrounding whitespace", token: "  5,50 €  ", want: 5.5},
		{name: "trailing suffix truncated", token: "4,60€/Portion", want: 4.6},
		{name: "empty token", token: "", none: true},
		{name: "no digits", token: "ausverkauft", none: true},
		{name: "negative sign is not numeric", token: "-4,60 €", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mensafeed.ParseAmount(tt.token)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.0001)
		})
	}
}

func TestParsePriceLine(t *testing.T) {
	t.Parallel()

	t.Run("maps three parts to the three roles in order", func(t *testing.T) {
		t.Parallel()

		prices := mensafeed.ParsePriceLine("2,95 € / 4,60 € / 5,50 €")

		require.NotNil(t, prices.Students)
		require.NotNil(t, prices.Employees)
		require.NotNil(t, prices.Others)
		assert.InDelta(t, 2.95, *prices.Students, 0.0001)
		assert.InDelta(t, 4.60, *prices.Employees, 0.0001)
		assert.InDelta(t, 5.50, *prices.Others, 0.0001)
	})

	t.Run("two parts leave others absent", func(t *testing.T) {
		t.Parallel()

		prices := mensafeed.ParsePriceLine("1,50 € / 2,00 €")

		require.NotNil(t, prices.Students)
		require.NotNil(t, prices.Employees)
		assert.InDelta(t, 1.50, *prices.Students, 0.0001)
		assert.InDelta(t, 2.00, *prices.Employees, 0.0001)
		assert.Nil(t, prices.Others)
	})

	t.Run("parts beyond the third are ignored", func(t *testing.T) {
		t.Parallel()

		prices := mensafeed.ParsePriceLine("1,00 € / 2,00 € / 3,00 € / 4,00 €")

		require.NotNil(t, prices.Others)
		assert.InDelta(t, 3.00, *prices.Others, 0.0001)
	})

	t.Run("empty parts are discarded before mapping", func(t *testing.T) {
		t.Parallel()

		prices := mensafeed.ParsePriceLine(" / 2,95 € / 4,60 €")

		require.NotNil(t, prices.Students)
		require.NotNil(t, prices.Employees)
		assert.InDelta(t, 2.95, *prices.Students, 0.0001)
		assert.InDelta(t, 4.60, *prices.Employees, 0.0001)
		assert.Nil(t, prices.Others)
	})

	t.Run("unparseable part yields nil for that role only", func(t *testing.T) {
		t.Parallel()

		prices := mensafeed.ParsePriceLine("2,95 € / ausverkauft / 5,50 €")

		require.NotNil(t, prices.Students)
		assert.Nil(t, prices.Employees)
		require.NotNil(t, prices.Others)
		assert.InDelta(t, 5.50, *prices.Others, 0.0001)
	})
}
