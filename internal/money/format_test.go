package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0"},
		{"small", 250, "$250"},
		{"thousands", 1500, "$1,500"},
		{"rounds half up", 1499.5, "$1,500"},
		{"millions", 2_500_000, "$2,500,000"},
		{"negative", -250, "-$250"},
		{"negative thousands", -12_345, "-$12,345"},
		{"nan", math.NaN(), "$0"},
		{"inf", math.Inf(1), "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "8.0%", Percent(8, 1))
	assert.Equal(t, "20%", Percent(20, 0))
	assert.Equal(t, "0.0%", Percent(math.NaN(), 1))
	assert.Equal(t, "12.35%", Percent(12.346, 2))
}

func TestMonths(t *testing.T) {
	assert.Equal(t, "2.3 months", Months(10000.0/4300.0))
	assert.Equal(t, "0.0 months", Months(math.Inf(-1)))
}
