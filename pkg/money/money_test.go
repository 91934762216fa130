package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₺0,00"},
		{5, "₺0,05"},
		{4500, "₺45,00"},
		{12050, "₺120,50"},
		{1234567, "₺12.345,67"},
		{100000000, "₺1.000.000,00"},
		{-4500, "-₺45,00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Format(tc.amount))
	}
}
