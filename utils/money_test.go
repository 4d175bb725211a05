package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKz(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 Kz"},
		{400, "400 Kz"},
		{2000, "2000 Kz"},
		{4400, "4400 Kz"},
		{9999, "9999 Kz"},
		{10000, "10.000 Kz"},
		{12500, "12.500 Kz"},
		{450000, "450.000 Kz"},
		{1234567, "1.234.567 Kz"},
		{-4400, "-4400 Kz"},
		{-12500, "-12.500 Kz"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatKz(tt.amount), "FormatKz(%d)", tt.amount)
	}
}
