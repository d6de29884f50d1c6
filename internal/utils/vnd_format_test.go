package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	testCases := []struct {
		name     string
		amount   int64
		expected string
	}{
		{"zero", 0, "0đ"},
		{"under one thousand", 999, "999đ"},
		{"exactly one thousand", 1000, "1.000đ"},
		{"typical bill", 50000, "50.000đ"},
		{"savings principal", 5000000, "5.000.000đ"},
		{"transfer cap", 1000000000, "1.000.000.000đ"},
		{"negative", -1500000, "-1.500.000đ"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatVND(tc.amount))
		})
	}
}
