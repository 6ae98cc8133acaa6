package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{name: "small", input: 42, want: "42"},
		{name: "thousands", input: 485133, want: "485,133"},
		{name: "millions", input: 2500000, want: "2,500,000"},
		{name: "zero", input: 0, want: "0"},
		{name: "negative", input: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.input))
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		precision int
		want      string
	}{
		{name: "one decimal", input: 782.68, precision: 1, want: "782.7"},
		{name: "zero precision rounds", input: 485133.4, precision: 0, want: "485,133"},
		{name: "separated integer part", input: 12345.678, precision: 2, want: "12,345.68"},
		{name: "small value", input: 0.5, precision: 2, want: "0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Float(tt.input, tt.precision))
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "rounds to whole dollars", input: 90663.4, want: "$90,663"},
		{name: "rounds up", input: 99.5, want: "$100"},
		{name: "negative", input: -2500.2, want: "-$2,500"},
		{name: "zero", input: 0, want: "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.input))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.5%", Percent(0.125))
	assert.Equal(t, "100.0%", Percent(1))
	assert.Equal(t, "0.0%", Percent(0))
}
