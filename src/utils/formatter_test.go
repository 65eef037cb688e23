package utils

import (
	"github.com/stretchr/testify/assert"
	"strconv"
	"testing"
)

func TestRoundDecimalToIncrementMultiple(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal("10", formatter.RoundDecimal(12.3, 5))
	assertion.Equal("0.1235", formatter.RoundDecimal(0.123456789, 0.0001))
	assertion.Equal("27000.5", formatter.RoundDecimal(27000.52, 0.1))
	assertion.Equal("0", formatter.RoundDecimal(0.0004, 0.001))
}

func TestRoundDecimalWithoutIncrement(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal("1.23", formatter.RoundDecimal(1.230000001, 0))
	assertion.Equal("0.00000001", formatter.RoundDecimal(0.000000011, 0))
	assertion.Equal("1000", formatter.RoundDecimal(1000.00, 0))
}

func TestRoundDecimalStripsTrailingZerosOnly(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	// "10.00000000" must lose the zeros and the dot, never the integer part
	assertion.Equal("10", formatter.RoundDecimal(10.0, 0.01))
	assertion.Equal("100", formatter.RoundDecimal(100.0, 1))
}

func TestRoundDecimalIsIdempotent(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	first := formatter.RoundDecimal(0.123456789, 0.0001)
	parsed, err := strconv.ParseFloat(first, 64)
	assertion.Nil(err)
	assertion.Equal(first, formatter.RoundDecimal(parsed, 0.0001))
}

func TestToFixed(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal(33.33, formatter.ToFixed(33.333333, 2))
	assertion.Equal(33.34, formatter.ToFixed(33.336, 2))
}
