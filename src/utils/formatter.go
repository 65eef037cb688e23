package utils

import (
	"math"
	"strconv"
	"strings"
)

type Formatter struct {
}

// RoundDecimal rounds value to the nearest integer multiple of increment
// and formats it with up to 8 decimal places, dropping trailing zeros and
// a trailing decimal point. A zero increment rounds to 8 decimal places,
// which is what the quote asset's empty filter resolves to.
func (m *Formatter) RoundDecimal(value float64, increment float64) string {
	rounded := value

	if increment > 0 {
		rounded = math.Round(value/increment) * increment
	} else {
		ratio := math.Pow(10, 8)
		rounded = math.Round(value*ratio) / ratio
	}

	formatted := strconv.FormatFloat(rounded, 'f', 8, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}
