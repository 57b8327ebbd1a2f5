package utils

import "math"

// RoundWithTwoDecimalPlace arredonda horas para exibição (11.2388 -> 11.24).
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SumHours soma as horas e arredonda só o total.
func SumHours(hours []float64) float64 {
	var total float64
	for _, h := range hours {
		total += h
	}
	return RoundWithTwoDecimalPlace(total)
}
