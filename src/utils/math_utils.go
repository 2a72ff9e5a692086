package utils

import "math"

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// Round2 rounds a monetary amount to kopiykas (2 decimal places).
// Every place money is derived must round here, otherwise quarterly
// figures drift away from what the XML encoder renders.
func Round2(val float64) float64 {
	return RoundFloat(val, 2)
}
