// Package normal implements the normal density and a power-series
// approximation of the cumulative distribution function.
//
// The CDF is computed without special-function libraries: the odd power
// series around the density is summed until it reaches a fixed point at
// working precision. Outside [-8, 8] the result saturates to 0 or 1.
package normal

import "math"

// Saturation bound of the series. Beyond it the tail mass is below float64
// resolution around 0.5 and the series loses accuracy.
const saturation = 8.0

var sqrt2Pi = math.Sqrt(2 * math.Pi)

// StandardDensity returns exp(-x²/2) / sqrt(2π).
func StandardDensity(x float64) float64 {
	return math.Exp(-x*x/2.0) / sqrt2Pi
}

// Density returns the density at x of the normal distribution with the given
// mean and scale. Scale must be non-zero.
func Density(x, mean, scale float64) float64 {
	return StandardDensity((x-mean)/scale) / scale
}

// StandardCDF approximates Φ(z).
//
//	Φ(z) = 0.5 + φ(z) · (z + z³/3 + z⁵/(3·5) + ...)
//
// The sum stops once adding the next term no longer changes it. NaN maps to
// NaN.
func StandardCDF(z float64) float64 {
	if math.IsNaN(z) {
		return math.NaN()
	}
	if z < -saturation {
		return 0.0
	}
	if z > saturation {
		return 1.0
	}

	total := 0.0
	term := z
	i := 3.0
	for total != total+term {
		total += term
		term *= z * z / i
		i += 2.0
	}
	// Cancellation close to -8 can push the sum a few ulps below zero.
	return math.Min(math.Max(0.5+total*StandardDensity(z), 0.0), 1.0)
}

// CDF returns Φ((z-mean)/scale). Scale must be non-zero.
func CDF(z, mean, scale float64) float64 {
	return StandardCDF((z - mean) / scale)
}

// Normal is a normal distribution with mean Mu and scale Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
}

// Unit is the standard normal distribution.
var Unit = Normal{Mu: 0, Sigma: 1}

// Prob returns the density at x.
func (n Normal) Prob(x float64) float64 {
	return Density(x, n.Mu, n.Sigma)
}

// CDF returns the cumulative probability at x.
func (n Normal) CDF(x float64) float64 {
	return CDF(x, n.Mu, n.Sigma)
}
