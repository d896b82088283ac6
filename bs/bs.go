// Package bs implements the Black-Scholes closed form, used as a
// convergence cross-check for the lattice pricers.
package bs

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0.0, Sigma: 1.0}

// Call returns the Black-Scholes price of a European call.
func Call(s0, k, t, r, sigma float64) float64 {
	d1, d2 := d1d2(s0, k, t, r, sigma)
	return s0*stdNormal.CDF(d1) - k*math.Exp(-r*t)*stdNormal.CDF(d2)
}

// Put returns the Black-Scholes price of a European put.
func Put(s0, k, t, r, sigma float64) float64 {
	d1, d2 := d1d2(s0, k, t, r, sigma)
	return k*math.Exp(-r*t)*stdNormal.CDF(-d2) - s0*stdNormal.CDF(-d1)
}

func d1d2(s0, k, t, r, sigma float64) (float64, float64) {
	st := sigma * math.Sqrt(t)
	d1 := (math.Log(s0/k) + (r+0.5*sigma*sigma)*t) / st
	return d1, d1 - st
}
