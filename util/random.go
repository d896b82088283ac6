// Package util provides random fixture helpers shared by tests.
package util

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var src = rand.NewSource(uint64(time.Now().UnixNano()))

// RandomFloat generates a random float in [min, max)
func RandomFloat(min, max float64) float64 {
	d := distuv.Uniform{Min: min, Max: max, Src: src}
	return d.Rand()
}

// RandomInt generates a random integer between min and max
func RandomInt(min, max int) int {
	d := distuv.Uniform{Min: float64(min), Max: float64(max + 1), Src: src}
	return int(d.Rand())
}
