// Package bench times the two backward-induction realizations against each
// other across a range of step counts.
package bench

import (
	"time"

	"github.com/banachtech/binomial/crr"
	"github.com/schollz/progressbar/v3"
)

// Pricer is the shared contract of both backward-induction realizations.
type Pricer func(crr.Option) float64

// Result pairs a computed price with the wall-clock time the call took.
type Result struct {
	Price   float64
	Elapsed time.Duration
}

// Time runs f on o and records the elapsed wall-clock duration. The price
// is returned exactly as f produced it.
func Time(f Pricer, o crr.Option) Result {
	start := time.Now()
	p := f(o)
	return Result{Price: p, Elapsed: time.Since(start)}
}

// Comparison is one sweep row: both realizations priced at the same N.
type Comparison struct {
	N      int
	Scalar Result
	Bulk   Result
}

// Speedup is the scalar-to-bulk elapsed-time ratio.
func (c Comparison) Speedup() float64 {
	return float64(c.Scalar.Elapsed) / float64(c.Bulk.Elapsed)
}

// Sweep reprices o at each step count and times both realizations.
func Sweep(o crr.Option, steps []int) []Comparison {
	bar := progressBar(len(steps))
	out := make([]Comparison, len(steps))
	for i, n := range steps {
		oN := o
		oN.N = n
		out[i] = Comparison{
			N:      n,
			Scalar: Time(crr.PriceScalar, oN),
			Bulk:   Time(crr.PriceBulk, oN),
		}
		bar.Add(1)
	}
	return out
}

// progress bar initialization
func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
