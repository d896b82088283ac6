package bench

import (
	"testing"

	"github.com/banachtech/binomial/crr"
	"github.com/banachtech/binomial/payoff"
	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	o, err := crr.New(100, 100, 1, 0.06, 3, 1.1, payoff.Call)
	require.NoError(t, err)

	res := Time(crr.PriceScalar, o)
	// the wrapper must not alter the wrapped function's result
	require.Equal(t, crr.PriceScalar(o), res.Price)
	require.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}

func TestSweep(t *testing.T) {
	o, err := crr.New(100, 100, 1, 0.06, 3, 1.1, payoff.Call)
	require.NoError(t, err)

	steps := []int{100, 1000, 5000}
	rows := Sweep(o, steps)
	require.Len(t, rows, len(steps))
	for i, row := range rows {
		require.Equal(t, steps[i], row.N)
		require.InEpsilon(t, row.Scalar.Price, row.Bulk.Price, 1e-9)
		require.Greater(t, row.Speedup(), 0.0)
	}
}
