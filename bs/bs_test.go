package bs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	require.InDelta(t, 10.989549152625983, Call(100, 100, 1, 0.06, 0.2), 1e-9)
}

func TestPut(t *testing.T) {
	require.InDelta(t, 5.166002511050856, Put(100, 100, 1, 0.06, 0.2), 1e-9)
}

func TestPutCallParity(t *testing.T) {
	s0, k, tt, r, sigma := 105.0, 98.0, 0.75, 0.04, 0.3
	lhs := Call(s0, k, tt, r, sigma) - Put(s0, k, tt, r, sigma)
	rhs := s0 - k*math.Exp(-r*tt)
	require.InEpsilon(t, rhs, lhs, 1e-12)
}
