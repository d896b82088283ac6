// Package crr prices European options on a Cox-Ross-Rubinstein binomial
// lattice. Two numerically equivalent backward-induction pricers are
// provided: a scalar node-by-node sweep and a whole-layer vectorized sweep.
package crr

import (
	"errors"
	"math"

	"github.com/banachtech/binomial/payoff"
)

// Option holds the market parameters of a single pricing call. D is always
// derived as 1/U so that an up move followed by a down move returns exactly
// to the prior price.
type Option struct {
	S0, K, T, R float64
	N           int
	U, D        float64
	Kind        payoff.Kind
}

// Constants are the per-step quantities shared by both pricers, recomputed
// once per pricing call. 0 < Q < 1 must hold for a well-posed market; the
// pricers do not check it and produce meaningless numbers if it is violated.
type Constants struct {
	Dt, Q, Disc float64
}

// New builds an Option with D = 1/U. Structurally invalid parameters are
// rejected here; economic preconditions such as q in (0,1) are left to the
// caller.
func New(s0, k, t, r float64, n int, u float64, kind payoff.Kind) (Option, error) {
	if s0 <= 0 || k <= 0 || t <= 0 {
		return Option{}, errors.New("spot, strike and maturity must be positive")
	}
	if n < 1 {
		return Option{}, errors.New("step count must be a positive integer")
	}
	if u <= 1 {
		return Option{}, errors.New("up factor must exceed 1")
	}
	return Option{S0: s0, K: k, T: t, R: r, N: n, U: u, D: 1 / u, Kind: kind}, nil
}

// Constants derives the time increment, the risk-neutral probability and
// the per-step discount factor.
func (o Option) Constants() Constants {
	dt := o.T / float64(o.N)
	return Constants{
		Dt:   dt,
		Q:    (math.Exp(o.R*dt) - o.D) / (o.U - o.D),
		Disc: math.Exp(-o.R * dt),
	}
}

// TerminalLayer returns the maturity-layer asset prices, lowest first.
// The first entry is S0*d^N and each subsequent entry is the previous one
// times u/d, matching the closed form S0*u^j*d^(N-j) to rounding.
func (o Option) TerminalLayer() []float64 {
	s := make([]float64, o.N+1)
	s[0] = o.S0 * math.Pow(o.D, float64(o.N))
	ratio := o.U / o.D
	for j := 1; j <= o.N; j++ {
		s[j] = s[j-1] * ratio
	}
	return s
}

// terminal is the initial value layer: intrinsic payoff at maturity.
func (o Option) terminal() []float64 {
	v := payoff.Vanilla{Strike: o.K, Kind: o.Kind}
	return v.Payout(o.TerminalLayer())
}
