package payoff

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects the direction of a vanilla payoff.
type Kind int

const (
	Call Kind = iota
	Put
)

func (k Kind) String() string {
	if k == Put {
		return "put"
	}
	return "call"
}

// ParseKind maps "call"/"put" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return Call, fmt.Errorf("unknown option kind: %q", s)
}

// Vanilla is a European vanilla payoff.
type Vanilla struct {
	Strike float64
	Kind   Kind
}

// Intrinsic is the exercise value at price s, floored at zero.
func (v Vanilla) Intrinsic(s float64) float64 {
	if v.Kind == Put {
		return math.Max(v.Strike-s, 0)
	}
	return math.Max(s-v.Strike, 0)
}

// Payout maps a terminal price layer to its value layer, one entry per
// price, every entry non-negative.
func (v Vanilla) Payout(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for i, s := range prices {
		out[i] = v.Intrinsic(s)
	}
	return out
}
