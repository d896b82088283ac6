package crr

import "gonum.org/v1/gonum/floats"

// PriceBulk performs the same backward sweep as PriceScalar, expressed as
// whole-layer slice operations: disc * (q*V[1:] + (1-q)*V[:len-1]). Rounds
// ping-pong between two buffers so every output element is combined from
// pre-round values only. Agrees with PriceScalar up to floating-point
// rounding.
func PriceBulk(o Option) float64 {
	c := o.Constants()
	v := o.terminal()
	buf := make([]float64, o.N)
	q, p := c.Q, 1-c.Q
	for i := o.N; i >= 1; i-- {
		dst := buf[:i]
		copy(dst, v[1:i+1])
		floats.Scale(q, dst)
		floats.AddScaled(dst, p, v[:i])
		floats.Scale(c.Disc, dst)
		v, buf = dst, v
	}
	return v[0]
}
