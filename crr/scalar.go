package crr

// PriceScalar walks the lattice backwards one node at a time. Each of the N
// rounds contracts the value layer by one element. Overwriting in
// increasing j order is safe: v[j] and v[j+1] are still pre-round values
// when read.
func PriceScalar(o Option) float64 {
	c := o.Constants()
	v := o.terminal()
	q, p := c.Q, 1-c.Q
	for i := o.N; i >= 1; i-- {
		for j := 0; j < i; j++ {
			v[j] = c.Disc * (q*v[j+1] + p*v[j])
		}
		v = v[:i]
	}
	return v[0]
}
