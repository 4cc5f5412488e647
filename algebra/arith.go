package algebra

// ---------- utilities ----------

func ensureLen(c *Polynomial, n int) {
	if len(c.inner) < n {
		tmp := make([]Number, n)
		copy(tmp, c.inner)

		for i := len(c.inner); i < n; i++ {
			tmp[i] = Int(0)
		}

		c.inner = tmp
	} else {
		c.inner = c.inner[:n]
	}
}

// ---------- Poly ops ----------

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	c := &Polynomial{}
	addPoly(p, q, c, false)

	return c
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	c := &Polynomial{}
	addPoly(p, q, c, true)

	return c
}

func (p *Polynomial) Neg() *Polynomial {
	return p.MulScalar(Int(-1))
}

// compute c = a + b, or c = a - b when sub is set.
// Pointwise over the longer operand, the shorter one padded with zeros.
func addPoly(a, b, c *Polynomial, sub bool) {
	alen := len(a.inner)
	blen := len(b.inner)
	n := max(alen, blen)

	out := make([]Number, n)

	var av, bv Number
	for i := 0; i < n; i++ {
		av, bv = Int(0), Int(0)

		if i < alen {
			av = a.inner[i]
		}

		if i < blen {
			bv = b.inner[i]
		}

		if sub {
			out[i] = av.Sub(bv)
		} else {
			out[i] = av.Add(bv)
		}
	}

	c.inner = out
	c.removeLeadingZeroes()
}

// MulScalar returns s * p.
func (p *Polynomial) MulScalar(s Number) *Polynomial {
	out := make([]Number, len(p.inner))
	for i := range p.inner {
		out[i] = p.inner[i].Mul(s)
	}

	return NewPolynomial(out...)
}

// Mul returns p * q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return &Polynomial{inner: []Number{Int(0)}}
	}

	c := &Polynomial{}
	ensureLen(c, len(p.inner)+len(q.inner)-1)

	// Perform schoolbook convolution: O(n*m).
	// out[i+j] += a[i] * b[j]
	for i, ai := range p.inner {
		if ai.IsZero() {
			continue
		}

		for j, bj := range q.inner {
			c.inner[i+j] = c.inner[i+j].Add(ai.Mul(bj))
		}
	}

	c.removeLeadingZeroes()

	return c
}

// Eval returns p(x).
func (p *Polynomial) Eval(x Number) Number {
	result := Int(0)

	// horner's rule:
	for i := len(p.inner) - 1; i >= 0; i-- {
		result = p.inner[i].Add(x.Mul(result))
	}

	return result
}
