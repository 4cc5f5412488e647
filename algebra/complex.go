package algebra

// Complex is a display value for the roots of a quadratic with a negative discriminant.
type Complex struct {
	Real Number
	Imag Number
}

func NewComplex(re, im Number) Complex {
	return Complex{Real: re, Imag: im}
}

// Conjugate returns re - im*i.
func (c Complex) Conjugate() Complex {
	return Complex{Real: c.Real, Imag: c.Imag.Neg()}
}

// String renders "re + im * i", or "re - |im| * i" for a negative imaginary part.
func (c Complex) String() string {
	sign := " + "
	if c.Imag.Sign() < 0 {
		sign = " - "
	}

	return c.Real.String() + sign + c.Imag.Abs().String() + " * i"
}
