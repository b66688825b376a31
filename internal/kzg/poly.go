package kzg

import (
	"github.com/Han-16/kzgist/internal/fft"
	"github.com/Han-16/kzgist/internal/field"
)

// Polynomial is in coefficient form: Coeffs[i] is the coefficient of X^i.
// Trailing zero coefficients are kept.
type Polynomial struct {
	Coeffs []field.Element
}

// NewPolynomial returns the zero polynomial with n coefficients.
func NewPolynomial(n int) Polynomial {
	return Polynomial{Coeffs: make([]field.Element, n)}
}

func PolyFromUint64s(coeffs ...uint64) Polynomial {
	p := NewPolynomial(len(coeffs))
	for i, c := range coeffs {
		p.Coeffs[i].SetUint64(c)
	}
	return p
}

// Interpolate returns the polynomial taking evals[i] at the i-th power of the
// len(evals)-th root of unity.
func Interpolate(fs *fft.Settings, evals []field.Element) (Polynomial, error) {
	coeffs, err := fs.FFT(evals, true)
	if err != nil {
		return Polynomial{}, err
	}
	return Polynomial{Coeffs: coeffs}, nil
}

func (p Polynomial) Len() int { return len(p.Coeffs) }

// Degree is Len()-1; it is not reduced for trailing zeros.
func (p Polynomial) Degree() int { return len(p.Coeffs) - 1 }

func (p Polynomial) Clone() Polynomial {
	out := NewPolynomial(len(p.Coeffs))
	copy(out.Coeffs, p.Coeffs)
	return out
}

// Eval evaluates p at x with Horner's rule. The empty polynomial evaluates to 0.
func (p Polynomial) Eval(x *field.Element) field.Element {
	var y field.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y.Mul(&y, x)
		y.Add(&y, &p.Coeffs[i])
	}
	return y
}

// Add returns p + q, zero-padding the shorter operand.
func (p Polynomial) Add(q Polynomial) Polynomial {
	long, short := p, q
	if len(q.Coeffs) > len(p.Coeffs) {
		long, short = q, p
	}
	out := long.Clone()
	for i := range short.Coeffs {
		out.Coeffs[i].Add(&out.Coeffs[i], &short.Coeffs[i])
	}
	return out
}

// Scale returns c * p.
func (p Polynomial) Scale(c *field.Element) Polynomial {
	out := NewPolynomial(len(p.Coeffs))
	for i := range p.Coeffs {
		out.Coeffs[i].Mul(&p.Coeffs[i], c)
	}
	return out
}

// DivideByLinear returns q and r with p(X) = q(X) * (X - x) + r.
// Synthetic division from the top coefficient down; no inversion is needed
// since the divisor is monic.
func (p Polynomial) DivideByLinear(x *field.Element) (Polynomial, field.Element) {
	n := len(p.Coeffs)
	if n <= 1 {
		var r field.Element
		if n == 1 {
			r = p.Coeffs[0]
		}
		return Polynomial{}, r
	}
	q := NewPolynomial(n - 1)
	q.Coeffs[n-2] = p.Coeffs[n-1]
	var t field.Element
	for i := n - 2; i >= 1; i-- {
		t.Mul(&q.Coeffs[i], x)
		q.Coeffs[i-1].Add(&p.Coeffs[i], &t)
	}
	var r field.Element
	t.Mul(&q.Coeffs[0], x)
	r.Add(&p.Coeffs[0], &t)
	return q, r
}
