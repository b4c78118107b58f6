// Package poly implements dense polynomials over field.Element coefficients.
// Coefficient i is the coefficient of x^i: [1, 2, 3] is 1 + 2x + 3x^2.
// Polynomials are immutable and kept in canonical form: no trailing zero
// coefficients, except the zero polynomial which is the single coefficient [0].
package poly

import (
	"errors"
	"fmt"
	"strings"

	"KZG-Commitment/field"
)

// ErrDivisionByZero is returned when dividing by the zero polynomial or when
// an interpolation denominator vanishes (duplicate x-coordinates).
var ErrDivisionByZero = errors.New("poly: division by zero")

// Polynomial is an ordered coefficient vector over a single field.
type Polynomial struct {
	coeffs  []field.Element
	modulus uint64
}

// New builds a polynomial from the given coefficients, lowest degree first.
// All coefficients must share one modulus; trailing zeros are trimmed.
func New(coeffs []field.Element) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, fmt.Errorf("poly: need at least one coefficient")
	}
	modulus := coeffs[0].Modulus()
	for i, c := range coeffs {
		if c.Modulus() != modulus {
			return Polynomial{}, fmt.Errorf("poly: coefficient %d has modulus %d, want %d: %w",
				i, c.Modulus(), modulus, field.ErrFieldMismatch)
		}
	}
	out := make([]field.Element, len(coeffs))
	copy(out, coeffs)
	return Polynomial{coeffs: trim(out), modulus: modulus}, nil
}

// FromValues builds a polynomial from raw coefficient values reduced mod modulus.
func FromValues(modulus uint64, values ...uint64) (Polynomial, error) {
	if len(values) == 0 {
		return Polynomial{}, fmt.Errorf("poly: need at least one coefficient")
	}
	coeffs := make([]field.Element, len(values))
	for i, v := range values {
		c, err := field.New(v, modulus)
		if err != nil {
			return Polynomial{}, err
		}
		coeffs[i] = c
	}
	return New(coeffs)
}

// Zero returns the canonical zero polynomial over F_modulus.
func Zero(modulus uint64) Polynomial {
	return Polynomial{coeffs: []field.Element{field.Zero(modulus)}, modulus: modulus}
}

// Constant returns the degree-0 polynomial with the given constant term.
func Constant(c field.Element) Polynomial {
	return Polynomial{coeffs: []field.Element{c}, modulus: c.Modulus()}
}

func trim(coeffs []field.Element) []field.Element {
	n := len(coeffs)
	for n > 1 && coeffs[n-1].IsZero() {
		n--
	}
	return coeffs[:n]
}

// Modulus returns the modulus of the coefficient field.
func (p Polynomial) Modulus() uint64 { return p.modulus }

// Coeffs returns a copy of the coefficient vector, lowest degree first.
func (p Polynomial) Coeffs() []field.Element {
	out := make([]field.Element, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Coeff returns the coefficient of x^i; zero for i beyond the stored degree.
func (p Polynomial) Coeff(i int) field.Element {
	if i < 0 || i >= len(p.coeffs) {
		return field.Zero(p.modulus)
	}
	return p.coeffs[i]
}

// Degree returns the degree of p. By convention the zero polynomial has
// degree 0, the same convention the constant polynomials use.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsZero()
}

// Equal reports whether p and q have identical coefficients and modulus.
func (p Polynomial) Equal(q Polynomial) bool {
	if p.modulus != q.modulus || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

func (p Polynomial) String() string {
	parts := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		parts[i] = fmt.Sprintf("%d*x^%d", c.Value(), i)
	}
	return strings.Join(parts, " + ") + fmt.Sprintf(" (mod %d)", p.modulus)
}

func (p Polynomial) sameField(q Polynomial) error {
	if p.modulus != q.modulus {
		return fmt.Errorf("poly: modulus %d vs %d: %w", p.modulus, q.modulus, field.ErrFieldMismatch)
	}
	return nil
}

// Add returns p + q, zero-padding the shorter operand.
func (p Polynomial) Add(q Polynomial) (Polynomial, error) {
	if err := p.sameField(q); err != nil {
		return Polynomial{}, err
	}
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		sum, err := p.Coeff(i).Add(q.Coeff(i))
		if err != nil {
			return Polynomial{}, err
		}
		out[i] = sum
	}
	return Polynomial{coeffs: trim(out), modulus: p.modulus}, nil
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) (Polynomial, error) {
	if err := p.sameField(q); err != nil {
		return Polynomial{}, err
	}
	return p.Add(q.Negate())
}

// Negate returns -p.
func (p Polynomial) Negate() Polynomial {
	out := make([]field.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Negate()
	}
	return Polynomial{coeffs: out, modulus: p.modulus}
}

// Mul returns the convolution product p * q.
func (p Polynomial) Mul(q Polynomial) (Polynomial, error) {
	if err := p.sameField(q); err != nil {
		return Polynomial{}, err
	}
	out := make([]field.Element, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = field.Zero(p.modulus)
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			prod, err := a.Mul(b)
			if err != nil {
				return Polynomial{}, err
			}
			sum, err := out[i+j].Add(prod)
			if err != nil {
				return Polynomial{}, err
			}
			out[i+j] = sum
		}
	}
	return Polynomial{coeffs: trim(out), modulus: p.modulus}, nil
}

// ScalarMul multiplies every coefficient by s.
func (p Polynomial) ScalarMul(s field.Element) (Polynomial, error) {
	if s.Modulus() != p.modulus {
		return Polynomial{}, fmt.Errorf("poly: scalar modulus %d, want %d: %w", s.Modulus(), p.modulus, field.ErrFieldMismatch)
	}
	out := make([]field.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		prod, err := c.Mul(s)
		if err != nil {
			return Polynomial{}, err
		}
		out[i] = prod
	}
	return Polynomial{coeffs: trim(out), modulus: p.modulus}, nil
}

// Evaluate returns p(x) by Horner's method, from the highest coefficient down.
func (p Polynomial) Evaluate(x field.Element) (field.Element, error) {
	if x.Modulus() != p.modulus {
		return field.Element{}, fmt.Errorf("poly: evaluation point modulus %d, want %d: %w", x.Modulus(), p.modulus, field.ErrFieldMismatch)
	}
	acc := field.Zero(p.modulus)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		prod, err := acc.Mul(x)
		if err != nil {
			return field.Element{}, err
		}
		acc, err = prod.Add(p.coeffs[i])
		if err != nil {
			return field.Element{}, err
		}
	}
	return acc, nil
}

// Divide performs synthetic long division of p by divisor, returning
// (quotient, remainder) with p = quotient*divisor + remainder and
// degree(remainder) < degree(divisor). A constant divisor is treated as a
// scalar division with zero remainder. Dividing by the zero polynomial fails.
func (p Polynomial) Divide(divisor Polynomial) (Polynomial, Polynomial, error) {
	if err := p.sameField(divisor); err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("poly: divide by zero polynomial: %w", ErrDivisionByZero)
	}
	if divisor.Degree() == 0 {
		inv, err := divisor.coeffs[0].Inv()
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		q, err := p.ScalarMul(inv)
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		return q, Zero(p.modulus), nil
	}
	if p.Degree() < divisor.Degree() {
		return Zero(p.modulus), p, nil
	}

	rem := p.Coeffs()
	divDeg := divisor.Degree()
	lead := divisor.coeffs[divDeg]
	leadInv, err := lead.Inv()
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}

	quot := make([]field.Element, len(rem)-divDeg)
	for i := range quot {
		quot[i] = field.Zero(p.modulus)
	}
	// Eliminate leading terms from the top down.
	for i := len(quot) - 1; i >= 0; i-- {
		term, err := rem[i+divDeg].Mul(leadInv)
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		quot[i] = term
		for j := 0; j <= divDeg; j++ {
			prod, err := divisor.coeffs[j].Mul(term)
			if err != nil {
				return Polynomial{}, Polynomial{}, err
			}
			rem[i+j], err = rem[i+j].Sub(prod)
			if err != nil {
				return Polynomial{}, Polynomial{}, err
			}
		}
	}

	quotient := Polynomial{coeffs: trim(quot), modulus: p.modulus}
	remainder := Polynomial{coeffs: trim(rem[:divDeg]), modulus: p.modulus}
	return quotient, remainder, nil
}
