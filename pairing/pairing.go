// Package pairing provides the placeholder bilinear map consumed by the KZG
// verifier. It multiplies two base-field projections of curve points and is
// deliberately NOT a pairing: it does not satisfy e([a]P, [b]Q) = e(P,Q)^ab,
// so nothing built on it is sound. A faithful deployment must replace this
// package with a genuine pairing over a pairing-friendly curve; do not try to
// repair the formula here.
package pairing

import (
	"fmt"

	"KZG-Commitment/field"
)

// GT is an element of the pairing's target field.
type GT struct {
	e field.Element
}

// New maps two field-valued point projections into the target field by plain
// field multiplication.
func New(a, b field.Element) (GT, error) {
	prod, err := a.Mul(b)
	if err != nil {
		return GT{}, fmt.Errorf("pairing: %w", err)
	}
	return GT{e: prod}, nil
}

// Value returns the underlying field element.
func (g GT) Value() field.Element { return g.e }

// Mul multiplies two target-field elements pointwise.
func (g GT) Mul(o GT) (GT, error) {
	prod, err := g.e.Mul(o.e)
	if err != nil {
		return GT{}, fmt.Errorf("pairing: %w", err)
	}
	return GT{e: prod}, nil
}

// Pow raises g to the n-th power by double-and-add over the target field,
// consuming the exponent's bits least significant first.
func (g GT) Pow(n uint64) GT {
	result := GT{e: field.One(g.e.Modulus())}
	base := g
	for exp := n; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			// Same modulus throughout, multiplication cannot fail.
			result.e, _ = result.e.Mul(base.e)
		}
		base.e, _ = base.e.Mul(base.e)
	}
	return result
}

// Equal reports target-field equality.
func (g GT) Equal(o GT) bool { return g.e.Equal(o.e) }

func (g GT) String() string { return g.e.String() }
