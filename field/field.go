// Package field implements modular arithmetic over a per-value modulus,
// together with the quadratic extension used by the second curve group.
// Elements are immutable: every operation returns a fresh value reduced
// into [0, modulus).
package field

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

var (
	// ErrFieldMismatch is returned when a binary operation combines
	// elements that belong to different fields.
	ErrFieldMismatch = errors.New("field: operands belong to different fields")

	// ErrNonInvertible is returned when an inverse is requested for an
	// element sharing a factor with the modulus.
	ErrNonInvertible = errors.New("field: element is not invertible")
)

// Element is a residue in [0, modulus). The zero Element (modulus 0) is not
// a valid field element; construct values through New, Zero or One.
type Element struct {
	value   uint64
	modulus uint64
}

// New returns value reduced modulo modulus. The modulus must be at least 2.
func New(value, modulus uint64) (Element, error) {
	if modulus < 2 {
		return Element{}, fmt.Errorf("field: modulus must be at least 2, got %d", modulus)
	}
	return Element{value: value % modulus, modulus: modulus}, nil
}

// Zero returns the additive identity of F_modulus.
func Zero(modulus uint64) Element {
	return Element{value: 0, modulus: modulus}
}

// One returns the multiplicative identity of F_modulus.
func One(modulus uint64) Element {
	return Element{value: 1 % modulus, modulus: modulus}
}

// Value returns the canonical representative in [0, modulus).
func (e Element) Value() uint64 { return e.value }

// Modulus returns the modulus the element lives under.
func (e Element) Modulus() uint64 { return e.modulus }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.value == 0 }

// Equal reports whether two elements have the same value and modulus.
func (e Element) Equal(o Element) bool {
	return e.value == o.value && e.modulus == o.modulus
}

func (e Element) String() string {
	return fmt.Sprintf("%d (mod %d)", e.value, e.modulus)
}

func (e Element) sameField(o Element) error {
	if e.modulus != o.modulus {
		return fmt.Errorf("field: modulus %d vs %d: %w", e.modulus, o.modulus, ErrFieldMismatch)
	}
	return nil
}

// Add returns e + o.
func (e Element) Add(o Element) (Element, error) {
	if err := e.sameField(o); err != nil {
		return Element{}, err
	}
	return e.add(o), nil
}

// Sub returns e - o.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.sameField(o); err != nil {
		return Element{}, err
	}
	return e.sub(o), nil
}

// Mul returns e * o.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.sameField(o); err != nil {
		return Element{}, err
	}
	return e.mul(o), nil
}

// Negate returns -e.
func (e Element) Negate() Element {
	if e.value == 0 {
		return e
	}
	return Element{value: e.modulus - e.value, modulus: e.modulus}
}

// Inv returns the multiplicative inverse of e, computed with the extended
// Euclidean algorithm. It fails with ErrNonInvertible when
// gcd(value, modulus) != 1, which covers both zero and, for a non-prime
// modulus, any value sharing a factor with it.
func (e Element) Inv() (Element, error) {
	if e.value == 0 {
		return Element{}, fmt.Errorf("field: inverse of 0 (mod %d): %w", e.modulus, ErrNonInvertible)
	}
	a := new(big.Int).SetUint64(e.value)
	m := new(big.Int).SetUint64(e.modulus)
	s := new(big.Int)
	g := new(big.Int).GCD(s, nil, a, m) // s*a + t*m = g
	if g.Cmp(big.NewInt(1)) != 0 {
		return Element{}, fmt.Errorf("field: gcd(%d, %d) = %v: %w", e.value, e.modulus, g, ErrNonInvertible)
	}
	s.Mod(s, m)
	return Element{value: s.Uint64(), modulus: e.modulus}, nil
}

// Div returns e / o, i.e. e * o^{-1}.
func (e Element) Div(o Element) (Element, error) {
	if err := e.sameField(o); err != nil {
		return Element{}, err
	}
	inv, err := o.Inv()
	if err != nil {
		return Element{}, err
	}
	return e.mul(inv), nil
}

// Pow returns e^exp by square-and-multiply, scanning the exponent from its
// most significant set bit down. Pow(e, 0) is 1 for every e, including 0.
func (e Element) Pow(exp uint64) Element {
	if exp == 0 {
		return One(e.modulus)
	}
	result := e
	for i := bits.Len64(exp) - 2; i >= 0; i-- {
		result = result.mul(result)
		if (exp>>uint(i))&1 == 1 {
			result = result.mul(e)
		}
	}
	return result
}

// add, sub and mul assume both operands share the same modulus.

func (e Element) add(o Element) Element {
	sum := e.value + o.value
	if sum >= e.modulus || sum < e.value {
		sum -= e.modulus
	}
	return Element{value: sum, modulus: e.modulus}
}

func (e Element) sub(o Element) Element {
	if e.value >= o.value {
		return Element{value: e.value - o.value, modulus: e.modulus}
	}
	return Element{value: e.value + e.modulus - o.value, modulus: e.modulus}
}

func (e Element) mul(o Element) Element {
	hi, lo := bits.Mul64(e.value, o.value)
	_, rem := bits.Div64(hi, lo, e.modulus)
	return Element{value: rem, modulus: e.modulus}
}
