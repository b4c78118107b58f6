package poly

import (
	"fmt"

	"KZG-Commitment/field"
)

// Sample is a single interpolation point (x, y).
type Sample struct {
	X field.Element
	Y field.Element
}

// Vanishing returns x^n - 1, the polynomial that is zero on every element of
// the multiplicative subgroup of order n. Because every domain element
// satisfies x^n = 1, this replaces the product form ∏(x - ω_i) at O(1)
// coefficient cost instead of O(n) polynomial multiplications.
func Vanishing(n int, modulus uint64) (Polynomial, error) {
	if n < 1 {
		return Polynomial{}, fmt.Errorf("poly: vanishing polynomial needs domain size >= 1, got %d", n)
	}
	one, err := field.New(1, modulus)
	if err != nil {
		return Polynomial{}, err
	}
	coeffs := make([]field.Element, n+1)
	for i := range coeffs {
		coeffs[i] = field.Zero(modulus)
	}
	coeffs[0] = one.Negate()
	coeffs[n] = one
	return Polynomial{coeffs: coeffs, modulus: modulus}, nil
}

// LagrangeInterpolate returns the unique polynomial of degree < len(samples)
// passing through all samples, built as Σ_i y_i * l_i(x) with
// l_i(x) = ∏_{j≠i} (x - x_j) / (x_i - x_j). Two samples sharing an
// x-coordinate make a denominator vanish and fail with ErrDivisionByZero.
func LagrangeInterpolate(samples []Sample) (Polynomial, error) {
	if len(samples) == 0 {
		return Polynomial{}, fmt.Errorf("poly: interpolation needs at least one point")
	}
	modulus := samples[0].X.Modulus()
	for i, s := range samples {
		if s.X.Modulus() != modulus || s.Y.Modulus() != modulus {
			return Polynomial{}, fmt.Errorf("poly: sample %d over a different field: %w", i, field.ErrFieldMismatch)
		}
	}

	one := field.One(modulus)
	result := Zero(modulus)
	for i, si := range samples {
		term := Constant(one)
		denom := one
		for j, sj := range samples {
			if i == j {
				continue
			}
			// Numerator picks up (x - x_j).
			factor, err := New([]field.Element{sj.X.Negate(), one})
			if err != nil {
				return Polynomial{}, err
			}
			term, err = term.Mul(factor)
			if err != nil {
				return Polynomial{}, err
			}
			diff, err := si.X.Sub(sj.X)
			if err != nil {
				return Polynomial{}, err
			}
			if diff.IsZero() {
				return Polynomial{}, fmt.Errorf("poly: samples %d and %d share x = %d: %w", j, i, si.X.Value(), ErrDivisionByZero)
			}
			denom, err = denom.Mul(diff)
			if err != nil {
				return Polynomial{}, err
			}
		}
		denomInv, err := denom.Inv()
		if err != nil {
			return Polynomial{}, err
		}
		scale, err := si.Y.Mul(denomInv)
		if err != nil {
			return Polynomial{}, err
		}
		term, err = term.ScalarMul(scale)
		if err != nil {
			return Polynomial{}, err
		}
		result, err = result.Add(term)
		if err != nil {
			return Polynomial{}, err
		}
	}
	return result, nil
}
