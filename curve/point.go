package curve

import (
	"fmt"

	"KZG-Commitment/field"
)

// Point is a G1 group element: either the point at infinity or an affine
// point on the curve. The fields are unexported so the only reachable states
// are the identity and validated affine points.
type Point struct {
	x, y field.Element
	inf  bool
}

// PointExt is a G2 group element over the quadratic extension.
type PointExt struct {
	x, y field.ExtElement
	inf  bool
}

// Infinity returns the G1 additive identity.
func Infinity() Point { return Point{inf: true} }

// InfinityExt returns the G2 additive identity.
func InfinityExt() PointExt { return PointExt{inf: true} }

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool { return p.inf }

// X returns the affine x-coordinate; meaningful only when !IsInfinity().
func (p Point) X() field.Element { return p.x }

// Y returns the affine y-coordinate; meaningful only when !IsInfinity().
func (p Point) Y() field.Element { return p.y }

// Equal reports group-element equality.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p Point) String() string {
	if p.inf {
		return "∞"
	}
	return fmt.Sprintf("(%d, %d)", p.x.Value(), p.y.Value())
}

// IsInfinity reports whether p is the identity.
func (p PointExt) IsInfinity() bool { return p.inf }

// X returns the affine x-coordinate; meaningful only when !IsInfinity().
func (p PointExt) X() field.ExtElement { return p.x }

// Y returns the affine y-coordinate; meaningful only when !IsInfinity().
func (p PointExt) Y() field.ExtElement { return p.y }

// Equal reports group-element equality.
func (p PointExt) Equal(q PointExt) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p PointExt) String() string {
	if p.inf {
		return "∞"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

// ScalarMul returns [k]p by double-and-add, consuming the scalar's bits from
// the least significant up: O(log k) group operations.
func (p Point) ScalarMul(c *Curve, k uint64) (Point, error) {
	result := Infinity()
	base := p
	var err error
	for s := k; s > 0; s >>= 1 {
		if s&1 == 1 {
			result, err = c.Add(result, base)
			if err != nil {
				return Point{}, err
			}
		}
		base, err = c.Add(base, base)
		if err != nil {
			return Point{}, err
		}
	}
	return result, nil
}

// ScalarMul returns [k]p in G2, mirroring the G1 ladder.
func (p PointExt) ScalarMul(c *Curve, k uint64) (PointExt, error) {
	result := InfinityExt()
	base := p
	var err error
	for s := k; s > 0; s >>= 1 {
		if s&1 == 1 {
			result, err = c.AddExt(result, base)
			if err != nil {
				return PointExt{}, err
			}
		}
		base, err = c.AddExt(base, base)
		if err != nil {
			return PointExt{}, err
		}
	}
	return result, nil
}
