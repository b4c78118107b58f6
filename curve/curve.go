// Package curve implements the short Weierstrass group law y^2 = x^3 + ax + b
// over a prime field (G1) and, mirrored, over its quadratic extension (G2).
package curve

import (
	"fmt"

	"KZG-Commitment/field"
)

// Params collects everything needed to fix a curve pair (G1, G2) at
// construction time. All field elements must share one modulus.
type Params struct {
	A, B          field.Element    // Weierstrass coefficients
	NonResidue    field.Element    // u^2 for the extension carrying G2
	G1X, G1Y      field.Element    // G1 generator
	G2X, G2Y      field.ExtElement // G2 generator
	SubgroupOrder uint64           // order of the subgroup generated by G1
}

// Curve is an immutable curve descriptor. Construct it with New; the
// constructor rejects singular curves and generators off the curve.
type Curve struct {
	a, b  field.Element
	ext   field.Extension
	g1    Point
	g2    PointExt
	order uint64
}

// New validates the parameters and builds the curve descriptor.
func New(p Params) (*Curve, error) {
	modulus := p.A.Modulus()
	for _, e := range []field.Element{p.B, p.NonResidue, p.G1X, p.G1Y, p.G2X.A, p.G2X.B, p.G2Y.A, p.G2Y.B} {
		if e.Modulus() != modulus {
			return nil, fmt.Errorf("curve: mixed moduli in parameters: %w", field.ErrFieldMismatch)
		}
	}
	if p.SubgroupOrder == 0 {
		return nil, fmt.Errorf("curve: subgroup order must be positive")
	}

	// discriminant = -16(4a^3 + 27b^2) must be non-zero.
	four, _ := field.New(4, modulus)
	twentySeven, _ := field.New(27, modulus)
	sixteen, _ := field.New(16, modulus)
	aCubed := p.A.Pow(3)
	bSquared := p.B.Pow(2)
	t1, err := four.Mul(aCubed)
	if err != nil {
		return nil, err
	}
	t2, err := twentySeven.Mul(bSquared)
	if err != nil {
		return nil, err
	}
	sum, err := t1.Add(t2)
	if err != nil {
		return nil, err
	}
	disc, err := sixteen.Negate().Mul(sum)
	if err != nil {
		return nil, err
	}
	if disc.IsZero() {
		return nil, fmt.Errorf("curve: singular curve (discriminant = 0)")
	}

	c := &Curve{
		a:     p.A,
		b:     p.B,
		ext:   field.NewExtension(p.NonResidue),
		order: p.SubgroupOrder,
	}
	g1, err := c.NewPoint(p.G1X, p.G1Y)
	if err != nil {
		return nil, fmt.Errorf("curve: G1 generator: %w", err)
	}
	g2, err := c.NewPointExt(p.G2X, p.G2Y)
	if err != nil {
		return nil, fmt.Errorf("curve: G2 generator: %w", err)
	}
	c.g1 = g1
	c.g2 = g2
	return c, nil
}

// Toy101 returns the demo curve y^2 = x^3 + 3 over F_101 with
// G1 = (1, 2), G2 = (36, 31u) over F_101[u]/(u^2 + 2) and subgroup order 17.
// Its parameters are small enough to audit by hand; it offers no security.
func Toy101() (*Curve, error) {
	const modulus = 101
	a := field.Zero(modulus)
	b, _ := field.New(3, modulus)
	nr, _ := field.New(2, modulus)
	g1x, _ := field.New(1, modulus)
	g1y, _ := field.New(2, modulus)
	g2xa, _ := field.New(36, modulus)
	g2yb, _ := field.New(31, modulus)
	return New(Params{
		A:             a,
		B:             b,
		NonResidue:    nr.Negate(), // u^2 = -2
		G1X:           g1x,
		G1Y:           g1y,
		G2X:           field.ExtElement{A: g2xa, B: field.Zero(modulus)},
		G2Y:           field.ExtElement{A: field.Zero(modulus), B: g2yb},
		SubgroupOrder: 17,
	})
}

// Modulus returns the base-field modulus.
func (c *Curve) Modulus() uint64 { return c.a.Modulus() }

// SubgroupOrder returns the order of the subgroup generated by G1.
func (c *Curve) SubgroupOrder() uint64 { return c.order }

// A returns the Weierstrass coefficient a.
func (c *Curve) A() field.Element { return c.a }

// B returns the Weierstrass coefficient b.
func (c *Curve) B() field.Element { return c.b }

// Extension returns the quadratic extension underlying G2.
func (c *Curve) Extension() field.Extension { return c.ext }

// GeneratorG1 returns the G1 generator.
func (c *Curve) GeneratorG1() Point { return c.g1 }

// GeneratorG2 returns the G2 generator.
func (c *Curve) GeneratorG2() PointExt { return c.g2 }

// NewPoint builds an affine G1 point, verifying y^2 = x^3 + ax + b.
func (c *Curve) NewPoint(x, y field.Element) (Point, error) {
	if x.Modulus() != c.Modulus() || y.Modulus() != c.Modulus() {
		return Point{}, fmt.Errorf("curve: point coordinates over wrong field: %w", field.ErrFieldMismatch)
	}
	lhs := y.Pow(2)
	ax, err := c.a.Mul(x)
	if err != nil {
		return Point{}, err
	}
	rhs, err := x.Pow(3).Add(ax)
	if err != nil {
		return Point{}, err
	}
	rhs, err = rhs.Add(c.b)
	if err != nil {
		return Point{}, err
	}
	if !lhs.Equal(rhs) {
		return Point{}, fmt.Errorf("curve: point (%d, %d) is not on the curve", x.Value(), y.Value())
	}
	return Point{x: x, y: y}, nil
}

// NewPointExt builds an affine G2 point, verifying the mirrored equation
// over the extension.
func (c *Curve) NewPointExt(x, y field.ExtElement) (PointExt, error) {
	aExt, err := c.ext.Embed(c.a)
	if err != nil {
		return PointExt{}, err
	}
	bExt, err := c.ext.Embed(c.b)
	if err != nil {
		return PointExt{}, err
	}
	lhs, err := c.ext.Mul(y, y)
	if err != nil {
		return PointExt{}, err
	}
	x2, err := c.ext.Mul(x, x)
	if err != nil {
		return PointExt{}, err
	}
	x3, err := c.ext.Mul(x2, x)
	if err != nil {
		return PointExt{}, err
	}
	ax, err := c.ext.Mul(aExt, x)
	if err != nil {
		return PointExt{}, err
	}
	rhs, err := c.ext.Add(x3, ax)
	if err != nil {
		return PointExt{}, err
	}
	rhs, err = c.ext.Add(rhs, bExt)
	if err != nil {
		return PointExt{}, err
	}
	if !lhs.Equal(rhs) {
		return PointExt{}, fmt.Errorf("curve: point (%s, %s) is not on the extension curve", x, y)
	}
	return PointExt{x: x, y: y}, nil
}

// Negate returns -p, the reflection across the x-axis.
func (c *Curve) Negate(p Point) Point {
	if p.inf {
		return p
	}
	return Point{x: p.x, y: p.y.Negate()}
}

// NegateExt returns -p in G2.
func (c *Curve) NegateExt(p PointExt) PointExt {
	if p.inf {
		return p
	}
	return PointExt{x: p.x, y: c.ext.Negate(p.y)}
}

// Add applies the group law to two G1 points. The identity absorbs into
// either operand, P + (-P) yields infinity, doubling uses the tangent slope
// (3x^2 + a) / (2y), general addition uses the chord slope.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if p1.inf {
		return p2, nil
	}
	if p2.inf {
		return p1, nil
	}
	if p1.x.Equal(p2.x) {
		if !p1.y.Equal(p2.y) {
			// On-curve points sharing x with distinct y are negatives.
			return Infinity(), nil
		}
		if p1.y.IsZero() {
			// Doubling a 2-torsion point: the tangent is vertical.
			return Infinity(), nil
		}
	}

	var m field.Element
	if p1.Equal(p2) {
		three, _ := field.New(3, c.Modulus())
		two, _ := field.New(2, c.Modulus())
		num, err := three.Mul(p1.x.Pow(2))
		if err != nil {
			return Point{}, err
		}
		num, err = num.Add(c.a)
		if err != nil {
			return Point{}, err
		}
		den, err := two.Mul(p1.y)
		if err != nil {
			return Point{}, err
		}
		m, err = num.Div(den)
		if err != nil {
			return Point{}, err
		}
	} else {
		num, err := p2.y.Sub(p1.y)
		if err != nil {
			return Point{}, err
		}
		den, err := p2.x.Sub(p1.x)
		if err != nil {
			return Point{}, err
		}
		m, err = num.Div(den)
		if err != nil {
			return Point{}, err
		}
	}

	x3, err := m.Pow(2).Sub(p1.x)
	if err != nil {
		return Point{}, err
	}
	x3, err = x3.Sub(p2.x)
	if err != nil {
		return Point{}, err
	}
	dx, err := p1.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err := m.Mul(dx)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Sub(p1.y)
	if err != nil {
		return Point{}, err
	}
	return Point{x: x3, y: y3}, nil
}

// AddExt applies the mirrored group law in G2, with all coordinate
// arithmetic carried out in the quadratic extension.
func (c *Curve) AddExt(p1, p2 PointExt) (PointExt, error) {
	if p1.inf {
		return p2, nil
	}
	if p2.inf {
		return p1, nil
	}
	if p1.x.Equal(p2.x) {
		if !p1.y.Equal(p2.y) {
			return InfinityExt(), nil
		}
		if p1.y.IsZero() {
			return InfinityExt(), nil
		}
	}

	var m field.ExtElement
	if p1.Equal(p2) {
		three, _ := field.New(3, c.Modulus())
		two, _ := field.New(2, c.Modulus())
		threeExt, err := c.ext.Embed(three)
		if err != nil {
			return PointExt{}, err
		}
		twoExt, err := c.ext.Embed(two)
		if err != nil {
			return PointExt{}, err
		}
		aExt, err := c.ext.Embed(c.a)
		if err != nil {
			return PointExt{}, err
		}
		x2, err := c.ext.Mul(p1.x, p1.x)
		if err != nil {
			return PointExt{}, err
		}
		num, err := c.ext.Mul(threeExt, x2)
		if err != nil {
			return PointExt{}, err
		}
		num, err = c.ext.Add(num, aExt)
		if err != nil {
			return PointExt{}, err
		}
		den, err := c.ext.Mul(twoExt, p1.y)
		if err != nil {
			return PointExt{}, err
		}
		m, err = c.ext.Div(num, den)
		if err != nil {
			return PointExt{}, err
		}
	} else {
		num, err := c.ext.Sub(p2.y, p1.y)
		if err != nil {
			return PointExt{}, err
		}
		den, err := c.ext.Sub(p2.x, p1.x)
		if err != nil {
			return PointExt{}, err
		}
		m, err = c.ext.Div(num, den)
		if err != nil {
			return PointExt{}, err
		}
	}

	m2, err := c.ext.Mul(m, m)
	if err != nil {
		return PointExt{}, err
	}
	x3, err := c.ext.Sub(m2, p1.x)
	if err != nil {
		return PointExt{}, err
	}
	x3, err = c.ext.Sub(x3, p2.x)
	if err != nil {
		return PointExt{}, err
	}
	dx, err := c.ext.Sub(p1.x, x3)
	if err != nil {
		return PointExt{}, err
	}
	y3, err := c.ext.Mul(m, dx)
	if err != nil {
		return PointExt{}, err
	}
	y3, err = c.ext.Sub(y3, p1.y)
	if err != nil {
		return PointExt{}, err
	}
	return PointExt{x: x3, y: y3}, nil
}
