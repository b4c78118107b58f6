package curve

import (
	"errors"
	"testing"

	"KZG-Commitment/field"
)

func toyCurve(t *testing.T) *Curve {
	t.Helper()
	c, err := Toy101()
	if err != nil {
		t.Fatalf("Toy101: %v", err)
	}
	return c
}

func elem(t *testing.T, v, q uint64) field.Element {
	t.Helper()
	e, err := field.New(v, q)
	if err != nil {
		t.Fatalf("field.New(%d, %d): %v", v, q, err)
	}
	return e
}

func TestToy101Parameters(t *testing.T) {
	c := toyCurve(t)
	if c.Modulus() != 101 {
		t.Fatalf("modulus = %d, want 101", c.Modulus())
	}
	if c.SubgroupOrder() != 17 {
		t.Fatalf("subgroup order = %d, want 17", c.SubgroupOrder())
	}
	g := c.GeneratorG1()
	if g.X().Value() != 1 || g.Y().Value() != 2 {
		t.Fatalf("G1 = %s, want (1, 2)", g)
	}
	h := c.GeneratorG2()
	if h.X().A.Value() != 36 || h.X().B.Value() != 0 || h.Y().A.Value() != 0 || h.Y().B.Value() != 31 {
		t.Fatalf("G2 = %s, want (36, 31u)", h)
	}
}

func TestRejectsSingularCurve(t *testing.T) {
	const q = 101
	// y^2 = x^3 has discriminant 0.
	_, err := New(Params{
		A:             field.Zero(q),
		B:             field.Zero(q),
		NonResidue:    elem(t, 99, q),
		G1X:           field.Zero(q),
		G1Y:           field.Zero(q),
		G2X:           field.ExtElement{A: field.Zero(q), B: field.Zero(q)},
		G2Y:           field.ExtElement{A: field.Zero(q), B: field.Zero(q)},
		SubgroupOrder: 17,
	})
	if err == nil {
		t.Fatalf("singular curve should be rejected")
	}
}

func TestNewPointValidation(t *testing.T) {
	c := toyCurve(t)
	if _, err := c.NewPoint(elem(t, 1, 101), elem(t, 2, 101)); err != nil {
		t.Fatalf("(1, 2) should be on the curve: %v", err)
	}
	if _, err := c.NewPoint(elem(t, 1, 101), elem(t, 3, 101)); err == nil {
		t.Fatalf("(1, 3) is off the curve and should be rejected")
	}
	if _, err := c.NewPoint(elem(t, 1, 7), elem(t, 2, 7)); !errors.Is(err, field.ErrFieldMismatch) {
		t.Fatalf("wrong-field coordinates: err = %v, want ErrFieldMismatch", err)
	}
}

func TestIdentityAbsorbs(t *testing.T) {
	c := toyCurve(t)
	g := c.GeneratorG1()

	sum, err := c.Add(g, Infinity())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.Equal(g) {
		t.Fatalf("G + inf = %s, want %s", sum, g)
	}
	sum, err = c.Add(Infinity(), g)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.Equal(g) {
		t.Fatalf("inf + G = %s, want %s", sum, g)
	}
	sum, err = c.Add(Infinity(), Infinity())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.IsInfinity() {
		t.Fatalf("inf + inf = %s, want inf", sum)
	}
}

func TestAddNegation(t *testing.T) {
	c := toyCurve(t)
	g := c.GeneratorG1()
	sum, err := c.Add(g, c.Negate(g))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.IsInfinity() {
		t.Fatalf("G + (-G) = %s, want inf", sum)
	}
}

func TestDoubleG1(t *testing.T) {
	c := toyCurve(t)
	g := c.GeneratorG1()
	double, err := c.Add(g, g)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if double.X().Value() != 68 || double.Y().Value() != 74 {
		t.Fatalf("2*G = %s, want (68, 74)", double)
	}
}

func TestScalarMulG1(t *testing.T) {
	c := toyCurve(t)
	g := c.GeneratorG1()

	p, err := g.ScalarMul(c, 0)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !p.IsInfinity() {
		t.Fatalf("[0]G = %s, want inf", p)
	}

	p, err = g.ScalarMul(c, 1)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !p.Equal(g) {
		t.Fatalf("[1]G = %s, want %s", p, g)
	}

	p, err = g.ScalarMul(c, 17)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !p.IsInfinity() {
		t.Fatalf("[17]G = %s, want inf (subgroup order)", p)
	}

	// The subgroup cycles: [18]G = G.
	p, err = g.ScalarMul(c, 18)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !p.Equal(g) {
		t.Fatalf("[18]G = %s, want %s", p, g)
	}
}

func TestScalarMulMatchesRepeatedAddition(t *testing.T) {
	c := toyCurve(t)
	g := c.GeneratorG1()
	acc := Infinity()
	var err error
	for k := uint64(1); k <= 17; k++ {
		acc, err = c.Add(acc, g)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		p, err := g.ScalarMul(c, k)
		if err != nil {
			t.Fatalf("ScalarMul: %v", err)
		}
		if !p.Equal(acc) {
			t.Fatalf("[%d]G = %s, repeated addition gives %s", k, p, acc)
		}
	}
}

func TestDoubleG2(t *testing.T) {
	c := toyCurve(t)
	h := c.GeneratorG2()
	double, err := c.AddExt(h, h)
	if err != nil {
		t.Fatalf("AddExt: %v", err)
	}
	// 2*(36, 31u) = (90, 82u) with genuine extension arithmetic.
	if double.X().A.Value() != 90 || double.X().B.Value() != 0 {
		t.Fatalf("x(2*H) = %s, want 90", double.X())
	}
	if double.Y().A.Value() != 0 || double.Y().B.Value() != 82 {
		t.Fatalf("y(2*H) = %s, want 82u", double.Y())
	}
}

func TestScalarMulG2(t *testing.T) {
	c := toyCurve(t)
	h := c.GeneratorG2()

	p, err := h.ScalarMul(c, 16)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	// [16]H = -H in a subgroup of order 17.
	if !p.Equal(c.NegateExt(h)) {
		t.Fatalf("[16]H = %s, want -H = %s", p, c.NegateExt(h))
	}

	p, err = h.ScalarMul(c, 17)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !p.IsInfinity() {
		t.Fatalf("[17]H = %s, want inf", p)
	}
}

func TestAddExtConsistentWithLadder(t *testing.T) {
	c := toyCurve(t)
	h := c.GeneratorG2()
	double, err := c.AddExt(h, h)
	if err != nil {
		t.Fatalf("AddExt: %v", err)
	}
	triple, err := c.AddExt(double, h)
	if err != nil {
		t.Fatalf("AddExt: %v", err)
	}
	ladder, err := h.ScalarMul(c, 3)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !triple.Equal(ladder) {
		t.Fatalf("H + 2H = %s, [3]H = %s", triple, ladder)
	}
}

func TestIdentityAbsorbsExt(t *testing.T) {
	c := toyCurve(t)
	h := c.GeneratorG2()
	sum, err := c.AddExt(h, InfinityExt())
	if err != nil {
		t.Fatalf("AddExt: %v", err)
	}
	if !sum.Equal(h) {
		t.Fatalf("H + inf = %s, want %s", sum, h)
	}
	sum, err = c.AddExt(h, c.NegateExt(h))
	if err != nil {
		t.Fatalf("AddExt: %v", err)
	}
	if !sum.IsInfinity() {
		t.Fatalf("H + (-H) = %s, want inf", sum)
	}
}

func TestNewPointExtValidation(t *testing.T) {
	c := toyCurve(t)
	ext := c.Extension()
	// (36, 31u) is on the curve ...
	x, err := ext.Embed(elem(t, 36, 101))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	y, err := ext.New(field.Zero(101), elem(t, 31, 101))
	if err != nil {
		t.Fatalf("ext.New: %v", err)
	}
	if _, err := c.NewPointExt(x, y); err != nil {
		t.Fatalf("(36, 31u) should be on the extension curve: %v", err)
	}
	// ... but (36, 32u) is not.
	bad, err := ext.New(field.Zero(101), elem(t, 32, 101))
	if err != nil {
		t.Fatalf("ext.New: %v", err)
	}
	if _, err := c.NewPointExt(x, bad); err == nil {
		t.Fatalf("(36, 32u) is off the curve and should be rejected")
	}
}
