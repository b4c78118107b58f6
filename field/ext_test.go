package field

import (
	"errors"
	"testing"
)

// toyExtension returns F_101[u]/(u^2 + 2), the extension carrying the demo
// curve's G2 group.
func toyExtension(t *testing.T) Extension {
	t.Helper()
	nr := mustNew(t, 2, 101).Negate() // u^2 = -2 = 99 mod 101
	return NewExtension(nr)
}

func extElem(t *testing.T, x Extension, a, b uint64) ExtElement {
	t.Helper()
	e, err := x.New(mustNew(t, a, x.Modulus()), mustNew(t, b, x.Modulus()))
	if err != nil {
		t.Fatalf("extension New(%d, %d): %v", a, b, err)
	}
	return e
}

func TestExtAddSub(t *testing.T) {
	x := toyExtension(t)
	p := extElem(t, x, 3, 90)
	q := extElem(t, x, 100, 15)

	sum, err := x.Add(p, q)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.A.Value() != 2 || sum.B.Value() != 4 {
		t.Fatalf("sum = (%d, %d), want (2, 4)", sum.A.Value(), sum.B.Value())
	}

	diff, err := x.Sub(sum, q)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if !diff.Equal(p) {
		t.Fatalf("(p+q)-q = %s, want %s", diff, p)
	}
}

func TestExtMul(t *testing.T) {
	x := toyExtension(t)
	// (31u)^2 = 961 * (-2) = -1922 = 98 mod 101.
	u31 := extElem(t, x, 0, 31)
	sq, err := x.Mul(u31, u31)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if sq.A.Value() != 98 || sq.B.Value() != 0 {
		t.Fatalf("(31u)^2 = %s, want 98 + 0*u", sq)
	}

	// (1 + u)(2 + 3u) = 2 + 3u + 2u + 3u^2 = (2 - 6) + 5u = 97 + 5u.
	p := extElem(t, x, 1, 1)
	q := extElem(t, x, 2, 3)
	prod, err := x.Mul(p, q)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if prod.A.Value() != 97 || prod.B.Value() != 5 {
		t.Fatalf("(1+u)(2+3u) = %s, want 97 + 5*u", prod)
	}

	one, err := x.Mul(p, x.One())
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !one.Equal(p) {
		t.Fatalf("p * 1 = %s, want %s", one, p)
	}
}

func TestExtInv(t *testing.T) {
	x := toyExtension(t)
	cases := []ExtElement{
		extElem(t, x, 1, 1),
		extElem(t, x, 0, 31),
		extElem(t, x, 36, 0),
		extElem(t, x, 73, 19),
	}
	for _, p := range cases {
		inv, err := x.Inv(p)
		if err != nil {
			t.Fatalf("Inv(%s): %v", p, err)
		}
		prod, err := x.Mul(p, inv)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if !prod.Equal(x.One()) {
			t.Fatalf("%s * Inv = %s, want 1", p, prod)
		}
	}

	if _, err := x.Inv(x.Zero()); !errors.Is(err, ErrNonInvertible) {
		t.Fatalf("Inv(0): err = %v, want ErrNonInvertible", err)
	}
}

func TestExtDiv(t *testing.T) {
	x := toyExtension(t)
	p := extElem(t, x, 5, 7)
	q := extElem(t, x, 2, 3)
	quot, err := x.Div(p, q)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	back, err := x.Mul(quot, q)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !back.Equal(p) {
		t.Fatalf("(p/q)*q = %s, want %s", back, p)
	}
}

func TestExtEmbed(t *testing.T) {
	x := toyExtension(t)
	a := mustNew(t, 36, 101)
	e, err := x.Embed(a)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if !e.A.Equal(a) || !e.B.IsZero() {
		t.Fatalf("Embed(36) = %s, want 36 + 0*u", e)
	}
}

func TestExtFieldMismatch(t *testing.T) {
	x := toyExtension(t)
	wrong := mustNew(t, 1, 7)
	if _, err := x.New(wrong, wrong); !errors.Is(err, ErrFieldMismatch) {
		t.Fatalf("New over wrong field: err = %v, want ErrFieldMismatch", err)
	}
	p := ExtElement{A: wrong, B: wrong}
	if _, err := x.Add(p, x.Zero()); !errors.Is(err, ErrFieldMismatch) {
		t.Fatalf("Add over wrong field: err = %v, want ErrFieldMismatch", err)
	}
}
