package field

import "fmt"

// Extension describes the quadratic extension F_p[u]/(u^2 - nonResidue).
// It plays the role kfield-style descriptors play elsewhere: the descriptor
// carries the field parameters, elements carry only their coordinates.
type Extension struct {
	nonResidue Element
}

// ExtElement is A + B*u with u^2 equal to the extension's non-residue.
type ExtElement struct {
	A Element
	B Element
}

// NewExtension builds the extension descriptor for a given non-residue.
// The non-residue must not be a square for the construction to be a field;
// this is the caller's responsibility (the toy curve uses u^2 = -2 mod 101).
func NewExtension(nonResidue Element) Extension {
	return Extension{nonResidue: nonResidue}
}

// Modulus returns the base-field modulus of the extension.
func (x Extension) Modulus() uint64 { return x.nonResidue.Modulus() }

// NonResidue returns the defining constant u^2.
func (x Extension) NonResidue() Element { return x.nonResidue }

// New builds a + b*u after checking both coordinates live in the base field.
func (x Extension) New(a, b Element) (ExtElement, error) {
	if a.Modulus() != x.Modulus() || b.Modulus() != x.Modulus() {
		return ExtElement{}, fmt.Errorf("field: extension over modulus %d: %w", x.Modulus(), ErrFieldMismatch)
	}
	return ExtElement{A: a, B: b}, nil
}

// Zero returns the additive identity of the extension.
func (x Extension) Zero() ExtElement {
	return ExtElement{A: Zero(x.Modulus()), B: Zero(x.Modulus())}
}

// One returns the multiplicative identity of the extension.
func (x Extension) One() ExtElement {
	return ExtElement{A: One(x.Modulus()), B: Zero(x.Modulus())}
}

// Embed lifts a base-field element into the extension as a + 0*u.
func (x Extension) Embed(a Element) (ExtElement, error) {
	return x.New(a, Zero(x.Modulus()))
}

func (x Extension) check(p ExtElement) error {
	if p.A.Modulus() != x.Modulus() || p.B.Modulus() != x.Modulus() {
		return fmt.Errorf("field: extension element over wrong modulus: %w", ErrFieldMismatch)
	}
	return nil
}

func (x Extension) checkPair(p, q ExtElement) error {
	if err := x.check(p); err != nil {
		return err
	}
	return x.check(q)
}

// Add returns p + q.
func (x Extension) Add(p, q ExtElement) (ExtElement, error) {
	if err := x.checkPair(p, q); err != nil {
		return ExtElement{}, err
	}
	return ExtElement{A: p.A.add(q.A), B: p.B.add(q.B)}, nil
}

// Sub returns p - q.
func (x Extension) Sub(p, q ExtElement) (ExtElement, error) {
	if err := x.checkPair(p, q); err != nil {
		return ExtElement{}, err
	}
	return ExtElement{A: p.A.sub(q.A), B: p.B.sub(q.B)}, nil
}

// Mul returns p * q using
// (a1 + b1*u)(a2 + b2*u) = (a1*a2 + nr*b1*b2) + (a1*b2 + b1*a2)*u.
func (x Extension) Mul(p, q ExtElement) (ExtElement, error) {
	if err := x.checkPair(p, q); err != nil {
		return ExtElement{}, err
	}
	a := p.A.mul(q.A).add(x.nonResidue.mul(p.B.mul(q.B)))
	b := p.A.mul(q.B).add(p.B.mul(q.A))
	return ExtElement{A: a, B: b}, nil
}

// Negate returns -p.
func (x Extension) Negate(p ExtElement) ExtElement {
	return ExtElement{A: p.A.Negate(), B: p.B.Negate()}
}

// Inv returns p^{-1} via the conjugate: (a - b*u) / (a^2 - nr*b^2).
func (x Extension) Inv(p ExtElement) (ExtElement, error) {
	if err := x.check(p); err != nil {
		return ExtElement{}, err
	}
	norm := p.A.mul(p.A).sub(x.nonResidue.mul(p.B.mul(p.B)))
	ninv, err := norm.Inv()
	if err != nil {
		return ExtElement{}, fmt.Errorf("field: extension inverse: %w", err)
	}
	return ExtElement{A: p.A.mul(ninv), B: p.B.Negate().mul(ninv)}, nil
}

// Div returns p / q.
func (x Extension) Div(p, q ExtElement) (ExtElement, error) {
	qinv, err := x.Inv(q)
	if err != nil {
		return ExtElement{}, err
	}
	return x.Mul(p, qinv)
}

// IsZero reports whether both coordinates are zero.
func (p ExtElement) IsZero() bool { return p.A.IsZero() && p.B.IsZero() }

// Equal reports coordinate-wise equality.
func (p ExtElement) Equal(q ExtElement) bool {
	return p.A.Equal(q.A) && p.B.Equal(q.B)
}

func (p ExtElement) String() string {
	return fmt.Sprintf("%d + %d*u (mod %d)", p.A.Value(), p.B.Value(), p.A.Modulus())
}
