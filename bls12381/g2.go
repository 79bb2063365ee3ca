package bls12381

import (
	"errors"
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/f3rmion/tbls/group"
)

// G2Size is the length of a compressed G2 point, the public key encoding.
const G2Size = curve.SizeOfG2AffineCompressed

// G2Point represents a point of the prime-order subgroup of BLS12-381 G2.
// It implements [group.Point] by wrapping gnark-crypto's G2Affine.
//
// The zero value is the point at infinity.
type G2Point struct {
	inner curve.G2Affine
}

// Add sets p to a + b and returns p.
func (p *G2Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*G2Point).inner, &b.(*G2Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2Point) Sub(a, b group.Point) group.Point {
	p.inner.Sub(&a.(*G2Point).inner, &b.(*G2Point).inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *G2Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G2Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*Scalar).bigInt()
	defer wipeBigInt(k)
	p.inner.ScalarMultiplication(&q.(*G2Point).inner, k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G2Point).inner)
	return p
}

// Bytes returns the 96-byte compressed encoding of p.
func (p *G2Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes sets p from a 96-byte compressed encoding and returns p.
// Returns an error if the data is not a point of the prime-order subgroup.
func (p *G2Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != G2Size {
		return nil, errors.New("invalid G2 point length")
	}
	var q curve.G2Affine
	if _, err := q.SetBytes(data); err != nil {
		return nil, err
	}
	if !q.IsInSubGroup() {
		return nil, errors.New("G2 point not in prime-order subgroup")
	}
	p.inner = q
	return p, nil
}

// Equal reports whether p and b represent the same point.
func (p *G2Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G2Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// G2 implements [group.Group] for BLS12-381 G2, the public-key group.
type G2 struct{}

// NewScalar returns a new scalar initialized to zero.
func (G2) NewScalar() group.Scalar {
	return NewScalar()
}

// NewPoint returns a new point initialized to the identity.
func (G2) NewPoint() group.Point {
	return &G2Point{}
}

// Generator returns the standard G2 base point.
func (G2) Generator() group.Point {
	_, _, _, g2 := curve.Generators()
	return &G2Point{inner: g2}
}

// RandomScalar returns a uniformly distributed scalar read from r.
func (G2) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

// HashToScalar hashes the provided data to a scalar.
func (G2) HashToScalar(data ...[]byte) (group.Scalar, error) {
	return hashToScalar(data...)
}

// Order returns the group order r as a big-endian byte slice.
func (G2) Order() []byte {
	return order()
}

// PointSize returns [G2Size].
func (G2) PointSize() int {
	return G2Size
}
