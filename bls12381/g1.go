package bls12381

import (
	"errors"
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/f3rmion/tbls/group"
)

// G1Size is the length of a compressed G1 point, the signature encoding.
const G1Size = curve.SizeOfG1AffineCompressed

// G1Point represents a point of the prime-order subgroup of BLS12-381 G1.
// It implements [group.Point] by wrapping gnark-crypto's G1Affine.
//
// The zero value is the point at infinity.
type G1Point struct {
	inner curve.G1Affine
}

// Add sets p to a + b and returns p.
func (p *G1Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*G1Point).inner, &b.(*G1Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G1Point) Sub(a, b group.Point) group.Point {
	p.inner.Sub(&a.(*G1Point).inner, &b.(*G1Point).inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *G1Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G1Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*Scalar).bigInt()
	defer wipeBigInt(k)
	p.inner.ScalarMultiplication(&q.(*G1Point).inner, k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G1Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G1Point).inner)
	return p
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *G1Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes sets p from a 48-byte compressed encoding and returns p.
// Returns an error if the data is not a point of the prime-order subgroup.
func (p *G1Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != G1Size {
		return nil, errors.New("invalid G1 point length")
	}
	var q curve.G1Affine
	if _, err := q.SetBytes(data); err != nil {
		return nil, err
	}
	if !q.IsInSubGroup() {
		return nil, errors.New("G1 point not in prime-order subgroup")
	}
	p.inner = q
	return p, nil
}

// Equal reports whether p and b represent the same point.
func (p *G1Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G1Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// G1 implements [group.Group] for BLS12-381 G1, the signature group.
//
// G1 is a zero-sized type. Create an instance with G1{}.
type G1 struct{}

// NewScalar returns a new scalar initialized to zero.
func (G1) NewScalar() group.Scalar {
	return NewScalar()
}

// NewPoint returns a new point initialized to the identity.
func (G1) NewPoint() group.Point {
	return &G1Point{}
}

// Generator returns the standard G1 base point.
func (G1) Generator() group.Point {
	_, _, g1, _ := curve.Generators()
	return &G1Point{inner: g1}
}

// RandomScalar returns a uniformly distributed scalar read from r.
func (G1) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

// HashToScalar hashes the provided data to a scalar.
func (G1) HashToScalar(data ...[]byte) (group.Scalar, error) {
	return hashToScalar(data...)
}

// Order returns the group order r as a big-endian byte slice.
func (G1) Order() []byte {
	return order()
}

// PointSize returns [G1Size].
func (G1) PointSize() int {
	return G1Size
}

// HashToG1 maps msg to a G1 point with the hash_to_curve suite
// BLS12381G1_XMD:SHA-256_SSWU_RO_ and the domain separation tag dst.
func HashToG1(msg, dst []byte) (*G1Point, error) {
	q, err := curve.HashToG1(msg, dst)
	if err != nil {
		return nil, err
	}
	return &G1Point{inner: q}, nil
}
