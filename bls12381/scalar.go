package bls12381

import (
	"encoding/binary"
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/tbls/group"
)

// ScalarSize is the length of a canonical scalar encoding.
const ScalarSize = fr.Bytes

// wideScalarSize is the number of random bytes reduced into one scalar.
// Reducing 512 bits modulo the 255-bit order keeps the bias negligible.
const wideScalarSize = 2 * fr.Bytes

// hashToScalarDST separates HashToScalar from every other use of fr.Hash.
var hashToScalarDST = []byte("TBLS_BLS12381_XMD:SHA-256_HASH_TO_SCALAR_")

// Scalar represents an element of the BLS12-381 scalar field Fr.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element,
// which keeps values in Montgomery form and reduced modulo r.
//
// The same Scalar type is used with both [G1] and [G2]: the two groups
// share the order r.
type Scalar struct {
	inner fr.Element
}

// NewScalar returns a zero scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod r) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod r) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) (mod r) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// SetOne sets s to 1 and returns s.
func (s *Scalar) SetOne() group.Scalar {
	s.inner.SetOne()
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// Values greater than or equal to r are rejected rather than reduced,
// so every scalar has exactly one encoding.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != ScalarSize {
		return nil, errors.New("invalid scalar length")
	}
	if err := s.inner.SetBytesCanonical(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize overwrites the limbs of s with zero.
func (s *Scalar) Zeroize() {
	s.inner.SetZero()
}

// bigInt returns s as a big.Int for gnark-crypto's scalar multiplication.
// Callers holding secrets must pass the result to wipeBigInt.
func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// wipeBigInt overwrites the words backing b.
func wipeBigInt(b *big.Int) {
	words := b.Bits()
	for i := range words {
		words[i] = 0
	}
	b.SetInt64(0)
}

// randomScalar reads 64 bytes from r and reduces them modulo the order.
func randomScalar(r io.Reader) (*Scalar, error) {
	var buf [wideScalarSize]byte
	defer func() {
		for i := range buf {
			buf[i] = 0
		}
	}()
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := NewScalar()
	s.inner.SetBytes(buf[:])
	return s, nil
}

// hashToScalar implements hash_to_field (RFC 9380) into Fr. Each input is
// length-prefixed so that distinct tuples never hash the same.
func hashToScalar(data ...[]byte) (*Scalar, error) {
	var msg []byte
	for _, d := range data {
		msg = binary.BigEndian.AppendUint64(msg, uint64(len(d)))
		msg = append(msg, d...)
	}
	elems, err := fr.Hash(msg, hashToScalarDST, 1)
	if err != nil {
		return nil, err
	}
	return &Scalar{inner: elems[0]}, nil
}

// order returns the scalar field modulus r as big-endian bytes.
func order() []byte {
	return fr.Modulus().Bytes()
}
