package tbls

import (
	"fmt"

	"github.com/f3rmion/tbls/bls12381"
	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/poly"
)

// Fixed-width canonical encodings exchanged at the boundary.
type (
	// PublicKeyBytes is a compressed G2 point.
	PublicKeyBytes [bls12381.G2Size]byte
	// SignatureBytes is a compressed G1 point, individual or combined.
	SignatureBytes [bls12381.G1Size]byte
	// SecretKeyBytes is a big-endian scalar.
	SecretKeyBytes [bls12381.ScalarSize]byte
)

// PublicKeyToBytes encodes a G2 public key.
func PublicKeyToBytes(pk group.Point) PublicKeyBytes {
	var out PublicKeyBytes
	copy(out[:], pk.Bytes())
	return out
}

// PublicKeyFromBytes decodes a G2 public key, rejecting anything that is
// not a canonical point of the prime-order subgroup.
func PublicKeyFromBytes(data []byte) (group.Point, error) {
	pk, err := publicKeyGroup.NewPoint().SetBytes(data)
	if err != nil {
		return nil, &InvalidArgumentError{Message: fmt.Sprintf("malformed public key: %v", err)}
	}
	return pk, nil
}

// SignatureToBytes encodes a G1 signature.
func SignatureToBytes(sig group.Point) SignatureBytes {
	var out SignatureBytes
	copy(out[:], sig.Bytes())
	return out
}

// SignatureFromBytes decodes a G1 signature.
func SignatureFromBytes(data []byte) (group.Point, error) {
	sig, err := signatureGroup.NewPoint().SetBytes(data)
	if err != nil {
		return nil, &InvalidArgumentError{Message: fmt.Sprintf("malformed signature: %v", err)}
	}
	return sig, nil
}

// SecretKeyToBytes encodes a secret key share. The result is secret.
func SecretKeyToBytes(sk group.Scalar) SecretKeyBytes {
	var out SecretKeyBytes
	copy(out[:], sk.Bytes())
	return out
}

// SecretKeyFromBytes decodes a secret key share.
func SecretKeyFromBytes(data []byte) (group.Scalar, error) {
	sk, err := publicKeyGroup.NewScalar().SetBytes(data)
	if err != nil {
		return nil, &InvalidArgumentError{Message: "malformed secret key"}
	}
	return sk, nil
}

// PublicCoefficientsFromBytes decodes concatenated compressed G2 points
// as produced by PublicCoefficients.Bytes.
func PublicCoefficientsFromBytes(data []byte) (*poly.PublicCoefficients, error) {
	pc, err := poly.PublicCoefficientsFromBytes(publicKeyGroup, data)
	if err != nil {
		return nil, &InvalidArgumentError{Message: fmt.Sprintf("malformed public coefficients: %v", err)}
	}
	return pc, nil
}
