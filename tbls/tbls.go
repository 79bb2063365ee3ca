package tbls

import (
	"fmt"

	"github.com/f3rmion/tbls/bls12381"
	"github.com/f3rmion/tbls/group"
)

// NodeIndex is the zero-based position of a receiver in a dealing.
type NodeIndex uint32

// NumberOfNodes counts receivers or required signers.
type NumberOfNodes uint32

// AlgorithmID names the signature algorithm in verification errors.
type AlgorithmID string

// AlgorithmThresBLS12381 is the identifier of this scheme.
const AlgorithmThresBLS12381 AlgorithmID = "ThresBls12_381"

// DomainSeparationTag is the hash-to-G1 tag of the IETF BLS basic
// ciphersuite with signatures in G1. Signatures made under any other
// ciphersuite never verify here.
const DomainSeparationTag = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"

var (
	signatureGroup = bls12381.G1{}
	publicKeyGroup = bls12381.G2{}
)

// SignatureGroup returns the group signatures live in (BLS12-381 G1).
func SignatureGroup() group.Group {
	return signatureGroup
}

// PublicKeyGroup returns the group public keys and public coefficients
// live in (BLS12-381 G2).
func PublicKeyGroup() group.Group {
	return publicKeyGroup
}

// XForIndex returns the evaluation point of the share at index, index+1.
// It is never zero, which would reveal the secret, and distinct indices
// give distinct points.
func XForIndex(index NodeIndex) group.Scalar {
	x := publicKeyGroup.NewScalar().SetUint64(uint64(index))
	return x.Add(x, publicKeyGroup.NewScalar().SetOne())
}

// InvalidArgumentError reports arguments that can never produce a valid
// result, such as a threshold above the number of receivers.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Message
}

// SignatureVerificationError reports a signature that did not verify.
// InternalError never says whether the
// signature was malformed, forged or checked against the wrong key.
type SignatureVerificationError struct {
	Algorithm      AlgorithmID
	PublicKeyBytes []byte
	SignatureBytes []byte
	InternalError  string
}

func (e *SignatureVerificationError) Error() string {
	return fmt.Sprintf("signature verification failed: algorithm=%s public_key=%x signature=%x: %s",
		e.Algorithm, e.PublicKeyBytes, e.SignatureBytes, e.InternalError)
}
