package tbls

import (
	"fmt"

	"github.com/f3rmion/tbls/bls12381"
	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/poly"
)

func hashMessageToG1(message []byte) (group.Point, error) {
	return bls12381.HashToG1(message, []byte(DomainSeparationTag))
}

// SignMessage returns H(message) * secretKey, where H hashes to G1 under
// DomainSeparationTag. The whole message must be in memory; hash large
// payloads first.
func SignMessage(message []byte, secretKey group.Scalar) (group.Point, error) {
	h, err := hashMessageToG1(message)
	if err != nil {
		return nil, fmt.Errorf("failed to hash message to G1: %w", err)
	}
	return signatureGroup.NewPoint().ScalarMult(secretKey, h), nil
}

// CombineSignatures interpolates signature shares at zero, giving the
// signature of the never-materialized combined secret key.
//
// signatures[i] is the share of the holder at index i, or nil if that
// holder did not contribute. At least threshold entries must be present.
// An empty slice (only possible with a zero threshold) yields the
// identity.
func CombineSignatures(signatures []group.Point, threshold NumberOfNodes) (group.Point, error) {
	present := 0
	for _, sig := range signatures {
		if sig != nil {
			present++
		}
	}
	if int(threshold) > present {
		return nil, &InvalidArgumentError{
			Message: fmt.Sprintf("threshold too high: (threshold=%d !<= %d=num_shares)", threshold, present),
		}
	}
	if len(signatures) == 0 {
		return signatureGroup.NewPoint(), nil
	}

	knots := make([]poly.Knot, 0, present)
	for i, sig := range signatures {
		if sig == nil {
			continue
		}
		knots = append(knots, poly.Knot{X: XForIndex(NodeIndex(i)), Y: sig})
	}
	return poly.Interpolate(signatureGroup, knots), nil
}

// VerifyIndividualSig checks a signature share against the public key of
// its holder, IndividualPublicKey(pc, index).
func VerifyIndividualSig(message []byte, signature, publicKey group.Point) error {
	if !verify(message, signature, publicKey) {
		return verificationError(signature, publicKey, "invalid individual threshold signature")
	}
	return nil
}

// VerifyCombinedSig checks a combined signature against CombinedPublicKey(pc).
func VerifyCombinedSig(message []byte, signature, publicKey group.Point) error {
	if !verify(message, signature, publicKey) {
		return verificationError(signature, publicKey, "invalid combined threshold signature")
	}
	return nil
}

// verify checks e(signature, G2) == e(H(message), publicKey).
// TODO: batch the Miller loops of several share verifications into one
// final exponentiation when a collector checks many shares at once.
func verify(message []byte, signature, publicKey group.Point) bool {
	h, err := hashMessageToG1(message)
	if err != nil {
		return false
	}
	return bls12381.VerifyBLS(signature, h, publicKey)
}

func verificationError(signature, publicKey group.Point, reason string) error {
	return &SignatureVerificationError{
		Algorithm:      AlgorithmThresBLS12381,
		PublicKeyBytes: pointBytes(publicKey),
		SignatureBytes: pointBytes(signature),
		InternalError:  reason,
	}
}

// pointBytes is p.Bytes(), or nil for a missing point.
func pointBytes(p group.Point) []byte {
	if p == nil {
		return nil
	}
	return p.Bytes()
}
