package bls12381

import (
	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/f3rmion/tbls/group"
)

// VerifyBLS reports whether e(signature, G2 generator) == e(msgPoint, publicKey).
//
// signature and msgPoint must be *G1Point, publicKey must be *G2Point.
// Points of any other type, including nil, do not verify.
// The two pairings share one final exponentiation: the check is
// e(signature, g2) * e(msgPoint, -publicKey) == 1.
func VerifyBLS(signature, msgPoint, publicKey group.Point) bool {
	sig, ok := signature.(*G1Point)
	if !ok || sig == nil {
		return false
	}
	h, ok := msgPoint.(*G1Point)
	if !ok || h == nil {
		return false
	}
	pk, ok := publicKey.(*G2Point)
	if !ok || pk == nil {
		return false
	}

	if !sig.inner.IsInSubGroup() || !pk.inner.IsInSubGroup() {
		return false
	}

	_, _, _, g2 := curve.Generators()
	var negPK curve.G2Affine
	negPK.Neg(&pk.inner)

	ok, err := curve.PairingCheck(
		[]curve.G1Affine{sig.inner, h.inner},
		[]curve.G2Affine{g2, negPK},
	)
	if err != nil {
		return false
	}
	return ok
}
