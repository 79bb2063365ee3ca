// Package bls12381 provides a BLS12-381 implementation of the
// [group.Group] interface for use with threshold BLS signatures.
//
// BLS12-381 is a pairing-friendly curve with two prime-order groups of the
// same order r:
//
//   - [G1]: points over Fp, 48-byte compressed encoding. Signatures and
//     hashed messages live here.
//   - [G2]: points over Fp2, 96-byte compressed encoding. Public keys and
//     public coefficients live here.
//
// Both groups share the [Scalar] type, an element of Fr.
//
// This package wraps the implementation from gnark-crypto and adds the two
// operations the signature scheme needs on top of plain group arithmetic:
// [HashToG1] (RFC 9380 hash_to_curve, SSWU, random oracle) and
// [VerifyBLS] (a two-pairing product check).
//
// # Usage
//
//	g := bls12381.G2{}
//	sk, _ := g.RandomScalar(rng)
//	pk := g.NewPoint().ScalarMult(sk, g.Generator())
//
// # Security
//
// SetBytes rejects points that are off the curve or outside the
// prime-order subgroup, and scalars that are not canonically reduced.
// Scalar.Zeroize overwrites the field element in place.
package bls12381
