// Package group defines abstract interfaces for the prime-order groups
// used by the threshold BLS scheme.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed for threshold signatures "in the
// exponent":
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// The polynomial code in package poly is written once against these
// interfaces and instantiated over both the signature group and the
// public-key group.
//
// # Implementing a Group
//
// To implement these interfaces for a new curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create Point types that wrap your curve points and implement [Point]
//  3. Create Group types that implement [Group] as factories
//
// See the bls12381 package for a complete implementation.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are read only from the caller's reader
//   - Invalid or out-of-subgroup points are rejected in SetBytes
//   - Zeroize actually overwrites the scalar's memory
package group
