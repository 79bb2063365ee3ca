// Package poly implements polynomials over a group's scalar field and
// their images "in the exponent".
//
// A [Polynomial] is sampled by a dealer; evaluating it at x = i+1 yields
// the secret share of receiver i. [PublicCoefficients] publishes c_i * G
// for every coefficient, which lets anyone compute the public key of any
// share with [PublicCoefficients.EvaluateAt], and the combined public key
// as the constant term.
//
// Both evaluate with Horner's rule, once with field arithmetic and once
// with group arithmetic. [Interpolate] recovers f(0) in the exponent from
// enough samples using Lagrange coefficients at zero; this is how
// signature shares are combined.
package poly
