package poly

import (
	"github.com/f3rmion/tbls/group"
)

// Knot is a sample (X, Y) of a polynomial evaluated in the exponent.
type Knot struct {
	X group.Scalar
	Y group.Point
}

// ScalarKnot is a sample (X, Y) of a polynomial over the scalar field.
type ScalarKnot struct {
	X group.Scalar
	Y group.Scalar
}

// lagrangeAtZero returns L_i(0) = prod_{j != i} x_j / (x_j - x_i) for
// every knot, using only the supplied x values.
//
// The x values must be distinct. A repeated x is an internal invariant
// violation and panics.
func lagrangeAtZero(g group.Group, xs []group.Scalar) []group.Scalar {
	coeffs := make([]group.Scalar, len(xs))
	for i, xi := range xs {
		num := g.NewScalar().SetOne()
		den := g.NewScalar().SetOne()
		for j, xj := range xs {
			if j == i {
				continue
			}
			num.Mul(num, xj)
			diff := g.NewScalar().Sub(xj, xi)
			den.Mul(den, diff)
		}

		denInv, err := g.NewScalar().Invert(den)
		if err != nil {
			panic("poly: duplicate interpolation point")
		}
		coeffs[i] = num.Mul(num, denInv)
	}
	return coeffs
}

// Interpolate returns f(0) in the exponent, sum_i Y_i * L_i(0), for the
// polynomial f of degree < len(knots) passing through knots. Y values
// must belong to g.
//
// The caller must supply at least threshold knots for the result to be
// meaningful; Interpolate does not know the threshold. Duplicate X values
// panic. No knots yield the identity.
func Interpolate(g group.Group, knots []Knot) group.Point {
	xs := make([]group.Scalar, len(knots))
	for i, k := range knots {
		xs[i] = k.X
	}
	lambdas := lagrangeAtZero(g, xs)

	result := g.NewPoint()
	for i, k := range knots {
		term := g.NewPoint().ScalarMult(lambdas[i], k.Y)
		result.Add(result, term)
	}
	return result
}

// InterpolateScalar returns f(0) for the polynomial f of degree
// < len(knots) passing through knots. It has the same preconditions as
// [Interpolate].
func InterpolateScalar(g group.Group, knots []ScalarKnot) group.Scalar {
	xs := make([]group.Scalar, len(knots))
	for i, k := range knots {
		xs[i] = k.X
	}
	lambdas := lagrangeAtZero(g, xs)

	result := g.NewScalar()
	for i, k := range knots {
		term := g.NewScalar().Mul(lambdas[i], k.Y)
		result.Add(result, term)
		term.Zeroize()
	}
	return result
}
