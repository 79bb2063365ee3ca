package poly

import (
	"io"

	"github.com/f3rmion/tbls/group"
)

// Polynomial is a univariate polynomial over the scalar field of a group.
// Coefficients[i] is the coefficient of x^i, so 3 + 2x + x^2 is
// encoded as [3, 2, 1].
//
// A polynomial used for dealing is secret. Call Zeroize once the shares
// and public coefficients have been derived.
type Polynomial struct {
	group        group.Group
	Coefficients []group.Scalar
}

// New returns a polynomial with the given coefficients, lowest degree
// first. The slice is used directly.
func New(g group.Group, coefficients []group.Scalar) *Polynomial {
	return &Polynomial{group: g, Coefficients: coefficients}
}

// Random draws a polynomial with threshold coefficients (degree
// threshold-1), each read uniformly from rng. All randomness comes from
// rng.
func Random(g group.Group, threshold int, rng io.Reader) (*Polynomial, error) {
	coeffs := make([]group.Scalar, threshold)
	for i := range coeffs {
		c, err := g.RandomScalar(rng)
		if err != nil {
			for _, prev := range coeffs[:i] {
				prev.Zeroize()
			}
			return nil, err
		}
		coeffs[i] = c
	}
	return New(g, coeffs), nil
}

// EvaluateAt returns p(x) using Horner's rule. The zero polynomial
// (no coefficients) evaluates to zero everywhere.
func (p *Polynomial) EvaluateAt(x group.Scalar) group.Scalar {
	result := p.group.NewScalar()
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
	}
	return result
}

// Threshold returns the number of coefficients.
func (p *Polynomial) Threshold() int {
	return len(p.Coefficients)
}

// Zeroize wipes every coefficient and drops them.
func (p *Polynomial) Zeroize() {
	for _, c := range p.Coefficients {
		c.Zeroize()
	}
	p.Coefficients = nil
}
