package poly

import (
	"fmt"

	"github.com/f3rmion/tbls/group"
)

// PublicCoefficients is a polynomial "in the exponent": Coefficients[i]
// is c_i * G for the generator G of the group, where c_i are the
// coefficients of a secret Polynomial.
type PublicCoefficients struct {
	group        group.Group
	Coefficients []group.Point
}

// NewPublicCoefficients maps each coefficient of p to c_i * G in g,
// preserving order and length.
func NewPublicCoefficients(g group.Group, p *Polynomial) *PublicCoefficients {
	gen := g.Generator()
	points := make([]group.Point, len(p.Coefficients))
	for i, c := range p.Coefficients {
		points[i] = g.NewPoint().ScalarMult(c, gen)
	}
	return &PublicCoefficients{group: g, Coefficients: points}
}

// PublicCoefficientsFromPoints wraps already-computed points of g.
func PublicCoefficientsFromPoints(g group.Group, points []group.Point) *PublicCoefficients {
	return &PublicCoefficients{group: g, Coefficients: points}
}

// EvaluateAt returns p(x) * G using Horner's rule over the group, without
// ever computing the scalar p(x).
func (pc *PublicCoefficients) EvaluateAt(x group.Scalar) group.Point {
	result := pc.group.NewPoint()
	for i := len(pc.Coefficients) - 1; i >= 0; i-- {
		result.ScalarMult(x, result)
		result.Add(result, pc.Coefficients[i])
	}
	return result
}

// CombinedPublicKey returns a copy of Coefficients[0], the evaluation at
// zero. With no coefficients it returns the identity.
func (pc *PublicCoefficients) CombinedPublicKey() group.Point {
	if len(pc.Coefficients) == 0 {
		return pc.group.NewPoint()
	}
	return pc.group.NewPoint().Set(pc.Coefficients[0])
}

// Threshold returns the number of coefficients.
func (pc *PublicCoefficients) Threshold() int {
	return len(pc.Coefficients)
}

// Group returns the group the coefficients belong to.
func (pc *PublicCoefficients) Group() group.Group {
	return pc.group
}

// Equal reports whether pc and other hold the same points in order.
func (pc *PublicCoefficients) Equal(other *PublicCoefficients) bool {
	if len(pc.Coefficients) != len(other.Coefficients) {
		return false
	}
	for i := range pc.Coefficients {
		if !pc.Coefficients[i].Equal(other.Coefficients[i]) {
			return false
		}
	}
	return true
}

// Bytes returns the concatenated compressed encodings of the coefficients.
func (pc *PublicCoefficients) Bytes() []byte {
	out := make([]byte, 0, len(pc.Coefficients)*pc.group.PointSize())
	for _, c := range pc.Coefficients {
		out = append(out, c.Bytes()...)
	}
	return out
}

// PublicCoefficientsFromBytes parses the output of Bytes.
func PublicCoefficientsFromBytes(g group.Group, data []byte) (*PublicCoefficients, error) {
	size := g.PointSize()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("public coefficients length %d is not a multiple of %d", len(data), size)
	}
	points := make([]group.Point, len(data)/size)
	for i := range points {
		p, err := g.NewPoint().SetBytes(data[i*size : (i+1)*size])
		if err != nil {
			return nil, fmt.Errorf("public coefficient %d: %w", i, err)
		}
		points[i] = p
	}
	return PublicCoefficientsFromPoints(g, points), nil
}
