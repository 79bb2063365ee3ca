package tbls

import (
	"fmt"

	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/poly"
	"github.com/f3rmion/tbls/seed"
)

// GenerateThresholdKey deals a fresh (threshold, receivers) key.
//
// The secret polynomial has threshold coefficients drawn from s. Receiver
// i gets the share p(XForIndex(i)); the public coefficients are c_i * G2.
// The same seed always produces the same output, so s must be secret and
// fresh. The polynomial is wiped before returning; s is left to the caller.
func GenerateThresholdKey(s *seed.Seed, threshold, receivers NumberOfNodes) (*poly.PublicCoefficients, []group.Scalar, error) {
	if err := verifyKeygenArgs(threshold, receivers); err != nil {
		return nil, nil, err
	}

	p, err := poly.Random(publicKeyGroup, int(threshold), s.Rng())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sample polynomial: %w", err)
	}

	pc, shares := keygenFromPolynomial(p, receivers)
	return pc, shares, nil
}

// ThresholdShareSecretKey deals an existing secret: like
// GenerateThresholdKey, except that the constant term of the polynomial
// is secret, so the combined public key equals PublicKeyFromSecretKey(secret).
//
// A zero threshold is rejected, since the secret would then be the only
// coefficient and its public image would be published.
func ThresholdShareSecretKey(s *seed.Seed, threshold, receivers NumberOfNodes, secret group.Scalar) (*poly.PublicCoefficients, []group.Scalar, error) {
	if err := verifyKeygenArgs(threshold, receivers); err != nil {
		return nil, nil, err
	}
	if threshold == 0 {
		return nil, nil, &InvalidArgumentError{
			Message: fmt.Sprintf("threshold cannot be zero if the zero coefficient is provided: (threshold=%d)", threshold),
		}
	}

	p, err := poly.Random(publicKeyGroup, int(threshold), s.Rng())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sample polynomial: %w", err)
	}
	p.Coefficients[0].Set(secret)

	pc, shares := keygenFromPolynomial(p, receivers)
	return pc, shares, nil
}

func verifyKeygenArgs(threshold, receivers NumberOfNodes) error {
	if threshold > receivers {
		return &InvalidArgumentError{
			Message: fmt.Sprintf("threshold too high: (threshold=%d !<= %d=num_shares)", threshold, receivers),
		}
	}
	return nil
}

// keygenFromPolynomial consumes p.
func keygenFromPolynomial(p *poly.Polynomial, receivers NumberOfNodes) (*poly.PublicCoefficients, []group.Scalar) {
	defer p.Zeroize()

	pc := poly.NewPublicCoefficients(publicKeyGroup, p)
	shares := make([]group.Scalar, receivers)
	for i := range shares {
		shares[i] = p.EvaluateAt(XForIndex(NodeIndex(i)))
	}
	return pc, shares
}

// IndividualPublicKey returns the public key of the share at index.
func IndividualPublicKey(pc *poly.PublicCoefficients, index NodeIndex) group.Point {
	return pc.EvaluateAt(XForIndex(index))
}

// CombinedPublicKey returns the key that verifies combined signatures:
// the constant term of the public coefficients. It is not the key of
// share 0, which is the evaluation at XForIndex(0) = 1.
func CombinedPublicKey(pc *poly.PublicCoefficients) group.Point {
	return pc.CombinedPublicKey()
}

// PublicKeyFromSecretKey returns secretKey * G2.
func PublicKeyFromSecretKey(secretKey group.Scalar) group.Point {
	return publicKeyGroup.NewPoint().ScalarMult(secretKey, publicKeyGroup.Generator())
}
