package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/poly"
	"github.com/f3rmion/tbls/seed"
	"github.com/f3rmion/tbls/tbls"
)

// Option configures a [Collector] or a dealing.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Dealing is the output of a trusted dealer: the public coefficients and
// one [Holder] per receiver, in index order.
type Dealing struct {
	// PublicCoefficients are public and verify every share and the
	// combined signature. Publish them alongside the dealing.
	PublicCoefficients *poly.PublicCoefficients

	// Holders[i] owns the secret share of index i. Each holder must be
	// delivered to its receiver over a secure channel.
	Holders []*Holder
}

// Deal runs [tbls.GenerateThresholdKey] and wraps the shares into holders.
//
// Parameters:
//   - s: secret seed, never reused across dealings
//   - threshold: minimum number of signers required (t)
//   - receivers: number of shares (n)
func Deal(s *seed.Seed, threshold, receivers tbls.NumberOfNodes, opts ...Option) (*Dealing, error) {
	o := buildOptions(opts)

	pc, shares, err := tbls.GenerateThresholdKey(s, threshold, receivers)
	if err != nil {
		return nil, fmt.Errorf("failed to generate threshold key: %w", err)
	}

	o.logger.Info("dealt threshold key",
		zap.Uint32("threshold", uint32(threshold)),
		zap.Uint32("receivers", uint32(receivers)))
	return newDealing(pc, shares), nil
}

// Reshare runs [tbls.ThresholdShareSecretKey], dealing an existing secret.
func Reshare(s *seed.Seed, threshold, receivers tbls.NumberOfNodes, secret group.Scalar, opts ...Option) (*Dealing, error) {
	o := buildOptions(opts)

	pc, shares, err := tbls.ThresholdShareSecretKey(s, threshold, receivers, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to reshare secret key: %w", err)
	}

	o.logger.Info("reshared secret key",
		zap.Uint32("threshold", uint32(threshold)),
		zap.Uint32("receivers", uint32(receivers)))
	return newDealing(pc, shares), nil
}

func newDealing(pc *poly.PublicCoefficients, shares []group.Scalar) *Dealing {
	holders := make([]*Holder, len(shares))
	for i, share := range shares {
		holders[i] = NewHolder(tbls.NodeIndex(i), share, pc)
	}
	return &Dealing{
		PublicCoefficients: pc,
		Holders:            holders,
	}
}

// CombinedPublicKey returns the key that verifies combined signatures.
func (d *Dealing) CombinedPublicKey() group.Point {
	return tbls.CombinedPublicKey(d.PublicCoefficients)
}

// Zeroize wipes every holder's share.
func (d *Dealing) Zeroize() {
	for _, h := range d.Holders {
		h.Zeroize()
	}
}

// Holder owns one secret key share.
type Holder struct {
	index              tbls.NodeIndex
	share              group.Scalar
	publicCoefficients *poly.PublicCoefficients
}

// NewHolder wraps a share received from a dealer or restored from
// storage. The share is used directly and wiped by Zeroize.
func NewHolder(index tbls.NodeIndex, share group.Scalar, pc *poly.PublicCoefficients) *Holder {
	return &Holder{
		index:              index,
		share:              share,
		publicCoefficients: pc,
	}
}

// Index returns this holder's index.
func (h *Holder) Index() tbls.NodeIndex {
	return h.index
}

// Share returns the secret key share, or nil after Zeroize.
func (h *Holder) Share() group.Scalar {
	return h.share
}

// PublicKey returns the individual public key of this holder.
func (h *Holder) PublicKey() group.Point {
	return tbls.IndividualPublicKey(h.publicCoefficients, h.index)
}

// Zeroize wipes the share. Sign fails afterwards.
func (h *Holder) Zeroize() {
	if h.share == nil {
		return
	}
	h.share.Zeroize()
	h.share = nil
}

// Sign produces this holder's signature share of message.
func (h *Holder) Sign(message []byte) (*SignatureShare, error) {
	if h.share == nil {
		return nil, errors.New("key share has been wiped")
	}
	sig, err := tbls.SignMessage(message, h.share)
	if err != nil {
		return nil, err
	}
	return &SignatureShare{Index: h.index, Signature: sig}, nil
}
