package session

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/poly"
	"github.com/f3rmion/tbls/tbls"
)

var (
	// ErrIndexOutOfRange is returned for a share whose index is not a
	// receiver of the dealing.
	ErrIndexOutOfRange = errors.New("signature share index out of range")
	// ErrDuplicateShare is returned when a second share arrives for an
	// index that already contributed.
	ErrDuplicateShare = errors.New("duplicate signature share")
	// ErrEmptyShare is returned for a nil share or a share without a
	// signature.
	ErrEmptyShare = errors.New("empty signature share")
)

// SignatureShare is one holder's signature on a message.
type SignatureShare struct {
	Index     tbls.NodeIndex
	Signature group.Point
}

// Collector gathers signature shares for one message and combines them
// once the threshold is reached.
//
// Every share is verified against its holder's public key before it is
// accepted, so a single bad share can never spoil the combination.
// A Collector is safe for concurrent use.
type Collector struct {
	mu                 sync.Mutex
	publicCoefficients *poly.PublicCoefficients
	threshold          tbls.NumberOfNodes
	message            []byte
	slots              []group.Point
	count              int
	combined           group.Point
	logger             *zap.Logger
}

// NewCollector creates a collector for message. The threshold is the
// number of public coefficients; receivers bounds the accepted indices.
func NewCollector(pc *poly.PublicCoefficients, receivers tbls.NumberOfNodes, message []byte, opts ...Option) *Collector {
	o := buildOptions(opts)

	// Copy message to prevent external modification
	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)

	return &Collector{
		publicCoefficients: pc,
		threshold:          tbls.NumberOfNodes(pc.Threshold()),
		message:            msgCopy,
		slots:              make([]group.Point, receivers),
		logger:             o.logger,
	}
}

// Message returns the message being signed.
func (c *Collector) Message() []byte {
	return c.message
}

// Add verifies share and stores it.
//
// It returns ErrEmptyShare, ErrIndexOutOfRange, ErrDuplicateShare, or a
// *tbls.SignatureVerificationError for a share that does not verify.
func (c *Collector) Add(share *SignatureShare) error {
	if share == nil || share.Signature == nil {
		return ErrEmptyShare
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if int64(share.Index) >= int64(len(c.slots)) {
		return fmt.Errorf("%w: index %d, receivers %d", ErrIndexOutOfRange, share.Index, len(c.slots))
	}
	if c.slots[share.Index] != nil {
		return fmt.Errorf("%w: index %d", ErrDuplicateShare, share.Index)
	}

	pk := tbls.IndividualPublicKey(c.publicCoefficients, share.Index)
	if err := tbls.VerifyIndividualSig(c.message, share.Signature, pk); err != nil {
		c.logger.Debug("rejected signature share", zap.Uint32("index", uint32(share.Index)))
		return err
	}

	c.slots[share.Index] = share.Signature
	c.count++
	c.logger.Debug("accepted signature share",
		zap.Uint32("index", uint32(share.Index)),
		zap.Int("count", c.count),
		zap.Uint32("threshold", uint32(c.threshold)))
	return nil
}

// Count returns the number of accepted shares.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Ready reports whether enough shares have been accepted to combine.
func (c *Collector) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count >= int(c.threshold)
}

// Combine interpolates the accepted shares and verifies the result
// against the combined public key. The result is cached; later calls
// return it without recombining.
func (c *Collector) Combine() (group.Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.combined != nil {
		return c.combined, nil
	}

	sig, err := tbls.CombineSignatures(c.slots, c.threshold)
	if err != nil {
		return nil, err
	}
	if err := tbls.VerifyCombinedSig(c.message, sig, tbls.CombinedPublicKey(c.publicCoefficients)); err != nil {
		return nil, err
	}

	c.combined = sig
	c.logger.Info("combined threshold signature",
		zap.Int("shares", c.count),
		zap.Uint32("threshold", uint32(c.threshold)))
	return sig, nil
}

// Verify checks a combined signature against the dealing's public
// coefficients.
func Verify(message []byte, sig group.Point, pc *poly.PublicCoefficients) error {
	return tbls.VerifyCombinedSig(message, sig, tbls.CombinedPublicKey(pc))
}

// QuickSign signs message with every given holder and combines the
// shares. It is meant for tests and single-process setups where all
// holders are local.
func QuickSign(pc *poly.PublicCoefficients, receivers tbls.NumberOfNodes, holders []*Holder, message []byte) (group.Point, error) {
	if len(holders) == 0 {
		return nil, errors.New("no holders provided")
	}

	c := NewCollector(pc, receivers, message)
	for _, h := range holders {
		share, err := h.Sign(message)
		if err != nil {
			return nil, err
		}
		if err := c.Add(share); err != nil {
			return nil, err
		}
	}
	return c.Combine()
}
