// Package session provides a high-level API for threshold BLS dealing and
// signing. It wraps the pure functions of the [tbls] package with holder
// and collector types that track indices, verify shares as they arrive,
// and refuse duplicates.
//
// The session package is designed for application developers who want to
// integrate threshold signatures without handling index bookkeeping. For
// full control, use the [tbls] package directly.
//
// # Dealing
//
//	s, err := seed.FromReader(rand.Reader)
//	if err != nil {
//		return err
//	}
//	defer s.Zeroize()
//
//	dealing, err := session.Deal(s, threshold, receivers)
//	if err != nil {
//		return err
//	}
//
//	// Publish dealing.PublicCoefficients
//	// Send dealing.Holders[i].Share() to receiver i over a secure channel
//
// # Signing
//
// Each holder signs independently:
//
//	share, err := holder.Sign(message)
//
// A collector accepts shares in any order, from any goroutine:
//
//	c := session.NewCollector(pc, receivers, message, session.WithLogger(logger))
//	for share := range incoming {
//		if err := c.Add(share); err != nil {
//			continue // bad or duplicate share, keep collecting
//		}
//		if c.Ready() {
//			break
//		}
//	}
//	sig, err := c.Combine()
//
// # Transport Agnostic
//
// This package does not handle network communication or storage. You are
// responsible for delivering shares and signature shares between parties.
package session
