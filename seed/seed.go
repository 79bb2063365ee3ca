// Package seed holds the secret entropy from which a dealing is derived.
//
// A Seed is 32 bytes of secret randomness. It is expanded into a
// deterministic stream with ChaCha20, so the same seed always yields the
// same polynomial. Seeds must come from a cryptographically secure source
// and must never be reused across independent dealings.
package seed

import (
	"errors"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Size is the length of a seed in bytes.
const Size = 32

const (
	fromBytesTag = "tbls-seed-from-bytes-v1"
	deriveTag    = "tbls-seed-derive-v1"
)

// Seed is secret entropy. Call Zeroize when it is no longer needed.
type Seed struct {
	value [Size]byte
}

// FromRaw returns a seed holding exactly b.
func FromRaw(b [Size]byte) *Seed {
	return &Seed{value: b}
}

// FromBytes hashes arbitrary-length input into a seed. The input should
// carry at least 256 bits of entropy.
func FromBytes(data []byte) *Seed {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(fromBytesTag))
	h.Write(data)

	s := &Seed{}
	h.Sum(s.value[:0])
	return s
}

// FromReader reads Size bytes from r, typically crypto/rand.Reader.
func FromReader(r io.Reader) (*Seed, error) {
	s := &Seed{}
	if _, err := io.ReadFull(r, s.value[:]); err != nil {
		return nil, err
	}
	return s, nil
}

// Derive returns an independent child seed bound to domain. Children with
// different domains are unrelated; the parent is left unchanged.
func (s *Seed) Derive(domain string) *Seed {
	h, _ := blake2b.New256(s.value[:])
	h.Write([]byte(deriveTag))
	h.Write([]byte(domain))

	child := &Seed{}
	h.Sum(child.value[:0])
	return child
}

// Rng returns the deterministic pseudorandom stream for this seed.
func (s *Seed) Rng() io.Reader {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(s.value[:], nonce[:])
	if err != nil {
		// key and nonce sizes are constants
		panic(err)
	}
	return &stream{cipher: c}
}

// Zeroize overwrites the seed.
func (s *Seed) Zeroize() {
	for i := range s.value {
		s.value[i] = 0
	}
}

var errStreamExhausted = errors.New("seed stream exhausted")

// stream is an io.Reader over the ChaCha20 keystream.
type stream struct {
	cipher *chacha20.Cipher
	done   bool
}

func (r *stream) Read(p []byte) (n int, err error) {
	if r.done {
		return 0, errStreamExhausted
	}
	for i := range p {
		p[i] = 0
	}
	defer func() {
		// XORKeyStream panics once the 32-bit block counter overflows
		if recover() != nil {
			r.done = true
			n, err = 0, errStreamExhausted
		}
	}()
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
