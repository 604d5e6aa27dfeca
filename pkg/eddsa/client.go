package eddsa

import (
	"crypto/rand"
	"io"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/babyjubjub"
)

// Signer provides a small stateful convenience wrapper around the
// package-level Sign/Verify/GenerateKey functions, for callers that want
// to fix a random source once (e.g. for reproducible tests) rather than
// passing it at every call site.
type Signer struct {
	rand io.Reader
}

// NewSigner creates a Signer using crypto/rand.Reader by default.
func NewSigner() *Signer {
	return &Signer{rand: rand.Reader}
}

// WithRandSource overrides the randomness source used by GenerateKey.
// Deterministic sources are useful in tests; production callers should
// leave the default crypto/rand.Reader in place.
func (c *Signer) WithRandSource(r io.Reader) *Signer {
	c.rand = r
	return c
}

// GenerateKey draws a fresh secret key from the configured random source.
func (c *Signer) GenerateKey() ([32]byte, error) {
	return GenerateKey(c.rand)
}

// Sign signs msg deterministically under sk. The configured random
// source plays no role here: EdDSA signing takes its nonce from the
// message and key alone.
func (c *Signer) Sign(sk [32]byte, msg []byte) Signature {
	return Sign(sk, msg)
}

// Verify checks sig against msg and pub.
func (c *Signer) Verify(pub *babyjubjub.Point, msg []byte, sig Signature) bool {
	return Verify(pub, msg, sig)
}
