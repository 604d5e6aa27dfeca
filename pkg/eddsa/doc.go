// Package eddsa implements EdDSA signatures over the Baby Jubjub curve.
//
// Key derivation and the signing nonce use SHA-512; the challenge hash
// uses SHA-256. Both choices are load-bearing and not interchangeable.
// Signing is deterministic: the same secret key and message always
// produce the same signature. Verification never panics and returns a
// plain bool.
//
// Basic usage:
//
//	var sk [32]byte
//	io.ReadFull(rand.Reader, sk[:])
//	pub := eddsa.PublicKey(sk)
//	sig := eddsa.Sign(sk, message)
//	ok := eddsa.Verify(pub, message, sig)
package eddsa
