package eddsa

import (
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/babyjubjub"
	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/field"
)

// leBytesToInt interprets b as a little-endian unsigned integer.
func leBytesToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}

// DeriveScalar expands the 32-byte secret sk through SHA-512, clamps the
// low half per RFC 8032 section 5.1.5, and right-shifts the clamped
// scalar by 3 bits.
//
// The shift is not part of standard Ed25519; it compensates for how this
// design folds the cofactor into signing and verification (spec section
// 9, "FIXME: why" in the reference implementation) and must be preserved
// verbatim for compatibility with circuits built against this scheme.
// It returns the derived scalar s and the 32-byte nonce prefix (the
// high half of the SHA-512 output).
func DeriveScalar(sk [32]byte) (s *big.Int, prefix [32]byte) {
	h := sha512.Sum512(sk[:])

	clamped := make([]byte, 32)
	copy(clamped, h[:32])
	clamped[0] &= 0xF8
	clamped[31] &= 0x7F
	clamped[31] |= 0x40

	s = leBytesToInt(clamped)
	s.Rsh(s, 3)

	copy(prefix[:], h[32:])
	return s, prefix
}

// PublicKey derives the public key point A = s*B from the secret key sk.
func PublicKey(sk [32]byte) *babyjubjub.Point {
	s, _ := DeriveScalar(sk)
	return babyjubjub.ScalarMul(babyjubjub.Base(), s)
}

// challenge computes k = SHA-256(encode(R) || encode(A) || m) as a
// little-endian integer, unreduced.
func challenge(r, a *babyjubjub.Point, msg []byte) *big.Int {
	re := babyjubjub.Encode(r)
	ae := babyjubjub.Encode(a)
	data := make([]byte, 0, 64+len(msg))
	data = append(data, re[:]...)
	data = append(data, ae[:]...)
	data = append(data, msg...)
	h := sha256.Sum256(data)
	return leBytesToInt(h[:])
}

// Sign produces a deterministic EdDSA signature over msg under sk.
func Sign(sk [32]byte, msg []byte) Signature {
	s, prefix := DeriveScalar(sk)
	a := babyjubjub.ScalarMul(babyjubjub.Base(), s)

	nonceInput := make([]byte, 0, 32+len(msg))
	nonceInput = append(nonceInput, prefix[:]...)
	nonceInput = append(nonceInput, msg...)
	nonceHash := sha512.Sum512(nonceInput)
	r := leBytesToInt(nonceHash[:])
	r.Mod(r, babyjubjub.Order)

	R := babyjubjub.ScalarMul(babyjubjub.Base(), r)

	k := challenge(R, a, msg)

	// Verify checks S*B against R + (8k)*A, so S must fold in that same
	// factor of 8 here: S = r + k*(8s) mod Order, not r + k*s.
	eightS := new(big.Int).Lsh(s, 3)
	sVal := new(big.Int).Mul(k, eightS)
	sVal.Add(sVal, r)
	sVal.Mod(sVal, babyjubjub.Order)

	return Signature{R: R, S: field.New(sVal)}
}

// Verify reports whether sig is a valid EdDSA signature over msg under
// pub. It never panics and never returns an error; any malformed input
// that reaches this point (pub and sig.R already decoded as curve
// points) simply fails the equation check.
func Verify(pub *babyjubjub.Point, msg []byte, sig Signature) bool {
	k := challenge(sig.R, pub, msg)

	lhs := babyjubjub.ScalarMul(babyjubjub.Base(), sig.S.Int())

	eightK := new(big.Int).Lsh(k, 3)
	rhsRight := babyjubjub.ScalarMul(pub, eightK)
	rhs := babyjubjub.Add(sig.R, rhsRight)

	return lhs.Equal(rhs)
}
