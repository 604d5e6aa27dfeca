package eddsa

import "crypto/sha256"

// SignBlob signs msg under sk and returns the 64-byte wire encoding of
// the signature. It never fails: sk is always a well-formed 32-byte
// secret.
func SignBlob(msg []byte, sk [32]byte) [64]byte {
	return Sign(sk, msg).Encode()
}

// VerifyBlob decodes sig and pub and checks the signature. It returns
// false for any failure: a malformed signature, a malformed public key,
// or a failing verification equation.
func VerifyBlob(msg, sig []byte, pub []byte) bool {
	decodedSig, err := DecodeSignature(sig)
	if err != nil {
		return false
	}
	decodedPub, err := decodePublicKey(pub)
	if err != nil {
		return false
	}
	return Verify(decodedPub, msg, decodedSig)
}

// GetPublicKeyBlob derives the 32-byte compressed public key from sk.
func GetPublicKeyBlob(sk [32]byte) [32]byte {
	return publicKeyBytes(PublicKey(sk))
}

// DerivePrivateKey derives a 32-byte secret deterministically from a seed
// and salt as SHA-256(seed || salt). It is a convenience for offline or
// test environments that don't have a direct RNG handle; it is not a KDF
// with independent security properties beyond what SHA-256 provides.
func DerivePrivateKey(seed, salt []byte) [32]byte {
	data := make([]byte, 0, len(seed)+len(salt))
	data = append(data, seed...)
	data = append(data, salt...)
	return sha256.Sum256(data)
}
