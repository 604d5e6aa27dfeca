package eddsa

import (
	"crypto/rand"
	"io"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/babyjubjub"
)

func publicKeyBytes(p *babyjubjub.Point) [32]byte {
	return babyjubjub.Encode(p)
}

func decodePublicKey(b []byte) (*babyjubjub.Point, error) {
	return babyjubjub.Decode(b)
}

// GenerateKey draws a fresh 32-byte secret key from rnd. If rnd is nil,
// crypto/rand.Reader is used. This is the only entry point in the
// package that touches an external randomness source; everything else
// is pure.
func GenerateKey(rnd io.Reader) ([32]byte, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	var sk [32]byte
	if _, err := io.ReadFull(rnd, sk[:]); err != nil {
		return [32]byte{}, err
	}
	return sk, nil
}
