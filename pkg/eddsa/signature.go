package eddsa

import (
	"errors"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/babyjubjub"
	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/field"
)

// ErrInvalidSignatureLength is returned when decoding a blob shorter or
// longer than 64 bytes.
var ErrInvalidSignatureLength = errors.New("eddsa: signature must be 64 bytes")

// Signature is an EdDSA signature (R, S): a curve point and a scalar in
// [0, babyjubjub.Order), field-encoded even though S is semantically a
// scalar mod the subgroup order.
type Signature struct {
	R *babyjubjub.Point
	S *field.Element
}

// Encode serializes a signature as encode(R) || encode_field(S), 64 bytes.
func (s Signature) Encode() [64]byte {
	var out [64]byte
	r := babyjubjub.Encode(s.R)
	sb := s.S.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], sb[:])
	return out
}

// DecodeSignature parses a 64-byte blob into a Signature. It does not
// validate that R lies on the curve's prime-order subgroup beyond what
// babyjubjub.Decode already checks (R is on the curve).
func DecodeSignature(b []byte) (Signature, error) {
	if len(b) != 64 {
		return Signature{}, ErrInvalidSignatureLength
	}
	r, err := babyjubjub.Decode(b[:32])
	if err != nil {
		return Signature{}, err
	}
	s := field.SetBytes(b[32:])
	return Signature{R: r, S: s}, nil
}
