package babyjubjub

import (
	"errors"
	"math/big"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/field"
)

// ErrInvalidEncoding is returned by Decode when the input is not 32 bytes
// long or when the x^2 recovered from the encoded y-coordinate has no
// nonzero square root. The latter includes y = 1 and y = -1 (x = 0), so
// the identity does not decode.
var ErrInvalidEncoding = errors.New("babyjubjub: invalid point encoding")

// A and D are the twisted Edwards curve coefficients.
var (
	A = field.NewFromInt64(168700)
	D = field.NewFromInt64(168696)
)

// Order is l, the prime order of the subgroup generated by Base. EdDSA
// scalars live in [0, Order).
var Order, _ = new(big.Int).SetString(
	"2736030358979909402780800718157159386076813972158567259200215660948447373041", 10)

// FullOrder is the order of the whole curve group, 8*Order. It documents
// the cofactor relationship used throughout signing and verification but
// is not otherwise used for arithmetic.
var FullOrder = new(big.Int).Mul(big.NewInt(8), Order)

// Point is an affine point on the curve, or the identity.
type Point struct {
	X, Y *field.Element
}

// Identity returns the neutral element (0, 1).
func Identity() *Point {
	return &Point{X: field.Zero(), Y: field.One()}
}

// Base is the standard generator of the prime-order subgroup.
func Base() *Point {
	x, _ := new(big.Int).SetString(
		"5299619240641551281634865583518297030282874472190772894086521144482721001553", 10)
	y, _ := new(big.Int).SetString(
		"16950150798460657717958625567821834550301663161624707787222815936182638968203", 10)
	return &Point{X: field.New(x), Y: field.New(y)}
}

// Equal reports whether p and o are the same affine point.
func (p *Point) Equal(o *Point) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// Add computes the unified twisted Edwards addition of p and q. The
// formula is complete for the Baby Jubjub parameters: it handles p == q,
// p == -q, and either operand being the identity without special-casing.
func Add(p, q *Point) *Point {
	x1, y1 := p.X, p.Y
	x2, y2 := q.X, q.Y

	t := D.Mul(x1).Mul(x2).Mul(y1).Mul(y2)
	one := field.One()

	xNum := x1.Mul(y2).Add(y1.Mul(x2))
	xDen := one.Add(t)
	x3 := xNum.Div(xDen)

	yNum := y1.Mul(y2).Sub(A.Mul(x1).Mul(x2))
	yDen := one.Sub(t)
	y3 := yNum.Div(yDen)

	return &Point{X: x3, Y: y3}
}

// ScalarMul computes k*p using a width-4 windowed non-adjacent form. k
// must be non-negative; EdDSA scalars are already reduced into [0, l).
func ScalarMul(p *Point, k *big.Int) *Point {
	if k.Sign() == 0 {
		return Identity()
	}

	naf := windowedNAF(k)

	// Precompute odd multiples {1p, 3p, 5p, ..., 15p} using one doubling.
	var table [8]*Point
	table[0] = p
	twoP := Add(p, p)
	for i := 1; i < 8; i++ {
		table[i] = Add(table[i-1], twoP)
	}

	acc := Identity()
	for i := len(naf) - 1; i >= 0; i-- {
		acc = Add(acc, acc)
		d := naf[i]
		if d == 0 {
			continue
		}
		acc = Add(acc, table[d>>1])
	}
	return acc
}

// windowedNAF produces the width-4 windowed recoding of k, least
// significant digit first: each digit is 0 or odd in [1, 15], selected as
// d = k mod 16 whenever k is odd, after which d is subtracted off before
// halving.
func windowedNAF(k *big.Int) []int {
	k = new(big.Int).Set(k)
	var digits []int
	sixteen := big.NewInt(16)

	for k.Sign() > 0 {
		if k.Bit(0) == 1 {
			d := new(big.Int).Mod(k, sixteen)
			digits = append(digits, int(d.Int64()))
			k.Sub(k, d)
		} else {
			digits = append(digits, 0)
		}
		k.Rsh(k, 1)
	}
	return digits
}

// Encode compresses p into 32 bytes: little-endian y, with the sign of x
// (x > p/2) stored in the top bit of the last byte.
func Encode(p *Point) [32]byte {
	out := p.Y.Bytes()
	half := new(big.Int).Rsh(field.Modulus, 1)
	if p.X.Int().Cmp(half) > 0 {
		out[31] |= 0x80
	}
	return out
}

// Decode decompresses 32 bytes into a Point, recovering x from the curve
// equation and selecting the sign indicated by the top bit of byte 31.
func Decode(b []byte) (*Point, error) {
	if len(b) != 32 {
		return nil, ErrInvalidEncoding
	}
	buf := make([]byte, 32)
	copy(buf, b)
	signSet := buf[31]&0x80 != 0
	buf[31] &= 0x7F

	y := field.SetBytes(buf)
	y2 := y.Mul(y)
	one := field.One()

	num := one.Sub(y2)
	den := A.Sub(D.Mul(y2))
	x2 := num.Div(den)

	x, err := x2.Sqrt()
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	half := new(big.Int).Rsh(field.Modulus, 1)
	xIsHigh := x.Int().Cmp(half) > 0
	if xIsHigh != signSet {
		x = x.Neg()
	}

	return &Point{X: x, Y: y}, nil
}
