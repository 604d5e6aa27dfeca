package field

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Modulus is the BN254 scalar field order, and the base field of Baby Jubjub.
var Modulus, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// ErrNotASquare is returned by Sqrt when the input has no square root
// modulo Modulus.
var ErrNotASquare = errors.New("field: value is not a quadratic residue")

// ByteLen is the fixed-width encoding length used by Bytes/SetBytes.
const ByteLen = 32

// Element is a canonical residue in [0, Modulus). The zero value is not a
// valid Element; use New or Zero.
type Element struct {
	v *big.Int
}

// New reduces n modulo Modulus and returns the canonical Element.
func New(n *big.Int) *Element {
	v := new(big.Int).Mod(n, Modulus)
	return &Element{v: v}
}

// NewFromInt64 is a convenience constructor for small literal values.
func NewFromInt64(n int64) *Element {
	return New(big.NewInt(n))
}

// Zero returns the additive identity.
func Zero() *Element {
	return &Element{v: new(big.Int)}
}

// One returns the multiplicative identity.
func One() *Element {
	return NewFromInt64(1)
}

// Int returns the canonical integer value. The caller must not mutate it.
func (e *Element) Int() *big.Int {
	return e.v
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Equal reports whether e and o represent the same residue.
func (e *Element) Equal(o *Element) bool {
	return e.v.Cmp(o.v) == 0
}

// Cmp compares the canonical integer representatives of e and o.
func (e *Element) Cmp(o *Element) int {
	return e.v.Cmp(o.v)
}

// Add returns e + o mod Modulus.
func (e *Element) Add(o *Element) *Element {
	return New(new(big.Int).Add(e.v, o.v))
}

// Sub returns e - o mod Modulus. The intermediate is shifted by Modulus
// first so the subtraction never goes negative before reduction.
func (e *Element) Sub(o *Element) *Element {
	t := new(big.Int).Add(e.v, Modulus)
	t.Sub(t, o.v)
	return New(t)
}

// Neg returns -e mod Modulus.
func (e *Element) Neg() *Element {
	return Zero().Sub(e)
}

// Mul returns e * o mod Modulus.
func (e *Element) Mul(o *Element) *Element {
	return New(new(big.Int).Mul(e.v, o.v))
}

// Inverse returns the multiplicative inverse of e via the extended
// Euclidean algorithm on (Modulus, e). By policy, Inverse(0) returns 0
// rather than an error; callers that need e != 0 must check IsZero first.
func (e *Element) Inverse() *Element {
	if e.IsZero() {
		return Zero()
	}
	// Modulus*x + e*y = 1, so y is the inverse of e.
	g := new(big.Int)
	y := new(big.Int)
	gcdExtended(Modulus, e.v, g, new(big.Int), y)
	if y.Sign() < 0 {
		y.Add(y, Modulus)
	}
	return New(y)
}

// gcdExtended computes gcd(a, b) and Bezout coefficients x, y such that
// a*x + b*y = gcd(a, b).
func gcdExtended(a, b, gcd, x, y *big.Int) {
	if b.Sign() == 0 {
		gcd.Set(a)
		x.SetInt64(1)
		y.SetInt64(0)
		return
	}
	x1 := new(big.Int)
	y1 := new(big.Int)
	q := new(big.Int)
	r := new(big.Int)
	q.DivMod(a, b, r)
	gcdExtended(b, r, gcd, x1, y1)
	// x = y1, y = x1 - q*y1
	x.Set(y1)
	y.Sub(x1, new(big.Int).Mul(q, y1))
}

// Div returns e / o mod Modulus, computed as e * o.Inverse().
func (e *Element) Div(o *Element) *Element {
	return e.Mul(o.Inverse())
}

// Bytes encodes e as 32 little-endian bytes, zero-padded on the high end.
func (e *Element) Bytes() [ByteLen]byte {
	var out [ByteLen]byte
	be := e.v.Bytes()
	for i := 0; i < len(be) && i < ByteLen; i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}

// SetBytes decodes 32 little-endian bytes into a canonical Element,
// reducing modulo Modulus. It accepts any 32 bytes; callers that require
// a canonical (already-reduced) encoding must check that independently.
func SetBytes(b []byte) *Element {
	le := make([]byte, len(b))
	for i, c := range b {
		le[len(b)-1-i] = c
	}
	return New(new(big.Int).SetBytes(le))
}

// BigEndianBytes returns e as big-endian bytes, right-justified to 32
// bytes. This encoding is used only for hash preimages and display; it is
// not interchangeable with Bytes.
func (e *Element) BigEndianBytes() [ByteLen]byte {
	var out [ByteLen]byte
	be := e.v.Bytes()
	copy(out[ByteLen-len(be):], be)
	return out
}

// Random draws a uniformly random Element in [lo, hi) using a
// cryptographic random source.
func Random(lo, hi *big.Int) (*Element, error) {
	span := new(big.Int).Sub(hi, lo)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return New(n.Add(n, lo)), nil
}

// legendreSymbol returns 1, -1 (as Modulus-1), or 0 for a^((p-1)/2) mod p.
func legendreSymbol(a *big.Int) *big.Int {
	exp := new(big.Int).Sub(Modulus, big.NewInt(1))
	exp.Rsh(exp, 1)
	return new(big.Int).Exp(a, exp, Modulus)
}

// Sqrt computes a square root of e via Tonelli-Shanks. It fails with
// ErrNotASquare when e is zero or not a quadratic residue.
func (e *Element) Sqrt() (*Element, error) {
	if e.IsZero() {
		return nil, ErrNotASquare
	}
	ls := legendreSymbol(e.v)
	if ls.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotASquare
	}

	// Factor Modulus-1 = s * 2^r, s odd.
	s := new(big.Int).Sub(Modulus, big.NewInt(1))
	r := 0
	for s.Bit(0) == 0 {
		s.Rsh(s, 1)
		r++
	}

	// Find a quadratic non-residue n, incrementing from 2.
	n := big.NewInt(2)
	negOne := new(big.Int).Sub(Modulus, big.NewInt(1))
	for legendreSymbol(n).Cmp(negOne) != 0 {
		n.Add(n, big.NewInt(1))
	}

	exp := new(big.Int).Add(s, big.NewInt(1))
	exp.Rsh(exp, 1)
	y := new(big.Int).Exp(e.v, exp, Modulus)
	b := new(big.Int).Exp(e.v, s, Modulus)
	g := new(big.Int).Exp(n, s, Modulus)
	rr := r

	one := big.NewInt(1)
	for {
		// Find smallest m >= 0 such that b^(2^m) == 1.
		m := 0
		t := new(big.Int).Set(b)
		for t.Cmp(one) != 0 {
			t.Mul(t, t)
			t.Mod(t, Modulus)
			m++
		}
		if m == 0 {
			return New(y), nil
		}
		texp := new(big.Int).Lsh(one, uint(rr-m-1))
		t2 := new(big.Int).Exp(g, texp, Modulus)
		gexp := new(big.Int).Lsh(one, uint(rr-m))
		g = new(big.Int).Exp(g, gexp, Modulus)
		y = new(big.Int).Mul(y, t2)
		y.Mod(y, Modulus)
		b = new(big.Int).Mul(b, g)
		b.Mod(b, Modulus)
		rr = m
	}
}
