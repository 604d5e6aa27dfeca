package mimc7

import (
	"math/big"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/field"
	"golang.org/x/crypto/sha3"
)

// Seed is the string hashed to bootstrap the round-constant sequence.
const Seed = "delphinus"

// DefaultRounds is the conventional MiMC-7 round count for this field.
const DefaultRounds = 91

// RoundConstants generates the nRounds round constants for MiMC-7.
// cts[0] is always 0; cts[i] for i>0 is Keccak-256 applied i+1 times to
// the seed, reduced modulo the field modulus.
func RoundConstants(nRounds int) []*field.Element {
	cts := make([]*field.Element, nRounds)
	cts[0] = field.Zero()

	c := keccak256([]byte(Seed))
	for i := 1; i < nRounds; i++ {
		c = keccak256(c)
		n := new(big.Int).SetBytes(c)
		cts[i] = field.New(n)
	}
	return cts
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Mimc7 caches a round-constant table for a fixed round count. Build one
// per configuration and reuse it; the table is read-only after
// construction.
type Mimc7 struct {
	nRounds int
	cts     []*field.Element
}

// Option configures a Mimc7 instance built via New.
type Option func(*config)

type config struct {
	nRounds int
}

// WithNRounds overrides the round count used by New. Without this
// option, New uses DefaultRounds.
func WithNRounds(n int) Option {
	return func(c *config) {
		c.nRounds = n
	}
}

// New builds a Mimc7 instance, applying opts over the DefaultRounds
// baseline. Mirrors the Signer builder in pkg/eddsa: call New() for the
// default configuration, or New(WithNRounds(n)) to override it.
func New(opts ...Option) *Mimc7 {
	c := config{nRounds: DefaultRounds}
	for _, opt := range opts {
		opt(&c)
	}
	return &Mimc7{nRounds: c.nRounds, cts: RoundConstants(c.nRounds)}
}

// NewDefault builds a Mimc7 instance with DefaultRounds rounds.
func NewDefault() *Mimc7 {
	return New()
}

// Hash computes MiMC-7(x, k): round 0 seeds t = x + k with no constant
// addition; each round i>0 mixes in k and cts[i]; each round's output is
// t^7 computed as ((t^2)^2 * t^2) * t. The final result adds k once more.
func (m *Mimc7) Hash(x, k *field.Element) *field.Element {
	var h *field.Element
	for i := 0; i < m.nRounds; i++ {
		var t *field.Element
		if i == 0 {
			t = x.Add(k)
		} else {
			t = h.Add(k).Add(m.cts[i])
		}
		t2 := t.Mul(t)
		t4 := t2.Mul(t2)
		t6 := t4.Mul(t2)
		h = t6.Mul(t)
	}
	return h.Add(k)
}

// MultiHash folds arr into a single field element using key as the
// initial sponge state: r starts at key, and each element updates
// r = r + arr[i] + Hash(arr[i], r).
func (m *Mimc7) MultiHash(arr []*field.Element, key *field.Element) *field.Element {
	r := key
	for _, a := range arr {
		h := m.Hash(a, r)
		r = r.Add(a).Add(h)
	}
	return r
}
