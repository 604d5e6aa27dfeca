package field

import (
	"math/big"
	"testing"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// The BN254 scalar field is bit-for-bit the field this package implements,
// so gnark-crypto's production fr.Element serves as an independent oracle
// for add/mul/inverse without this package depending on it for anything
// but tests.
func TestArithmeticMatchesGnarkCrypto(t *testing.T) {
	inputs := []int64{0, 1, 2, 3, 17, 12345, 999999937}

	toGnark := func(v int64) bn254fr.Element {
		var e bn254fr.Element
		e.SetInt64(v)
		return e
	}

	for _, a := range inputs {
		for _, b := range inputs {
			ours := NewFromInt64(a).Add(NewFromInt64(b))
			ga, gb := toGnark(a), toGnark(b)
			var gsum bn254fr.Element
			gsum.Add(&ga, &gb)
			if ours.Int().Cmp(gsum.BigInt(new(big.Int))) != 0 {
				t.Fatalf("add(%d,%d): ours=%s gnark=%s", a, b, ours.Int(), gsum.BigInt(new(big.Int)))
			}

			oursMul := NewFromInt64(a).Mul(NewFromInt64(b))
			var gmul bn254fr.Element
			gmul.Mul(&ga, &gb)
			if oursMul.Int().Cmp(gmul.BigInt(new(big.Int))) != 0 {
				t.Fatalf("mul(%d,%d): ours=%s gnark=%s", a, b, oursMul.Int(), gmul.BigInt(new(big.Int)))
			}
		}
	}
}

func TestInverseMatchesGnarkCrypto(t *testing.T) {
	for _, v := range []int64{1, 2, 3, 17, 12345} {
		ours := NewFromInt64(v).Inverse()

		var g bn254fr.Element
		g.SetInt64(v)
		g.Inverse(&g)

		if ours.Int().Cmp(g.BigInt(new(big.Int))) != 0 {
			t.Errorf("inverse(%d): ours=%s gnark=%s", v, ours.Int(), g.BigInt(new(big.Int)))
		}
	}
}
