package mimc7

import (
	"math/big"
	"testing"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/field"
)

func hexToBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("invalid hex literal: %s", s)
	}
	return n
}

func TestRoundConstantOne(t *testing.T) {
	cts := RoundConstants(91)
	want := hexToBig(t, "21F808158DA8EC947458FC528A11979536679BD0E4C4DCD6D863A80BF60B23C8")
	if cts[1].Int().Cmp(want) != 0 {
		t.Fatalf("cts[1] = %x, want %x", cts[1].Int(), want)
	}
	if !cts[0].IsZero() {
		t.Fatalf("cts[0] = %s, want 0", cts[0].Int())
	}
}

func TestHashConcrete(t *testing.T) {
	m := NewDefault()
	got := m.Hash(field.NewFromInt64(1), field.NewFromInt64(2))
	want := hexToBig(t, "18ADE4CF70372A00640612BE58DF799D651C64CC78E4AA21DFE0B0193F72AF4C")
	if got.Int().Cmp(want) != 0 {
		t.Fatalf("Hash(1,2) = %x, want %x", got.Int(), want)
	}
}

func TestMultiHashConcrete(t *testing.T) {
	m := NewDefault()

	cases := []struct {
		arr  []int64
		want string
	}{
		{[]int64{1, 2, 3}, "20F519F4D47AA89678AA3B4F2FE8433A60B6B83AD9EADE8019A73A749BB9F2C0"},
		{[]int64{12, 45, 78, 41}, "184CB92F873F46CF2A61524C749EEDDBE16968A50605E38E12964363C49893EC"},
	}
	for _, c := range cases {
		elems := make([]*field.Element, len(c.arr))
		for i, v := range c.arr {
			elems[i] = field.NewFromInt64(v)
		}
		got := m.MultiHash(elems, field.Zero())
		want := hexToBig(t, c.want)
		if got.Int().Cmp(want) != 0 {
			t.Errorf("MultiHash(%v) = %x, want %x", c.arr, got.Int(), want)
		}
	}
}

func TestMimc7CachesConstantsPerConfiguration(t *testing.T) {
	a := New(WithNRounds(91))
	b := New(WithNRounds(91))
	if !a.Hash(field.NewFromInt64(7), field.NewFromInt64(9)).Equal(b.Hash(field.NewFromInt64(7), field.NewFromInt64(9))) {
		t.Fatal("two Mimc7 instances with the same round count disagree")
	}
}
