package babyjubjub

import (
	"math/big"
	"testing"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/field"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid decimal literal: %s", s)
	}
	return n
}

func pointFromStrings(t *testing.T, x, y string) *Point {
	t.Helper()
	return &Point{X: field.New(bigFromString(t, x)), Y: field.New(bigFromString(t, y))}
}

func TestIdentityIsNeutral(t *testing.T) {
	o := Identity()
	if sum := Add(o, o); !sum.Equal(o) {
		t.Fatalf("O+O = (%s,%s), want O", sum.X.Int(), sum.Y.Int())
	}
	p := Base()
	if sum := Add(p, o); !sum.Equal(p) {
		t.Fatalf("P+O != P")
	}
}

func TestDoublingMatchesAddition(t *testing.T) {
	p := Base()
	acc := Identity()
	for i := 1; i <= 128; i++ {
		next := ScalarMul(p, big.NewInt(int64(i)))
		if !next.Equal(Add(acc, p)) {
			t.Fatalf("i=%d: i*B != (i-1)*B + B", i)
		}
		acc = next
	}
}

func TestSubgroupOrderAnnihilatesBase(t *testing.T) {
	got := ScalarMul(Base(), Order)
	if !got.Equal(Identity()) {
		t.Fatalf("l*B = (%s,%s), want O", got.X.Int(), got.Y.Int())
	}
}

func TestScalarMulConcreteVector(t *testing.T) {
	p := pointFromStrings(t,
		"17777552123799933955779906779655732241715742912184938656739573121738514868268",
		"2626589144620713026669568689430873010625803728049924121243784502389097019475")
	got := ScalarMul(p, big.NewInt(3))
	want := pointFromStrings(t,
		"19372461775513343691590086534037741906533799473648040012278229434133483800898",
		"9458658722007214007257525444427903161243386465067105737478306991484593958249")
	if !got.Equal(want) {
		t.Fatalf("3*P = (%s,%s), want (%s,%s)", got.X.Int(), got.Y.Int(), want.X.Int(), want.Y.Int())
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	for i := int64(1); i <= 20; i++ {
		p := ScalarMul(Base(), big.NewInt(i))
		enc := Encode(p)
		dec, err := Decode(enc[:])
		if err != nil {
			t.Fatalf("i=%d: decode failed: %v", i, err)
		}
		if !dec.Equal(p) {
			t.Fatalf("i=%d: decode(encode(P)) != P", i)
		}
	}
}

func TestDecodeRejectsInvalidLength(t *testing.T) {
	if _, err := Decode(make([]byte, 31)); err == nil {
		t.Fatal("expected error for short input")
	}
}
