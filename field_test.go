package sike

import (
	"bytes"
	"errors"
	"testing"
)

// testRand returns a reproducible stream for test vectors
func testRand(label string) *DeterministicReader {
	return NewDeterministicReader([]byte("sike test " + label))
}

// randFieldElement draws an element below 2^433 < p
func randFieldElement(t *testing.T, rng *DeterministicReader) FieldElement {
	t.Helper()
	var b [FieldBytes]byte
	rng.Read(b[:])
	b[FieldBytes-1] &= 0x01
	var r FieldElement
	if err := r.setB55(b[:]); err != nil {
		t.Fatalf("setB55: %v", err)
	}
	return r
}

func randFp2(t *testing.T, rng *DeterministicReader) Fp2 {
	t.Helper()
	return Fp2{A: randFieldElement(t, rng), B: randFieldElement(t, rng)}
}

func TestFieldElementBasics(t *testing.T) {
	var zero FieldElement
	zero.setInt(0)
	if !zero.isZero() {
		t.Error("Zero field element should be zero")
	}

	var one FieldElement
	one.setInt(1)
	if one.isZero() {
		t.Error("One field element should not be zero")
	}
	if !one.equal(&FieldElementOne) {
		t.Error("setInt(1) should equal FieldElementOne")
	}

	var two, sum FieldElement
	two.setInt(2)
	sum.add(&one, &one)
	if !sum.equal(&two) {
		t.Error("1 + 1 should equal 2")
	}
	sum.sub(&sum, &one)
	if !sum.equal(&one) {
		t.Error("2 - 1 should equal 1")
	}

	var minusOne, check FieldElement
	minusOne.negate(&one)
	check.add(&minusOne, &one)
	if !check.isZero() {
		t.Error("-1 + 1 should be zero")
	}
}

func TestFieldElementSetB55(t *testing.T) {
	var pMinusOne, pBytes [FieldBytes]byte
	for i := 0; i < FieldBytes; i++ {
		pBytes[i] = byte(fieldModulus[i/8] >> (8 * uint(i%8)))
	}
	copy(pMinusOne[:], pBytes[:])
	pMinusOne[0]--

	testCases := []struct {
		name    string
		bytes   []byte
		wantErr error
	}{
		{name: "zero", bytes: make([]byte, FieldBytes)},
		{name: "one", bytes: append([]byte{1}, make([]byte, FieldBytes-1)...)},
		{name: "p_minus_one", bytes: pMinusOne[:]},
		{name: "p", bytes: pBytes[:], wantErr: ErrNonCanonical},
		{name: "all_ones", bytes: bytes.Repeat([]byte{0xFF}, FieldBytes), wantErr: ErrNonCanonical},
		{name: "short", bytes: make([]byte, FieldBytes-1), wantErr: ErrInvalidLength},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var fe FieldElement
			err := fe.setB55(tc.bytes)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("setB55 error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("setB55: %v", err)
			}
			var out [FieldBytes]byte
			fe.getB55(out[:])
			if !bytes.Equal(out[:], tc.bytes) {
				t.Errorf("round trip mismatch: got %x, want %x", out, tc.bytes)
			}
		})
	}
}

func TestFieldElementMulInv(t *testing.T) {
	rng := testRand("field mul")
	for i := 0; i < 16; i++ {
		a := randFieldElement(t, rng)
		b := randFieldElement(t, rng)

		var ab, ba FieldElement
		ab.mul(&a, &b)
		ba.mul(&b, &a)
		if !ab.equal(&ba) {
			t.Fatal("multiplication should commute")
		}

		var sq, aa FieldElement
		sq.sqr(&a)
		aa.mul(&a, &a)
		if !sq.equal(&aa) {
			t.Fatal("sqr should equal mul by itself")
		}

		if a.isZero() {
			continue
		}
		var inv, one FieldElement
		inv.inv(&a)
		one.mul(&a, &inv)
		if !one.equal(&FieldElementOne) {
			t.Fatal("a * a^-1 should be one")
		}
	}
}

func TestFieldElementHalf(t *testing.T) {
	rng := testRand("field half")
	for i := 0; i < 16; i++ {
		a := randFieldElement(t, rng)
		var h, back FieldElement
		h.half(&a)
		back.add(&h, &h)
		if !back.equal(&a) {
			t.Fatal("2 * (a/2) should equal a")
		}
	}
}

func TestFieldElementSqrt(t *testing.T) {
	rng := testRand("field sqrt")
	for i := 0; i < 16; i++ {
		a := randFieldElement(t, rng)
		var sq, root, check FieldElement
		sq.sqr(&a)
		if !sq.isSquare() {
			t.Fatal("a^2 should be a square")
		}
		if !root.sqrt(&sq) {
			t.Fatal("sqrt of a square should succeed")
		}
		check.sqr(&root)
		if !check.equal(&sq) {
			t.Fatal("sqrt(a^2)^2 should equal a^2")
		}
	}

	// p = 3 mod 4, so -1 is a non-residue
	var minusOne, root FieldElement
	minusOne.negate(&FieldElementOne)
	if minusOne.isSquare() {
		t.Error("-1 should not be a square")
	}
	if root.sqrt(&minusOne) {
		t.Error("sqrt(-1) should fail")
	}
}

func TestFieldElementCmovCswap(t *testing.T) {
	rng := testRand("field cmov")
	a := randFieldElement(t, rng)
	b := randFieldElement(t, rng)

	r := a
	r.cmov(&b, 0)
	if !r.equal(&a) {
		t.Error("cmov with flag 0 should keep r")
	}
	r.cmov(&b, 1)
	if !r.equal(&b) {
		t.Error("cmov with flag 1 should take a")
	}

	x, y := a, b
	x.cswap(&y, 0)
	if !x.equal(&a) || !y.equal(&b) {
		t.Error("cswap with flag 0 should not swap")
	}
	x.cswap(&y, 1)
	if !x.equal(&b) || !y.equal(&a) {
		t.Error("cswap with flag 1 should swap")
	}
}

func TestFp2Arithmetic(t *testing.T) {
	rng := testRand("fp2")
	for i := 0; i < 16; i++ {
		a := randFp2(t, rng)
		b := randFp2(t, rng)

		var sq, aa Fp2
		sq.sqr(&a)
		aa.mul(&a, &a)
		if !sq.equal(&aa) {
			t.Fatal("sqr should equal mul by itself")
		}

		// (a + b) - b = a
		var s Fp2
		s.add(&a, &b)
		s.sub(&s, &b)
		if !s.equal(&a) {
			t.Fatal("(a + b) - b should equal a")
		}

		// a * conj(a) is the norm
		var c, n Fp2
		c.conj(&a)
		c.mul(&c, &a)
		n.A = a.norm()
		if !c.equal(&n) {
			t.Fatal("a * conj(a) should equal the norm")
		}

		var inv, one Fp2
		inv.inv(&a)
		one.mul(&inv, &a)
		if !one.equal(&Fp2One) {
			t.Fatal("a * a^-1 should be one")
		}

		var h Fp2
		h.half(&a)
		h.add(&h, &h)
		if !h.equal(&a) {
			t.Fatal("2 * (a/2) should equal a")
		}
	}

	// i^2 = -1
	i := Fp2{B: FieldElementOne}
	var i2, minusOne Fp2
	i2.sqr(&i)
	minusOne.negate(&Fp2One)
	if !i2.equal(&minusOne) {
		t.Error("i^2 should be -1")
	}
}

func TestFp2Bytes(t *testing.T) {
	rng := testRand("fp2 bytes")
	a := randFp2(t, rng)
	enc := a.Bytes()
	if len(enc) != Fp2Bytes {
		t.Fatalf("encoding is %d bytes, want %d", len(enc), Fp2Bytes)
	}
	var b Fp2
	if err := b.setBytes(enc); err != nil {
		t.Fatalf("setBytes: %v", err)
	}
	if !a.equal(&b) {
		t.Error("round trip mismatch")
	}

	// the real part comes first
	var one Fp2
	one.setInt(1)
	enc = one.Bytes()
	if enc[0] != 1 || enc[FieldBytes] != 0 {
		t.Errorf("unexpected encoding of one: %x", enc)
	}

	bad := make([]byte, Fp2Bytes)
	for i := FieldBytes; i < Fp2Bytes; i++ {
		bad[i] = 0xFF
	}
	if err := b.setBytes(bad); !errors.Is(err, ErrNonCanonical) {
		t.Errorf("non-canonical imaginary part: got %v", err)
	}
}

func TestFp2Sqrt(t *testing.T) {
	rng := testRand("fp2 sqrt")
	for i := 0; i < 16; i++ {
		a := randFp2(t, rng)
		var sq, root, check Fp2
		sq.sqr(&a)
		if !sq.IsSquare() {
			t.Fatal("a^2 should be a square")
		}
		if !root.SqrtVar(&sq) {
			t.Fatal("SqrtVar of a square should succeed")
		}
		check.sqr(&root)
		if !check.equal(&sq) {
			t.Fatal("SqrtVar(a^2)^2 should equal a^2")
		}
	}

	// every element of GF(p) is a square in GF(p^2)
	var minusThree, root, check Fp2
	minusThree.setInt(3)
	minusThree.negate(&minusThree)
	if !root.SqrtVar(&minusThree) {
		t.Fatal("-3 should have a square root in GF(p^2)")
	}
	check.sqr(&root)
	if !check.equal(&minusThree) {
		t.Error("sqrt(-3)^2 should equal -3")
	}

	// U = 2i is a square
	u := Fp2{B: FieldElementOne}
	u.add(&u, &u)
	if !u.IsSquare() {
		t.Error("2i should be a square")
	}
}

func TestFp2Cyclotomic(t *testing.T) {
	rng := testRand("fp2 cyclo")
	for i := 0; i < 8; i++ {
		a := randFp2(t, rng)
		// conj(a)/a has norm one
		var u, inv Fp2
		u.conj(&a)
		inv.inv(&a)
		u.mul(&u, &inv)
		if n := u.norm(); !n.equal(&FieldElementOne) {
			t.Fatal("conj(a)/a should have norm one")
		}

		var c, want Fp2
		c.cycloSqr(&u)
		want.sqr(&u)
		if !c.equal(&want) {
			t.Fatal("cycloSqr mismatch")
		}
		c.cycloCube(&u)
		want.mul(&want, &u)
		if !c.equal(&want) {
			t.Fatal("cycloCube mismatch")
		}

		// u^(3^4)
		want = u
		for k := 0; k < 4; k++ {
			var w2 Fp2
			w2.sqr(&want)
			want.mul(&w2, &want)
		}
		c.cycloPowEll(&u, 3, 4)
		if !c.equal(&want) {
			t.Fatal("cycloPowEll(3, 4) mismatch")
		}

		want = u
		for k := 0; k < 5; k++ {
			want.sqr(&want)
		}
		c.cycloPowEll(&u, 2, 5)
		if !c.equal(&want) {
			t.Fatal("cycloPowEll(2, 5) mismatch")
		}
	}
}
