package sike

import "math/bits"

// uint128 represents a 128-bit unsigned integer for field arithmetic
type uint128 struct {
	high, low uint64
}

// mulU64ToU128 multiplies two uint64 values and returns a uint128
func mulU64ToU128(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{high: hi, low: lo}
}

// addMulU128 computes c + a*b + d and returns the result as uint128.
// It cannot overflow: (2^64-1)^2 + 2(2^64-1) = 2^128 - 1.
func addMulU128(c, a, b, d uint64) uint128 {
	u := mulU64ToU128(a, b)
	lo, carry := bits.Add64(u.low, c, 0)
	hi := u.high + carry
	lo, carry = bits.Add64(lo, d, 0)
	hi += carry
	return uint128{high: hi, low: lo}
}

// mul multiplies two field elements: r = a * b * R^-1 mod p.
// This is coarsely integrated operand scanning Montgomery multiplication.
// Since p = -1 mod 2^64, the per-word reduction factor -p^-1 mod 2^64 is 1
// and the quotient digit is simply the low accumulator word.
func (r *FieldElement) mul(a, b *FieldElement) {
	var t [fieldLimbs + 2]uint64

	for i := 0; i < fieldLimbs; i++ {
		// t += a * b[i]
		var c uint64
		for j := 0; j < fieldLimbs; j++ {
			u := addMulU128(t[j], a.n[j], b.n[i], c)
			t[j], c = u.low, u.high
		}
		var carry uint64
		t[fieldLimbs], carry = bits.Add64(t[fieldLimbs], c, 0)
		t[fieldLimbs+1] = carry

		// t = (t + m*p) / 2^64 with m = t[0]
		m := t[0]
		u := addMulU128(t[0], m, fieldModulus[0], 0)
		c = u.high
		for j := 1; j < fieldLimbs; j++ {
			u = addMulU128(t[j], m, fieldModulus[j], c)
			t[j-1], c = u.low, u.high
		}
		t[fieldLimbs-1], carry = bits.Add64(t[fieldLimbs], c, 0)
		t[fieldLimbs] = t[fieldLimbs+1] + carry
	}

	var out [fieldLimbs]uint64
	copy(out[:], t[:fieldLimbs])
	r.reduceOnce(&out, t[fieldLimbs])
}

// sqr squares a field element: r = a^2
func (r *FieldElement) sqr(a *FieldElement) {
	r.mul(a, a)
}

// exp sets r = a^e for a public exponent e given as little-endian limbs.
// A fixed 4-bit window is used; the sequence of operations depends on e only.
func (r *FieldElement) exp(a *FieldElement, e *[fieldLimbs]uint64) {
	var table [16]FieldElement
	table[0] = FieldElementOne
	table[1] = *a
	for i := 2; i < 16; i++ {
		table[i].mul(&table[i-1], a)
	}

	acc := FieldElementOne
	for i := fieldLimbs*64/4 - 1; i >= 0; i-- {
		acc.sqr(&acc)
		acc.sqr(&acc)
		acc.sqr(&acc)
		acc.sqr(&acc)
		w := (e[i/16] >> (4 * uint(i%16))) & 0xF
		acc.mul(&acc, &table[w])
	}
	*r = acc
}

// inv computes the modular inverse of a field element using Fermat's little theorem.
// The inverse of zero is zero.
func (r *FieldElement) inv(a *FieldElement) {
	r.exp(a, &expPMinus2)
}

// legendre returns a^((p-1)/2), which is one for non-zero squares, zero for
// zero and -1 otherwise.
func (r *FieldElement) legendre(a *FieldElement) {
	r.exp(a, &expPMinus1Div2)
}

// isSquare checks if a field element is a quadratic residue (zero counts as one)
func (a *FieldElement) isSquare() bool {
	var l FieldElement
	l.legendre(a)
	return l.equal(&FieldElementOne) || a.isZero()
}

// sqrt computes a square root of a field element if it exists.
// Since p = 3 mod 4 the candidate is a^((p+1)/4); the result is checked by
// squaring and the function reports whether a was a square.
func (r *FieldElement) sqrt(a *FieldElement) bool {
	var s, check FieldElement
	s.exp(a, &expPPlus1Div4)
	check.sqr(&s)
	*r = s
	return check.equal(a)
}
