package sike

import (
	"crypto/subtle"
	"math/bits"
	"unsafe"

	"github.com/pkg/errors"
)

// FieldElement represents an element of GF(p) for p = 2^216*3^137 - 1.
// The value is held in Montgomery form, a*R mod p with R = 2^448, as seven
// little-endian 64-bit limbs. Every operation leaves the limbs fully reduced,
// i.e. in [0, p).
type FieldElement struct {
	n [fieldLimbs]uint64
}

// Field constants
const (
	fieldLimbs = 7
	// FieldBytes is the size of an encoded field element (ceil(434/8))
	FieldBytes = 55
)

// Field modulus and derived constants, least significant limb first.
var (
	fieldModulus = [fieldLimbs]uint64{
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFDC1767AE2FFFFFF,
		0x7BC65C783158AEA3, 0x6CFC5FD681C52056, 0x0002341F27177344,
	}

	// montgomeryR2 is R^2 mod p, used to enter the Montgomery domain
	montgomeryR2 = FieldElement{[fieldLimbs]uint64{
		0x28E55B65DCD69B30, 0xACEC7367768798C2, 0xAB27973F8311688D, 0x175CC6AF8D6C7C0B,
		0xABCD92BF2DDE347E, 0x69E16A61C7686D9A, 0x000025A89BCDD12A,
	}}

	// exponents used by inversion, square roots and the Legendre symbol
	expPMinus2 = [fieldLimbs]uint64{
		0xFFFFFFFFFFFFFFFD, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFDC1767AE2FFFFFF,
		0x7BC65C783158AEA3, 0x6CFC5FD681C52056, 0x0002341F27177344,
	}
	expPPlus1Div4 = [fieldLimbs]uint64{
		0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0xFF705D9EB8C00000,
		0x9EF1971E0C562BA8, 0x1B3F17F5A0714815, 0x00008D07C9C5DCD1,
	}
	expPMinus1Div2 = [fieldLimbs]uint64{
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFEE0BB3D717FFFFF,
		0x3DE32E3C18AC5751, 0x367E2FEB40E2902B, 0x00011A0F938BB9A2,
	}
)

// Field element constants
var (
	// FieldElementOne represents the field element 1 (R mod p in limbs)
	FieldElementOne = FieldElement{[fieldLimbs]uint64{
		0x000000000000742C, 0x0000000000000000, 0x0000000000000000, 0xB90FF404FC000000,
		0xD801A4FB559FACD4, 0xE93254545F77410C, 0x0000ECEEA7BD2EDA,
	}}

	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{}
)

// setB55 sets a field element from its 55-byte little-endian encoding.
// Values not below p are rejected rather than reduced.
func (r *FieldElement) setB55(b []byte) error {
	if len(b) != FieldBytes {
		return lengthError("field element", len(b), FieldBytes)
	}

	var d FieldElement
	for i := 0; i < FieldBytes; i++ {
		d.n[i/8] |= uint64(b[i]) << (8 * uint(i%8))
	}
	if !d.isReduced() {
		return errors.Wrap(ErrNonCanonical, "field element not below p")
	}
	r.toMontgomery(&d)
	return nil
}

// getB55 writes the 55-byte little-endian encoding of r into b
func (r *FieldElement) getB55(b []byte) {
	if len(b) != FieldBytes {
		panic("field element byte array must be 55 bytes")
	}

	var d FieldElement
	d.fromMontgomery(r)
	for i := 0; i < FieldBytes; i++ {
		b[i] = byte(d.n[i/8] >> (8 * uint(i%8)))
	}
}

// isReduced reports whether the raw limbs of r are below p
func (r *FieldElement) isReduced() bool {
	var borrow uint64
	for i := 0; i < fieldLimbs; i++ {
		_, borrow = bits.Sub64(r.n[i], fieldModulus[i], borrow)
	}
	return borrow == 1
}

// setInt sets r to the small integer a
func (r *FieldElement) setInt(a uint64) {
	var d FieldElement
	d.n[0] = a
	r.toMontgomery(&d)
}

// toMontgomery converts the plain value a into Montgomery form
func (r *FieldElement) toMontgomery(a *FieldElement) {
	r.mul(a, &montgomeryR2)
}

// fromMontgomery converts a out of Montgomery form into plain limbs
func (r *FieldElement) fromMontgomery(a *FieldElement) {
	var one FieldElement
	one.n[0] = 1
	r.mul(a, &one)
}

// isZero returns true if the field element is zero
func (r *FieldElement) isZero() bool {
	var acc uint64
	for i := 0; i < fieldLimbs; i++ {
		acc |= r.n[i]
	}
	return subtle.ConstantTimeEq(int32(acc|acc>>32), 0) == 1
}

// equal compares two field elements in constant time
func (r *FieldElement) equal(a *FieldElement) bool {
	var acc uint64
	for i := 0; i < fieldLimbs; i++ {
		acc |= r.n[i] ^ a.n[i]
	}
	return subtle.ConstantTimeEq(int32(acc|acc>>32), 0) == 1
}

// clear clears a field element to prevent leaking sensitive information
func (r *FieldElement) clear() {
	memclear(unsafe.Pointer(&r.n[0]), unsafe.Sizeof(r.n))
}

// add sets r = a + b mod p
func (r *FieldElement) add(a, b *FieldElement) {
	var t [fieldLimbs]uint64
	var carry uint64
	for i := 0; i < fieldLimbs; i++ {
		t[i], carry = bits.Add64(a.n[i], b.n[i], carry)
	}
	r.reduceOnce(&t, carry)
}

// sub sets r = a - b mod p
func (r *FieldElement) sub(a, b *FieldElement) {
	var borrow uint64
	for i := 0; i < fieldLimbs; i++ {
		r.n[i], borrow = bits.Sub64(a.n[i], b.n[i], borrow)
	}

	// add p back when the subtraction wrapped
	mask := -borrow
	var carry uint64
	for i := 0; i < fieldLimbs; i++ {
		r.n[i], carry = bits.Add64(r.n[i], fieldModulus[i]&mask, carry)
	}
}

// negate sets r = -a mod p
func (r *FieldElement) negate(a *FieldElement) {
	r.sub(&FieldElementZero, a)
}

// half sets r = a/2 mod p
func (r *FieldElement) half(a *FieldElement) {
	// p is odd, so a + p is even whenever a is odd
	mask := -(a.n[0] & 1)
	var t [fieldLimbs]uint64
	var carry uint64
	for i := 0; i < fieldLimbs; i++ {
		t[i], carry = bits.Add64(a.n[i], fieldModulus[i]&mask, carry)
	}
	for i := 0; i < fieldLimbs-1; i++ {
		r.n[i] = (t[i] >> 1) | (t[i+1] << 63)
	}
	r.n[fieldLimbs-1] = (t[fieldLimbs-1] >> 1) | (carry << 63)
}

// reduceOnce sets r = t - p if t (with carry as its top limb) is at least
// p, and r = t otherwise. t must be below 2p.
func (r *FieldElement) reduceOnce(t *[fieldLimbs]uint64, carry uint64) {
	var s [fieldLimbs]uint64
	var borrow uint64
	for i := 0; i < fieldLimbs; i++ {
		s[i], borrow = bits.Sub64(t[i], fieldModulus[i], borrow)
	}
	_, borrow = bits.Sub64(carry, 0, borrow)

	// borrow is set exactly when t < p
	mask := -borrow
	for i := 0; i < fieldLimbs; i++ {
		r.n[i] = (t[i] & mask) | (s[i] &^ mask)
	}
}

// cmov conditionally moves a field element. If flag is 1, r = a; otherwise r is unchanged.
func (r *FieldElement) cmov(a *FieldElement, flag int) {
	mask := uint64(-(int64(flag) & 1))
	for i := 0; i < fieldLimbs; i++ {
		r.n[i] ^= mask & (r.n[i] ^ a.n[i])
	}
}

// cswap swaps r and a when flag is 1
func (r *FieldElement) cswap(a *FieldElement, flag int) {
	mask := uint64(-(int64(flag) & 1))
	for i := 0; i < fieldLimbs; i++ {
		t := mask & (r.n[i] ^ a.n[i])
		r.n[i] ^= t
		a.n[i] ^= t
	}
}

// memclear clears memory to prevent leaking sensitive information
func memclear(ptr unsafe.Pointer, n uintptr) {
	// Use a volatile write to prevent the compiler from optimizing away the clear
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Pointer(uintptr(ptr) + i)) = 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
