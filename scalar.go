package sike

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Arithmetic on scalars modulo the order ell^e of a torsion domain. The
// scalars handled here are derived from public keys, so none of these
// routines need to run in constant time.

// reduce sets z = x mod Order
func (d *DomainParams) reduce(z, x *uint256.Int) {
	z.Mod(x, &d.Order)
}

// mulMod sets z = x*y mod Order
func (d *DomainParams) mulMod(z, x, y *uint256.Int) {
	z.MulMod(x, y, &d.Order)
}

// negMod sets z = -x mod Order
func (d *DomainParams) negMod(z, x *uint256.Int) {
	var t uint256.Int
	d.reduce(&t, x)
	if t.IsZero() {
		z.Clear()
		return
	}
	z.Sub(&d.Order, &t)
}

// isUnit reports whether x is invertible modulo Order, i.e. not divisible
// by Ell
func (d *DomainParams) isUnit(x *uint256.Int) bool {
	var ell, r uint256.Int
	ell.SetUint64(uint64(d.Ell))
	r.Mod(x, &ell)
	return !r.IsZero()
}

// invMod sets z = 1/x mod Order
func (d *DomainParams) invMod(z, x *uint256.Int) error {
	if !d.isUnit(x) {
		return errors.Wrapf(ErrNotInvertible, "scalar divisible by %d", d.Ell)
	}
	if d.Ell == 2 {
		d.invMod2k(z, x)
		return nil
	}
	// x^(phi(N) - 1) with phi(3^e) = 2 * 3^(e-1)
	exp := d.subOrder()
	exp.Lsh(&exp, 1)
	exp.SubUint64(&exp, 1)
	d.expMod(z, x, &exp)
	return nil
}

// invMod2k inverts an odd x modulo 2^E by Newton iteration. Every step
// doubles the number of correct low bits, starting from three.
func (d *DomainParams) invMod2k(z, x *uint256.Int) {
	var y, t, two uint256.Int
	two.SetUint64(2)
	y.Set(x)
	for i := 0; i < 7; i++ {
		t.Mul(x, &y)
		t.Sub(&two, &t)
		y.Mul(&y, &t)
	}
	d.reduce(z, &y)
}

// expMod sets z = x^e mod Order, square and multiply from the top bit
func (d *DomainParams) expMod(z, x, e *uint256.Int) {
	var acc, base uint256.Int
	acc.SetOne()
	d.reduce(&base, x)
	for i := e.BitLen() - 1; i >= 0; i-- {
		d.mulMod(&acc, &acc, &acc)
		if (e[i/64]>>uint(i%64))&1 == 1 {
			d.mulMod(&acc, &acc, &base)
		}
	}
	z.Set(&acc)
}

// putScalar writes x as ScalarBytes little-endian bytes
func (d *DomainParams) putScalar(b []byte, x *uint256.Int) {
	for i := 0; i < d.ScalarBytes; i++ {
		b[i] = byte(x[i/8] >> (8 * uint(i%8)))
	}
}

// scalarFromBytes decodes ScalarBytes little-endian bytes and rejects values
// not below Order
func (d *DomainParams) scalarFromBytes(b []byte) (uint256.Int, error) {
	var x uint256.Int
	if len(b) != d.ScalarBytes {
		return x, lengthError("scalar", len(b), d.ScalarBytes)
	}
	for i := 0; i < d.ScalarBytes; i++ {
		x[i/8] |= uint64(b[i]) << (8 * uint(i%8))
	}
	if !x.Lt(&d.Order) {
		return uint256.Int{}, errors.Wrap(ErrNonCanonical, "scalar not below the torsion order")
	}
	return x, nil
}
