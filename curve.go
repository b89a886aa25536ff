package sike

import (
	"github.com/holiman/uint256"
)

// ProjectivePoint is a point (X:Z) on the Kummer line of a Montgomery curve.
// Z = 0 represents the point at infinity.
type ProjectivePoint struct {
	X Fp2
	Z Fp2
}

// ProjectiveCurve holds the coefficients (A:C) of the Montgomery curve
// C y^2 = C x^3 + A x^2 + C x.
type ProjectiveCurve struct {
	A Fp2
	C Fp2
}

// CurveCoefficientsEquiv stores a projectively equivalent form of (A:C).
// Its meaning depends on the isogeny degree in use:
//   - for 3-isogenies (A:C) ~ (A+2C : A-2C)
//   - for 4-isogenies (A:C) ~ (A+2C : 4C)
type CurveCoefficientsEquiv struct {
	A Fp2
	C Fp2
}

// newProjectivePoint returns (x:1)
func newProjectivePoint(x *Fp2) ProjectivePoint {
	return ProjectivePoint{X: *x, Z: Fp2One}
}

// isInfinity reports whether Z is zero
func (p *ProjectivePoint) isInfinity() bool {
	return p.Z.isZero()
}

// toAffineX returns X/Z. Infinity maps to zero.
func (p *ProjectivePoint) toAffineX() Fp2 {
	var zi, x Fp2
	zi.inv(&p.Z)
	x.mul(&p.X, &zi)
	return x
}

// cswap swaps p and q when flag is 1
func (p *ProjectivePoint) cswap(q *ProjectivePoint, flag int) {
	p.X.cswap(&q.X, flag)
	p.Z.cswap(&q.Z, flag)
}

// newCurve returns the curve with affine coefficient a, i.e. (a:1)
func newCurve(a *Fp2) ProjectiveCurve {
	return ProjectiveCurve{A: *a, C: Fp2One}
}

// equiv3 computes (A:C) ~ (A+2C : A-2C)
func (c *ProjectiveCurve) equiv3() CurveCoefficientsEquiv {
	var coef CurveCoefficientsEquiv
	var c2 Fp2
	c2.add(&c.C, &c.C)
	coef.A.add(&c.A, &c2)
	coef.C.sub(&c.A, &c2)
	return coef
}

// equiv4 computes (A:C) ~ (A+2C : 4C)
func (c *ProjectiveCurve) equiv4() CurveCoefficientsEquiv {
	var coef CurveCoefficientsEquiv
	coef.C.add(&c.C, &c.C)
	coef.A.add(&c.A, &coef.C)
	coef.C.add(&coef.C, &coef.C)
	return coef
}

// fromEquiv3 recovers (A:C), up to a common factor, from (A+2C : A-2C)
func (c *ProjectiveCurve) fromEquiv3(coef *CurveCoefficientsEquiv) {
	c.A.add(&coef.A, &coef.C)
	c.A.add(&c.A, &c.A)
	c.C.sub(&coef.A, &coef.C)
}

// fromEquiv4 recovers (A:C) from (A+2C : 4C)
func (c *ProjectiveCurve) fromEquiv4(coef *CurveCoefficientsEquiv) {
	var t Fp2
	t.half(&coef.C)
	c.A.sub(&coef.A, &t)
	c.C.half(&t)
}

// affineA returns A/C
func (c *ProjectiveCurve) affineA() Fp2 {
	var ci, a Fp2
	ci.inv(&c.C)
	a.mul(&c.A, &ci)
	return a
}

// aPlus2Over4 returns (A+2C)/4C
func (c *ProjectiveCurve) aPlus2Over4() Fp2 {
	var t, ret Fp2
	t.add(&c.C, &c.C)
	ret.add(&c.A, &t)
	t.add(&t, &t)
	t.inv(&t)
	ret.mul(&ret, &t)
	return ret
}

// JInvariant computes j = 256 (A^2 - 3C^2)^3 / (C^4 (A^2 - 4C^2))
func (c *ProjectiveCurve) JInvariant() Fp2 {
	var j, t0, t1 Fp2
	j.sqr(&c.A)
	t1.sqr(&c.C)
	t0.add(&t1, &t1)
	t0.sub(&j, &t0)
	t0.sub(&t0, &t1)
	j.sub(&t0, &t1)
	t1.sqr(&t1)
	j.mul(&j, &t1)
	t0.add(&t0, &t0)
	t0.add(&t0, &t0)
	t1.sqr(&t0)
	t0.mul(&t0, &t1)
	t0.add(&t0, &t0)
	t0.add(&t0, &t0)
	j.inv(&j)
	j.mul(&t0, &j)
	return j
}

// RecoverCurveA recovers the affine coefficient A of the Montgomery curve
// containing points with x-coordinates xP, xQ and xR = x(Q-P).
func RecoverCurveA(xP, xQ, xR *Fp2) Fp2 {
	var a, t0, t1 Fp2
	t1.add(xP, xQ)
	t0.mul(xP, xQ)
	a.mul(xR, &t1)
	a.add(&a, &t0)
	t0.mul(&t0, xR)
	a.sub(&a, &Fp2One)
	t0.add(&t0, &t0)
	t1.add(&t1, xR)
	t0.add(&t0, &t0)
	a.sqr(&a)
	t0.inv(&t0)
	a.mul(&a, &t0)
	a.sub(&a, &t1)
	return a
}

// xDblAdd takes P, Q, Q-P and (A+2C)/4C and returns 2P and P+Q.
func xDblAdd(p, q, qmp *ProjectivePoint, a24 *Fp2) (dbl, sum ProjectivePoint) {
	var t0, t1, t2 Fp2

	t0.add(&p.X, &p.Z)
	t1.sub(&p.X, &p.Z)
	dbl.X.sqr(&t0)
	t2.sub(&q.X, &q.Z)
	sum.X.add(&q.X, &q.Z)
	t0.mul(&t0, &t2)
	dbl.Z.sqr(&t1)
	t1.mul(&t1, &sum.X)
	t2.sub(&dbl.X, &dbl.Z)
	dbl.X.mul(&dbl.X, &dbl.Z)
	sum.X.mul(a24, &t2)
	sum.Z.sub(&t0, &t1)
	dbl.Z.add(&sum.X, &dbl.Z)
	sum.X.add(&t0, &t1)
	dbl.Z.mul(&dbl.Z, &t2)
	sum.Z.sqr(&sum.Z)
	sum.X.sqr(&sum.X)
	sum.Z.mul(&qmp.X, &sum.Z)
	sum.X.mul(&qmp.Z, &sum.X)
	return
}

// xDblE sets p = [2^k]p using the coefficients (A+2C : 4C)
func xDblE(p *ProjectivePoint, coef *CurveCoefficientsEquiv, k int) {
	var t0, t1 Fp2
	x, z := &p.X, &p.Z
	for i := 0; i < k; i++ {
		t0.sub(x, z)
		t1.add(x, z)
		t0.sqr(&t0)
		t1.sqr(&t1)
		z.mul(&coef.C, &t0)
		x.mul(z, &t1)
		t1.sub(&t1, &t0)
		t0.mul(&coef.A, &t1)
		z.add(z, &t0)
		z.mul(z, &t1)
	}
}

// xTplE sets p = [3^k]p using the coefficients (A+2C : A-2C)
func xTplE(p *ProjectivePoint, coef *CurveCoefficientsEquiv, k int) {
	var t0, t1, t2, t3, t4, t5, t6 Fp2
	x, z := &p.X, &p.Z
	for i := 0; i < k; i++ {
		t0.sub(x, z)
		t2.sqr(&t0)
		t1.add(x, z)
		t3.sqr(&t1)
		t4.add(&t1, &t0)
		t0.sub(&t1, &t0)
		t1.sqr(&t4)
		t1.sub(&t1, &t3)
		t1.sub(&t1, &t2)
		t5.mul(&t3, &coef.A)
		t3.mul(&t3, &t5)
		t6.mul(&t2, &coef.C)
		t2.mul(&t2, &t6)
		t3.sub(&t2, &t3)
		t2.sub(&t5, &t6)
		t1.mul(&t2, &t1)
		t2.add(&t3, &t1)
		t2.sqr(&t2)
		x.mul(&t2, &t4)
		t1.sub(&t3, &t1)
		t1.sqr(&t1)
		z.mul(&t1, &t0)
	}
}

// ScalarMul3Pt is the right-to-left three point ladder. Given x(P), x(Q)
// and x(P-Q) it returns x(P + [k]Q) where k is read little-endian from
// scalar, using the low nbits bits. The sequence of field operations does
// not depend on k.
func ScalarMul3Pt(curve *ProjectiveCurve, p, q, pmq *ProjectivePoint, nbits int, scalar []byte) ProjectivePoint {
	a24 := curve.aPlus2Over4()
	r1 := *p
	r2 := *pmq
	r0 := *q

	prevBit := 0
	for i := 0; i < nbits; i++ {
		bit := int(scalar[i>>3]>>(uint(i)&7)) & 1
		swap := prevBit ^ bit
		prevBit = bit
		r1.cswap(&r2, swap)
		r0, r2 = xDblAdd(&r0, &r2, &r1, &a24)
	}
	r1.cswap(&r2, prevBit)
	return r1
}

// ladderVar computes x([k]P) from the affine x-coordinate of P on the
// curve with affine coefficient a. It branches on k, so k must be public.
func ladderVar(a *Fp2, x *Fp2, k *uint256.Int) ProjectivePoint {
	if k.IsZero() {
		return ProjectivePoint{X: Fp2One}
	}

	curve := newCurve(a)
	a24 := curve.aPlus2Over4()
	coef := curve.equiv4()

	base := newProjectivePoint(x)
	r0 := base
	r1 := base
	xDblE(&r1, &coef, 1)

	for i := k.BitLen() - 2; i >= 0; i-- {
		if (k[i/64]>>uint(i%64))&1 == 1 {
			r1, r0 = xDblAdd(&r1, &r0, &base, &a24)
		} else {
			r0, r1 = xDblAdd(&r0, &r1, &base, &a24)
		}
	}
	return r0
}
