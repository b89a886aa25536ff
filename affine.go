package sike

import (
	"github.com/holiman/uint256"
)

// AffinePoint represents a point (x, y) on the Montgomery curve
// y^2 = x^3 + A x^2 + x. The curve coefficient is passed to each operation.
// These routines branch on their inputs and are only used on public points:
// torsion bases, public key images and decompression.
type AffinePoint struct {
	x, y     Fp2
	infinity bool
}

// setXY sets a point to the given coordinates
func (r *AffinePoint) setXY(x, y *Fp2) {
	r.x = *x
	r.y = *y
	r.infinity = false
}

// setInfinity sets the point to the point at infinity
func (r *AffinePoint) setInfinity() {
	r.x = Fp2Zero
	r.y = Fp2Zero
	r.infinity = true
}

// isInfinity returns true if the point is the point at infinity
func (r *AffinePoint) isInfinity() bool {
	return r.infinity
}

// montgomeryRHS returns x^3 + A x^2 + x
func montgomeryRHS(a, x *Fp2) Fp2 {
	var t, r Fp2
	t.add(x, a)
	t.mul(&t, x)
	t.add(&t, &Fp2One)
	r.mul(&t, x)
	return r
}

// setXVar sets r to a point with the given x-coordinate on the curve with
// coefficient a. The y-coordinate is the deterministic root chosen by
// SqrtVar. It returns false if x is not the abscissa of a curve point.
func (r *AffinePoint) setXVar(a, x *Fp2) bool {
	f := montgomeryRHS(a, x)
	var y Fp2
	if !y.SqrtVar(&f) {
		return false
	}
	r.setXY(x, &y)
	return true
}

// isValid checks that the point lies on the curve with coefficient a
func (r *AffinePoint) isValid(a *Fp2) bool {
	if r.infinity {
		return true
	}
	var lhs Fp2
	lhs.sqr(&r.y)
	rhs := montgomeryRHS(a, &r.x)
	return lhs.equal(&rhs)
}

// negate sets r to the negation of p
func (r *AffinePoint) negate(p *AffinePoint) {
	if p.infinity {
		r.setInfinity()
		return
	}
	r.x = p.x
	r.y.negate(&p.y)
	r.infinity = false
}

// equal returns true if two points are equal
func (r *AffinePoint) equal(p *AffinePoint) bool {
	if r.infinity || p.infinity {
		return r.infinity == p.infinity
	}
	return r.x.equal(&p.x) && r.y.equal(&p.y)
}

// doubleVar sets r = 2p
func (r *AffinePoint) doubleVar(a *Fp2, p *AffinePoint) {
	if p.infinity || p.y.isZero() {
		r.setInfinity()
		return
	}
	lambda := tangentSlope(a, p)
	r.chord(a, &lambda, p, p)
}

// addVar sets r = p + q
func (r *AffinePoint) addVar(a *Fp2, p, q *AffinePoint) {
	switch {
	case p.infinity:
		*r = *q
		return
	case q.infinity:
		*r = *p
		return
	}
	if p.x.equal(&q.x) {
		var s Fp2
		s.add(&p.y, &q.y)
		if s.isZero() {
			r.setInfinity()
			return
		}
		r.doubleVar(a, p)
		return
	}
	lambda := chordSlope(p, q)
	r.chord(a, &lambda, p, q)
}

// chord sets r to the third intersection, negated, of the line with slope
// lambda through p and q: x3 = lambda^2 - A - xp - xq,
// y3 = lambda (xp - x3) - yp
func (r *AffinePoint) chord(a, lambda *Fp2, p, q *AffinePoint) {
	var x3, y3 Fp2
	x3.sqr(lambda)
	x3.sub(&x3, a)
	x3.sub(&x3, &p.x)
	x3.sub(&x3, &q.x)
	y3.sub(&p.x, &x3)
	y3.mul(&y3, lambda)
	y3.sub(&y3, &p.y)
	r.setXY(&x3, &y3)
}

// tangentSlope returns (3x^2 + 2Ax + 1) / 2y
func tangentSlope(a *Fp2, p *AffinePoint) Fp2 {
	var num, t, den Fp2
	num.sqr(&p.x)
	t.add(&num, &num)
	num.add(&num, &t)
	t.mul(a, &p.x)
	t.add(&t, &t)
	num.add(&num, &t)
	num.add(&num, &Fp2One)
	den.add(&p.y, &p.y)
	den.inv(&den)
	num.mul(&num, &den)
	return num
}

// chordSlope returns (yq - yp) / (xq - xp)
func chordSlope(p, q *AffinePoint) Fp2 {
	var num, den Fp2
	num.sub(&q.y, &p.y)
	den.sub(&q.x, &p.x)
	den.inv(&den)
	num.mul(&num, &den)
	return num
}

// mulVar sets r = [k]p by double-and-add from the top bit of k
func (r *AffinePoint) mulVar(a *Fp2, p *AffinePoint, k *uint256.Int) {
	var acc AffinePoint
	acc.setInfinity()
	base := *p
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.doubleVar(a, &acc)
		if (k[i/64]>>uint(i%64))&1 == 1 {
			acc.addVar(a, &acc, &base)
		}
	}
	*r = acc
}

// subX returns x(p - q)
func subX(a *Fp2, p, q *AffinePoint) Fp2 {
	var nq, d AffinePoint
	nq.negate(q)
	d.addVar(a, p, &nq)
	return d.x
}
