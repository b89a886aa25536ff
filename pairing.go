package sike

// millerLine multiplies the running Miller function by the line through t
// with slope lambda, evaluated at q, divided by the vertical line through
// the resulting point. t is replaced by the sum of t and the point with
// x-coordinate x2, i.e. the negated third intersection.
func millerLine(a, lambda *Fp2, t *AffinePoint, x2 *Fp2, q *AffinePoint, fn, fd *Fp2) {
	var x3, y3, l, v Fp2

	x3.sqr(lambda)
	x3.sub(&x3, a)
	x3.sub(&x3, &t.x)
	x3.sub(&x3, x2)
	y3.sub(&t.x, &x3)
	y3.mul(&y3, lambda)
	y3.sub(&y3, &t.y)

	// l = (yQ - yT) - lambda (xQ - xT)
	l.sub(&q.x, &t.x)
	l.mul(&l, lambda)
	v.sub(&q.y, &t.y)
	l.sub(&v, &l)
	fn.mul(fn, &l)

	v.sub(&q.x, &x3)
	fd.mul(fd, &v)

	t.setXY(&x3, &y3)
}

// reducedTate computes the reduced Tate pairing
// t_N(P, Q) = f_{N,P}(Q)^((p^2-1)/N) for N = d.Order on the curve with
// affine coefficient a. P must have order dividing N.
//
// The Miller loop runs over the bits of N, which are public, so the
// sequence of operations is fixed. Numerator and denominator are kept apart
// and the single division happens before the final exponentiation. An
// identity input, or a zero Miller value from dependent inputs, maps to 1.
func reducedTate(a *Fp2, p, q *AffinePoint, d *DomainParams) Fp2 {
	n := &d.Order
	nbits := n.BitLen()
	even := n[0]&1 == 0

	t := *p
	fn, fd := Fp2One, Fp2One

	for i := nbits - 2; i >= 0; i-- {
		fn.sqr(&fn)
		fd.sqr(&fd)

		if i == 0 && even {
			// T has order 2 here, its tangent is vertical
			var v Fp2
			v.sub(&q.x, &t.x)
			fn.mul(&fn, &v)
			t.setInfinity()
		} else {
			lambda := tangentSlope(a, &t)
			x := t.x
			millerLine(a, &lambda, &t, &x, q, &fn, &fd)
		}

		if (n[i/64]>>uint(i%64))&1 == 0 {
			continue
		}
		if i == 0 {
			// T = -P, the chord is vertical
			var v Fp2
			v.sub(&q.x, &p.x)
			fn.mul(&fn, &v)
			t.setInfinity()
		} else {
			lambda := chordSlope(&t, p)
			millerLine(a, &lambda, &t, &p.x, q, &fn, &fd)
		}
	}

	var f, fi Fp2
	fi.inv(&fd)
	f.mul(&fn, &fi)
	degenerate := boolToInt(f.isZero()) | boolToInt(p.infinity) | boolToInt(q.infinity)

	// f^(p-1) = conj(f)/f
	fi.inv(&f)
	f.conj(&f)
	f.mul(&f, &fi)

	// ^((p+1)/N)
	f.cycloPowEll(&f, d.CofactorEll, d.CofactorE)
	f.cmov(&Fp2One, degenerate)
	return f
}
