package sike

// Fp2 represents an element A + B*i of GF(p^2) = GF(p)[i]/(i^2 + 1)
type Fp2 struct {
	A FieldElement
	B FieldElement
}

// Fp2Bytes is the size of an encoded GF(p^2) element, real part first
const Fp2Bytes = 2 * FieldBytes

// Fp2 constants
var (
	// Fp2One represents the element 1
	Fp2One = Fp2{A: FieldElementOne}
	// Fp2Zero represents the element 0
	Fp2Zero = Fp2{}
)

// setBytes decodes the 110-byte encoding of a GF(p^2) element
func (r *Fp2) setBytes(b []byte) error {
	if len(b) != Fp2Bytes {
		return lengthError("fp2 element", len(b), Fp2Bytes)
	}
	var t Fp2
	if err := t.A.setB55(b[:FieldBytes]); err != nil {
		return err
	}
	if err := t.B.setB55(b[FieldBytes:]); err != nil {
		return err
	}
	*r = t
	return nil
}

// getBytes writes the 110-byte encoding of r into b
func (r *Fp2) getBytes(b []byte) {
	r.A.getB55(b[:FieldBytes])
	r.B.getB55(b[FieldBytes:Fp2Bytes])
}

// Bytes returns the 110-byte encoding of r
func (r *Fp2) Bytes() []byte {
	out := make([]byte, Fp2Bytes)
	r.getBytes(out)
	return out
}

// setInt sets r to the small integer a
func (r *Fp2) setInt(a uint64) {
	r.A.setInt(a)
	r.B = FieldElementZero
}

func (r *Fp2) add(a, b *Fp2) {
	r.A.add(&a.A, &b.A)
	r.B.add(&a.B, &b.B)
}

func (r *Fp2) sub(a, b *Fp2) {
	r.A.sub(&a.A, &b.A)
	r.B.sub(&a.B, &b.B)
}

func (r *Fp2) negate(a *Fp2) {
	r.A.negate(&a.A)
	r.B.negate(&a.B)
}

func (r *Fp2) half(a *Fp2) {
	r.A.half(&a.A)
	r.B.half(&a.B)
}

// conj sets r to the Frobenius conjugate A - B*i
func (r *Fp2) conj(a *Fp2) {
	r.A = a.A
	r.B.negate(&a.B)
}

// mul sets r = a * b with three base field multiplications:
// (a0 + a1 i)(b0 + b1 i) = (a0 b0 - a1 b1) + ((a0 + a1)(b0 + b1) - a0 b0 - a1 b1) i
func (r *Fp2) mul(a, b *Fp2) {
	var t0, t1, s0, s1 FieldElement
	t0.mul(&a.A, &b.A)
	t1.mul(&a.B, &b.B)
	s0.add(&a.A, &a.B)
	s1.add(&b.A, &b.B)
	s0.mul(&s0, &s1)
	r.A.sub(&t0, &t1)
	r.B.sub(&s0, &t0)
	r.B.sub(&r.B, &t1)
}

// sqr sets r = a^2 = (a0 + a1)(a0 - a1) + 2 a0 a1 i
func (r *Fp2) sqr(a *Fp2) {
	var t0, t1, t2 FieldElement
	t0.add(&a.A, &a.B)
	t1.sub(&a.A, &a.B)
	t2.add(&a.A, &a.A)
	r.B.mul(&t2, &a.B)
	r.A.mul(&t0, &t1)
}

// norm returns a0^2 + a1^2, the norm of a down to GF(p)
func (a *Fp2) norm() FieldElement {
	var n, t FieldElement
	n.sqr(&a.A)
	t.sqr(&a.B)
	n.add(&n, &t)
	return n
}

// inv sets r = 1/a via the norm: 1/(a0 + a1 i) = (a0 - a1 i)/(a0^2 + a1^2).
// The inverse of zero is zero.
func (r *Fp2) inv(a *Fp2) {
	n := a.norm()
	n.inv(&n)
	r.A.mul(&a.A, &n)
	n.negate(&n)
	r.B.mul(&a.B, &n)
}

// cycloSqr squares an element of norm one: (a0 + a1 i)^2 = (2 a0^2 - 1) + ((a0 + a1)^2 - 1) i
func (r *Fp2) cycloSqr(a *Fp2) {
	var t0, t1 FieldElement
	t0.sqr(&a.A)
	t0.add(&t0, &t0)
	t1.add(&a.A, &a.B)
	t1.sqr(&t1)
	r.A.sub(&t0, &FieldElementOne)
	r.B.sub(&t1, &FieldElementOne)
}

// cycloCube cubes an element of norm one
func (r *Fp2) cycloCube(a *Fp2) {
	var t Fp2
	t.cycloSqr(a)
	r.mul(&t, a)
}

// cycloPowEll raises an element of norm one to ell^k for ell in {2, 3}
func (r *Fp2) cycloPowEll(a *Fp2, ell uint, k int) {
	t := *a
	for i := 0; i < k; i++ {
		if ell == 2 {
			t.cycloSqr(&t)
		} else {
			t.cycloCube(&t)
		}
	}
	*r = t
}

func (r *Fp2) isZero() bool {
	return r.A.isZero() && r.B.isZero()
}

func (r *Fp2) equal(a *Fp2) bool {
	return boolToInt(r.A.equal(&a.A))&boolToInt(r.B.equal(&a.B)) == 1
}

// cmov conditionally moves a into r when flag is 1
func (r *Fp2) cmov(a *Fp2, flag int) {
	r.A.cmov(&a.A, flag)
	r.B.cmov(&a.B, flag)
}

// cswap swaps r and a when flag is 1
func (r *Fp2) cswap(a *Fp2, flag int) {
	r.A.cswap(&a.A, flag)
	r.B.cswap(&a.B, flag)
}

func (r *Fp2) clear() {
	r.A.clear()
	r.B.clear()
}

// IsSquare reports whether a is a square in GF(p^2). That is the case
// exactly when its norm is a square in GF(p).
func (a *Fp2) IsSquare() bool {
	n := a.norm()
	return n.isSquare()
}

// SqrtVar computes a square root of a in variable time and reports whether
// one exists. The root chosen is deterministic, so two parties computing it
// on the same public value agree. Never call it on secret data.
func (r *Fp2) SqrtVar(a *Fp2) bool {
	if a.B.isZero() {
		var s FieldElement
		if s.sqrt(&a.A) {
			r.A, r.B = s, FieldElementZero
			return true
		}
		// -a0 is a square since -1 is not
		var na FieldElement
		na.negate(&a.A)
		s.sqrt(&na)
		r.A, r.B = FieldElementZero, s
		return true
	}

	n := a.norm()
	var s FieldElement
	if !s.sqrt(&n) {
		return false
	}

	var t, x0, x1 FieldElement
	t.add(&a.A, &s)
	t.half(&t)
	if !x0.sqrt(&t) {
		t.sub(&a.A, &s)
		t.half(&t)
		if !x0.sqrt(&t) {
			return false
		}
	}

	// x1 = a1 / (2 x0)
	x1.add(&x0, &x0)
	x1.inv(&x1)
	x1.mul(&x1, &a.B)
	r.A, r.B = x0, x1
	return true
}
