package sike

// isogeny computes an isogeny of small degree from a kernel point and
// pushes points through it.
type isogeny interface {
	// GenerateCurve computes the codomain of the isogeny with kernel
	// generated by p and stores the constants needed by EvaluatePoint.
	GenerateCurve(p *ProjectivePoint) CurveCoefficientsEquiv
	// EvaluatePoint returns the image of p.
	EvaluatePoint(p *ProjectivePoint) ProjectivePoint
}

// isogeny3 stores 3-isogeny constants
type isogeny3 struct {
	K1 Fp2
	K2 Fp2
}

// isogeny4 stores 4-isogeny constants
type isogeny4 struct {
	isogeny3
	K3 Fp2
}

// GenerateCurve takes a point of exact order 3 and returns the codomain
// coefficients as (A'+2C' : A'-2C').
func (phi *isogeny3) GenerateCurve(p *ProjectivePoint) CurveCoefficientsEquiv {
	var t0, t1, t2, t3, t4 Fp2
	var coef CurveCoefficientsEquiv
	K1, K2 := &phi.K1, &phi.K2

	K1.sub(&p.X, &p.Z)
	t0.sqr(K1)
	K2.add(&p.X, &p.Z)
	t1.sqr(K2)
	t2.add(&t0, &t1)
	t3.add(K1, K2)
	t3.sqr(&t3)
	t3.sub(&t3, &t2)
	t2.add(&t1, &t3)
	t3.add(&t3, &t0)
	t4.add(&t3, &t0)
	t4.add(&t4, &t4)
	t4.add(&t1, &t4)
	coef.C.mul(&t2, &t4)
	t4.add(&t1, &t2)
	t4.add(&t4, &t4)
	t4.add(&t0, &t4)
	t4.mul(&t3, &t4)
	t0.sub(&t4, &coef.C)
	coef.A.add(&coef.C, &t0)
	return coef
}

// EvaluatePoint pushes p through the 3-isogeny
func (phi *isogeny3) EvaluatePoint(p *ProjectivePoint) ProjectivePoint {
	var t0, t1, t2 Fp2
	var q ProjectivePoint

	t0.add(&p.X, &p.Z)
	t1.sub(&p.X, &p.Z)
	t0.mul(&phi.K1, &t0)
	t1.mul(&phi.K2, &t1)
	t2.add(&t0, &t1)
	t0.sub(&t1, &t0)
	t2.sqr(&t2)
	t0.sqr(&t0)
	q.X.mul(&p.X, &t2)
	q.Z.mul(&p.Z, &t0)
	return q
}

// GenerateCurve takes a point of exact order 4 and returns the codomain
// coefficients as (A'+2C' : 4C').
func (phi *isogeny4) GenerateCurve(p *ProjectivePoint) CurveCoefficientsEquiv {
	var coef CurveCoefficientsEquiv
	K1, K2, K3 := &phi.K1, &phi.K2, &phi.K3

	K2.sub(&p.X, &p.Z)
	K3.add(&p.X, &p.Z)
	K1.sqr(&p.Z)
	K1.add(K1, K1)
	coef.C.sqr(K1)
	K1.add(K1, K1)
	coef.A.sqr(&p.X)
	coef.A.add(&coef.A, &coef.A)
	coef.A.sqr(&coef.A)
	return coef
}

// EvaluatePoint pushes p through the 4-isogeny
func (phi *isogeny4) EvaluatePoint(p *ProjectivePoint) ProjectivePoint {
	var t0, t1 Fp2
	q := *p
	xq, zq := &q.X, &q.Z

	t0.add(xq, zq)
	t1.sub(xq, zq)
	xq.mul(&t0, &phi.K2)
	zq.mul(&t1, &phi.K3)
	t0.mul(&t0, &t1)
	t0.mul(&t0, &phi.K1)
	t1.add(xq, zq)
	zq.sub(xq, zq)
	t1.sqr(&t1)
	zq.sqr(zq)
	xq.add(&t0, &t1)
	t0.sub(zq, &t0)
	xq.mul(xq, &t1)
	zq.mul(zq, &t0)
	return q
}
