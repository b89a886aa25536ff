package sike

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// maxBasisTries bounds the candidate search of the torsion basis generator.
// Typical searches accept a basis within ten candidates.
const maxBasisTries = 200

// TorsionBasis is a deterministic basis {P, Q} of E[ell^e] on a Montgomery
// curve. Both parties derive the same basis from the curve coefficient
// alone.
type TorsionBasis struct {
	P, Q AffinePoint
}

// XCoordinates returns x(P), x(Q) and x(P-Q)
func (b *TorsionBasis) XCoordinates(a *Fp2) (xP, xQ, xPQ Fp2) {
	return b.P.x, b.Q.x, subX(a, &b.P, &b.Q)
}

// candidateStream yields abscissae to try as basis points, in a fixed order
// that depends only on the curve.
type candidateStream struct {
	a     Fp2
	aZero bool
	pool  []Fp2
	next  int
	twin  bool
	last  Fp2
	u     *Fp2
	r     uint64
}

func newCandidateStream(t *basisTables, ell uint, a *Fp2) *candidateStream {
	s := &candidateStream{a: *a, aZero: a.isZero(), u: &t.U, r: t.fallbackR0}
	if ell == 2 {
		s.pool = make([]Fp2, 0, len(t.VQR)+len(t.VQNR))
		if s.aZero || a.IsSquare() {
			s.pool = append(append(s.pool, t.VQNR[:]...), t.VQR[:]...)
		} else {
			s.pool = append(append(s.pool, t.VQR[:]...), t.VQNR[:]...)
		}
	} else {
		s.pool = t.V3Torsion[:]
	}
	return s
}

// nextV returns the next seed value, first from the tables and then from
// v = 1/(1 + u r^2) for increasing r
func (s *candidateStream) nextV() Fp2 {
	if s.next < len(s.pool) {
		v := s.pool[s.next]
		s.next++
		return v
	}
	var r FieldElement
	r.setInt(s.r)
	s.r++
	return entangledV(s.u, &r)
}

// Next returns the next candidate x. For A != 0 every seed v gives x = -A v
// followed by its twin -x - A.
func (s *candidateStream) Next() Fp2 {
	if s.aZero {
		return s.nextV()
	}
	if s.twin {
		s.twin = false
		var x Fp2
		x.negate(&s.last)
		x.sub(&x, &s.a)
		return x
	}
	v := s.nextV()
	var x Fp2
	x.mul(&s.a, &v)
	x.negate(&x)
	s.last = x
	s.twin = true
	return x
}

// cofactor returns (p+1)/Order
func (d *DomainParams) cofactor() uint256.Int {
	return powUint(d.CofactorEll, d.CofactorE)
}

// subOrder returns Order/Ell
func (d *DomainParams) subOrder() uint256.Int {
	return powUint(d.Ell, d.E-1)
}

// generateBasis finds the canonical basis of E[Ell^E] on the curve with
// affine coefficient a. It also returns the number of candidates examined.
// Everything here is public, so the search runs in variable time.
func (p *Params) generateBasis(d *DomainParams, a *Fp2) (TorsionBasis, int, error) {
	var basis TorsionBasis
	cof := d.cofactor()
	sub := d.subOrder()
	stream := newCandidateStream(p.tables, d.Ell, a)

	found := 0
	for tries := 1; tries <= maxBasisTries; tries++ {
		x := stream.Next()
		if d.Ell == 2 && x.IsSquare() {
			continue
		}
		f := montgomeryRHS(a, &x)
		if !f.IsSquare() {
			continue
		}

		X := ladderVar(a, &x, &cof)
		if X.isInfinity() {
			continue
		}
		xr := X.toAffineX()
		if Y := ladderVar(a, &xr, &sub); Y.isInfinity() {
			continue
		}

		var pt AffinePoint
		if !pt.setXVar(a, &xr) {
			continue
		}
		if found == 0 {
			basis.P = pt
			found++
			continue
		}

		// the second point must be independent of the first
		t := reducedTate(a, &basis.P, &pt, d)
		t.cycloPowEll(&t, d.Ell, d.E-1)
		if t.equal(&Fp2One) {
			continue
		}
		basis.Q = pt
		return basis, tries, nil
	}
	return TorsionBasis{}, maxBasisTries, errors.Wrapf(ErrBasisNotFound, "ell %d after %d candidates", d.Ell, maxBasisTries)
}
