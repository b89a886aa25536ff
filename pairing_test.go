package sike

import (
	"testing"

	"github.com/holiman/uint256"
)

// liftGen returns the basis points of d lifted to the starting curve
func liftGen(t *testing.T, p *Params, d *DomainParams) (a Fp2, P, Q AffinePoint) {
	t.Helper()
	a.setInt(p.InitCurveA)
	if !P.setXVar(&a, &d.Gen[0]) || !Q.setXVar(&a, &d.Gen[1]) {
		t.Fatal("generator is not on the starting curve")
	}
	return a, P, Q
}

func TestPairingOrder(t *testing.T) {
	for _, role := range []Role{Alice, Bob} {
		t.Run(role.String(), func(t *testing.T) {
			d := P434.Domain(role)
			a, P, Q := liftGen(t, P434, d)
			e := reducedTate(&a, &P, &Q, d)

			if n := e.norm(); !n.equal(&FieldElementOne) {
				t.Fatal("pairing value should have norm one")
			}
			var full, sub Fp2
			full.cycloPowEll(&e, d.Ell, d.E)
			if !full.equal(&Fp2One) {
				t.Error("pairing value should have order dividing ell^e")
			}
			sub.cycloPowEll(&e, d.Ell, d.E-1)
			if sub.equal(&Fp2One) {
				t.Error("pairing of a basis should be non-degenerate")
			}
		})
	}
}

func TestPairingDegenerate(t *testing.T) {
	for _, role := range []Role{Alice, Bob} {
		t.Run(role.String(), func(t *testing.T) {
			d := P434.Domain(role)
			a, P, Q := liftGen(t, P434, d)
			var twoP, inf AffinePoint
			twoP.doubleVar(&a, &P)
			inf.setInfinity()

			testCases := []struct {
				name string
				p, q *AffinePoint
			}{
				{"self", &P, &P},
				{"dependent", &P, &twoP},
				{"identity_first", &inf, &Q},
				{"identity_second", &P, &inf},
				{"identity_both", &inf, &inf},
			}
			for _, tc := range testCases {
				if e := reducedTate(&a, tc.p, tc.q, d); !e.equal(&Fp2One) {
					t.Errorf("%s: pairing should be one", tc.name)
				}
			}
		})
	}
}

func TestPairingBilinear(t *testing.T) {
	for _, role := range []Role{Alice, Bob} {
		t.Run(role.String(), func(t *testing.T) {
			d := P434.Domain(role)
			a, P, Q := liftGen(t, P434, d)
			e := reducedTate(&a, &P, &Q, d)

			k := uint256.NewInt(5)
			var kP, kQ AffinePoint
			kP.mulVar(&a, &P, k)
			kQ.mulVar(&a, &Q, k)

			var want Fp2
			want.sqr(&e)
			want.sqr(&want)
			want.mul(&want, &e)

			if got := reducedTate(&a, &kP, &Q, d); !got.equal(&want) {
				t.Error("t([5]P, Q) should equal t(P, Q)^5")
			}
			if got := reducedTate(&a, &P, &kQ, d); !got.equal(&want) {
				t.Error("t(P, [5]Q) should equal t(P, Q)^5")
			}

			// t(Q, P) = t(P, Q)^-1
			var inv Fp2
			inv.conj(&e)
			if got := reducedTate(&a, &Q, &P, d); !got.equal(&inv) {
				t.Error("t(Q, P) should be the inverse of t(P, Q)")
			}
		})
	}
}
