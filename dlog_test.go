package sike

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
)

// powFp2 returns g^x by square and multiply
func powFp2(g *Fp2, x *uint256.Int) Fp2 {
	acc := Fp2One
	for i := x.BitLen() - 1; i >= 0; i-- {
		acc.sqr(&acc)
		if (x[i/64]>>uint(i%64))&1 == 1 {
			acc.mul(&acc, g)
		}
	}
	return acc
}

// randScalar draws a scalar below the order of d
func randScalar(t *testing.T, rng *DeterministicReader, d *DomainParams) uint256.Int {
	t.Helper()
	var b [32]byte
	rng.Read(b[:])
	var x uint256.Int
	x.SetBytes(b[:])
	d.reduce(&x, &x)
	return x
}

func TestPohligHellmanSolve(t *testing.T) {
	testCases := []struct {
		name string
		role Role
		w    int
		path []uint32
	}{
		{"ell2_w4", Alice, 4, p434PathW2x4},
		{"ell3_w4", Bob, 4, p434PathW3x4},
		{"ell3_w5", Bob, 5, p434PathW3x5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := P434.Domain(tc.role)
			g, err := P434.pairingGenerator(d)
			if err != nil {
				t.Fatal(err)
			}
			ph, err := NewPohligHellman(&g, d.Ell, d.E, tc.w, tc.path)
			if err != nil {
				t.Fatalf("NewPohligHellman: %v", err)
			}

			var top uint256.Int
			top.SubUint64(&d.Order, 1)
			xs := []uint256.Int{*uint256.NewInt(0), *uint256.NewInt(1), top}
			rng := testRand("dlog " + tc.name)
			for i := 0; i < 4; i++ {
				xs = append(xs, randScalar(t, rng, d))
			}

			for _, x := range xs {
				h := powFp2(&g, &x)
				got := ph.Solve(&h)
				if !got.Eq(&x) {
					t.Errorf("Solve(g^%s) = %s", x.Hex(), got.Hex())
				}
			}
		})
	}
}

func TestPohligHellmanSharedSolver(t *testing.T) {
	d := &P434.B
	s1, err := P434.dlogSolver(d)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := P434.dlogSolver(d)
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 {
		t.Error("dlog tables should be built once")
	}
	if s1.w != d.PHWindow || s1.n != 35 || s1.r0 != 1 {
		t.Errorf("unexpected layout w=%d n=%d r0=%d", s1.w, s1.n, s1.r0)
	}
}

func TestPohligHellmanPathRejected(t *testing.T) {
	g := Fp2One
	bad := append([]uint32(nil), p434PathW3x4...)
	bad[5] = 5

	testCases := []struct {
		name string
		ell  uint
		e, w int
		path []uint32
	}{
		{"wrong_window", 3, 137, 5, p434PathW3x4},
		{"wrong_exponent", 2, 216, 4, p434PathW3x4},
		{"entry_out_of_range", 3, 137, 4, bad},
		{"zero_window", 3, 137, 0, p434PathW3x4},
		{"bad_ell", 5, 137, 4, p434PathW3x4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPohligHellman(&g, tc.ell, tc.e, tc.w, tc.path); !errors.Is(err, ErrConfig) {
				t.Errorf("NewPohligHellman() = %v, want ErrConfig", err)
			}
		})
	}
}
