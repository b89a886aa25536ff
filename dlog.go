package sike

import (
	"crypto/subtle"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// PohligHellman solves discrete logarithms in the cyclic group of order
// ell^e generated by a fixed element g of norm one in GF(p^2).
//
// The exponent is written as n = ceil(e/w) digits. Digit 0 is the partial
// one of r0 = e - w(n-1) base-ell places, the others are full windows of w
// places. The digits are found by walking a precomputed traversal tree:
// going left raises to a power of ell^w, going right divides out the digits
// already solved, and a leaf matches the remaining element of order dividing
// ell^w against a table.
type PohligHellman struct {
	ell  uint
	e, w int
	n    int
	r0   int
	path []uint32

	// tg[j] = gamma^j with gamma = g^(ell^(e-w)), j < ell^w
	tg []Fp2
	// t0[j] = gamma0^j with gamma0 = g^(ell^(w(n-1))), j < ell^r0
	t0 []Fp2
	// a[m][d] = g^(-d ell^(r0 + w m)), m < n-1, d < ell^w
	a [][]Fp2
	// b[j][d] = g^(-d ell^(w j)), j < n, d < ell^r0
	b [][]Fp2
}

// NewPohligHellman builds the tables for generator g of order ell^e, with
// window w and traversal path. The path is validated first.
func NewPohligHellman(g *Fp2, ell uint, e, w int, path []uint32) (*PohligHellman, error) {
	if ell != 2 && ell != 3 {
		return nil, errors.Wrapf(ErrConfig, "ell %d", ell)
	}
	if err := validatePath(path, e, w); err != nil {
		return nil, err
	}
	n := (e + w - 1) / w
	ph := &PohligHellman{
		ell:  ell,
		e:    e,
		w:    w,
		n:    n,
		r0:   e - w*(n-1),
		path: path,
	}
	L := ipow(ell, w)
	L0 := ipow(ell, ph.r0)

	var gamma Fp2
	gamma.cycloPowEll(g, ell, e-w)
	ph.tg = powerTable(&gamma, L, false)
	gamma.cycloPowEll(g, ell, w*(n-1))
	ph.t0 = powerTable(&gamma, L0, false)

	ph.a = make([][]Fp2, n-1)
	gamma.cycloPowEll(g, ell, ph.r0)
	for m := range ph.a {
		ph.a[m] = powerTable(&gamma, L, true)
		gamma.cycloPowEll(&gamma, ell, w)
	}

	ph.b = make([][]Fp2, n)
	gamma = *g
	for j := range ph.b {
		ph.b[j] = powerTable(&gamma, L0, true)
		gamma.cycloPowEll(&gamma, ell, w)
	}
	return ph, nil
}

// powerTable returns h^0, ..., h^(size-1), or their inverses when inverse is
// set. h has norm one so its inverse is its conjugate.
func powerTable(h *Fp2, size int, inverse bool) []Fp2 {
	table := make([]Fp2, size)
	table[0] = Fp2One
	for j := 1; j < size; j++ {
		table[j].mul(&table[j-1], h)
	}
	if inverse {
		for j := range table {
			table[j].conj(&table[j])
		}
	}
	return table
}

func ipow(ell uint, k int) int {
	r := 1
	for i := 0; i < k; i++ {
		r *= int(ell)
	}
	return r
}

// lookupIndex returns the index of h in table, scanning every entry
func lookupIndex(table []Fp2, h *Fp2) int {
	var idx int
	for j := range table {
		eq := boolToInt(table[j].equal(h))
		idx = subtle.ConstantTimeSelect(eq, j, idx)
	}
	return idx
}

// selectEntry returns table[idx], reading every entry
func selectEntry(table []Fp2, idx int) Fp2 {
	var r Fp2
	for j := range table {
		r.cmov(&table[j], subtle.ConstantTimeEq(int32(j), int32(idx)))
	}
	return r
}

// Solve returns x in [0, ell^e) such that g^x = h
func (ph *PohligHellman) Solve(h *Fp2) uint256.Int {
	digits := make([]int, ph.n)
	ph.traverse(h, 0, 0, ph.n, digits)

	var x, place, t uint256.Int
	x.SetUint64(uint64(digits[0]))
	place = powUint(ph.ell, ph.r0)
	step := powUint(ph.ell, ph.w)
	for i := 1; i < ph.n; i++ {
		t.SetUint64(uint64(digits[i]))
		t.Mul(&t, &place)
		x.Add(&x, &t)
		place.Mul(&place, &step)
	}
	return x
}

// traverse solves the z digits starting at k of r, an element whose digits
// below the window offset j have already been divided out.
func (ph *PohligHellman) traverse(r *Fp2, j, k, z int, digits []int) {
	if z == 1 {
		if k == 0 {
			digits[0] = lookupIndex(ph.t0, r)
		} else {
			digits[k] = lookupIndex(ph.tg, r)
		}
		return
	}

	t := int(ph.path[z])

	var left Fp2
	left.cycloPowEll(r, ph.ell, ph.w*(z-t))
	ph.traverse(&left, j+z-t, k, t, digits)

	right := *r
	for h := k; h < k+t; h++ {
		var f Fp2
		if h == 0 {
			f = selectEntry(ph.b[j], digits[0])
		} else {
			f = selectEntry(ph.a[h-1+j], digits[h])
		}
		right.mul(&right, &f)
	}
	ph.traverse(&right, j, k+t, z-t, digits)
}

// pairingGenerator returns the pairing of the two basis points of d on the
// starting curve, a generator of the order Ell^E roots of unity
func (p *Params) pairingGenerator(d *DomainParams) (Fp2, error) {
	var a Fp2
	a.setInt(p.InitCurveA)
	var P, Q AffinePoint
	if !P.setXVar(&a, &d.Gen[0]) || !Q.setXVar(&a, &d.Gen[1]) {
		return Fp2{}, errors.Wrap(ErrConfig, "generator is not on the starting curve")
	}
	return reducedTate(&a, &P, &Q, d), nil
}

// dlogSolver returns the discrete log solver of d, building its tables on
// first use
func (p *Params) dlogSolver(d *DomainParams) (*PohligHellman, error) {
	d.phOnce.Do(func() {
		g, err := p.pairingGenerator(d)
		if err != nil {
			d.phErr = err
			return
		}
		d.ph, d.phErr = NewPohligHellman(&g, d.Ell, d.E, d.PHWindow, d.PHPath)
	})
	return d.ph, d.phErr
}
