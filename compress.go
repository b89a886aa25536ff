package sike

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// compressedPoints is the compressed form of the three x-coordinates of a
// public key. With {R1, R2} the canonical basis of the peer torsion on the
// curve A, the pushed points satisfy, up to a common unit factor,
//
//	bit 0: phi(P) = S[0] R1 + R2,   phi(Q) = S[1] R1 + S[2] R2
//	bit 1: phi(P) = R1 + S[0] R2,   phi(Q) = S[1] R1 + S[2] R2
type compressedPoints struct {
	A   Fp2
	S   [3]uint256.Int
	Bit byte
}

// compressedSize returns the encoded size of compressed points in domain d
func compressedSize(d *DomainParams) int {
	return Fp2Bytes + 3*d.ScalarBytes + 1
}

func (c *compressedPoints) bytes(d *DomainParams) []byte {
	out := make([]byte, compressedSize(d))
	c.A.getBytes(out[:Fp2Bytes])
	off := Fp2Bytes
	for i := range c.S {
		d.putScalar(out[off:off+d.ScalarBytes], &c.S[i])
		off += d.ScalarBytes
	}
	out[off] = c.Bit
	return out
}

func (c *compressedPoints) setBytes(d *DomainParams, b []byte) error {
	if len(b) != compressedSize(d) {
		return lengthError("compressed public key", len(b), compressedSize(d))
	}
	var t compressedPoints
	if err := t.A.setBytes(b[:Fp2Bytes]); err != nil {
		return err
	}
	off := Fp2Bytes
	for i := range t.S {
		s, err := d.scalarFromBytes(b[off : off+d.ScalarBytes])
		if err != nil {
			return err
		}
		t.S[i] = s
		off += d.ScalarBytes
	}
	if b[off] > 1 {
		return errors.Wrapf(ErrNonCanonical, "compression flag %d", b[off])
	}
	t.Bit = b[off]
	*c = t
	return nil
}

// compress expresses the points with x-coordinates xs = x(P), x(Q), x(P-Q)
// in the canonical basis of E_A[Ell^E]. The points must generate that
// subgroup.
func (p *Params) compress(d *DomainParams, xs *[3]Fp2) (compressedPoints, error) {
	var c compressedPoints
	c.A = RecoverCurveA(&xs[0], &xs[1], &xs[2])
	a := &c.A

	basis, _, err := p.generateBasis(d, a)
	if err != nil {
		return c, err
	}
	solver, err := p.dlogSolver(d)
	if err != nil {
		return c, err
	}

	var P, Q AffinePoint
	if !P.setXVar(a, &xs[0]) || !Q.setXVar(a, &xs[1]) {
		return c, errors.Wrap(ErrNonCanonical, "public key point is not on its curve")
	}
	if x := subX(a, &P, &Q); !x.equal(&xs[2]) {
		Q.negate(&Q)
	}

	// with P = a0 R1 + b0 R2 and e = t(R1, R2):
	// t(R1, P) = e^b0 and t(R2, P) = e^-a0, likewise for Q
	pairs := [4][2]*AffinePoint{
		{&basis.P, &P}, {&basis.Q, &P},
		{&basis.P, &Q}, {&basis.Q, &Q},
	}
	var logs [4]uint256.Int
	for i, pr := range pairs {
		t := reducedTate(a, pr[0], pr[1], d)
		logs[i] = solver.Solve(&t)
	}
	b0, b1 := logs[0], logs[2]
	var a0, a1 uint256.Int
	d.negMod(&a0, &logs[1])
	d.negMod(&a1, &logs[3])

	var inv uint256.Int
	if d.isUnit(&b0) {
		if err := d.invMod(&inv, &b0); err != nil {
			return c, err
		}
		d.mulMod(&c.S[0], &a0, &inv)
		c.Bit = 0
	} else {
		// P generates a subgroup of order Ell^E so a0 is a unit
		if err := d.invMod(&inv, &a0); err != nil {
			return c, errors.Wrap(err, "public key points are dependent")
		}
		d.mulMod(&c.S[0], &b0, &inv)
		c.Bit = 1
	}
	d.mulMod(&c.S[1], &a1, &inv)
	d.mulMod(&c.S[2], &b1, &inv)
	return c, nil
}

// decompress rebuilds x-coordinates of points spanning the same kernels as
// the points that were compressed
func (p *Params) decompress(d *DomainParams, c *compressedPoints) ([3]Fp2, error) {
	var xs [3]Fp2
	a := &c.A

	basis, _, err := p.generateBasis(d, a)
	if err != nil {
		return xs, err
	}

	var P, Q, t AffinePoint
	if c.Bit == 0 {
		P.mulVar(a, &basis.P, &c.S[0])
		P.addVar(a, &P, &basis.Q)
	} else {
		P.mulVar(a, &basis.Q, &c.S[0])
		P.addVar(a, &basis.P, &P)
	}
	Q.mulVar(a, &basis.P, &c.S[1])
	t.mulVar(a, &basis.Q, &c.S[2])
	Q.addVar(a, &Q, &t)

	xs[0] = P.x
	xs[1] = Q.x
	xs[2] = subX(a, &P, &Q)
	return xs, nil
}
