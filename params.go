package sike

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Role identifies the side of the exchange. Alice works in the 2^eA torsion
// and computes 4-isogeny chains, Bob works in the 3^eB torsion and computes
// 3-isogeny chains.
type Role int

const (
	Alice Role = iota
	Bob
)

func (r Role) String() string {
	switch r {
	case Alice:
		return "A"
	case Bob:
		return "B"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// valid reports whether r is Alice or Bob
func (r Role) valid() bool {
	return r == Alice || r == Bob
}

// DomainParams describes one torsion subgroup E[ell^E] of the starting curve
// together with everything needed to walk isogenies with kernels in it and
// to compress points of it.
type DomainParams struct {
	// Ell is the prime, 2 or 3
	Ell uint
	// E is the exponent, the subgroup order is Ell^E
	E int
	// Order is Ell^E
	Order uint256.Int
	// CofactorEll and CofactorE give (p+1)/Order = CofactorEll^CofactorE
	CofactorEll uint
	CofactorE   int
	// SecretBitLen is the number of random bits in a secret scalar
	SecretBitLen int
	// SecretByteLen is the encoded size of a secret scalar
	SecretByteLen int
	// LadderBits is the number of scalar bits processed by the three point
	// ladder
	LadderBits int
	// ScalarBytes is the encoded size of a scalar modulo Order
	ScalarBytes int
	// Gen holds x(P), x(Q) and x(P-Q) for a basis {P, Q} of the subgroup on
	// the starting curve
	Gen [3]Fp2
	// Strategy drives the isogeny walk for kernels in this subgroup
	Strategy Strategy
	// PHWindow and PHPath configure the discrete log solver for this subgroup
	PHWindow int
	PHPath   []uint32

	phOnce sync.Once
	ph     *PohligHellman
	phErr  error
}

// basisTables are the fixed candidate tables used by the torsion basis
// generator. Every v in VQR/VQNR equals 1/(1 + U r^2) for the r at the same
// position of RQR/RQNR, and U = U0^2.
type basisTables struct {
	U, U0      Fp2
	RQR, RQNR  [17]FieldElement
	VQR, VQNR  [17]Fp2
	V3Torsion  [20]Fp2
	fallbackR0 uint64
}

// zeroCurveConstants are precomputed values on the curve E0: y^2 = x^3 + x.
// They are only checked, never used on the key path.
type zeroCurveConstants struct {
	// AliceWeierstrass holds (x, y) of P_A and Q_A on y^2 = x^3 - 11x + 14,
	// the short Weierstrass form of the starting curve with x shifted by 2
	AliceWeierstrass [4]Fp2
	// BobBasis holds (x, y) of a basis of E0[3^eB]
	BobBasis [4]Fp2
	// BobThreeTorsion holds four affine points of order 3 on E0
	BobThreeTorsion [8]Fp2
	// BobQ3 is x([3^(eB-1)]Q_B) on the starting curve
	BobQ3 Fp2
	// GRSIm is the imaginary part of a pairing value in the 3^eB torsion
	GRSIm FieldElement
	// GPhiRPhiS is a pairing value of norm one in the 3^eB torsion
	GPhiRPhiS Fp2
	// ThreeInv is 1/3
	ThreeInv FieldElement
}

// Params is a complete SIKE parameter set. Values are shared by every key
// and KEM created from them and must not be modified.
type Params struct {
	Name string
	// InitCurveA is the affine coefficient of the starting curve
	InitCurveA uint64
	// A and B are Alice's 2-power and Bob's 3-power torsion domains
	A, B DomainParams
	// Compressed selects the public key form used by the KEM
	Compressed bool
	// MsgLen and KeyLen are the KEM message and shared key sizes
	MsgLen, KeyLen int

	tables *basisTables
	zero   *zeroCurveConstants
}

// Domain returns the torsion domain owned by role
func (p *Params) Domain(role Role) *DomainParams {
	if role == Alice {
		return &p.A
	}
	return &p.B
}

// peer returns the torsion domain of the other party
func (p *Params) peer(role Role) *DomainParams {
	if role == Alice {
		return &p.B
	}
	return &p.A
}

// startingCurve returns the projective starting curve (A:1)
func (p *Params) startingCurve() ProjectiveCurve {
	var a Fp2
	a.setInt(p.InitCurveA)
	return newCurve(&a)
}

// PublicKeySize returns the encoded size of a public key of role
func (p *Params) PublicKeySize(role Role, compressed bool) int {
	if !compressed {
		return 3 * Fp2Bytes
	}
	return Fp2Bytes + 3*p.peer(role).ScalarBytes + 1
}

// PrivateKeySize returns the encoded size of a private key scalar of role
func (p *Params) PrivateKeySize(role Role) int {
	return p.Domain(role).SecretByteLen
}

// CiphertextSize returns the encoded size of a KEM ciphertext
func (p *Params) CiphertextSize() int {
	return p.PublicKeySize(Alice, p.Compressed) + p.MsgLen
}

// SharedSecretSize is the size of an encoded j-invariant
func (p *Params) SharedSecretSize() int {
	return Fp2Bytes
}

// validate checks the internal consistency of the parameter set
func (p *Params) validate() error {
	for _, role := range []Role{Alice, Bob} {
		d := p.Domain(role)
		if err := d.validate(); err != nil {
			return errors.Wrapf(err, "%s domain %s", p.Name, role)
		}
	}
	if p.A.Strategy.Degree != 4 || p.B.Strategy.Degree != 3 {
		return errors.Wrap(ErrConfig, "strategy degrees do not match the roles")
	}
	if p.A.CofactorEll != p.B.Ell || p.B.CofactorEll != p.A.Ell ||
		p.A.CofactorE != p.B.E || p.B.CofactorE != p.A.E {
		return errors.Wrap(ErrConfig, "domain cofactors do not match")
	}
	if p.MsgLen <= 0 || p.KeyLen <= 0 {
		return errors.Wrap(ErrConfig, "kem sizes")
	}
	if p.tables == nil || p.zero == nil {
		return errors.Wrap(ErrConfig, "missing tables")
	}
	if err := p.tables.validate(); err != nil {
		return err
	}
	return p.zero.validate()
}

func (d *DomainParams) validate() error {
	if d.Ell != 2 && d.Ell != 3 {
		return errors.Wrapf(ErrConfig, "ell %d", d.Ell)
	}
	order := powUint(d.Ell, d.E)
	if !order.Eq(&d.Order) {
		return errors.Wrap(ErrConfig, "order is not ell^e")
	}
	if d.SecretByteLen != (d.SecretBitLen+7)/8 {
		return errors.Wrap(ErrConfig, "secret length")
	}
	if d.LadderBits < d.SecretBitLen || d.LadderBits > 8*d.SecretByteLen {
		return errors.Wrap(ErrConfig, "ladder length")
	}
	// scalars are reduced, so they only need to hold Order-1
	var top uint256.Int
	top.SubUint64(&d.Order, 1)
	if 8*d.ScalarBytes < top.BitLen() {
		return errors.Wrap(ErrConfig, "scalar length")
	}
	for i := range d.Gen {
		if !d.Gen[i].A.isReduced() || !d.Gen[i].B.isReduced() {
			return errors.Wrapf(ErrNonCanonical, "generator %d", i)
		}
	}
	wantHeight := d.E
	if d.Ell == 2 {
		wantHeight = d.E / 2
	}
	if d.Strategy.Height != wantHeight {
		return errors.Wrapf(ErrConfig, "strategy height %d, want %d", d.Strategy.Height, wantHeight)
	}
	if err := d.Strategy.validate(); err != nil {
		return err
	}
	return validatePath(d.PHPath, d.E, d.PHWindow)
}

// validatePath checks a Pohlig-Hellman traversal path for e digits of base
// ell in windows of w.
func validatePath(path []uint32, e, w int) error {
	if w <= 0 || w > e {
		return errors.Wrapf(ErrConfig, "window %d", w)
	}
	n := (e + w - 1) / w
	if len(path) != n+1 {
		return errors.Wrapf(ErrConfig, "path has %d entries, want %d", len(path), n+1)
	}
	for z := 2; z <= n; z++ {
		if path[z] < 1 || int(path[z]) > z-1 {
			return errors.Wrapf(ErrConfig, "path[%d] = %d out of range", z, path[z])
		}
	}
	return nil
}

func (t *basisTables) validate() error {
	var u Fp2
	u.sqr(&t.U0)
	if !u.equal(&t.U) {
		return errors.Wrap(ErrConfig, "u is not u0^2")
	}
	var maxR uint64
	check := func(rs *[17]FieldElement, vs *[17]Fp2, qr bool) error {
		for i := range rs {
			var r FieldElement
			r.fromMontgomery(&rs[i])
			for _, w := range r.n[1:] {
				if w != 0 {
					return errors.Wrapf(ErrConfig, "r table entry %d", i)
				}
			}
			if r.n[0] > maxR {
				maxR = r.n[0]
			}
			v := entangledV(&t.U, &rs[i])
			if !v.equal(&vs[i]) {
				return errors.Wrapf(ErrConfig, "v table entry %d", i)
			}
			if vs[i].IsSquare() != qr {
				return errors.Wrapf(ErrConfig, "v table entry %d residuosity", i)
			}
		}
		return nil
	}
	if err := check(&t.RQR, &t.VQR, true); err != nil {
		return err
	}
	if err := check(&t.RQNR, &t.VQNR, false); err != nil {
		return err
	}
	t.fallbackR0 = maxR + 1
	return nil
}

// entangledV returns 1/(1 + u r^2) for r in Montgomery form
func entangledV(u *Fp2, r *FieldElement) Fp2 {
	var r2 FieldElement
	r2.sqr(r)
	var v Fp2
	v.A.mul(&u.A, &r2)
	v.B.mul(&u.B, &r2)
	v.add(&v, &Fp2One)
	v.inv(&v)
	return v
}

func (z *zeroCurveConstants) validate() error {
	n := z.GPhiRPhiS.norm()
	if !n.equal(&FieldElementOne) {
		return errors.Wrap(ErrConfig, "pairing constant is not of norm one")
	}
	var t FieldElement
	t.sqr(&z.GRSIm)
	t.sub(&FieldElementOne, &t)
	if !t.isSquare() {
		return errors.Wrap(ErrConfig, "pairing constant has no real part")
	}
	var three FieldElement
	three.setInt(3)
	t.mul(&three, &z.ThreeInv)
	if !t.equal(&FieldElementOne) {
		return errors.Wrap(ErrConfig, "ThreeInv is not the inverse of 3")
	}
	return nil
}

// MustParams validates p and panics if it is inconsistent. It is meant for
// package level parameter declarations.
func MustParams(p *Params) *Params {
	if err := p.validate(); err != nil {
		panic(err)
	}
	return p
}

// powUint returns ell^e
func powUint(ell uint, e int) uint256.Int {
	var r uint256.Int
	r.SetOne()
	b := uint256.NewInt(uint64(ell))
	for i := 0; i < e; i++ {
		r.Mul(&r, b)
	}
	return r
}
