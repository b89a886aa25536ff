package sike

import (
	"io"

	"github.com/pkg/errors"
)

// GenerateKeyPair creates a key pair of role. The public key uses the form
// selected by params.Compressed.
func GenerateKeyPair(params *Params, role Role, rand io.Reader) (*PrivateKey, *PublicKey, error) {
	prv := NewPrivateKey(params, role)
	if err := prv.Generate(rand); err != nil {
		return nil, nil, err
	}
	pub, err := prv.PublicKey(params.Compressed)
	if err != nil {
		return nil, nil, err
	}
	return prv, pub, nil
}

// PublicKey computes the public key of k. The result is cached, so the
// secret isogeny is only walked again when the other form is requested.
func (k *PrivateKey) PublicKey(compressed bool) (*PublicKey, error) {
	if pub := k.pub.Load(); pub != nil && pub.Compressed == compressed {
		return pub, nil
	}
	if err := k.check(); err != nil {
		return nil, err
	}
	xs := k.params.isogenize(k.Role, k.Scalar, nil)
	pub := &PublicKey{
		params:     k.params,
		Role:       k.Role,
		Compressed: compressed,
		xs:         xs,
		hasXs:      true,
	}
	if compressed {
		packed, err := k.params.compress(k.params.peer(k.Role), &xs)
		if err != nil {
			return nil, err
		}
		pub.packed = packed
	}
	k.pub.Store(pub)
	return pub, nil
}

// check verifies that k holds a scalar of the right size
func (k *PrivateKey) check() error {
	if k.params == nil || !k.Role.valid() {
		return errors.Wrap(ErrKeyNotGenerated, "private key has no parameters")
	}
	if len(k.Scalar) == 0 {
		return ErrKeyNotGenerated
	}
	if len(k.Scalar) != k.params.Domain(k.Role).SecretByteLen {
		return lengthError("private scalar", len(k.Scalar), k.params.Domain(k.Role).SecretByteLen)
	}
	return nil
}

// isogenize computes the secret kernel x(P + [k]Q) from the role's basis on
// the starting curve and walks the isogeny it generates, pushing the peer
// basis through. It returns the affine images.
func (p *Params) isogenize(role Role, scalar []byte, stats *walkStats) [3]Fp2 {
	own := p.Domain(role)
	peer := p.peer(role)
	curve := p.startingCurve()

	xP := newProjectivePoint(&own.Gen[0])
	xQ := newProjectivePoint(&own.Gen[1])
	xPQ := newProjectivePoint(&own.Gen[2])
	kernel := ScalarMul3Pt(&curve, &xP, &xQ, &xPQ, own.LadderBits, paddedScalar(scalar, own.LadderBits))

	push := []ProjectivePoint{
		newProjectivePoint(&peer.Gen[0]),
		newProjectivePoint(&peer.Gen[1]),
		newProjectivePoint(&peer.Gen[2]),
	}
	own.Strategy.walk(&curve, kernel, push, stats)

	var xs [3]Fp2
	for i := range push {
		xs[i] = push[i].toAffineX()
	}
	return xs
}

// paddedScalar returns scalar zero-extended to hold nbits bits
func paddedScalar(scalar []byte, nbits int) []byte {
	n := (nbits + 7) / 8
	if len(scalar) >= n {
		return scalar
	}
	out := make([]byte, n)
	copy(out, scalar)
	return out
}

// agree walks the isogeny with kernel x(P + [k]Q) on the curve of the peer
// public key and returns the j-invariant of the codomain
func (p *Params) agree(role Role, scalar []byte, xs *[3]Fp2, stats *walkStats) Fp2 {
	own := p.Domain(role)
	a := RecoverCurveA(&xs[0], &xs[1], &xs[2])
	curve := newCurve(&a)

	xP := newProjectivePoint(&xs[0])
	xQ := newProjectivePoint(&xs[1])
	xPQ := newProjectivePoint(&xs[2])
	kernel := ScalarMul3Pt(&curve, &xP, &xQ, &xPQ, own.LadderBits, paddedScalar(scalar, own.LadderBits))

	codomain := own.Strategy.walk(&curve, kernel, nil, stats)
	return codomain.JInvariant()
}

// DeriveSecret computes the SIDH shared secret, the encoded j-invariant of
// the shared curve. The peer key may be full or compressed and must belong
// to the other role.
func DeriveSecret(prv *PrivateKey, pub *PublicKey) ([]byte, error) {
	if err := prv.check(); err != nil {
		return nil, err
	}
	if pub.Role == prv.Role {
		return nil, errors.Wrapf(ErrRoleMismatch, "both keys are of role %s", prv.Role)
	}
	xs, err := pub.points()
	if err != nil {
		return nil, err
	}
	j := prv.params.agree(prv.Role, prv.Scalar, &xs, nil)
	return j.Bytes(), nil
}
