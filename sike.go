package sike

import (
	"crypto/subtle"
	"io"

	"github.com/pkg/errors"
)

// KEM is the SIKE key encapsulation mechanism: SIDH turned into an
// IND-CCA2 KEM by the Fujisaki-Okamoto transform with implicit rejection.
// Bob owns the static key, Alice's side is ephemeral and derived from the
// encapsulated message. A KEM holds no mutable state and may be shared by
// concurrent callers.
type KEM struct {
	params *Params
}

// NewKEM returns a KEM over params
func NewKEM(params *Params) *KEM {
	return &KEM{params: params}
}

// Params returns the parameter set of the KEM
func (k *KEM) Params() *Params {
	return k.params
}

// CiphertextSize returns the size of an encapsulation
func (k *KEM) CiphertextSize() int {
	return k.params.CiphertextSize()
}

// SharedKeySize returns the size of the shared key
func (k *KEM) SharedKeySize() int {
	return k.params.KeyLen
}

// Keypair generates a static KEM key pair. The private key carries the
// implicit rejection secret S and its public key.
func (k *KEM) Keypair(rand io.Reader) (*PrivateKey, *PublicKey, error) {
	prv, pub, err := GenerateKeyPair(k.params, Bob, rand)
	if err != nil {
		return nil, nil, err
	}
	prv.S = make([]byte, k.params.MsgLen)
	if err := readRand(rand, prv.S); err != nil {
		return nil, nil, err
	}
	prv.pub.Store(pub)
	return prv, pub, nil
}

// Encapsulate draws a message from rand and returns the ciphertext and
// shared key for pk
func (k *KEM) Encapsulate(rand io.Reader, pk *PublicKey) (ct, ss []byte, err error) {
	if err := k.checkPublicKey(pk); err != nil {
		return nil, nil, err
	}
	m := make([]byte, k.params.MsgLen)
	if err := readRand(rand, m); err != nil {
		return nil, nil, err
	}
	ct, err = k.encrypt(m, pk)
	if err != nil {
		return nil, nil, err
	}
	ss = make([]byte, k.params.KeyLen)
	shake(ss, customH, m, ct)
	return ct, ss, nil
}

// encrypt is the deterministic SIDH public key encryption of m under pk
// with ephemeral randomness G(m || pk). It returns c0 || c1.
func (k *KEM) encrypt(m []byte, pk *PublicKey) ([]byte, error) {
	p := k.params
	ephemeral := NewPrivateKey(p, Alice)
	ephemeral.Scalar = make([]byte, p.A.SecretByteLen)
	shake(ephemeral.Scalar, customG, m, pk.Bytes())
	maskScalar(ephemeral.Scalar, p.A.SecretBitLen)
	defer ephemeral.Clear()

	c0, err := ephemeral.PublicKey(p.Compressed)
	if err != nil {
		return nil, err
	}
	j, err := DeriveSecret(ephemeral, pk)
	if err != nil {
		return nil, err
	}

	ct := append(c0.Bytes(), make([]byte, p.MsgLen)...)
	c1 := ct[len(ct)-p.MsgLen:]
	shake(c1, customF, j)
	subtle.XORBytes(c1, c1, m)
	return ct, nil
}

// Decapsulate recovers the shared key from ct. A ciphertext that does not
// re-encrypt to itself yields H(S || ct) instead, with the same timing and
// size, so rejection is never reported as an error. Only malformed input
// is.
func (k *KEM) Decapsulate(sk *PrivateKey, ct []byte) ([]byte, error) {
	p := k.params
	if err := sk.check(); err != nil {
		return nil, err
	}
	if sk.Role != Bob {
		return nil, errors.Wrapf(ErrRoleMismatch, "decapsulation key of role %s", sk.Role)
	}
	if len(sk.S) != p.MsgLen {
		return nil, errors.Wrap(ErrKeyNotGenerated, "private key has no rejection secret")
	}
	if len(ct) != p.CiphertextSize() {
		return nil, lengthError("ciphertext", len(ct), p.CiphertextSize())
	}
	pk, err := sk.PublicKey(p.Compressed)
	if err != nil {
		return nil, err
	}

	c0len := len(ct) - p.MsgLen
	c0 := NewPublicKey(p, Alice, p.Compressed)
	if err := c0.SetBytes(ct[:c0len]); err != nil {
		return nil, err
	}
	j, err := DeriveSecret(sk, c0)
	if err != nil {
		return nil, err
	}

	m := make([]byte, p.MsgLen)
	shake(m, customF, j)
	subtle.XORBytes(m, m, ct[c0len:])

	reenc, err := k.encrypt(m, pk)
	if err != nil {
		return nil, err
	}
	ok := subtle.ConstantTimeCompare(reenc[:c0len], ct[:c0len])
	selectBytes(m, sk.S, ok)

	ss := make([]byte, p.KeyLen)
	shake(ss, customH, m, ct)
	return ss, nil
}

// selectBytes keeps dst when keep is 1 and copies src over it when keep is 0
func selectBytes(dst, src []byte, keep int) {
	subtle.ConstantTimeCopy(1-keep, dst, src)
}

func (k *KEM) checkPublicKey(pk *PublicKey) error {
	if pk == nil || pk.params != k.params {
		return errors.Wrap(ErrConfig, "public key belongs to another parameter set")
	}
	if pk.Role != Bob {
		return errors.Wrapf(ErrRoleMismatch, "encapsulation key of role %s", pk.Role)
	}
	if pk.Compressed != k.params.Compressed {
		return errors.Wrap(ErrConfig, "public key form does not match the parameter set")
	}
	return nil
}
