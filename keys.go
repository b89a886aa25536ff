package sike

import (
	"bytes"
	"crypto/rand"
	"io"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
)

// PrivateKey is an SIDH secret scalar for one role. KEM keys additionally
// carry the implicit rejection secret S and their public key.
type PrivateKey struct {
	params *Params
	Role   Role
	// Scalar is the little-endian secret, SecretByteLen bytes
	Scalar []byte
	// S is the implicit rejection value, set for KEM keys only
	S []byte

	// pub caches the public key, computed at most once per form
	pub atomic.Pointer[PublicKey]
}

// PublicKey is the image of the peer basis under the secret isogeny, either
// as three x-coordinates or compressed.
type PublicKey struct {
	params     *Params
	Role       Role
	Compressed bool

	// xs holds x(phi(P)), x(phi(Q)), x(phi(P-Q)). Compressed keys are
	// decompressed when decoded, so xs is set for every usable key.
	xs     [3]Fp2
	hasXs  bool
	packed compressedPoints
}

// NewPrivateKey returns an empty private key of role. It has to be filled
// by Generate or SetBytes before use.
func NewPrivateKey(params *Params, role Role) *PrivateKey {
	return &PrivateKey{params: params, Role: role}
}

// NewPublicKey returns an empty public key of role, to be filled by SetBytes
func NewPublicKey(params *Params, role Role, compressed bool) *PublicKey {
	return &PublicKey{params: params, Role: role, Compressed: compressed}
}

// readRand fills b from r, or from crypto/rand when r is nil
func readRand(r io.Reader, b []byte) error {
	if r == nil {
		r = rand.Reader
	}
	if _, err := io.ReadFull(r, b); err != nil {
		return errors.Wrap(err, "reading randomness")
	}
	return nil
}

// Generate draws a fresh secret scalar from rand. Alice scalars are uniform
// in [0, 2^216), Bob scalars in [0, 2^217).
func (k *PrivateKey) Generate(rand io.Reader) error {
	if !k.Role.valid() {
		return errors.Wrapf(ErrRoleMismatch, "role %s", k.Role)
	}
	d := k.params.Domain(k.Role)
	scalar := make([]byte, d.SecretByteLen)
	if err := readRand(rand, scalar); err != nil {
		return err
	}
	maskScalar(scalar, d.SecretBitLen)
	k.Scalar = scalar
	k.pub.Store(nil)
	return nil
}

// maskScalar clears the bits of b above bitLen
func maskScalar(b []byte, bitLen int) {
	if rem := bitLen % 8; rem != 0 {
		b[len(b)-1] &= byte(1<<uint(rem)) - 1
	}
}

// Size returns the encoded size of the key
func (k *PrivateKey) Size() int {
	return len(k.S) + k.params.PrivateKeySize(k.Role)
}

// Bytes returns S followed by the scalar. S is empty for plain SIDH keys.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, 0, k.Size())
	out = append(out, k.S...)
	return append(out, k.Scalar...)
}

// SetBytes decodes a private key. A key of SecretByteLen bytes is a plain
// SIDH scalar, a key that is MsgLen bytes longer is a KEM key carrying S.
func (k *PrivateKey) SetBytes(b []byte) error {
	d := k.params.Domain(k.Role)
	var s, scalar []byte
	switch len(b) {
	case d.SecretByteLen:
		scalar = b
	case k.params.MsgLen + d.SecretByteLen:
		s = b[:k.params.MsgLen]
		scalar = b[k.params.MsgLen:]
	default:
		return lengthError("private key", len(b), d.SecretByteLen)
	}
	if rem := d.SecretBitLen % 8; rem != 0 && scalar[len(scalar)-1]>>uint(rem) != 0 {
		return errors.Wrap(ErrNonCanonical, "private scalar too large")
	}
	k.S = nil
	if s != nil {
		k.S = append([]byte(nil), s...)
	}
	k.Scalar = append([]byte(nil), scalar...)
	k.pub.Store(nil)
	return nil
}

// Clear wipes the secret material
func (k *PrivateKey) Clear() {
	if len(k.Scalar) > 0 {
		memclear(unsafe.Pointer(&k.Scalar[0]), uintptr(len(k.Scalar)))
	}
	if len(k.S) > 0 {
		memclear(unsafe.Pointer(&k.S[0]), uintptr(len(k.S)))
	}
	k.Scalar, k.S = nil, nil
	k.pub.Store(nil)
}

// Size returns the encoded size of the key
func (pk *PublicKey) Size() int {
	return pk.params.PublicKeySize(pk.Role, pk.Compressed)
}

// Bytes encodes the public key
func (pk *PublicKey) Bytes() []byte {
	if pk.Compressed {
		return pk.packed.bytes(pk.params.peer(pk.Role))
	}
	out := make([]byte, 3*Fp2Bytes)
	for i := range pk.xs {
		pk.xs[i].getBytes(out[i*Fp2Bytes : (i+1)*Fp2Bytes])
	}
	return out
}

// SetBytes decodes a public key. Field elements and scalars must be
// canonical. Compressed keys are expanded here, once.
func (pk *PublicKey) SetBytes(b []byte) error {
	if pk.Compressed {
		var packed compressedPoints
		d := pk.params.peer(pk.Role)
		if err := packed.setBytes(d, b); err != nil {
			return err
		}
		xs, err := pk.params.decompress(d, &packed)
		if err != nil {
			return err
		}
		pk.packed, pk.xs, pk.hasXs = packed, xs, true
		return nil
	}
	if len(b) != 3*Fp2Bytes {
		return lengthError("public key", len(b), 3*Fp2Bytes)
	}
	var xs [3]Fp2
	for i := range xs {
		if err := xs[i].setBytes(b[i*Fp2Bytes : (i+1)*Fp2Bytes]); err != nil {
			return err
		}
	}
	pk.xs, pk.hasXs = xs, true
	return nil
}

// points returns the three x-coordinates
func (pk *PublicKey) points() ([3]Fp2, error) {
	if !pk.hasXs {
		return pk.xs, errors.Wrap(ErrKeyNotGenerated, "empty public key")
	}
	return pk.xs, nil
}

// Equal reports whether two public keys have the same encoding
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.Role == other.Role && pk.Compressed == other.Compressed &&
		bytes.Equal(pk.Bytes(), other.Bytes())
}
