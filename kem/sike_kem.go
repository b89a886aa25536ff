package kem

import (
	"io"

	"github.com/pkg/errors"

	"sike.mleku.dev"
)

// SIKE implements I and Scheme on top of the sike package
type SIKE struct {
	kem  *sike.KEM
	rand io.Reader

	sk *sike.PrivateKey
	pk *sike.PublicKey
}

var (
	_ I      = (*SIKE)(nil)
	_ Scheme = (*SIKE)(nil)
)

// NewSIKE creates a SIKE endpoint over params drawing randomness from rand.
// A nil rand uses crypto/rand.
func NewSIKE(params *sike.Params, rand io.Reader) *SIKE {
	return &SIKE{kem: sike.NewKEM(params), rand: rand}
}

// NewSeededSIKE creates a SIKE endpoint whose randomness is a deterministic
// stream derived from seed. Outputs are reproducible, so it is only meant
// for tests and tooling.
func NewSeededSIKE(params *sike.Params, seed []byte) *SIKE {
	return NewSIKE(params, sike.NewDeterministicReader(seed))
}

// Sizes returns the encoded sizes of the scheme
func (s *SIKE) Sizes() Sizes {
	p := s.kem.Params()
	return Sizes{
		SecretKey:  p.MsgLen + p.PrivateKeySize(sike.Bob),
		PublicKey:  p.PublicKeySize(sike.Bob, p.Compressed),
		Ciphertext: s.kem.CiphertextSize(),
		SharedKey:  s.kem.SharedKeySize(),
	}
}

// Generate creates a fresh key pair
func (s *SIKE) Generate() error {
	sk, pk, err := s.kem.Keypair(s.rand)
	if err != nil {
		return err
	}
	s.sk, s.pk = sk, pk
	return nil
}

// InitSec loads a secret key, S followed by the scalar, and derives its
// public key
func (s *SIKE) InitSec(sec []byte) error {
	p := s.kem.Params()
	if want := p.MsgLen + p.PrivateKeySize(sike.Bob); len(sec) != want {
		return errors.Wrapf(sike.ErrInvalidLength, "secret key is %d bytes, want %d", len(sec), want)
	}
	sk := sike.NewPrivateKey(p, sike.Bob)
	if err := sk.SetBytes(sec); err != nil {
		return err
	}
	pk, err := sk.PublicKey(p.Compressed)
	if err != nil {
		return err
	}
	s.sk, s.pk = sk, pk
	return nil
}

// InitPub loads a public key
func (s *SIKE) InitPub(pub []byte) error {
	p := s.kem.Params()
	pk := sike.NewPublicKey(p, sike.Bob, p.Compressed)
	if err := pk.SetBytes(pub); err != nil {
		return err
	}
	if s.sk != nil {
		s.sk.Clear()
	}
	s.sk, s.pk = nil, pk
	return nil
}

// Sec returns the secret key bytes
func (s *SIKE) Sec() []byte {
	if s.sk == nil {
		return nil
	}
	return s.sk.Bytes()
}

// Pub returns the public key bytes
func (s *SIKE) Pub() []byte {
	if s.pk == nil {
		return nil
	}
	return s.pk.Bytes()
}

// Encapsulate creates a ciphertext and shared key for the loaded public key
func (s *SIKE) Encapsulate() (ct, ss []byte, err error) {
	if s.pk == nil {
		return nil, nil, errors.New("no public key available for encapsulation")
	}
	return s.kem.Encapsulate(s.rand, s.pk)
}

// Decapsulate recovers the shared key with the loaded secret key
func (s *SIKE) Decapsulate(ct []byte) (ss []byte, err error) {
	if s.sk == nil {
		return nil, errors.New("no secret key available for decapsulation")
	}
	return s.kem.Decapsulate(s.sk, ct)
}

// Zero wipes the secret key
func (s *SIKE) Zero() {
	if s.sk != nil {
		s.sk.Clear()
		s.sk = nil
	}
}

// Keypair returns a fresh encoded key pair without loading it
func (s *SIKE) Keypair() (sk, pk []byte, err error) {
	prv, pub, err := s.kem.Keypair(s.rand)
	if err != nil {
		return nil, nil, err
	}
	defer prv.Clear()
	return prv.Bytes(), pub.Bytes(), nil
}

// EncapsulateTo encapsulates to an encoded public key
func (s *SIKE) EncapsulateTo(pk []byte) (ct, ss []byte, err error) {
	p := s.kem.Params()
	pub := sike.NewPublicKey(p, sike.Bob, p.Compressed)
	if err := pub.SetBytes(pk); err != nil {
		return nil, nil, err
	}
	return s.kem.Encapsulate(s.rand, pub)
}

// DecapsulateWith decapsulates with an encoded secret key
func (s *SIKE) DecapsulateWith(sk, ct []byte) (ss []byte, err error) {
	p := s.kem.Params()
	prv := sike.NewPrivateKey(p, sike.Bob)
	if err := prv.SetBytes(sk); err != nil {
		return nil, err
	}
	defer prv.Clear()
	return s.kem.Decapsulate(prv, ct)
}
