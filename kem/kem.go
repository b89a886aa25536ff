// Package kem provides key encapsulation mechanisms behind a common
// interface, so callers do not depend on the concrete scheme.
package kem

// I is a key encapsulation endpoint. It holds at most one key pair: with the
// secret key it can decapsulate, with only the public key it can
// encapsulate.
type I interface {
	// Generate creates a fresh key pair
	Generate() error
	// InitSec loads a secret key and derives its public key
	InitSec(sec []byte) error
	// InitPub loads a public key. Any secret key is dropped.
	InitPub(pub []byte) error
	// Sec returns the encoded secret key, nil without one
	Sec() []byte
	// Pub returns the encoded public key, nil without one
	Pub() []byte
	// Encapsulate creates a ciphertext and shared key for the loaded
	// public key
	Encapsulate() (ct, ss []byte, err error)
	// Decapsulate recovers the shared key from ct with the loaded secret key
	Decapsulate(ct []byte) (ss []byte, err error)
	// Zero wipes the secret key
	Zero()
}

// Scheme is the stateless form of a KEM, working on encoded keys
type Scheme interface {
	Keypair() (sk, pk []byte, err error)
	EncapsulateTo(pk []byte) (ct, ss []byte, err error)
	DecapsulateWith(sk, ct []byte) (ss []byte, err error)
}

// Sizes describes the encodings of a scheme
type Sizes struct {
	SecretKey  int
	PublicKey  int
	Ciphertext int
	SharedKey  int
}
