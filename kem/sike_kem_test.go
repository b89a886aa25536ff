package kem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sike.mleku.dev"
)

func TestSIKE_Generate(t *testing.T) {
	s := NewSeededSIKE(sike.P434, []byte("generate"))
	require.NoError(t, s.Generate())
	sizes := s.Sizes()

	assert.Len(t, s.Sec(), sizes.SecretKey)
	assert.Len(t, s.Pub(), sizes.PublicKey)
	assert.Equal(t, Sizes{SecretKey: 44, PublicKey: 192, Ciphertext: 211, SharedKey: 16}, sizes)

	ct, ss, err := s.Encapsulate()
	require.NoError(t, err)
	assert.Len(t, ct, sizes.Ciphertext)
	assert.Len(t, ss, sizes.SharedKey)

	got, err := s.Decapsulate(ct)
	require.NoError(t, err)
	assert.Equal(t, ss, got)

	s.Zero()
	assert.Nil(t, s.Sec())
	_, err = s.Decapsulate(ct)
	assert.Error(t, err)
}

func TestSIKE_InitSecInitPub(t *testing.T) {
	owner := NewSeededSIKE(sike.P434, []byte("owner"))
	require.NoError(t, owner.Generate())

	restored := NewSIKE(sike.P434, nil)
	require.NoError(t, restored.InitSec(owner.Sec()))
	assert.Equal(t, owner.Pub(), restored.Pub())

	sender := NewSIKE(sike.P434, nil)
	require.NoError(t, sender.InitPub(owner.Pub()))
	assert.Nil(t, sender.Sec())

	ct, ss, err := sender.Encapsulate()
	require.NoError(t, err)
	got, err := restored.Decapsulate(ct)
	require.NoError(t, err)
	assert.Equal(t, ss, got)

	_, err = sender.Decapsulate(ct)
	assert.Error(t, err, "a public key only endpoint cannot decapsulate")
}

func TestSIKE_InitErrors(t *testing.T) {
	s := NewSIKE(sike.P434, nil)
	err := s.InitSec(make([]byte, 10))
	assert.True(t, errors.Is(err, sike.ErrInvalidLength))

	err = s.InitPub(make([]byte, 10))
	assert.True(t, errors.Is(err, sike.ErrInvalidLength))

	_, _, err = s.Encapsulate()
	assert.Error(t, err)
}

func TestSIKE_Scheme(t *testing.T) {
	for _, params := range []*sike.Params{sike.P434, sike.P434Uncompressed} {
		t.Run(params.Name, func(t *testing.T) {
			var scheme Scheme = NewSeededSIKE(params, []byte("scheme"))
			sk, pk, err := scheme.Keypair()
			require.NoError(t, err)

			ct, ss, err := scheme.EncapsulateTo(pk)
			require.NoError(t, err)
			got, err := scheme.DecapsulateWith(sk, ct)
			require.NoError(t, err)
			assert.Equal(t, ss, got)

			// a tampered ciphertext is rejected implicitly, not with an error
			ct[len(ct)-1] ^= 0x80
			rejected, err := scheme.DecapsulateWith(sk, ct)
			require.NoError(t, err)
			assert.NotEqual(t, ss, rejected)
		})
	}
}

func TestSIKE_Deterministic(t *testing.T) {
	a := NewSeededSIKE(sike.P434, []byte("same seed"))
	b := NewSeededSIKE(sike.P434, []byte("same seed"))
	require.NoError(t, a.Generate())
	require.NoError(t, b.Generate())
	assert.Equal(t, a.Pub(), b.Pub())
	assert.Equal(t, a.Sec(), b.Sec())
}
