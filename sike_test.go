package sike

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestKEMRoundTrip(t *testing.T) {
	for _, params := range []*Params{P434, P434Uncompressed} {
		t.Run(params.Name, func(t *testing.T) {
			rng := testRand("kem " + params.Name)
			kem := NewKEM(params)
			sk, pk, err := kem.Keypair(rng)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(sk.Bytes()); got != params.MsgLen+params.PrivateKeySize(Bob) {
				t.Errorf("secret key is %d bytes", got)
			}

			ct, ss, err := kem.Encapsulate(rng, pk)
			if err != nil {
				t.Fatal(err)
			}
			if len(ct) != kem.CiphertextSize() {
				t.Errorf("ciphertext is %d bytes, want %d", len(ct), kem.CiphertextSize())
			}
			if len(ss) != kem.SharedKeySize() {
				t.Errorf("shared key is %d bytes, want %d", len(ss), kem.SharedKeySize())
			}

			got, err := kem.Decapsulate(sk, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, ss) {
				t.Error("decapsulated key differs")
			}

			// a secret key restored from its encoding decapsulates the same
			restored := NewPrivateKey(params, Bob)
			if err := restored.SetBytes(sk.Bytes()); err != nil {
				t.Fatal(err)
			}
			got, err = kem.Decapsulate(restored, ct)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, ss) {
				t.Error("restored key decapsulates differently")
			}

			// the public key derived during decapsulation is kept
			cached := restored.pub.Load()
			if cached == nil {
				t.Fatal("decapsulation should cache the public key")
			}
			if !cached.Equal(pk) {
				t.Error("cached public key differs from the generated one")
			}
			again, err := restored.PublicKey(params.Compressed)
			if err != nil {
				t.Fatal(err)
			}
			if again != cached {
				t.Error("PublicKey should return the cached key")
			}
		})
	}
}

func TestKEMImplicitRejection(t *testing.T) {
	params := P434
	rng := testRand("rejection")
	kem := NewKEM(params)
	sk, pk, err := kem.Keypair(rng)
	if err != nil {
		t.Fatal(err)
	}
	ct, ss, err := kem.Encapsulate(rng, pk)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name   string
		tamper func(t *testing.T, ct []byte)
	}{
		// c1 is the masked message, any bit keeps the ciphertext well formed
		{"c1", func(t *testing.T, ct []byte) { ct[len(ct)-1] ^= 0x01 }},
		// shifting s2 by 3 keeps the scalar canonical and the decompressed
		// points independent, but moves the kernel
		{"c0_scalar", func(t *testing.T, ct []byte) {
			d := params.peer(Alice)
			off := Fp2Bytes + d.ScalarBytes
			s, err := d.scalarFromBytes(ct[off : off+d.ScalarBytes])
			if err != nil {
				t.Fatal(err)
			}
			s.AddUint64(&s, 3)
			d.reduce(&s, &s)
			d.putScalar(ct[off:off+d.ScalarBytes], &s)
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bad := append([]byte(nil), ct...)
			tc.tamper(t, bad)
			if bytes.Equal(bad, ct) {
				t.Fatal("tampering left the ciphertext unchanged")
			}

			first, err := kem.Decapsulate(sk, bad)
			if err != nil {
				t.Fatalf("rejection should not be an error: %v", err)
			}
			if bytes.Equal(first, ss) {
				t.Error("tampered ciphertext should not yield the shared key")
			}
			second, err := kem.Decapsulate(sk, bad)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(first, second) {
				t.Error("rejection key should be stable")
			}

			want := make([]byte, params.KeyLen)
			shake(want, customH, sk.S, bad)
			if !bytes.Equal(first, want) {
				t.Error("rejection key should be H(S || ct)")
			}
		})
	}
}

func TestKEMErrors(t *testing.T) {
	rng := testRand("kem errors")
	kem := NewKEM(P434)
	sk, pk, err := kem.Keypair(rng)
	if err != nil {
		t.Fatal(err)
	}
	ct, _, err := kem.Encapsulate(rng, pk)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("ciphertext_length", func(t *testing.T) {
		if _, err := kem.Decapsulate(sk, ct[:len(ct)-1]); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Decapsulate() = %v, want ErrInvalidLength", err)
		}
	})
	t.Run("non_canonical_ciphertext", func(t *testing.T) {
		bad := append([]byte(nil), ct...)
		for i := 0; i < FieldBytes; i++ {
			bad[i] = 0xFF
		}
		if _, err := kem.Decapsulate(sk, bad); !errors.Is(err, ErrNonCanonical) {
			t.Errorf("Decapsulate() = %v, want ErrNonCanonical", err)
		}
	})
	t.Run("no_rejection_secret", func(t *testing.T) {
		plain := NewPrivateKey(P434, Bob)
		if err := plain.Generate(rng); err != nil {
			t.Fatal(err)
		}
		if _, err := kem.Decapsulate(plain, ct); !errors.Is(err, ErrKeyNotGenerated) {
			t.Errorf("Decapsulate() = %v, want ErrKeyNotGenerated", err)
		}
	})
	t.Run("alice_key", func(t *testing.T) {
		_, pkA, err := GenerateKeyPair(P434, Alice, rng)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := kem.Encapsulate(rng, pkA); !errors.Is(err, ErrRoleMismatch) {
			t.Errorf("Encapsulate() = %v, want ErrRoleMismatch", err)
		}
	})
	t.Run("other_parameter_set", func(t *testing.T) {
		_, pkU, err := NewKEM(P434Uncompressed).Keypair(rng)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := kem.Encapsulate(rng, pkU); !errors.Is(err, ErrConfig) {
			t.Errorf("Encapsulate() = %v, want ErrConfig", err)
		}
	})
}

func TestKEMParallelEncapsulation(t *testing.T) {
	t.Parallel()
	kem := NewKEM(P434)
	sk, pk, err := kem.Keypair(testRand("parallel"))
	if err != nil {
		t.Fatal(err)
	}

	const workers = 4
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rng := testRand("parallel worker " + string(rune('a'+i)))
			ct, ss, err := kem.Encapsulate(rng, pk)
			if err != nil {
				errs <- err
				return
			}
			got, err := kem.Decapsulate(sk, ct)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(got, ss) {
				errs <- errors.New("shared keys differ")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
