package sike

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// Round 2 SIDHp434 known-answer vectors
var (
	katPrivateA = "3a727e04ea9b7e2a766a6f846489e7e7b915263bceed308bb10fc9"
	katPrivateB = "e37bfe55b43b32448f375903d8d226ec94adbfea1d2b3536eb987001"
	katPublicA  = "9e668d1e6750ed4b91ee052c32839ca9dd2e56d52bc24decc950aaad24ceed3f" +
		"9049c77fe80f0b9b01e7f8dad7833eec2286544d6380009c379cdd3e7517cef5" +
		"e20eb01f8231d52fc30dc61d2f63fb357f85dc6396e8a95db9740bd3a972c8db" +
		"7901b31f074cd3e45345ca78f900817130e688a29a7cf0073b5c00ff2c65fbe7" +
		"76918ef9bd8e75b29ef7fab791969b60b0c5b37a8992edef95fa7bac40a95daf" +
		"e02e237301fee9a7a43fd0b73477e8035dd12b73fafef18d39904dde3653a754" +
		"f36be1888f6607c6a7951349a414352cf31a29f2c40302db406c48018c905eb9" +
		"dc46afbf42a9187a9bb9e51b587622a2862dc7d5cc598bf38ed6320fb51d8697" +
		"ad3d7a72abcc32a393f0133da8df5e253d9e00b760b2df342fce974dcfe946cf" +
		"e4727783531882800f9e5dd594d6d5a6275eefef9713ed838f4a06bb34d7b8d4" +
		"6e0b385aaea1c7963601"
	katPublicB  = "c9f73e4497aaa3fdf9eb688135866a8a83934ba10e273b8cc3808cf0c1f5fab3" +
		"e9bb295885881b73debc875670c0f51c4bb40df5fede01b8af32d1bf10508b8c" +
		"17b2734eb93b2b7f5d84a4a0f2f816e9e2c32ac253c0b6025b124d05a87a9e2a" +
		"8567930f44baa14219b941b6b400b4aed1d796da12a5a9f0b8f3f5ee9dd43f64" +
		"cb24a3b1719df278adf56b5f3395187829da2319deabf6bbd6eda244de2b62cc" +
		"5ac250c1009dd1cd4712b0b37406612ad002b5e51a62b51ac9c0374d143abbbd" +
		"58275fafc4a5e959c54838c2d6d9fb43b7b2609061267b6a2e6c6d01d295c422" +
		"3e0d3d7a4cdcfb28a7818a737935279751a6dd8290fd498d1f6ad5f4fff6bdfa" +
		"536713f509dce8047252f1e7d0dd9fcc414c0070b5dcce3665a21a032d7fbe74" +
		"9181032183afad240b7e671e87fbbec3a8ca4c11aa7a9a23ac69ae2acf54b664" +
		"decd27753d63508f1b02"
	katShared   = "e7c38f69bceeee72f110aecef842535ab7b7299e449f0863d33eab633c87e0b1" +
		"db028ff8f95638dc22998e6696c57188f6147b2002780193f24eebd16fd38eb3" +
		"7f8d17689a36d4566820573c05a369b7c0ada702b6d2c5ddafa76f25e4fcfdcf" +
		"6d2ddff3144df107e2dc0cad7a00"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSIDHKnownAnswer(t *testing.T) {
	params := P434Uncompressed
	prA := NewPrivateKey(params, Alice)
	if err := prA.SetBytes(mustHex(t, katPrivateA)); err != nil {
		t.Fatalf("alice SetBytes: %v", err)
	}
	prB := NewPrivateKey(params, Bob)
	if err := prB.SetBytes(mustHex(t, katPrivateB)); err != nil {
		t.Fatalf("bob SetBytes: %v", err)
	}

	pkA, err := prA.PublicKey(false)
	if err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(pkA.Bytes()); got != katPublicA {
		t.Errorf("alice public key mismatch:\n got %s\nwant %s", got, katPublicA)
	}
	pkB, err := prB.PublicKey(false)
	if err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(pkB.Bytes()); got != katPublicB {
		t.Errorf("bob public key mismatch:\n got %s\nwant %s", got, katPublicB)
	}

	// decode the published keys rather than reuse the computed ones
	decA := NewPublicKey(params, Alice, false)
	if err := decA.SetBytes(mustHex(t, katPublicA)); err != nil {
		t.Fatal(err)
	}
	decB := NewPublicKey(params, Bob, false)
	if err := decB.SetBytes(mustHex(t, katPublicB)); err != nil {
		t.Fatal(err)
	}

	ssA, err := DeriveSecret(prA, decB)
	if err != nil {
		t.Fatal(err)
	}
	ssB, err := DeriveSecret(prB, decA)
	if err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(ssA); got != katShared {
		t.Errorf("alice shared secret mismatch:\n got %s\nwant %s", got, katShared)
	}
	if !bytes.Equal(ssA, ssB) {
		t.Error("shared secrets differ")
	}
	if len(ssA) != params.SharedSecretSize() {
		t.Errorf("shared secret is %d bytes, want %d", len(ssA), params.SharedSecretSize())
	}
}

func TestSIDHAgreement(t *testing.T) {
	for _, params := range []*Params{P434, P434Uncompressed} {
		t.Run(params.Name, func(t *testing.T) {
			rng := testRand("agreement " + params.Name)
			prA, pkA, err := GenerateKeyPair(params, Alice, rng)
			if err != nil {
				t.Fatal(err)
			}
			prB, pkB, err := GenerateKeyPair(params, Bob, rng)
			if err != nil {
				t.Fatal(err)
			}
			if pkA.Size() != params.PublicKeySize(Alice, params.Compressed) {
				t.Errorf("alice public key is %d bytes", pkA.Size())
			}
			if len(pkB.Bytes()) != params.PublicKeySize(Bob, params.Compressed) {
				t.Errorf("bob public key is %d bytes", len(pkB.Bytes()))
			}

			ssA, err := DeriveSecret(prA, pkB)
			if err != nil {
				t.Fatal(err)
			}
			ssB, err := DeriveSecret(prB, pkA)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(ssA, ssB) {
				t.Error("shared secrets differ")
			}
		})
	}
}

func TestSIDHDeterminism(t *testing.T) {
	gen := func() []byte {
		_, pk, err := GenerateKeyPair(P434, Bob, testRand("determinism"))
		if err != nil {
			t.Fatal(err)
		}
		return pk.Bytes()
	}
	if !bytes.Equal(gen(), gen()) {
		t.Error("identical randomness produced different public keys")
	}
}

func TestSIDHErrors(t *testing.T) {
	params := P434Uncompressed
	rng := testRand("errors")
	prA, pkA, err := GenerateKeyPair(params, Alice, rng)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("role_mismatch", func(t *testing.T) {
		if _, err := DeriveSecret(prA, pkA); !errors.Is(err, ErrRoleMismatch) {
			t.Errorf("DeriveSecret() = %v, want ErrRoleMismatch", err)
		}
	})
	t.Run("not_generated", func(t *testing.T) {
		empty := NewPrivateKey(params, Bob)
		if _, err := empty.PublicKey(false); !errors.Is(err, ErrKeyNotGenerated) {
			t.Errorf("PublicKey() = %v, want ErrKeyNotGenerated", err)
		}
		if _, err := DeriveSecret(empty, pkA); !errors.Is(err, ErrKeyNotGenerated) {
			t.Errorf("DeriveSecret() = %v, want ErrKeyNotGenerated", err)
		}
	})
	t.Run("empty_public_key", func(t *testing.T) {
		prB := NewPrivateKey(params, Bob)
		if err := prB.Generate(rng); err != nil {
			t.Fatal(err)
		}
		if _, err := DeriveSecret(prB, NewPublicKey(params, Alice, false)); !errors.Is(err, ErrKeyNotGenerated) {
			t.Errorf("DeriveSecret() = %v, want ErrKeyNotGenerated", err)
		}
	})
	t.Run("private_key_length", func(t *testing.T) {
		k := NewPrivateKey(params, Bob)
		if err := k.SetBytes(make([]byte, 27)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("SetBytes() = %v, want ErrInvalidLength", err)
		}
	})
	t.Run("private_key_range", func(t *testing.T) {
		k := NewPrivateKey(params, Bob)
		b := make([]byte, params.B.SecretByteLen)
		b[len(b)-1] = 0x02
		if err := k.SetBytes(b); !errors.Is(err, ErrNonCanonical) {
			t.Errorf("SetBytes() = %v, want ErrNonCanonical", err)
		}
	})
	t.Run("public_key_length", func(t *testing.T) {
		pk := NewPublicKey(params, Bob, false)
		if err := pk.SetBytes(make([]byte, 3*Fp2Bytes-1)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("SetBytes() = %v, want ErrInvalidLength", err)
		}
	})
}

func TestPrivateKeyEncoding(t *testing.T) {
	rng := testRand("private encoding")
	for _, role := range []Role{Alice, Bob} {
		t.Run(role.String(), func(t *testing.T) {
			k := NewPrivateKey(P434, role)
			if err := k.Generate(rng); err != nil {
				t.Fatal(err)
			}
			d := P434.Domain(role)
			if len(k.Scalar) != d.SecretByteLen {
				t.Fatalf("scalar is %d bytes, want %d", len(k.Scalar), d.SecretByteLen)
			}
			if rem := d.SecretBitLen % 8; rem != 0 && k.Scalar[len(k.Scalar)-1]>>uint(rem) != 0 {
				t.Error("scalar exceeds its bit length")
			}

			k2 := NewPrivateKey(P434, role)
			if err := k2.SetBytes(k.Bytes()); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(k.Scalar, k2.Scalar) {
				t.Error("scalar round trip mismatch")
			}

			k.Clear()
			if k.Scalar != nil {
				t.Error("Clear should drop the scalar")
			}
		})
	}
}
