package bench

import (
	"testing"

	"sike.mleku.dev"
	"sike.mleku.dev/kem"
)

// This file contains benchmarks comparing the two SIKEp434 parameter sets:
// 1. P434 (compressed public keys and ciphertexts)
// 2. P434Uncompressed (three x-coordinates per public key)

var benchSeed = []byte("sike benchmark seed")

type benchData struct {
	sk, pk, ct []byte
}

func initBenchData(b *testing.B, params *sike.Params) benchData {
	b.Helper()
	s := kem.NewSeededSIKE(params, benchSeed)
	sk, pk, err := s.Keypair()
	if err != nil {
		b.Fatalf("failed to generate key pair: %v", err)
	}
	ct, _, err := s.EncapsulateTo(pk)
	if err != nil {
		b.Fatalf("failed to encapsulate: %v", err)
	}
	return benchData{sk: sk, pk: pk, ct: ct}
}

func benchKeygen(b *testing.B, params *sike.Params) {
	s := kem.NewSeededSIKE(params, benchSeed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.Keypair(); err != nil {
			b.Fatalf("failed to generate key pair: %v", err)
		}
	}
}

func benchEncaps(b *testing.B, params *sike.Params) {
	d := initBenchData(b, params)
	s := kem.NewSeededSIKE(params, benchSeed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.EncapsulateTo(d.pk); err != nil {
			b.Fatalf("failed to encapsulate: %v", err)
		}
	}
}

func benchDecaps(b *testing.B, params *sike.Params) {
	d := initBenchData(b, params)
	s := kem.NewSeededSIKE(params, benchSeed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.DecapsulateWith(d.sk, d.ct); err != nil {
			b.Fatalf("failed to decapsulate: %v", err)
		}
	}
}

func BenchmarkKeygen_Compressed(b *testing.B)   { benchKeygen(b, sike.P434) }
func BenchmarkKeygen_Uncompressed(b *testing.B) { benchKeygen(b, sike.P434Uncompressed) }

func BenchmarkEncaps_Compressed(b *testing.B)   { benchEncaps(b, sike.P434) }
func BenchmarkEncaps_Uncompressed(b *testing.B) { benchEncaps(b, sike.P434Uncompressed) }

func BenchmarkDecaps_Compressed(b *testing.B)   { benchDecaps(b, sike.P434) }
func BenchmarkDecaps_Uncompressed(b *testing.B) { benchDecaps(b, sike.P434Uncompressed) }

// BenchmarkAgreement compares a full SIDH exchange, both sides
func BenchmarkAgreement_Compressed(b *testing.B)   { benchAgreement(b, sike.P434) }
func BenchmarkAgreement_Uncompressed(b *testing.B) { benchAgreement(b, sike.P434Uncompressed) }

func benchAgreement(b *testing.B, params *sike.Params) {
	rng := sike.NewDeterministicReader(benchSeed)
	skA, pkA, err := sike.GenerateKeyPair(params, sike.Alice, rng)
	if err != nil {
		b.Fatal(err)
	}
	skB, pkB, err := sike.GenerateKeyPair(params, sike.Bob, rng)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sike.DeriveSecret(skA, pkB); err != nil {
			b.Fatal(err)
		}
		if _, err := sike.DeriveSecret(skB, pkA); err != nil {
			b.Fatal(err)
		}
	}
}
