package sike

import (
	"hash"
	"io"
	"unsafe"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
)

// cSHAKE256 customisation strings of the three random oracles of the
// Fujisaki-Okamoto transform
var (
	customG = []byte("SIKE-G")
	customH = []byte("SIKE-H")
	customF = []byte("SIKE-F")
)

// shake writes the cSHAKE256 digest of the concatenated inputs, customised
// with custom, into out
func shake(out []byte, custom []byte, in ...[]byte) {
	h := sha3.NewCShake256(nil, custom)
	for _, b := range in {
		h.Write(b)
	}
	h.Read(out)
}

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	return &SHA256{hasher: sha256simd.New()}
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize finalizes the hash and writes the result to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// Clear clears the hash context
func (h *SHA256) Clear() {
	memclear(unsafe.Pointer(h), unsafe.Sizeof(*h))
}

// HMACSHA256 represents an HMAC-SHA256 context
type HMACSHA256 struct {
	inner, outer SHA256
}

// NewHMACSHA256 creates a new HMAC-SHA256 context with the given key
func NewHMACSHA256(key []byte) *HMACSHA256 {
	h := &HMACSHA256{}

	// keys longer than a block are hashed first
	var rkey [64]byte
	if len(key) <= 64 {
		copy(rkey[:], key)
	} else {
		sum := sha256simd.Sum256(key)
		copy(rkey[:32], sum[:])
	}

	h.outer = SHA256{hasher: sha256simd.New()}
	for i := range rkey {
		rkey[i] ^= 0x5c
	}
	h.outer.hasher.Write(rkey[:])

	h.inner = SHA256{hasher: sha256simd.New()}
	for i := range rkey {
		rkey[i] ^= 0x5c ^ 0x36
	}
	h.inner.hasher.Write(rkey[:])

	memclear(unsafe.Pointer(&rkey), unsafe.Sizeof(rkey))
	return h
}

// Write writes data to the inner hash
func (h *HMACSHA256) Write(data []byte) {
	h.inner.Write(data)
}

// Finalize finalizes the HMAC and writes the result to out32 (must be 32 bytes)
func (h *HMACSHA256) Finalize(out32 []byte) {
	var temp [32]byte
	h.inner.Finalize(temp[:])
	h.outer.Write(temp[:])
	h.outer.Finalize(out32)
	memclear(unsafe.Pointer(&temp), unsafe.Sizeof(temp))
}

// Clear clears the HMAC context
func (h *HMACSHA256) Clear() {
	h.inner.Clear()
	h.outer.Clear()
}

// hmacSum computes HMAC_key(parts...) into out32
func hmacSum(out32, key []byte, parts ...[]byte) {
	mac := NewHMACSHA256(key)
	for _, p := range parts {
		mac.Write(p)
	}
	mac.Finalize(out32)
	mac.Clear()
}

// DeterministicReader is an HMAC-SHA256 DRBG (NIST SP 800-90A without
// reseeding) exposed as an io.Reader. Identical seeds produce identical
// streams, which makes key generation reproducible in tests and tooling.
// It is not safe for concurrent use.
type DeterministicReader struct {
	v [32]byte
	k [32]byte
}

var _ io.Reader = (*DeterministicReader)(nil)

// NewDeterministicReader instantiates the DRBG from seed
func NewDeterministicReader(seed []byte) *DeterministicReader {
	d := &DeterministicReader{}
	for i := range d.v {
		d.v[i] = 0x01
	}
	d.update(seed)
	return d
}

// update is the HMAC_DRBG update function
func (d *DeterministicReader) update(data []byte) {
	hmacSum(d.k[:], d.k[:], d.v[:], []byte{0x00}, data)
	hmacSum(d.v[:], d.k[:], d.v[:])
	if len(data) == 0 {
		return
	}
	hmacSum(d.k[:], d.k[:], d.v[:], []byte{0x01}, data)
	hmacSum(d.v[:], d.k[:], d.v[:])
}

// Read fills out with the next bytes of the stream. It never fails.
func (d *DeterministicReader) Read(out []byte) (int, error) {
	n := len(out)
	for len(out) > 0 {
		hmacSum(d.v[:], d.k[:], d.v[:])
		c := copy(out, d.v[:])
		out = out[c:]
	}
	d.update(nil)
	return n, nil
}

// Clear wipes the DRBG state
func (d *DeterministicReader) Clear() {
	memclear(unsafe.Pointer(d), unsafe.Sizeof(*d))
}
