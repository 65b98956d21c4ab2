// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/ripemd160" //nolint:gosec
	"golang.org/x/crypto/sha3"
)

// Digest algorithm names accepted by Compute.
const (
	SHA256    = "SHA-256"
	SHA384    = "SHA-384"
	SHA512    = "SHA-512"
	SHA3256   = "SHA3-256"
	SHA3512   = "SHA3-512"
	RIPEMD160 = "RIPEMD-160"
)

var (
	ErrUnknownAlgorithm    = errors.New("unknown digest algorithm")
	ErrMalformedSecureHash = errors.New("malformed secure hash")

	digests = map[string]func() hash.Hash{
		SHA256:    sha256.New,
		SHA384:    sha512.New384,
		SHA512:    sha512.New,
		SHA3256:   sha3.New256,
		SHA3512:   sha3.New512,
		RIPEMD160: ripemd160.New, //nolint:gosec
	}
)

// SecureHash is a digest tagged with the algorithm that produced it. The zero
// value is the empty hash.
//
// SecureHash is comparable and may be used as a map key.
type SecureHash struct {
	algorithm string
	digest    string
}

// NewSecureHash wraps an already computed digest.
func NewSecureHash(algorithm string, digest []byte) SecureHash {
	return SecureHash{
		algorithm: algorithm,
		digest:    string(digest),
	}
}

// Compute hashes [data] with the named algorithm.
func Compute(algorithm string, data []byte) (SecureHash, error) {
	newHash, ok := digests[algorithm]
	if !ok {
		return SecureHash{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	h := newHash()
	_, _ = h.Write(data)
	return NewSecureHash(algorithm, h.Sum(nil)), nil
}

// IsSupported returns true if Compute accepts [algorithm].
func IsSupported(algorithm string) bool {
	_, ok := digests[algorithm]
	return ok
}

// SecureHashFromString is the inverse of SecureHash.String
func SecureHashFromString(s string) (SecureHash, error) {
	algorithm, digestHex, ok := strings.Cut(s, ":")
	if !ok || algorithm == "" {
		return SecureHash{}, fmt.Errorf("%w: %q", ErrMalformedSecureHash, s)
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return SecureHash{}, fmt.Errorf("%w: %w", ErrMalformedSecureHash, err)
	}
	return NewSecureHash(algorithm, digest), nil
}

func (h SecureHash) Algorithm() string {
	return h.algorithm
}

// Bytes returns a copy of the digest.
func (h SecureHash) Bytes() []byte {
	return []byte(h.digest)
}

func (h SecureHash) IsZero() bool {
	return h == SecureHash{}
}

func (h SecureHash) String() string {
	return h.algorithm + ":" + strings.ToUpper(hex.EncodeToString([]byte(h.digest)))
}

func (h SecureHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *SecureHash) UnmarshalText(text []byte) error {
	parsed, err := SecureHashFromString(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
