// Package digest computes content digests of messages for display.
//
// Digests identify a dump at a glance (the same patch always hashes the same);
// they are never used for equality or lookup.
package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Algorithm selects a digest function.
type Algorithm uint8

const (
	// MD5 is the default, matching the digests printed by other SysEx librarians.
	MD5 Algorithm = iota
	SHA256
	BLAKE2b
)

// String returns the algorithm name as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA256:
		return "sha256"
	case BLAKE2b:
		return "blake2b"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses an algorithm name (case-insensitive). An empty name
// selects MD5.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "md5":
		return MD5, nil
	case "sha256", "sha-256":
		return SHA256, nil
	case "blake2b", "blake2b-256":
		return BLAKE2b, nil
	default:
		return MD5, fmt.Errorf("unknown digest algorithm %q (want md5, sha256 or blake2b)", name)
	}
}

// New returns a fresh hash for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New()
	case BLAKE2b:
		// An unkeyed BLAKE2b-256 cannot fail.
		h, _ := blake2b.New256(nil)
		return h
	default:
		return md5.New()
	}
}

// Sum returns the digest of data.
func (a Algorithm) Sum(data []byte) []byte {
	h := a.New()
	h.Write(data)
	return h.Sum(nil)
}

// Hex returns the digest of data as lowercase hex.
func (a Algorithm) Hex(data []byte) string {
	return hex.EncodeToString(a.Sum(data))
}
