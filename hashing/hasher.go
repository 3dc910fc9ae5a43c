package hashing

import (
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DriverName identifies a digest algorithm driver.
type DriverName string

const (
	// DriverBlake2b selects the BLAKE2b driver.
	DriverBlake2b DriverName = "blake2b"
	// DriverSHA3 selects the SHA3-256 driver.
	DriverSHA3 DriverName = "sha3"
)

// ParseDriverName validates s as one of the built-in driver names.
func ParseDriverName(s string) (DriverName, error) {
	switch d := DriverName(s); d {
	case DriverBlake2b, DriverSHA3:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrDriverNotFound, s)
}

// Hasher digests bytes into a printable key.
//
// All implementations must be safe for concurrent use by multiple goroutines
// and must be deterministic: the same input always yields the same output.
type Hasher interface {
	// Sum returns the hex-encoded digest of data.
	Sum(data []byte) string

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// Canonical returns the deterministic encoding of v that keys are derived
// from. Map members are sorted by key.
func Canonical(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// BLAKE2b
// ──────────────────────────────────────────────────────────────────────────────

// Blake2bOptions configures a [Blake2bHasher].
type Blake2bOptions struct {
	// Size is the digest length in bytes, 1 to 64.
	Size int
	// Key makes the digest a keyed MAC when non-empty; at most 64 bytes.
	Key []byte
}

// DefaultBlake2bOptions returns a 32-byte, unkeyed configuration.
func DefaultBlake2bOptions() Blake2bOptions {
	return Blake2bOptions{Size: blake2b.Size256}
}

// Blake2bHasher implements [Hasher] with BLAKE2b.
type Blake2bHasher struct {
	size int
	key  []byte
}

// NewBlake2bHasher validates opts and returns a hasher.
func NewBlake2bHasher(opts Blake2bOptions) (*Blake2bHasher, error) {
	if opts.Size < 1 || opts.Size > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b size must be between 1 and %d (got %d)",
			ErrInvalidOption, blake2b.Size, opts.Size)
	}
	if len(opts.Key) > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b key must be at most %d bytes",
			ErrInvalidOption, blake2b.Size)
	}
	key := make([]byte, len(opts.Key))
	copy(key, opts.Key)
	return &Blake2bHasher{size: opts.Size, key: key}, nil
}

// Sum implements [Hasher].
func (h *Blake2bHasher) Sum(data []byte) string {
	d, err := blake2b.New(h.size, h.key)
	if err != nil {
		// size and key were validated by NewBlake2bHasher.
		panic(err)
	}
	d.Write(data)
	return hex.EncodeToString(d.Sum(nil))
}

// Driver implements [Hasher].
func (h *Blake2bHasher) Driver() DriverName { return DriverBlake2b }

// ──────────────────────────────────────────────────────────────────────────────
// SHA3
// ──────────────────────────────────────────────────────────────────────────────

// SHA3Hasher implements [Hasher] with SHA3-256.
type SHA3Hasher struct{}

// NewSHA3Hasher returns a SHA3-256 hasher.
func NewSHA3Hasher() *SHA3Hasher { return &SHA3Hasher{} }

// Sum implements [Hasher].
func (SHA3Hasher) Sum(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Driver implements [Hasher].
func (SHA3Hasher) Driver() DriverName { return DriverSHA3 }
