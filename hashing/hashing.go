package hashing

import (
	"bytes"
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Sha512 returns the SHA512 hashing of the given Hashable as a hex-encoded string.
func Sha512(hashable Hashable) (string, error) {
	return digest(sha512.New(), hashable)
}

// Sha1 returns the SHA1 hashing of the given Hashable as a hex-encoded string.
func Sha1(hashable Hashable) (string, error) {
	return digest(sha1.New(), hashable) //nolint:gosec
}

// Md5 returns the MD5 hashing of the given Hashable as a hex-encoded string.
func Md5(hashable Hashable) (string, error) {
	return digest(md5.New(), hashable) //nolint:gosec
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable as a hex-encoded string.
// It is not cryptographic, but it is fast and stable across processes.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash of the given Hashable as a hex-encoded string.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// Equals treats nil and empty byte slices as equal.
func (b HashableBytes) Equals(other HashableBytes) bool {
	return bytes.Equal(b, other)
}

// HashCode hashes the contents only, so nil and empty agree as they do in Equals.
func (b HashableBytes) HashCode() uint64 {
	return xxh3.Hash(b)
}
