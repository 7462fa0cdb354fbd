// Package auth implements password hashing, bearer token issuance and the
// ownership checks applied to post mutations.
package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"boardapp/app/apperrors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes passwords one way and verifies candidates against a digest.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password produced digest.
	Verify(password, digest string) bool
}

// BcryptHasher is a PasswordHasher backed by bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given bcrypt cost. Out of range
// costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a bcrypt digest of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", apperrors.ErrInternal, err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. Malformed digests never match.
func (h *BcryptHasher) Verify(password, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), prehash(password)) == nil
}

// prehash folds passwords of any length into 44 bytes, below bcrypt's 72 byte limit.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
