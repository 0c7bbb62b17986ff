package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the given plaintext
// password.
//
// bcrypt embeds a per-hash random salt and its cost factor in the digest
// itself, so two hashes of the same password differ while both still verify.
// cost controls the computational expense; values outside bcrypt's valid
// range fall back to [bcrypt.DefaultCost].
//
// Returns an error if the password is empty or hashing fails.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt
// digest.
//
// A mismatch is NOT an error: the function returns (false, nil) so callers
// can treat wrong passwords as an authentication outcome rather than a
// failure. A non-nil error is returned only for malformed digests or other
// bcrypt-level problems.
func VerifyPassword(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error verifying password: %w", err)
}
