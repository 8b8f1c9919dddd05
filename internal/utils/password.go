package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a one-way bcrypt digest of the given password.
// cost selects the bcrypt work factor; zero or out-of-range values fall back
// to the library default.
//
// The digest embeds its own salt and cost, so no extra parameters need to be
// stored alongside it.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored bcrypt digest.
// The comparison is constant-time inside bcrypt, so a mismatch reveals
// nothing about how close the guess was.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
