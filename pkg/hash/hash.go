// Package hash wraps bcrypt for password storage.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/tienda/config"
)

// Make returns the bcrypt hash of plain using the configured work factor
// (HASH_COST, bcrypt default when unset). A fresh salt is generated on
// every call, so hashing the same input twice yields different digests.
func Make(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), config.HashCost())
	if err != nil {
		return "", fmt.Errorf("hash: generate: %w", err)
	}
	return string(digest), nil
}

// Check reports whether plain matches the stored bcrypt hash.
func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
