package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of the plaintext password.
// The salt is generated per call, so hashing the same password twice
// yields different values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashingFailed, err)
	}
	return string(hash), nil
}

// CheckPassword recomputes the hash with the salt embedded in storedHash
// and compares in constant time. A mismatch returns (false, nil); an error
// is returned only when the stored hash itself is malformed.
func CheckPassword(password, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
