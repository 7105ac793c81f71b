package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost factor used for all stored password hashes.
const HashCost = 10

var ErrInvalidHashFormat = errors.New("invalid stored password hash")

// HashPassword hashes a password with bcrypt. The salt and cost are
// embedded in the returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a password against a stored bcrypt hash.
// A mismatch is reported as (false, nil); an error is returned only when
// the stored hash itself is malformed.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrInvalidHashFormat
}
