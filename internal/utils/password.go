package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch means the plaintext does not match the digest.
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrInvalidDigest means the stored digest is not a valid bcrypt hash.
	ErrInvalidDigest = errors.New("invalid password digest")
)

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPassword checks plain against a stored bcrypt digest. A malformed
// digest is reported as ErrInvalidDigest rather than panicking, so callers
// can treat it as a plain deny.
func VerifyPassword(digest, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return ErrInvalidDigest
	}
}
