package util

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters for stored user passwords.
const (
	saltLength   = 16
	hashLength   = 32
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var (
	errEmptyPassword = errors.New("password cannot be empty")
	errEmptySalt     = errors.New("salt cannot be empty")
)

func newSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func HashPassword(password string, salt []byte) ([]byte, error) {
	switch {
	case password == "":
		return nil, errEmptyPassword
	case len(salt) == 0:
		return nil, errEmptySalt
	}
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, hashLength), nil
}

// DerivePassword hashes password under a fresh random salt.
func DerivePassword(password string) (hash, salt []byte, err error) {
	if salt, err = newSalt(); err != nil {
		return nil, nil, err
	}
	if hash, err = HashPassword(password, salt); err != nil {
		return nil, nil, err
	}
	return hash, salt, nil
}

func VerifyPassword(password string, salt, expectedHash []byte) bool {
	if len(expectedHash) == 0 {
		return false
	}
	candidate, err := HashPassword(password, salt)
	if err != nil || len(candidate) != len(expectedHash) {
		return false
	}
	return subtle.ConstantTimeCompare(candidate, expectedHash) == 1
}
