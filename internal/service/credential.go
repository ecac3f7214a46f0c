package service

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes      = 16
	hashIterations = 10000
	hashKeyLength  = 64
)

// CredentialStore derives and verifies salted password hashes. All methods are
// pure; persistence belongs to AuthService.
type CredentialStore struct{}

// NewCredentialStore creates a credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// GenerateSalt produces a fresh random salt, hex-encoded. One salt per user.
func (s *CredentialStore) GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives a PBKDF2-SHA512 key from password and salt,
// hex-encoded. Deterministic: same inputs always yield the same output.
func (s *CredentialStore) HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the hash and compares it against storedHash in
// constant time. Returns false on any mismatch, never an error.
func (s *CredentialStore) VerifyPassword(password, salt, storedHash string) bool {
	computed := s.HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
