package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialStore_GenerateSalt(t *testing.T) {
	store := NewCredentialStore()

	salt, err := store.GenerateSalt()
	assert.NoError(t, err)
	assert.Len(t, salt, saltBytes*2)

	raw, err := hex.DecodeString(salt)
	assert.NoError(t, err)
	assert.Len(t, raw, saltBytes)

	other, err := store.GenerateSalt()
	assert.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestCredentialStore_HashPassword(t *testing.T) {
	store := NewCredentialStore()

	hash := store.HashPassword("secret1", "aabbccdd")

	// Deterministic: same inputs, same output.
	assert.Equal(t, hash, store.HashPassword("secret1", "aabbccdd"))
	assert.Len(t, hash, hashKeyLength*2)

	// Different salt, different hash.
	assert.NotEqual(t, hash, store.HashPassword("secret1", "ddccbbaa"))
	// Different password, different hash.
	assert.NotEqual(t, hash, store.HashPassword("secret2", "aabbccdd"))
}

func TestCredentialStore_VerifyPassword(t *testing.T) {
	store := NewCredentialStore()
	salt, err := store.GenerateSalt()
	assert.NoError(t, err)
	hash := store.HashPassword("secret1", salt)

	tests := []struct {
		name     string
		password string
		salt     string
		hash     string
		want     bool
	}{
		{"matching password", "secret1", salt, hash, true},
		{"wrong password", "secret2", salt, hash, false},
		{"wrong salt", "secret1", "00000000000000000000000000000000", hash, false},
		{"empty password", "", salt, hash, false},
		{"garbage hash", "secret1", salt, "not-a-hash", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.VerifyPassword(tt.password, tt.salt, tt.hash))
		})
	}
}
