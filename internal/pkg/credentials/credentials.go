// Package credentials derives and verifies stored password credentials.
// A credential is a (derived secret, salt) pair; the plaintext is never
// persisted or logged.
package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 cost used when none is configured.
	DefaultIterations = 210000

	saltLength = 16
	keyLength  = 32
)

// Credential is the stored representation of a password.
type Credential struct {
	// Hash is the hex-encoded derived secret.
	Hash string
	// Salt is the hex-encoded per-credential random salt.
	Salt string
}

// Codec derives and verifies credentials with a configured PBKDF2-SHA256 cost.
type Codec struct {
	iterations int
}

// NewCodec creates a codec with the given iteration count. Non-positive
// values fall back to DefaultIterations.
func NewCodec(iterations int) *Codec {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Codec{iterations: iterations}
}

// Derive produces a credential from a plaintext password. Each call draws a
// fresh random salt, so two calls with the same plaintext yield different
// credentials.
func (c *Codec) Derive(plaintext string) (Credential, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return Credential{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plaintext), salt, c.iterations, keyLength, sha256.New)

	return Credential{
		Hash: hex.EncodeToString(key),
		Salt: hex.EncodeToString(salt),
	}, nil
}

// Verify reports whether the plaintext matches the stored credential. The
// comparison is constant-time regardless of how many prefix bytes match.
func (c *Codec) Verify(plaintext string, cred Credential) bool {
	salt, err := hex.DecodeString(cred.Salt)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(cred.Hash)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(plaintext), salt, c.iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(key, stored) == 1
}
