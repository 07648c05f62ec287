// Package cryptox implements the symmetric cipher protecting stored secret
// values. Each secret is sealed with AES-256-GCM under a key derived from
// the server master secret; the random nonce is prepended to the ciphertext
// and the whole envelope is base64-encoded, so a single string column holds
// everything needed for decryption except the key.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"unicode/utf8"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// Cipher encrypts and decrypts secret values. It is safe for concurrent use;
// all state is the derived key, fixed at construction.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives an AES-256 key from masterSecret (SHA-256) and prepares
// the GCM AEAD. An empty master secret is a configuration error: callers
// treat it as fatal at startup, never as a per-request condition.
func NewCipher(masterSecret string) (*Cipher, error) {
	if masterSecret == "" {
		return nil, errors.New("master secret is empty")
	}

	key := sha256.Sum256([]byte(masterSecret))
	// The AEAD keeps its own key schedule; the digest is not needed after this.
	defer common.WipeByteArray(key[:])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext and returns the envelope string. A fresh nonce is
// generated on every call, so encrypting the same value twice yields two
// different envelopes.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := common.GenerateRandByteArray(c.aead.NonceSize())

	// Seal appends the ciphertext to the nonce: envelope = nonce || ciphertext.
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens an envelope produced by Encrypt. Any failure — malformed
// envelope, wrong master secret, or a plaintext that is not valid UTF-8 —
// is reported as common.ErrDecryptionFailed so callers can substitute a
// sentinel and keep going.
func (c *Cipher) Decrypt(envelope string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", common.ErrDecryptionFailed
	}

	ns := c.aead.NonceSize()
	if len(raw) < ns {
		return "", common.ErrDecryptionFailed
	}

	plaintext, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", common.ErrDecryptionFailed
	}
	if !utf8.Valid(plaintext) {
		return "", common.ErrDecryptionFailed
	}

	return string(plaintext), nil
}
