package local

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// AESGCMTokenVault implements TokenVaultPort with AES-256-GCM. Tokens must
// be deterministic for a given input, which an AEAD normally can't give
// you since it demands a random nonce per encryption. Instead the nonce is
// derived as HMAC-SHA256(key, valueType || 0x00 || value)[:12], a synthetic-IV
// construction that trades semantic security for equality-checkable
// ciphertext, which the CPF-tokenization use case needs.
type AESGCMTokenVault struct {
	gcm cipher.AEAD
	key []byte
}

// NewAESGCMTokenVault derives a 32-byte AES key from masterSecret (scoped
// with a fixed domain-separation label so this key never collides with a
// hash computed over the same secret elsewhere) and returns a ready-to-use
// vault.
func NewAESGCMTokenVault(masterSecret []byte) (*AESGCMTokenVault, error) {
	mac := hmac.New(sha256.New, masterSecret)
	mac.Write([]byte("ledger-core-token-vault"))
	key := mac.Sum(nil)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &AESGCMTokenVault{gcm: gcm, key: key}, nil
}

func (v *AESGCMTokenVault) nonceFor(valueType, value string) []byte {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(valueType))
	mac.Write([]byte{0})
	mac.Write([]byte(value))

	return mac.Sum(nil)[:v.gcm.NonceSize()]
}

// Tokenize returns a deterministic, reversible token for value. The token
// encodes valueType, the nonce, and the ciphertext, so Detokenize needs no
// external lookup to reverse it.
func (v *AESGCMTokenVault) Tokenize(_ context.Context, value, valueType string) (string, error) {
	nonce := v.nonceFor(valueType, value)
	ciphertext := v.gcm.Seal(nil, nonce, []byte(value), []byte(valueType))

	payload := append(append([]byte(valueType+"\x00"), nonce...), ciphertext...)

	return "tok_" + base64.RawURLEncoding.EncodeToString(payload), nil
}

// Detokenize reverses Tokenize.
func (v *AESGCMTokenVault) Detokenize(_ context.Context, token string) (string, error) {
	const prefix = "tok_"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", errors.New("tokenvault: malformed token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(token[len(prefix):])
	if err != nil {
		return "", fmt.Errorf("tokenvault: bad token encoding: %w", err)
	}

	sep := -1

	for i, b := range payload {
		if b == 0 {
			sep = i
			break
		}
	}

	if sep < 0 {
		return "", errors.New("tokenvault: malformed token payload")
	}

	valueType := string(payload[:sep])
	rest := payload[sep+1:]
	nonceSize := v.gcm.NonceSize()

	if len(rest) < nonceSize {
		return "", errors.New("tokenvault: truncated token payload")
	}

	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := v.gcm.Open(nil, nonce, ciphertext, []byte(valueType))
	if err != nil {
		return "", fmt.Errorf("tokenvault: decrypt failed: %w", err)
	}

	return string(plaintext), nil
}
