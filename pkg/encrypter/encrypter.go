package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

func validateKey(key []byte) error {
	n := len(key)
	if n != AESKeyLen128 && n != AESKeyLen192 && n != AESKeyLen256 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, n)
	}
	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

func (e *implEncrypter) Encrypt(plaintext string) (string, error) {
	return e.EncryptBytesToString([]byte(plaintext))
}

func (e *implEncrypter) Decrypt(ciphertext string) (string, error) {
	plaintext, err := e.DecryptStringToBytes(ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptBytesToString seals data with a random nonce and returns base64(nonce|ciphertext).
func (e *implEncrypter) EncryptBytesToString(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *implEncrypter) DecryptStringToBytes(ciphertext string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	nonceSize := e.gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, body := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := e.gcm.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
