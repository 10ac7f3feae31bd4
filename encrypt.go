package flame

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Encryption errors.
var (
	ErrInvalidKeySize  = errors.New("invalid key size")
	ErrCiphertextShort = errors.New("ciphertext too short")
)

// Encryptor handles encryption/decryption operations.
type Encryptor interface {
	// Encrypt encrypts plaintext and returns ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and returns plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// aesEncryptor implements AES-GCM encryption.
// Ciphertext layout: nonce || sealed.
type aesEncryptor struct {
	gcm cipher.AEAD
}

// AES returns an AES-GCM encryptor.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func AES(key []byte) (Encryptor, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &aesEncryptor{gcm: gcm}, nil
}

func (e *aesEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, e.gcm.NonceSize(), e.gcm.NonceSize()+len(plaintext)+e.gcm.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return e.gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (e *aesEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	size := e.gcm.NonceSize()
	if len(ciphertext) < size {
		return nil, ErrCiphertextShort
	}
	return e.gcm.Open(nil, ciphertext[:size], ciphertext[size:], nil)
}

// Seal returns a coercer encrypting a string or []byte with enc. The result
// is the base64 (standard encoding) ciphertext string.
func Seal(enc Encryptor) Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		plaintext, err := toBytes(raw)
		if err != nil {
			return nil, err
		}
		ciphertext, err := enc.Encrypt(plaintext)
		if err != nil {
			return nil, err
		}
		return base64.StdEncoding.EncodeToString(ciphertext), nil
	})
}

// Open returns a coercer decrypting a base64 ciphertext produced by Seal.
// The result is the plaintext string.
func Open(enc Encryptor) Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		s, err := toString(raw)
		if err != nil {
			return nil, err
		}
		ciphertext, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, err
		}
		plaintext, err := enc.Decrypt(ciphertext)
		if err != nil {
			return nil, err
		}
		return string(plaintext), nil
	})
}
