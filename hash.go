package flame

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// HashAlgo represents a supported hashing algorithm.
type HashAlgo string

const (
	// HashArgon2 uses Argon2id for password hashing (salted, slow).
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt uses bcrypt for password hashing (salted, slow).
	HashBcrypt HashAlgo = "bcrypt"

	// HashSHA256 uses SHA-256 for deterministic hashing (fast, no salt).
	// Use for fingerprinting/identification, NOT for passwords.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512 for deterministic hashing (fast, no salt).
	// Use for fingerprinting/identification, NOT for passwords.
	HashSHA512 HashAlgo = "sha512"
)

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output key length
	SaltLen uint32 // Salt length
}

// DefaultArgon2Params returns the OWASP-recommended Argon2id parameters.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// Hash returns a coercer hashing a string or []byte with algo. The result is
// a string: hex for sha256/sha512, the encoded PHC/bcrypt form otherwise.
// Unknown algorithms fail at call time with ErrUnknownCoercer.
func Hash(algo HashAlgo) Coercer {
	switch algo {
	case HashArgon2:
		return Argon2(DefaultArgon2Params())
	case HashBcrypt:
		return Bcrypt(bcrypt.DefaultCost)
	case HashSHA256:
		return hashFunc(func(b []byte) (string, error) {
			sum := sha256.Sum256(b)
			return hex.EncodeToString(sum[:]), nil
		})
	case HashSHA512:
		return hashFunc(func(b []byte) (string, error) {
			sum := sha512.Sum512(b)
			return hex.EncodeToString(sum[:]), nil
		})
	default:
		return CoerceFunc(func(any) (any, error) {
			return nil, fmt.Errorf("%w: hash %q", ErrUnknownCoercer, algo)
		})
	}
}

// Argon2 returns an Argon2id hashing coercer with custom parameters.
func Argon2(params Argon2Params) Coercer {
	return hashFunc(func(plaintext []byte) (string, error) {
		salt := make([]byte, params.SaltLen)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return "", fmt.Errorf("failed to generate salt: %w", err)
		}

		key := argon2.IDKey(plaintext, salt, params.Time, params.Memory, params.Threads, params.KeyLen)

		// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
		return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
			argon2.Version,
			params.Memory,
			params.Time,
			params.Threads,
			base64.RawStdEncoding.EncodeToString(salt),
			base64.RawStdEncoding.EncodeToString(key),
		), nil
	})
}

// Bcrypt returns a bcrypt hashing coercer with the given cost.
func Bcrypt(cost int) Coercer {
	return hashFunc(func(plaintext []byte) (string, error) {
		hash, err := bcrypt.GenerateFromPassword(plaintext, cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt hash failed: %w", err)
		}
		return string(hash), nil
	})
}

// hashFunc lifts a byte hasher into a Coercer.
func hashFunc(h func([]byte) (string, error)) Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		b, err := toBytes(raw)
		if err != nil {
			return nil, err
		}
		return h(b)
	})
}
