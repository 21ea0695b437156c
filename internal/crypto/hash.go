package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// maxHashMemory caps the KiB a parsed hash may ask argon2 to allocate.
const maxHashMemory = 1024 * 1024

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// HashParams configures the Argon2id hashing parameters.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams returns the Argon2id parameters used for generated passwords.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// phcHash is a decoded $argon2id$v=..$m=..,t=..,p=..$salt$key string.
type phcHash struct {
	params HashParams
	salt   []byte
	key    []byte
}

func (h phcHash) String() string {
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		b64.EncodeToString(h.salt), b64.EncodeToString(h.key))
}

func derive(password string, salt []byte, p HashParams) []byte {
	return argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// HashPassword digests password so it can be handed to systems that store
// hashes rather than secrets.
func HashPassword(password string) (string, error) {
	return HashPasswordWith(password, DefaultHashParams())
}

// HashPasswordWith digests password with explicit parameters.
func HashPasswordWith(password string, params HashParams) (string, error) {
	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	h := phcHash{params: params, salt: salt, key: derive(password, salt, params)}
	return h.String(), nil
}

// VerifyPassword checks password against a hash produced by HashPassword.
func VerifyPassword(password, encodedHash string) (bool, error) {
	h, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := derive(password, h.salt, h.params)
	return subtle.ConstantTimeCompare(h.key, candidate) == 1, nil
}

func parsePHC(encoded string) (phcHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return phcHash{}, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return phcHash{}, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return phcHash{}, ErrIncompatibleVersion
	}

	var h phcHash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Iterations, &h.params.Parallelism); err != nil {
		return phcHash{}, ErrInvalidHashFormat
	}
	if h.params.Iterations < 1 || h.params.Parallelism < 1 || h.params.Memory > maxHashMemory {
		return phcHash{}, ErrInvalidHashFormat
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return phcHash{}, ErrInvalidHashFormat
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return phcHash{}, ErrInvalidHashFormat
	}
	if len(h.salt) == 0 || len(h.key) == 0 {
		return phcHash{}, ErrInvalidHashFormat
	}
	h.params.SaltLength = uint32(len(h.salt))
	h.params.KeyLength = uint32(len(h.key))

	return h, nil
}
