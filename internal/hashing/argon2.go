// Package hashing provides Argon2id password hashing in PHC string format.
//
// Parameters are embedded in every hash string, so verification is
// self-describing: hashes produced under old cost settings keep verifying
// after the settings change.
package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Cost parameters. Deliberately low for fast verification; raise for
// production hardening.
const (
	Memory  uint32 = 2048 // KiB
	Time    uint32 = 4    // iterations
	Threads uint8  = 1    // parallelism

	saltLength uint32 = 16
	keyLength  uint32 = 32
)

// ErrInvalidHash is returned when a stored hash string cannot be parsed.
// A plain password mismatch is not an error; Verify reports it as false.
var ErrInvalidHash = errors.New("hashing: malformed argon2id hash string")

type params struct {
	version int
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	digest  []byte
}

// Hash derives an Argon2id digest of password under a fresh random salt and
// returns it as a PHC string:
//
//	$argon2id$v=19$m=2048,t=4,p=1$<salt>$<digest>
func Hash(password []byte) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	digest := argon2.IDKey(password, salt, Time, Memory, Threads, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, Memory, Time, Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return encoded, nil
}

// Verify re-derives the digest of password using the parameters embedded in
// encoded and compares in constant time. A mismatch returns (false, nil);
// only a structurally invalid hash string returns an error.
func Verify(password []byte, encoded string) (bool, error) {
	p, err := decode(encoded)
	if err != nil {
		return false, err
	}

	digest := argon2.IDKey(password, p.salt, p.time, p.memory, p.threads, uint32(len(p.digest)))
	return subtle.ConstantTimeCompare(digest, p.digest) == 1, nil
}

// decode parses a PHC-format Argon2id string into its components.
func decode(encoded string) (*params, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, ErrInvalidHash
	}
	if parts[1] != "argon2id" {
		return nil, fmt.Errorf("%w: unsupported variant %q", ErrInvalidHash, parts[1])
	}

	p := &params{}
	if _, err := fmt.Sscanf(parts[2], "v=%d", &p.version); err != nil {
		return nil, ErrInvalidHash
	}
	if p.version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, p.version)
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, ErrInvalidHash
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return nil, ErrInvalidHash
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, ErrInvalidHash
	}
	if p.digest, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, ErrInvalidHash
	}
	if len(p.salt) == 0 || len(p.digest) == 0 {
		return nil, ErrInvalidHash
	}

	return p, nil
}
