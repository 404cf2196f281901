package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"github.com/google/uuid"
)

// IDGenerator produces new session ids.
type IDGenerator func() (string, error)

// RandomID returns 32 cryptographically random bytes encoded as unpadded base64url.
func RandomID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// UUIDGenerator returns random (version 4) UUID strings.
func UUIDGenerator() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return id.String(), nil
}
