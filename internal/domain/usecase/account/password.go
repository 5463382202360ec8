package account

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const saltBytes = 16

func newSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

func hashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

func passwordMatches(salt, password, expectedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(hashPassword(salt, password)), []byte(expectedHash)) == 1
}
