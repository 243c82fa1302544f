package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

// Access tokens are opaque and revocable. The plaintext handed to the
// client is "<token id>|<secret>"; only the SHA-256 of the secret is
// stored server-side, so a database leak does not leak usable tokens.

const secretBytes = 32

var ErrMalformedToken = errors.New("malformed access token")

// GenerateSecret returns a new random token secret and its storable hash.
func GenerateSecret() (secret, hash string, err error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	secret = hex.EncodeToString(buf)
	return secret, HashSecret(secret), nil
}

// HashSecret derives the stored form of a token secret.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// ComposeToken builds the plaintext token sent to the client.
func ComposeToken(id uint, secret string) string {
	return strconv.FormatUint(uint64(id), 10) + "|" + secret
}

// ParseToken splits a presented bearer token into its id and secret
// parts. The id lets the lookup hit the primary key instead of scanning
// hashes.
func ParseToken(token string) (id uint, secret string, err error) {
	idPart, secret, ok := strings.Cut(token, "|")
	if !ok || idPart == "" || secret == "" {
		return 0, "", ErrMalformedToken
	}
	parsed, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		return 0, "", ErrMalformedToken
	}
	return uint(parsed), secret, nil
}
