// internals/features/developers/service/api_key_service.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	apiKeyLen   = 32
	apiKeyChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateApiKey membuat secret 32 karakter alfanumerik + hash-nya.
// Secret hanya ditampilkan sekali ke developer; yang disimpan cuma hash.
func GenerateApiKey() (plaintext string, hash string, err error) {
	key := make([]byte, 0, apiKeyLen)
	buf := make([]byte, 64)
	for len(key) < apiKeyLen {
		if _, err := rand.Read(buf); err != nil {
			return "", "", fmt.Errorf("generate api key: %w", err)
		}
		for _, b := range buf {
			// rejection sampling biar distribusi karakter rata (248 = 4 * 62)
			if int(b) < 248 {
				key = append(key, apiKeyChars[int(b)%len(apiKeyChars)])
				if len(key) == apiKeyLen {
					break
				}
			}
		}
	}
	plaintext = string(key)
	return plaintext, HashApiKey(plaintext), nil
}

// HashApiKey: SHA-256 hex. Tanpa salt — secret sudah full entropy dan tidak
// pernah dipakai ulang sebagai password.
func HashApiKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
