// internals/features/developers/service/password_service.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword meng-hash password plaintext. Plaintext tidak pernah di-log
// ataupun dikembalikan ke caller selain lewat hash-nya.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword membandingkan hash tersimpan dengan password yang dikirim.
func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
