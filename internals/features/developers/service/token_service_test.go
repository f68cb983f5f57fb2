package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/id"
)

const testSecret = "test-secret"

func TestIssueAndVerifyToken(t *testing.T) {
	devID := id.New()
	tok, err := IssueToken(testSecret, "alice", devID)
	if err != nil {
		t.Fatalf("IssueToken error = %v", err)
	}

	claims, err := VerifyToken(testSecret, tok)
	if err != nil {
		t.Fatalf("VerifyToken error = %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "alice")
	}
	if claims.DeveloperID != devID {
		t.Errorf("DeveloperID = %v, want %v", claims.DeveloperID, devID)
	}
}

func TestVerifyTokenRejections(t *testing.T) {
	devID := id.New()
	valid, _ := IssueToken(testSecret, "alice", devID)

	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          "alice",
		"developer_id": devID.String(),
		"exp":          time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testSecret))

	noDev, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))

	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "bukan.token.jwt"},
		{"empty", ""},
		{"expired", expired},
		{"wrong secret", func() string {
			tok, _ := IssueToken("secret-lain", "alice", devID)
			return tok
		}()},
		{"missing developer_id", noDev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// semua penyebab harus jatuh ke error yang sama
			if _, err := VerifyToken(testSecret, tt.raw); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("VerifyToken error = %v, want ErrInvalidToken", err)
			}
		})
	}

	if _, err := VerifyToken(testSecret, valid); err != nil {
		t.Errorf("valid token rejected: %v", err)
	}
}
