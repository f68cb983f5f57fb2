// internals/features/developers/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/id"
)

// ErrInvalidToken: satu error untuk semua penyebab (hilang, malformed,
// expired, signature salah) supaya detail verifikasi tidak bocor ke client.
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 24 * time.Hour

type Claims struct {
	Subject     string
	DeveloperID id.ID
}

// IssueToken menerbitkan bearer token HS256 dengan expiry absolut 24 jam.
func IssueToken(secret string, subject string, developerID id.ID) (string, error) {
	claims := jwt.MapClaims{
		"sub":          subject,
		"developer_id": developerID.String(),
		"exp":          time.Now().Add(tokenTTL).Unix(),
		"iat":          time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken memverifikasi signature + exp dan mengembalikan claims.
func VerifyToken(secret string, raw string) (*Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	devStr, _ := claims["developer_id"].(string)
	devID, perr := id.Parse(devStr)
	if perr != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{Subject: sub, DeveloperID: devID}, nil
}
