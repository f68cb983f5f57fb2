// internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	developerService "quizku_backend/internals/features/developers/service"
)

// Kunci Locals untuk identitas hasil verifikasi.
const (
	LocDeveloperID = "developer_id"
	LocDeveloperSub = "developer_sub"
)

type AuthJWTOpts struct {
	Secret string
}

// AuthJWT: middleware management plane. Semua kegagalan (header kosong,
// token malformed, expired, signature salah) memakai satu pesan 401 yang
// sama supaya penyebabnya tidak bisa dibedakan dari luar.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing token")
		}

		claims, err := developerService.VerifyToken(secret, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing token")
		}

		c.Locals(LocDeveloperID, claims.DeveloperID.String())
		c.Locals(LocDeveloperSub, claims.Subject)
		return c.Next()
	}
}
