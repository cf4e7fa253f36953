package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/keyauth"
)

// TokenMiddleware guards API routes with a static bearer token.
type TokenMiddleware struct {
	token   string
	handler fiber.Handler
}

// NewTokenMiddleware creates a new token middleware. An empty token disables
// the check.
func NewTokenMiddleware(token string) *TokenMiddleware {
	m := &TokenMiddleware{token: token}
	if token != "" {
		// keyauth reads "Authorization: Bearer <token>" by default.
		m.handler = keyauth.New(keyauth.Config{
			Validator:    m.validate,
			ErrorHandler: unauthorized,
		})
	}
	return m
}

// Enabled reports whether requests must carry a token.
func (m *TokenMiddleware) Enabled() bool {
	return m.handler != nil
}

// RequireToken rejects requests without a matching Authorization header.
func (m *TokenMiddleware) RequireToken(c fiber.Ctx) error {
	if !m.Enabled() {
		return c.Next()
	}
	return m.handler(c)
}

func (m *TokenMiddleware) validate(c fiber.Ctx, key string) (bool, error) {
	if subtle.ConstantTimeCompare([]byte(key), []byte(m.token)) != 1 {
		return false, keyauth.ErrMissingOrMalformedAPIKey
	}
	return true, nil
}

func unauthorized(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "error",
		"error":  "unauthorized",
	})
}
