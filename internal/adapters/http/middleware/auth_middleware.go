package middleware

import (
	"activotrack/internal/adapters/identity"
	"activotrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalAccountID = "accountID"
	LocalEmail     = "email"
)

// AuthMiddleware validates the bearer token once per request and stashes the
// resolved account in the request context. Missing or malformed headers and
// the public anonymous key are all rejected before the provider is asked.
func AuthMiddleware(provider *identity.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := identity.ExtractBearer(c.Get("Authorization"))
		if err != nil {
			return response.Unauthorized(c, "missing or malformed bearer token")
		}

		account, err := provider.GetUserForToken(c.Context(), token)
		if err != nil {
			return response.Unauthorized(c, "invalid token")
		}

		c.Locals(LocalAccountID, account.ID)
		c.Locals(LocalEmail, account.Email)

		return c.Next()
	}
}

// AccountID returns the authenticated account ID from the request context
func AccountID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalAccountID).(string)
	return id
}
