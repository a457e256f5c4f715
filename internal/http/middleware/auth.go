package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"agencycms/internal/auth"
)

const (
	// SessionTokenLocalKey stores the raw session token for the request.
	SessionTokenLocalKey = "session_token"
	// SessionUserIDLocalKey stores the authenticated user id.
	SessionUserIDLocalKey = "session_user_id"
	// SessionEmailLocalKey stores the authenticated user email.
	SessionEmailLocalKey = "session_email"
)

// Authenticator resolves a session token. Satisfied by auth.Service.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.SessionData, error)
}

// SessionAuth guards admin routes. It reads the session token from the
// configured cookie, falling back to a bearer Authorization header for
// non-browser clients, and stores the resolved identity in context locals.
func SessionAuth(authSvc Authenticator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			h := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}

		data, err := authSvc.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, auth.ErrSessionNotFound) {
				return fiber.ErrUnauthorized
			}
			return fiber.ErrServiceUnavailable
		}

		c.Locals(SessionTokenLocalKey, token)
		c.Locals(SessionUserIDLocalKey, data.UserID)
		c.Locals(SessionEmailLocalKey, data.Email)
		return c.Next()
	}
}
