// Package auth provides the fiber middleware guarding the admin routes.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/auth"
	"github.com/amigovet/amigovet-server/internal/web/handler"
	"github.com/amigovet/amigovet-server/internal/web/session"
)

// RequireAdmin creates fiber middleware that only lets requests with a
// valid admin session through. The role grants are re-resolved on every
// request and fail closed: a session whose account lost its admin grant
// is destroyed on the spot.
func RequireAdmin(db *gorm.DB) fiber.Handler {
	resolver := auth.NewResolver(db)

	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(session.CookieName)
		if sessionID == "" {
			return handler.Fail(c, fiber.StatusUnauthorized, "authentication required")
		}

		sessData := new(session.Data)
		if err := sessData.Read(sessionID); err != nil || sessData.Principal.UserID == 0 {
			return handler.Fail(c, fiber.StatusUnauthorized, "authentication required")
		}

		roles := resolver.ResolveRoles(sessData.Principal.UserID)
		if !auth.HasAdminRole(roles) {
			log.Warn().Uint64("user_id", sessData.Principal.UserID).Msg("session without admin grant destroyed")

			if err := session.Destroy(sessionID); err != nil {
				log.Error().Err(err).Msg("failed to destroy session")
			}

			c.ClearCookie(session.CookieName)

			return handler.Fail(c, fiber.StatusForbidden, "access denied")
		}

		principal := sessData.Principal
		principal.Roles = roles
		principal.IsAdmin = true

		c.Locals(handler.LocalPrincipal, &principal)

		return c.Next()
	}
}

// Principal returns the admin principal resolved by RequireAdmin, or nil
// outside guarded routes.
func Principal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(handler.LocalPrincipal).(*auth.Principal)
	return p
}
