// Package middleware provides HTTP middleware for the application,
// including JWT authentication for the fiber web framework.
package middleware

import (
	"strings"

	"walletcore/internal/config"
	"walletcore/internal/models"
	"walletcore/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware validates JWT bearer tokens and adds the claims to the
// request context. Tokens are issued by an external identity service; this
// application only verifies them.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(config.GetEnv("JWT_SECRET", "walletcore")),
	}
}

// Handler checks for a Bearer token with a valid signature and stores the
// parsed claims in fiber Locals under "claims".
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		logrus.WithError(err).Debug("token validation failed")
		return utils.Unauthorized(c, "invalid token")
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	c.Locals("claims", claims)
	return c.Next()
}

// RequirePermission gates a route on a claim permission.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok || claims == nil {
			return utils.Unauthorized(c, "missing claims")
		}
		if !claims.HasPermission(permission) {
			return utils.Forbidden(c, "insufficient permissions")
		}
		return c.Next()
	}
}
