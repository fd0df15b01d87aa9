package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/raiderlog/raiderlog/backend/models"
	"github.com/raiderlog/raiderlog/backend/utils"
	"github.com/raiderlog/raiderlog/raiderlog"
)

// Claims is the bearer token payload. The subject is the user id; the role
// claim distinguishes admins from regular raiders.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired verifies the bearer token and stores the caller identity in
// the request context. Tokens are issued by the external auth service; this
// middleware only checks the signature and the registered claims.
func AuthRequired(cfg raiderlog.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		identity, err := ParseIdentity(token, cfg)
		if err != nil {
			slog.Debug("Auth required: invalid token", slog.String("error", err.Error()))
			return utils.SendUnauthorized(c, "Invalid or expired token")
		}

		c.Locals("identity", identity)
		return c.Next()
	}
}

// AdminRequired ensures the caller carries the admin role. Must run after
// AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendForbidden(c, "Access denied")
		}
		if !identity.IsAdmin() {
			slog.Warn("Admin required: user lacks admin role",
				slog.String("user_id", identity.UserID),
				slog.String("role", identity.Role))
			return utils.SendForbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

// ParseIdentity validates a bearer token and extracts the caller identity.
func ParseIdentity(token string, cfg raiderlog.AuthConfig) (*models.Identity, error) {
	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &models.Identity{UserID: claims.Subject, Role: claims.Role}, nil
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
