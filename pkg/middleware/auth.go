// Package middleware provides Fiber middleware for the webapi.
package middleware

import (
	"errors"

	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected guards a route with HS256 bearer-token auth. The verified
// *jwt.Token lands in c.Locals("user") for handlers to consume.
func JwtProtected(cfg config.JwtConfig) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return common.ProblemDetailsJSON(c, "Missing or malformed JWT", nil, err.Error(), fiber.StatusBadRequest)
	}
	return common.ProblemDetailsJSON(c, "Invalid or expired JWT", nil, err.Error(), fiber.StatusUnauthorized)
}
