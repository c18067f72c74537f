// Package webapi assembles the HTTP surface. Handlers live in sub-packages
// per domain:
//   - auth: registration and login
//   - user: the authenticated user's profile
//   - account: account CRUD
//   - transaction: ledger operations
//   - category: system categories and assignments
//   - admin: user administration
package webapi

import (
	"errors"
	"strings"

	_ "github.com/amirasaad/fintrack/docs"
	"github.com/amirasaad/fintrack/pkg/app"
	accountweb "github.com/amirasaad/fintrack/webapi/account"
	adminweb "github.com/amirasaad/fintrack/webapi/admin"
	authweb "github.com/amirasaad/fintrack/webapi/auth"
	categoryweb "github.com/amirasaad/fintrack/webapi/category"
	"github.com/amirasaad/fintrack/webapi/common"
	transactionweb "github.com/amirasaad/fintrack/webapi/transaction"
	userweb "github.com/amirasaad/fintrack/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return common.ProblemDetailsJSON(c, fiberErr.Message, nil, fiberErr.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
	}))

	// Rate limiting keyed by client IP; behind a proxy the X-Forwarded-For
	// chain wins, then X-Real-IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("FinTrack API is running! 🚀")
	})

	authweb.Routes(fiberApp, a.UserService, a.AuthService)
	userweb.Routes(fiberApp, a.UserService, a.AuthService, a.Config)
	accountweb.Routes(fiberApp, a.AccountService, a.AuthService, a.Config)
	transactionweb.Routes(fiberApp, a.TransactionService, a.AuthService, a.Config)
	categoryweb.Routes(fiberApp, a.CategoryService, a.AuthService, a.Config)
	adminweb.Routes(fiberApp, a.UserService, a.AuthService, a.Config)
	return fiberApp
}
