package in

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ledgercore/ledger-core/common"
	cn "github.com/ledgercore/ledger-core/common/constant"
	commonHTTP "github.com/ledgercore/ledger-core/common/net/http"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// RateLimitMiddleware enforces the sliding-window limiter keyed by client
// IP. failClosed controls degradation when the limiter backend itself
// errors: the mutating-operation routes (deposit/withdraw/transfer/pix)
// are wired fail-closed since they gate money movement, every other route
// fail-open.
func RateLimitMiddleware(limiter ports.RateLimiter, window time.Duration, limit int, failClosed bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		allowed, err := limiter.Allow(ctx, c.IP(), window, limit)
		if err != nil {
			common.NewLoggerFromContext(ctx).Warn("rate limiter unavailable", zap.Error(err))

			if failClosed {
				return commonHTTP.ServiceUnavailable(c, cn.ErrTooManyRequests.Error(),
					"Rate Limiter Unavailable", "Unable to verify the request rate for this operation; please retry shortly.")
			}

			return c.Next()
		}

		if !allowed {
			return commonHTTP.TooManyRequests(c, cn.ErrTooManyRequests.Error(),
				"Too Many Requests", "Request rate limit exceeded for this identity. Please retry later.")
		}

		return c.Next()
	}
}

// RevocationMiddleware checks a bearer token's JTI against the revocation
// list whenever an Authorization header is present. Requests without one
// pass through unauthenticated: the ledger operations do not themselves
// mandate bearer auth, but any deployment that fronts them with one gets
// its revoked-session check here instead of reimplementing it per route.
func RevocationMiddleware(revocation ports.RevocationList) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		jti, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Next()
		}

		ctx := c.UserContext()

		revoked, err := revocation.IsRevoked(ctx, jti)
		if err != nil {
			common.NewLoggerFromContext(ctx).Warn("revocation list unavailable, allowing request", zap.Error(err))
			return c.Next()
		}

		if revoked {
			return commonHTTP.Unauthorized(c, cn.ErrTokenRevoked.Error(), "Token Revoked", "This session has been revoked. Please re-authenticate.")
		}

		return c.Next()
	}
}
