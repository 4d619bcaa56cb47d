package in

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ledgercore/ledger-core/common/mlog"
	"github.com/ledgercore/ledger-core/common/mopentelemetry"
	commonHTTP "github.com/ledgercore/ledger-core/common/net/http"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// publicRateWindow/publicRateLimit is the default sliding window applied
// to every /v1 route; the four money-moving routes additionally pass
// mutatingPerMinute (fail-closed), sourced from
// Config.RateLimitLoginPerMinute.
const (
	publicRateWindow = 60 * time.Second
	publicRateLimit  = 100
	rateWindow       = 60 * time.Second
)

// NewRouter wires the ledger core's HTTP surface: the four mutating
// operations, the two read operations, and the status surface, behind the
// shared middleware stack (CORS, correlation id, logging).
func NewRouter(
	logger mlog.Logger,
	telemetry *mopentelemetry.Telemetry,
	tx *TransactionHandler,
	q *QueryHandler,
	status *StatusHandler,
	rateLimiter ports.RateLimiter,
	revocation ports.RevocationList,
	mutatingPerMinute int,
) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	tlMid := commonHTTP.NewTelemetryMiddleware(telemetry)

	f.Use(commonHTTP.WithCORS())
	f.Use(commonHTTP.WithCorrelationID())
	f.Use(tlMid.WithTelemetry(telemetry))
	f.Use(commonHTTP.WithHTTPLogging(commonHTTP.WithCustomLogger(logger)))

	f.Get("/health", status.Health)
	f.Get("/metrics", status.Metrics)

	commonHTTP.DocAPI("ledger", "Ledger Core API", f)

	v1 := f.Group("/v1", RevocationMiddleware(revocation), RateLimitMiddleware(rateLimiter, publicRateWindow, publicRateLimit, false))

	if mutatingPerMinute <= 0 {
		mutatingPerMinute = 30
	}

	mutating := RateLimitMiddleware(rateLimiter, rateWindow, mutatingPerMinute, true)

	v1.Post("/deposits", mutating, commonHTTP.WithBody(new(DepositRequest), tx.CreateDeposit))
	v1.Post("/withdrawals", mutating, commonHTTP.WithBody(new(WithdrawRequest), tx.CreateWithdraw))
	v1.Post("/transfers", mutating, commonHTTP.WithBody(new(InternalTransferRequest), tx.CreateInternalTransfer))
	v1.Post("/pix-transfers", mutating, commonHTTP.WithBody(new(PixTransferRequest), tx.CreatePixTransfer))

	v1.Get("/accounts/:account_id/balance", q.GetBalance)
	v1.Get("/accounts/:account_id/statement", q.GetStatement)

	return f
}
