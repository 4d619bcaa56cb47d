package in

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	commonHTTP "github.com/ledgercore/ledger-core/common/net/http"
	"github.com/ledgercore/ledger-core/internal/integrity"
)

// CachePinger abstracts the one call the health check needs from the Redis
// client (*redis.Client's Ping returns a *StatusCmd, so bootstrap adapts it
// to this shape) so this package never imports redis directly.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// StatusHandler serves `/health` and `/metrics`.
type StatusHandler struct {
	DB        *sql.DB
	Cache     CachePinger
	Integrity *integrity.Monitor
	Gatherer  prometheus.Gatherer
}

// healthBody is /health's response shape.
type healthBody struct {
	DB          bool `json:"db"`
	Cache       bool `json:"cache"`
	IntegrityOK bool `json:"integrity_ok"`
}

// Health handles GET /health.
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	body := healthBody{IntegrityOK: true}

	if h.DB != nil {
		body.DB = h.DB.PingContext(ctx) == nil
	}

	if h.Cache != nil {
		body.Cache = h.Cache.Ping(ctx) == nil
	}

	if h.Integrity != nil {
		body.IntegrityOK = h.Integrity.Healthy()
	}

	status := fiber.StatusOK
	if !body.DB || !body.Cache || !body.IntegrityOK {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(body)
}

// Metrics handles GET /metrics, rendering the Prometheus text exposition
// format directly rather than pulling in fasthttpadaptor + promhttp.Handler
// for a single endpoint.
func (h *StatusHandler) Metrics(c *fiber.Ctx) error {
	families, err := h.Gatherer.Gather()
	if err != nil {
		return commonHTTP.WithError(c, err)
	}

	textFormat := expfmt.NewFormat(expfmt.TypeTextPlain)

	c.Set(fiber.HeaderContentType, string(textFormat))

	enc := expfmt.NewEncoder(c.Response().BodyWriter(), textFormat)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
