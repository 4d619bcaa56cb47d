// Package local ships reference implementations of the four external
// collaborator ports (fraud, token vault, OTP, alert router) suitable for
// local/dev use. Production deployments are expected to swap these for
// real collaborators; the engine never distinguishes.
package local

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ledgercore/ledger-core/common/mrabbitmq"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// AMQPAlertRouter publishes fire-and-forget alerts (AML, fraud-block
// writes, integrity failures) to a topic exchange.
type AMQPAlertRouter struct {
	conn     *mrabbitmq.RabbitMQConnection
	exchange string
}

// NewAMQPAlertRouter returns an AMQPAlertRouter bound to conn, publishing to
// exchange (routing key == alert kind).
func NewAMQPAlertRouter(conn *mrabbitmq.RabbitMQConnection, exchange string) *AMQPAlertRouter {
	return &AMQPAlertRouter{conn: conn, exchange: exchange}
}

// Notify publishes payload as JSON, best-effort: a publish failure is
// returned to the caller, who treats it as non-fatal.
func (r *AMQPAlertRouter) Notify(ctx context.Context, kind ports.AlertKind, payload map[string]any) error {
	ch, err := r.conn.GetChannel(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, r.exchange, string(kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
