// Package bootstrap wires the concrete adapters (Postgres, Redis, RabbitMQ,
// the local reference collaborators) into the transaction engine, the query
// service, and the integrity monitor, then registers them as apps on the
// common.Launcher.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/common/mlog"
	"github.com/ledgercore/ledger-core/common/mopentelemetry"
	"github.com/ledgercore/ledger-core/common/mpostgres"
	"github.com/ledgercore/ledger-core/common/mrabbitmq"
	"github.com/ledgercore/ledger-core/common/mredis"
	"github.com/ledgercore/ledger-core/internal/adapters/http/in"
	"github.com/ledgercore/ledger-core/internal/adapters/local"
	"github.com/ledgercore/ledger-core/internal/adapters/postgres/accountstore"
	"github.com/ledgercore/ledger-core/internal/adapters/postgres/ledgerstore"
	redisadapter "github.com/ledgercore/ledger-core/internal/adapters/redis"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/integrity"
	"github.com/ledgercore/ledger-core/internal/metrics"
	"github.com/ledgercore/ledger-core/internal/services/command"
	"github.com/ledgercore/ledger-core/internal/services/query"

	"github.com/prometheus/client_golang/prometheus"
)

// Service is the fully wired application: the HTTP server and the
// integrity monitor, run as sibling apps on one common.Launcher.
type Service struct {
	Server    *Server
	Monitor   *integrity.Monitor
	Logger    mlog.Logger
	Telemetry *mopentelemetry.Telemetry

	// TokenVault gives any deployment that fronts this core with user
	// signup or KYC-audit routes a ready tokenizer; the engine itself
	// never calls it.
	TokenVault *local.AESGCMTokenVault
}

// Run starts every registered app and blocks until they all exit, then
// flushes the tracer provider.
func (s *Service) Run() {
	defer s.Telemetry.ShutdownTelemetry()

	common.NewLauncher(
		common.WithLogger(s.Logger),
		common.RunApp("HTTP Server", s.Server),
		common.RunApp("Integrity Monitor", s.Monitor),
	).Run()
}

// redisPinger adapts *redis.Client's Ping(ctx) *StatusCmd to the
// in.CachePinger contract the status handler depends on.
type redisPinger struct {
	conn *mredis.RedisConnection
}

func (p redisPinger) Ping(ctx context.Context) error {
	client, err := p.conn.GetDB(ctx)
	if err != nil {
		return err
	}

	return client.Ping(ctx).Err()
}

var _ in.CachePinger = redisPinger{}

// InitServers connects every backing store, constructs the transaction
// engine, the query service, the integrity monitor, and the HTTP router,
// and returns a Service ready to Run. log is created once in main.go and
// threaded through.
func InitServers(cfg *Config, log mlog.Logger) (*Service, error) {
	ctx := context.Background()

	telemetry := (&mopentelemetry.Telemetry{
		LibraryName:               cfg.OtelLibraryName,
		ServiceName:               cfg.OtelServiceName,
		ServiceVersion:            cfg.OtelServiceVersion,
		DeploymentEnv:             cfg.OtelDeploymentEnv,
		CollectorExporterEndpoint: cfg.OtelColExporterEndpoint,
	}).InitializeTelemetry()

	postgresConnection := &mpostgres.PostgresConnection{
		ConnectionStringPrimary: dsn(cfg.PrimaryDBHost, cfg.PrimaryDBUser, cfg.PrimaryDBPassword, cfg.PrimaryDBName, cfg.PrimaryDBPort),
		ConnectionStringReplica: dsn(cfg.ReplicaDBHost, cfg.ReplicaDBUser, cfg.ReplicaDBPassword, cfg.ReplicaDBName, cfg.ReplicaDBPort),
		PrimaryDBName:           cfg.PrimaryDBName,
		ReplicaDBName:           cfg.ReplicaDBName,
	}

	primaryDB, err := postgresConnection.Primary(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: connect postgres: %w", err)
	}

	redisConnection := &mredis.RedisConnection{
		ConnectionStringSource: fmt.Sprintf("redis://:%s@%s:%s/0", cfg.RedisPass, cfg.RedisHost, cfg.RedisPort),
		Logger:                 log,
	}

	if _, err := redisConnection.GetDB(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap: connect redis: %w", err)
	}

	rabbitMQConnection := &mrabbitmq.RabbitMQConnection{
		ConnectionStringSource: fmt.Sprintf("amqp://%s:%s@%s:%s", cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPortAMQP),
		Logger:                 log,
	}

	accounts := accountstore.New(primaryDB)
	ledger := ledgerstore.New(primaryDB)

	idempotencyCache := redisadapter.NewIdempotencyCache(redisConnection)
	rateLimiter := redisadapter.NewRateLimiter(redisConnection)
	revocationList := redisadapter.NewRevocationList(redisConnection)

	fraudEngine := local.NewAllowAllFraudEngine()
	otpValidator := local.NewTOTPValidator(accounts)
	alertRouter := local.NewAMQPAlertRouter(rabbitMQConnection, cfg.RabbitMQExchange)

	tokenVault, err := local.NewAESGCMTokenVault([]byte(cfg.TokenVaultMasterSecret))
	if err != nil {
		return nil, fmt.Errorf("bootstrap: init token vault: %w", err)
	}

	thresholds := thresholdsFromConfig(cfg)

	reg := metrics.NewRegistry(prometheus.DefaultRegisterer)

	engine := command.New(primaryDB, accounts, ledger, idempotencyCache, fraudEngine, otpValidator, alertRouter, thresholds).
		WithMetrics(reg)

	queryService := query.New(accounts, ledger)

	healthGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_integrity_healthy",
		Help: "1 if the most recent integrity scan passed, 0 otherwise.",
	})
	prometheus.DefaultRegisterer.MustRegister(healthGauge)

	monitor := integrity.NewMonitor(ledger, alertRouter, time.Duration(cfg.IntegrityCheckIntervalSeconds)*time.Second, healthGauge, reg)

	router := in.NewRouter(
		log,
		telemetry,
		&in.TransactionHandler{Command: engine},
		&in.QueryHandler{Query: queryService},
		&in.StatusHandler{DB: primaryDB, Cache: redisPinger{conn: redisConnection}, Integrity: monitor, Gatherer: prometheus.DefaultGatherer},
		rateLimiter,
		revocationList,
		cfg.RateLimitLoginPerMinute,
	)

	server := NewServer(cfg, router, log)

	return &Service{
		Server:     server,
		Monitor:    monitor,
		Logger:     log,
		Telemetry:  telemetry,
		TokenVault: tokenVault,
	}, nil
}

func dsn(host, user, pass, name, port string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", host, user, pass, name, port)
}

func thresholdsFromConfig(cfg *Config) command.Thresholds {
	defaults := command.DefaultThresholds()

	if v, err := money.NewFromString(cfg.KYCThreshold); err == nil && cfg.KYCThreshold != "" {
		defaults.KYCThreshold = v
	}

	if v, err := money.NewFromString(cfg.MFAThreshold); err == nil && cfg.MFAThreshold != "" {
		defaults.MFAThreshold = v
	}

	if v, err := money.NewFromString(cfg.AMLThreshold); err == nil && cfg.AMLThreshold != "" {
		defaults.AMLThreshold = v
	}

	return defaults
}
