package bootstrap

import (
	"github.com/ledgercore/ledger-core/common"
)

// Config is the top level configuration struct for the entire application,
// populated by common.SetConfigFromEnvVars.
type Config struct {
	EnvName       string `env:"ENV_NAME"`
	ServerAddress string `env:"SERVER_ADDRESS"`

	PrimaryDBHost     string `env:"DB_HOST"`
	PrimaryDBUser     string `env:"DB_USER"`
	PrimaryDBPassword string `env:"DB_PASSWORD"`
	PrimaryDBName     string `env:"DB_NAME"`
	PrimaryDBPort     string `env:"DB_PORT"`

	ReplicaDBHost     string `env:"DB_REPLICA_HOST"`
	ReplicaDBUser     string `env:"DB_REPLICA_USER"`
	ReplicaDBPassword string `env:"DB_REPLICA_PASSWORD"`
	ReplicaDBName     string `env:"DB_REPLICA_NAME"`
	ReplicaDBPort     string `env:"DB_REPLICA_PORT"`

	RedisHost string `env:"REDIS_HOST"`
	RedisPort string `env:"REDIS_PORT"`
	RedisPass string `env:"REDIS_PASSWORD"`

	RabbitMQHost     string `env:"RABBITMQ_HOST"`
	RabbitMQPortAMQP string `env:"RABBITMQ_PORT_AMQP"`
	RabbitMQUser     string `env:"RABBITMQ_DEFAULT_USER"`
	RabbitMQPass     string `env:"RABBITMQ_DEFAULT_PASS"`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE"`

	OtelServiceName         string `env:"OTEL_RESOURCE_SERVICE_NAME"`
	OtelLibraryName         string `env:"OTEL_LIBRARY_NAME"`
	OtelServiceVersion      string `env:"OTEL_RESOURCE_SERVICE_VERSION"`
	OtelDeploymentEnv       string `env:"OTEL_RESOURCE_DEPLOYMENT_ENVIRONMENT"`
	OtelColExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Engine policy-gate thresholds; empty values fall back to the
	// compiled-in defaults.
	KYCThreshold string `env:"KYC_REQUIRED_THRESHOLD"`
	MFAThreshold string `env:"MFA_THRESHOLD"`
	AMLThreshold string `env:"AML_LARGE_TX_THRESHOLD"`

	// IntegrityCheckIntervalSeconds overrides integrity.DefaultInterval.
	// 0 means "use the default".
	IntegrityCheckIntervalSeconds int `env:"INTEGRITY_CHECK_INTERVAL_SECONDS"`

	// TokenVaultMasterSecret seeds the local AES-GCM token vault reference
	// implementation.
	TokenVaultMasterSecret string `env:"TOKEN_VAULT_MASTER_SECRET"`

	// RateLimitLoginPerMinute bounds the rate limit on money-moving routes.
	// Authentication itself lives outside this core; this configures the
	// middleware exercising RateLimiter.
	RateLimitLoginPerMinute int `env:"RATE_LIMIT_LOGIN_PER_MINUTE"`
}

// NewConfig creates an instance of Config, panicking on malformed env
// input since the process cannot start without one.
func NewConfig() *Config {
	cfg := &Config{}

	if err := common.SetConfigFromEnvVars(cfg); err != nil {
		panic(err)
	}

	return cfg
}
