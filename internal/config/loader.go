package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "WALLET_ADMIN"

type loaderOptions struct {
	fileName    string
	searchPaths []string
}

type LoaderOption func(*loaderOptions)

func WithConfigFileName(name string) LoaderOption {
	return func(o *loaderOptions) { o.fileName = name }
}

func WithConfigFileSearchPaths(paths ...string) LoaderOption {
	return func(o *loaderOptions) { o.searchPaths = append(o.searchPaths, paths...) }
}

// Load reads config.yaml (when present) and lets WALLET_ADMIN_* variables
// override any key, e.g. WALLET_ADMIN_POSTGRES_WRITE_DB_HOST.
func Load(opts ...LoaderOption) (cfg Config, err error) {
	o := &loaderOptions{fileName: "config"}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	v.SetConfigName(o.fileName)
	v.SetConfigType("yaml")
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-wallet-admin")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 9567)
	v.SetDefault("app.graceful_timeout", 10*time.Second)
	v.SetDefault("app.time_zone", "Africa/Accra")
	v.SetDefault("identity.principal_cache_ttl", 5*time.Minute)
	v.SetDefault("ledger.handler_timeout_loan_decision", 15*time.Second)
	v.SetDefault("aggregator.transaction_window", DefaultTransactionWindow)
	v.SetDefault("aggregator.min_reconnect_interval", 10*time.Second)
	v.SetDefault("aggregator.max_reconnect_interval", time.Minute)
	v.SetDefault("aggregator.metrics_port", 9568)
	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.initial_interval", 100*time.Millisecond)
	v.SetDefault("message_broker.topic_loan_decision", "wallet_admin.loan_decision")
	v.SetDefault("message_broker.timeout", 2*time.Second)

	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{
		"postgres.write.db_host", "postgres.write.db_port", "postgres.write.db_user", "postgres.write.db_pass",
		"postgres.write.db_name", "postgres.write.db_schema",
		"postgres.read.db_host", "postgres.read.db_port", "postgres.read.db_user", "postgres.read.db_pass",
		"postgres.read.db_name", "postgres.read.db_schema",
		"redis.host", "redis.port", "redis.password", "redis.db",
		"identity.signing_key", "identity.issuer", "identity.audience",
		"new_relic_license_key", "message_broker.brokers",
		"feature_flag.enable_publish_loan_decision", "feature_flag.enable_pprof",
	} {
		_ = v.BindEnv(key)
	}
}
