package config

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

type (
	Config struct {
		App                App           `json:"app" mapstructure:"app"`
		Postgres           Postgres      `json:"postgres" mapstructure:"postgres"`
		Redis              Redis         `json:"redis" mapstructure:"redis"`
		NewRelicLicenseKey string        `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`
		Identity           Identity      `json:"identity" mapstructure:"identity"`
		FeatureFlag        FeatureFlag   `json:"feature_flag" mapstructure:"feature_flag"`
		Ledger             LedgerConfig  `json:"ledger" mapstructure:"ledger"`
		Aggregator         Aggregator    `json:"aggregator" mapstructure:"aggregator"`
		MessageBroker      MessageBroker `json:"message_broker" mapstructure:"message_broker"`

		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogOption       string        `json:"log_option" mapstructure:"log_option"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
		// TimeZone is used to bucket transactions into calendar days.
		TimeZone string `json:"time_zone" mapstructure:"time_zone"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	// Identity configures verification of tokens minted by the identity provider.
	Identity struct {
		SigningKey        string        `json:"signing_key" mapstructure:"signing_key"`
		Issuer            string        `json:"issuer" mapstructure:"issuer"`
		Audience          string        `json:"audience" mapstructure:"audience"`
		PrincipalCacheTTL time.Duration `json:"principal_cache_ttl" mapstructure:"principal_cache_ttl"`
	}

	FeatureFlag struct {
		EnablePublishLoanDecision bool `json:"enable_publish_loan_decision" mapstructure:"enable_publish_loan_decision"`
		EnablePprof               bool `json:"enable_pprof" mapstructure:"enable_pprof"`
	}

	LedgerConfig struct {
		// HandlerTimeoutLoanDecision bounds approve/reject including call-site retries.
		HandlerTimeoutLoanDecision time.Duration `json:"handler_timeout_loan_decision" mapstructure:"handler_timeout_loan_decision"`
	}

	Aggregator struct {
		TransactionWindow    int           `json:"transaction_window" mapstructure:"transaction_window"`
		MinReconnectInterval time.Duration `json:"min_reconnect_interval" mapstructure:"min_reconnect_interval"`
		MaxReconnectInterval time.Duration `json:"max_reconnect_interval" mapstructure:"max_reconnect_interval"`
		MetricsPort          int           `json:"metrics_port" mapstructure:"metrics_port"`
	}

	MessageBroker struct {
		Brokers           []string      `json:"brokers" mapstructure:"brokers"`
		TopicLoanDecision string        `json:"topic_loan_decision" mapstructure:"topic_loan_decision"`
		Timeout           time.Duration `json:"timeout" mapstructure:"timeout"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		InitialInterval   time.Duration `json:"initial_interval" mapstructure:"initial_interval"`
	}
)

const DefaultTransactionWindow = 50

// Location resolves App.TimeZone, falling back to UTC.
func (c Config) Location() *time.Location {
	if c.App.TimeZone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// DSN is the lib/pq connection string of d.
func (d Database) DSN() string {
	schema := d.DbSchema
	if schema == "" {
		schema = "public"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		d.DbHost, d.DbPort, d.DbUser, d.DbPass, d.DbName, schema,
	)
}
