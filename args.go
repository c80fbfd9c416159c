package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bidhouse/api"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "address the http server listens on")
	pflag.String("log-level", "info", "debug, info, warn or error")
	pflag.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")

	// auth config
	pflag.String("auth-public-key", "", "PEM encoded Ed25519 public key of the auth service")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-schema", "", "")
	pflag.String("db-sslmode", "disable", "")
	pflag.Bool("db-migrate", false, "apply pending migrations on start")
	pflag.Int("db-max-open-conns", 20, "")
	pflag.Int("db-max-idle-conns", 5, "")
	pflag.Duration("db-conn-max-lifetime", 30*time.Minute, "")
	pflag.String("db-log-level", "warn", "silent, error, warn or info; info logs every query")

	// redis config
	pflag.String("redis-addr", "", "leave empty to disable event stream and sweep lock")
	pflag.String("redis-password", "", "")
	pflag.Int("redis-db", 0, "")
	pflag.String("redis-event-stream", "bidhouse:auction-events", "")
	pflag.Int64("redis-stream-max-len", 100000, "0 keeps every event")
	pflag.String("redis-sweep-lock-key", "bidhouse:sweep-lock", "")

	// bidding config
	pflag.Int("bid-max-attempts", 5, "attempts before a contended bid is reported as conflict")
	pflag.Duration("bid-retry-delay", 10*time.Millisecond, "")
	pflag.Int("recent-bids", 10, "bids shown in auction details")

	// sweep config
	pflag.Duration("sweep-interval", 30*time.Second, "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("BIDHOUSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL:       viper.GetString("server-url"),
		LogLevel:        viper.GetString("log-level"),
		ShutdownTimeout: viper.GetDuration("shutdown-timeout"),
		ServerConfig: api.ServerConfig{
			DB: api.DBConfig{
				User:            viper.GetString("db-user"),
				Password:        viper.GetString("db-password"),
				Host:            viper.GetString("db-host"),
				Port:            viper.GetInt("db-port"),
				Database:        viper.GetString("db-database"),
				Schema:          viper.GetString("db-schema"),
				SSLMode:         viper.GetString("db-sslmode"),
				Migrate:         viper.GetBool("db-migrate"),
				MaxOpenConns:    viper.GetInt("db-max-open-conns"),
				MaxIdleConns:    viper.GetInt("db-max-idle-conns"),
				ConnMaxLifetime: viper.GetDuration("db-conn-max-lifetime"),
				LogLevel:        viper.GetString("db-log-level"),
			},
			Redis: api.RedisConfig{
				Addr:         viper.GetString("redis-addr"),
				Password:     viper.GetString("redis-password"),
				DB:           viper.GetInt("redis-db"),
				EventStream:  viper.GetString("redis-event-stream"),
				StreamMaxLen: viper.GetInt64("redis-stream-max-len"),
				SweepLockKey: viper.GetString("redis-sweep-lock-key"),
			},
			Auth: api.AuthConfig{
				PublicKeyPEM: viper.GetString("auth-public-key"),
			},
			Bidding: api.BiddingConfig{
				MaxAttempts: viper.GetInt("bid-max-attempts"),
				RetryDelay:  viper.GetDuration("bid-retry-delay"),
				RecentBids:  viper.GetInt("recent-bids"),
			},
			Sweep: api.SweepConfig{
				Interval: viper.GetDuration("sweep-interval"),
			},
		},
	}
}

type Args struct {
	ServerURL       string
	LogLevel        string
	ShutdownTimeout time.Duration
	ServerConfig    api.ServerConfig
}

func (args Args) Validate() error {
	return args.ServerConfig.Validate()
}

func (args Args) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(args.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
