package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	gormlogger "gorm.io/gorm/logger"
)

type ServerConfig struct {
	DB      DBConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Bidding BiddingConfig
	Sweep   SweepConfig
}

type DBConfig struct {
	User            string `validate:"required"`
	Password        string
	Host            string `validate:"required"`
	Port            int    `validate:"min=1,max=65535"`
	Database        string `validate:"required"`
	Schema          string
	SSLMode         string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	Migrate         bool
	MaxOpenConns    int           `validate:"gte=0"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
	LogLevel        string        `validate:"oneof=silent error warn info"`
}

// GormLogLevel 對應到 gorm 的日誌等級，未知的值使用 warn
func (c DBConfig) GormLogLevel() gormlogger.LogLevel {
	switch c.LogLevel {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// DSN 組出 postgres 連線字串，有 schema 時一併設定 search_path
func (c DBConfig) DSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	if c.Schema != "" {
		query.Set("search_path", c.Schema)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// RedisConfig Addr 為空時不啟用事件串流與掃描鎖
type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"gte=0"`

	EventStream  string `validate:"required_with=Addr"`
	StreamMaxLen int64  `validate:"gte=0"`
	SweepLockKey string `validate:"required_with=Addr"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type AuthConfig struct {
	// PublicKeyPEM 驗證服務簽發 token 用的 Ed25519 公鑰
	PublicKeyPEM string `validate:"required"`
}

type BiddingConfig struct {
	MaxAttempts int           `validate:"min=1"`
	RetryDelay  time.Duration `validate:"gte=0"`
	RecentBids  int           `validate:"min=1,max=100"`
}

type SweepConfig struct {
	Interval time.Duration `validate:"gt=0"`
}

// Validate 啟動前檢查設定
func (c ServerConfig) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}
