package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "DUDASHOP"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "DUDASHOP_APP_ENV"
	EnvPort   = "DUDASHOP_APP_PORT"
	EnvDBDSN  = "DUDASHOP_DB_DSN"
	EnvDBHost = "DUDASHOP_DB_HOST"
	EnvDBUser = "DUDASHOP_DB_USER"
	EnvDBName = "DUDASHOP_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	FeatureFlags FeatureFlagsConfig
	Report       ReportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DUDASHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"DUDASHOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DUDASHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DUDASHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DUDASHOP_DB_DSN"`
	Driver string `envconfig:"DUDASHOP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DUDASHOP_DB_HOST"`
	LegacyPort     int    `envconfig:"DUDASHOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DUDASHOP_DB_USER"`
	LegacyPassword string `envconfig:"DUDASHOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"DUDASHOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"DUDASHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DUDASHOP_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DUDASHOP_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DUDASHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DUDASHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DUDASHOP_AUTO_MIGRATE" default:"false"`
}

// ReportConfig tunes the reporting surface.
type ReportConfig struct {
	// LocalCurrency tags sale and purchase amounts; the shop trades in lek.
	LocalCurrency string `envconfig:"DUDASHOP_REPORT_LOCAL_CURRENCY" default:"ALL"`
	// ForeignCurrency tags the secondary purchase amount.
	ForeignCurrency string `envconfig:"DUDASHOP_REPORT_FOREIGN_CURRENCY" default:"GBP"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
