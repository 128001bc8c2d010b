package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	aws_pkg "github.com/yashrajoria/shop-service/pkg/aws"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// DBCredentialsSecret is the Secrets Manager entry read when AWS_USE_SECRETS=true.
const DBCredentialsSecret = "shop/DB_CREDENTIALS"

// Config holds all configuration for the shop service.
type Config struct {
	Env  string
	Port string

	DBDriver    string
	DatabaseURL string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	MySQLUser     string
	MySQLPassword string
	MySQLDB       string
	MySQLHost     string
	MySQLPort     string

	SQLitePath string

	RedisURL   string
	SessionTTL time.Duration

	AllowedOrigins []string
	RequestTimeout time.Duration

	// SNS topic for product lifecycle events
	ProductSNSTopicARN string
	UseSecrets         bool

	// Warnings collects non-fatal problems found while loading, for the
	// caller to log once a logger exists.
	Warnings []string
}

// Load reads configuration from .env and the environment, with an optional
// Secrets Manager override of the database credentials.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBDriver:           strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		PostgresUser:       os.Getenv("POSTGRES_USER"),
		PostgresPassword:   os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:         os.Getenv("POSTGRES_DB"),
		PostgresHost:       getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:       getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:    getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone:   getEnv("POSTGRES_TIMEZONE", "UTC"),
		MySQLUser:          os.Getenv("MYSQL_USER"),
		MySQLPassword:      os.Getenv("MYSQL_PASSWORD"),
		MySQLDB:            os.Getenv("MYSQL_DB"),
		MySQLHost:          getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:          getEnv("MYSQL_PORT", "3306"),
		SQLitePath:         getEnv("SQLITE_PATH", "shop.db"),
		RedisURL:           os.Getenv("REDIS_URL"),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		ProductSNSTopicARN: os.Getenv("PRODUCT_SNS_TOPIC_ARN"),
		UseSecrets:         os.Getenv("AWS_USE_SECRETS") == "true",
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	if cfg.UseSecrets {
		awsCfg, err := aws_pkg.LoadAWSConfig(context.Background())
		if err != nil {
			cfg.warn("AWS_USE_SECRETS set but AWS config failed, using env database credentials: %v", err)
		} else if err := cfg.ApplySecrets(context.Background(), aws_pkg.NewSecretsClient(awsCfg)); err != nil {
			cfg.warn("%v, using env database credentials", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplySecrets overrides database credentials with the values stored in
// DBCredentialsSecret. On error cfg is left untouched.
func (c *Config) ApplySecrets(ctx context.Context, sg aws_pkg.SecretGetter) error {
	m, err := aws_pkg.GetSecretMap(ctx, sg, DBCredentialsSecret)
	if err != nil {
		return fmt.Errorf("read %s: %w", DBCredentialsSecret, err)
	}
	override := func(dst *string, key string) {
		if v, ok := m[key]; ok && v != "" {
			*dst = v
		}
	}
	override(&c.DatabaseURL, "DATABASE_URL")
	override(&c.PostgresUser, "POSTGRES_USER")
	override(&c.PostgresPassword, "POSTGRES_PASSWORD")
	override(&c.PostgresDB, "POSTGRES_DB")
	override(&c.PostgresHost, "POSTGRES_HOST")
	override(&c.PostgresPort, "POSTGRES_PORT")
	override(&c.MySQLUser, "MYSQL_USER")
	override(&c.MySQLPassword, "MYSQL_PASSWORD")
	override(&c.MySQLDB, "MYSQL_DB")
	override(&c.MySQLHost, "MYSQL_HOST")
	override(&c.MySQLPort, "MYSQL_PORT")
	return nil
}

func (c *Config) warn(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks that the selected driver has enough to build a DSN.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" && (c.PostgresUser == "" || c.PostgresDB == "" || c.PostgresHost == "") {
			return fmt.Errorf("database config incomplete: POSTGRES_USER, POSTGRES_DB and POSTGRES_HOST are required")
		}
	case DriverMySQL:
		if c.DatabaseURL == "" && (c.MySQLUser == "" || c.MySQLDB == "" || c.MySQLHost == "") {
			return fmt.Errorf("database config incomplete: MYSQL_USER, MYSQL_DB and MYSQL_HOST are required")
		}
	case DriverSQLite:
		if c.DatabaseURL == "" && c.SQLitePath == "" {
			return fmt.Errorf("database config incomplete: SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	switch c.DBDriver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDB)
	case DriverSQLite:
		return c.SQLitePath
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode, c.PostgresTimeZone)
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), "/")); p != "" {
			out = append(out, p)
		}
	}
	return out
}
