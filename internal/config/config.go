package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the greeter host configuration
type Config struct {
	LogLevel    string `validate:"required"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	Locale         string `validate:"required"`
	UpdateInterval time.Duration
	LanguagesFile  string

	StoreDriver    string `validate:"oneof=none memory file postgres"`
	StoreFilePath  string `validate:"required_if=StoreDriver file"`
	StoreCacheSize int    `validate:"min=0"`
	StoreCacheTTL  time.Duration

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// HTTPPort enables the ops server when positive
	HTTPPort int `validate:"min=0,max=65535"`
	// APIKey guards the mutating ops routes when set
	APIKey string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		Locale:        getEnv(EnvLocale, DefaultLocale),
		LanguagesFile: getEnv(EnvLanguagesFile, ""),

		StoreDriver:    getEnv(EnvStoreDriver, DefaultStoreDriver),
		StoreFilePath:  getEnv(EnvStoreFilePath, DefaultStoreFilePath),
		StoreCacheSize: getEnvAsInt(EnvStoreCacheSize, DefaultStoreCacheSize),
		StoreCacheTTL:  time.Duration(getEnvAsInt(EnvStoreCacheTTL, DefaultStoreCacheTTL)) * time.Second,

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxIdleTime, DefaultDBMaxIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxLifetime, DefaultDBMaxLifetime),

		APIKey: getEnv(EnvAPIKey, ""),
	}

	intervalMS, err := strconv.Atoi(getEnv(EnvUpdateInterval, strconv.Itoa(DefaultUpdateIntervalMS)))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtInvalidInt, EnvUpdateInterval, err)
	}
	cfg.UpdateInterval = time.Duration(intervalMS) * time.Millisecond

	port, err := strconv.Atoi(getEnv(EnvHTTPPort, strconv.Itoa(DefaultHTTPPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtInvalidInt, EnvHTTPPort, err)
	}
	cfg.HTTPPort = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// HTTPEnabled reports whether the ops server should be started
func (c *Config) HTTPEnabled() bool {
	return c.HTTPPort > 0
}
