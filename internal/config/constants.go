package config

import "time"

// Environment variable names
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvLocale         = "GREETING_LOCALE"
	EnvUpdateInterval = "GREETING_UPDATE_INTERVAL_MS"
	EnvLanguagesFile  = "GREETING_LANGUAGES_FILE"
	EnvStoreDriver    = "STORE_DRIVER"
	EnvStoreFilePath  = "STORE_FILE_PATH"
	EnvStoreCacheSize = "STORE_CACHE_SIZE"
	EnvStoreCacheTTL  = "STORE_CACHE_TTL_SECONDS"
	EnvDBUser         = "DB_USER"
	EnvDBPassword     = "DB_PASSWORD"
	EnvDBHost         = "DB_HOST"
	EnvDBPort         = "DB_PORT"
	EnvDBName         = "DB_NAME"
	EnvDBMaxConns     = "DB_MAX_CONNS"
	EnvDBMaxIdleTime  = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxLifetime  = "DB_MAX_CONN_LIFETIME"
	EnvHTTPPort       = "HTTP_PORT"
	EnvAPIKey         = "API_KEY"
)

// Store drivers
const (
	StoreDriverNone     = "none"
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "greeter"
	DefaultVersion          = "dev"
	DefaultLocale           = "zh-CN"
	DefaultUpdateIntervalMS = 60000
	DefaultStoreDriver      = StoreDriverMemory
	DefaultStoreFilePath    = "data/greetings.json"
	DefaultStoreCacheSize   = 0
	DefaultStoreCacheTTL    = 300
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBName           = "greeter"
	DefaultDBMaxConns       = 5
	DefaultDBMaxIdleTime    = 5 * time.Minute
	DefaultDBMaxLifetime    = 30 * time.Minute
	DefaultHTTPPort         = 0

	// MinRecommendedInterval is the refresh period below which a warning is issued
	MinRecommendedInterval = time.Second
)

// Error and warning messages
const (
	ErrFmtInvalidInt        = "invalid %s value: %w"
	ErrFmtInvalidConfig     = "invalid configuration: %s"
	ErrFmtFieldValidation   = "%s failed on '%s'"
	WarnMsgDefaultDBPass    = "DB_PASSWORD uses the default value with the postgres store outside dev"
	WarnFmtIntervalTooShort = "GREETING_UPDATE_INTERVAL_MS=%d is below %s and will refresh very often"
	WarnMsgCacheWithoutDisk = "STORE_CACHE_SIZE has no effect when STORE_DRIVER=none"
	WarnMsgOpenMutations    = "HTTP_PORT is set without API_KEY; greeting mutations are unauthenticated"
)
