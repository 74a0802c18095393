package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// STOREFRONT_ names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Environment variable names, kept as constants so tests and ops tooling
// reference a single spelling.
const (
	EnvAppEnv            = "STOREFRONT_APP_ENV"
	EnvPort              = "STOREFRONT_APP_PORT"
	EnvLogLevel          = "STOREFRONT_LOG_LEVEL"
	EnvDBDSN             = "STOREFRONT_DB_DSN"
	EnvDBDriver          = "STOREFRONT_DB_DRIVER"
	EnvRedisURL          = "STOREFRONT_REDIS_URL"
	EnvCORSOrigins       = "STOREFRONT_CORS_ORIGINS"
	EnvCartShippingCents = "STOREFRONT_CART_SHIPPING_CENTS"
	EnvCartTTL           = "STOREFRONT_CART_TTL"
	EnvUseSQLite         = "STOREFRONT_USE_SQLITE"
	EnvAutoMigrate       = "STOREFRONT_AUTO_MIGRATE"
	EnvAutoSeed          = "STOREFRONT_AUTO_SEED"
)
