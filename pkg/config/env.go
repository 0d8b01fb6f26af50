package config

// EnvPrefix is handed to envconfig; individual fields carry explicit
// SHOPDESK_* names so the prefix is effectively documentation.
const EnvPrefix = "SHOPDESK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv = "SHOPDESK_APP_ENV"
	EnvPort   = "SHOPDESK_APP_PORT"

	EnvDBDSN  = "SHOPDESK_DB_DSN"
	EnvDBHost = "SHOPDESK_DB_HOST"
	EnvDBUser = "SHOPDESK_DB_USER"
	EnvDBName = "SHOPDESK_DB_NAME"

	EnvRedisURL = "SHOPDESK_REDIS_URL"

	EnvJWTSecret              = "SHOPDESK_JWT_SECRET"
	EnvJWTIssuer              = "SHOPDESK_JWT_ISSUER"
	EnvJWTExpMins             = "SHOPDESK_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "SHOPDESK_REFRESH_TOKEN_TTL_MINUTES"

	EnvGCSBucket = "SHOPDESK_GCS_BUCKET_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
