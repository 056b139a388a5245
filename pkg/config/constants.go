package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "gestorzap"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "GESTORZAP_APP_ENV"
	EnvPort   = "GESTORZAP_APP_PORT"

	EnvDBDSN  = "GESTORZAP_DB_DSN"
	EnvDBHost = "GESTORZAP_DB_HOST"
	EnvDBUser = "GESTORZAP_DB_USER"
	EnvDBName = "GESTORZAP_DB_NAME"

	EnvRedisURL = "GESTORZAP_REDIS_URL"

	EnvJWTSecret        = "GESTORZAP_JWT_SECRET"
	EnvJWTIssuer        = "GESTORZAP_JWT_ISSUER"
	EnvJWTExpirationMin = "GESTORZAP_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
