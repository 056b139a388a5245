package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Signup        SignupConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"GESTORZAP_APP_ENV" required:"true"`
	Port         string `envconfig:"GESTORZAP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GESTORZAP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GESTORZAP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GESTORZAP_DB_DSN"`
	Driver string `envconfig:"GESTORZAP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GESTORZAP_DB_HOST"`
	LegacyPort     int    `envconfig:"GESTORZAP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GESTORZAP_DB_USER"`
	LegacyPassword string `envconfig:"GESTORZAP_DB_PASSWORD"`
	LegacyName     string `envconfig:"GESTORZAP_DB_NAME"`
	LegacySSLMode  string `envconfig:"GESTORZAP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GESTORZAP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GESTORZAP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GESTORZAP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GESTORZAP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GESTORZAP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GESTORZAP_REDIS_ADDR"`
	Password     string        `envconfig:"GESTORZAP_REDIS_PASSWORD"`
	DB           int           `envconfig:"GESTORZAP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GESTORZAP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GESTORZAP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GESTORZAP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GESTORZAP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GESTORZAP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"GESTORZAP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"GESTORZAP_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"GESTORZAP_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"GESTORZAP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GESTORZAP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GESTORZAP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GESTORZAP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GESTORZAP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GESTORZAP_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"GESTORZAP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"GESTORZAP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"GESTORZAP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"GESTORZAP_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"GESTORZAP_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"GESTORZAP_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// SignupConfig governs post-registration profile provisioning and email
// confirmation. The profile row is normally created by a database trigger;
// the service polls for it before falling back to a direct insert.
type SignupConfig struct {
	ProvisionPollInterval time.Duration `envconfig:"GESTORZAP_SIGNUP_PROVISION_POLL_INTERVAL" default:"100ms"`
	ProvisionPollTimeout  time.Duration `envconfig:"GESTORZAP_SIGNUP_PROVISION_POLL_TIMEOUT" default:"2s"`
	ConfirmTokenTTL       time.Duration `envconfig:"GESTORZAP_SIGNUP_CONFIRM_TOKEN_TTL" default:"24h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GESTORZAP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GESTORZAP_AUTO_MIGRATE" default:"false"`
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
