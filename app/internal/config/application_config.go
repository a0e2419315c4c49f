package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	ctxutil "backend/school-platform/app/pkg/util/context"
)

// bindEnv binds an environment variable with an optional default value
func bindEnv(configKey, envKey string, defaultValue ...interface{}) {
	if len(defaultValue) > 0 {
		viper.SetDefault(configKey, defaultValue[0])
	}
	viper.BindEnv(configKey, envKey)
}

type ApplicationConfig struct {
	ServerConfig    ServerConfig    `mapstructure:"server"`
	DatabaseConfig  DatabaseConfig  `mapstructure:"database"`
	RouterConfig    RouterConfig    `mapstructure:"router"`
	JwtConfig       JwtConfig       `mapstructure:"jwt"`
	BasicAuthConfig BasicAuthConfig `mapstructure:"basic_auth"`
	BcryptConfig    BcryptConfig    `mapstructure:"bcrypt"`
	S3Config        S3Config        `mapstructure:"s3"`
	WilayahConfig   WilayahConfig   `mapstructure:"wilayah"`
}

func ReadApplicationConfig(env ctxutil.AppMode, logger *zap.Logger) (cfg ApplicationConfig, err error) {
	if env == "" {
		env = ctxutil.AppModeLocal
	}
	confFileName := fmt.Sprintf("config-%s", env)

	viper.SetConfigName(confFileName)
	viper.SetConfigType("yaml")

	viper.AddConfigPath("./config")
	// For unit tests
	viper.AddConfigPath("../../../config")
	viper.AddConfigPath("../../../../config")

	if err := viper.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("error reading config file: %v", err)
	} else {
		logger.Info(
			"using config",
			zap.String("file", confFileName),
		)
	}
	viper.AutomaticEnv()

	// Server
	bindEnv("server.port", "SERVER_PORT", 8000)

	// Database
	bindEnv("database.uri", "DB_URI")
	bindEnv("database.protocol", "DB_PROTOCOL", "postgres")
	bindEnv("database.url", "DB_URL")
	bindEnv("database.name", "DB_NAME")
	bindEnv("database.port", "DB_PORT", 5432)
	bindEnv("database.username", "DB_USERNAME")
	bindEnv("database.password", "DB_PASSWORD")
	bindEnv("database.ssl_mode", "SSL_MODE", "disable")
	bindEnv("database.max_db_conns", "DB_MAX_DB_CONNS", 10)
	bindEnv("database.max_idle_db_conns", "DB_MAX_IDLE_DB_CONNS", 5)
	bindEnv("database.max_conn_lifetime", "DB_MAX_CONN_LIFETIME", 1800)
	bindEnv("database.max_conn_idle_time", "DB_MAX_CONN_IDLE_TIME", 600)

	// Router
	bindEnv("router.allowed_origins", "ROUTER_ALLOWED_ORIGINS", "http://localhost:3000")

	// JWT
	bindEnv("jwt.issuer", "JWT_ISSUER")
	bindEnv("jwt.secret_key", "JWT_SECRET")
	bindEnv("jwt.access_expiration", "JWT_ACCESS_EXPIRATION", "24h")

	// Basic auth
	bindEnv("basic_auth.secret", "BASIC_AUTH_SECRET")

	// Bcrypt
	bindEnv("bcrypt.cost", "BCRYPT_COST")

	// S3
	bindEnv("s3.access_key", "AWS_S3_ACCESS_KEY_ID")
	bindEnv("s3.secret_key", "AWS_S3_SECRET_ACCESS_KEY")
	bindEnv("s3.endpoint", "AWS_S3_ENDPOINT")
	bindEnv("s3.region", "AWS_S3_REGION", "custom-region")
	bindEnv("s3.bucket", "AWS_S3_BUCKET")

	// Wilayah (geographic reference API)
	bindEnv("wilayah.base_url", "WILAYAH_BASE_URL", "https://wilayah.id/api")

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %s", err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, err
}

// Validate checks the keys the application cannot start without.
func (c ApplicationConfig) Validate() error {
	var missing []string
	if c.DatabaseConfig.URI == "" && c.DatabaseConfig.URL == "" {
		missing = append(missing, "database.uri or database.url")
	}
	if c.JwtConfig.SecretKey == "" {
		missing = append(missing, "jwt.secret_key")
	}
	if c.BasicAuthConfig.Secret == "" {
		missing = append(missing, "basic_auth.secret")
	}
	if c.S3Config.AccessKey == "" || c.S3Config.SecretKey == "" {
		missing = append(missing, "s3.access_key/s3.secret_key")
	}
	if c.S3Config.Endpoint == "" || c.S3Config.Bucket == "" {
		missing = append(missing, "s3.endpoint/s3.bucket")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
