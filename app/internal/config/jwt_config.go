package config

import "time"

type JwtConfig struct {
	Issuer           string        `mapstructure:"issuer"`
	SecretKey        string        `mapstructure:"secret_key"`
	AccessExpiration time.Duration `mapstructure:"access_expiration"`
}
