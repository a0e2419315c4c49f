package config

// BasicAuthConfig holds the privileged-credential secret compared verbatim
// against the "username:password" pair of an HTTP Basic header.
type BasicAuthConfig struct {
	Secret string `mapstructure:"secret"`
}

type BcryptConfig struct {
	Cost int `mapstructure:"cost"`
}
