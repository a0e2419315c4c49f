package config

// WilayahConfig points at the external geographic-data API serving province
// and regency snapshots as JSON.
type WilayahConfig struct {
	BaseURL string `mapstructure:"base_url"`
}
