package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`

	WikiBaseURL string `mapstructure:"WIKI_BASE_URL"`
	ObjectName  string `mapstructure:"OBJECT_NAME"`

	MaxConcurrentParsers int `mapstructure:"MAX_CONCURRENT_PARSERS"`
	MaxChampions         int `mapstructure:"MAX_CHAMPIONS"` // 0 means no limit
	NavTimeoutSeconds    int `mapstructure:"NAV_TIMEOUT_SECONDS"`
	NavRetries           int `mapstructure:"NAV_RETRIES"`

	PushgatewayURL string `mapstructure:"PUSHGATEWAY_URL"`
	PushgatewayJob string `mapstructure:"PUSHGATEWAY_JOB"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present
	// This allows configuration purely through environment variables in production
	_ = viper.ReadInConfig()

	viper.SetDefault("WIKI_BASE_URL", "https://leagueoflegends.fandom.com")
	viper.SetDefault("OBJECT_NAME", "champions.json")
	viper.SetDefault("MAX_CONCURRENT_PARSERS", 3)
	viper.SetDefault("MAX_CHAMPIONS", 0)
	viper.SetDefault("NAV_TIMEOUT_SECONDS", 10)
	viper.SetDefault("NAV_RETRIES", 3)
	viper.SetDefault("PUSHGATEWAY_JOB", "champion-scraper")

	// viper only picks env vars up during Unmarshal if the key is known
	for _, key := range []string{
		"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY",
		"MINIO_BUCKET", "MINIO_USE_SSL", "PUSHGATEWAY_URL",
	} {
		_ = viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.MinioEndpoint == "":
		return fmt.Errorf("MINIO_ENDPOINT is required")
	case c.MinioAccessKey == "":
		return fmt.Errorf("MINIO_ACCESS_KEY is required")
	case c.MinioSecretKey == "":
		return fmt.Errorf("MINIO_SECRET_KEY is required")
	case c.MinioBucket == "":
		return fmt.Errorf("MINIO_BUCKET is required")
	}
	return nil
}
