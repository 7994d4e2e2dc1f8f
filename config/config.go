package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Horizon      HorizonConfig      `mapstructure:"horizon"`
	Asset        AssetConfig        `mapstructure:"asset"`
	Distribution DistributionConfig `mapstructure:"distribution"`
	History      HistoryConfig      `mapstructure:"history"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// HorizonConfig points the ledger client at a Horizon instance and its faucet.
type HorizonConfig struct {
	URL               string        `mapstructure:"url"`
	FriendbotURL      string        `mapstructure:"friendbot_url"`
	NetworkPassphrase string        `mapstructure:"network_passphrase"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

type AssetConfig struct {
	Code string `mapstructure:"code"` // distributed asset code, e.g. COIN
}

type DistributionConfig struct {
	SettlementWait   time.Duration `mapstructure:"settlement_wait"` // wait after a new trustline before paying
	DefaultReceivers int           `mapstructure:"default_receivers"`
	DefaultAmounts   string        `mapstructure:"default_amounts"` // comma-separated
}

type HistoryConfig struct {
	SnapshotPath string `mapstructure:"snapshot_path"`
	LogPath      string `mapstructure:"log_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // rate limiting is skipped when disabled
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// DefaultAmountList splits the configured default amounts.
func (d DistributionConfig) DefaultAmountList() []string {
	parts := strings.Split(d.DefaultAmounts, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PAYOUT.
// Nested keys use underscore: PAYOUT_HORIZON_URL, PAYOUT_ASSET_CODE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("horizon.url", "https://horizon-testnet.stellar.org")
	v.SetDefault("horizon.friendbot_url", "https://friendbot.stellar.org")
	v.SetDefault("horizon.network_passphrase", "Test SDF Network ; September 2015")
	v.SetDefault("horizon.timeout", "30s")
	v.SetDefault("asset.code", "COIN")
	v.SetDefault("distribution.settlement_wait", "5s")
	v.SetDefault("distribution.default_receivers", 3)
	v.SetDefault("distribution.default_amounts", "50,30,20")
	v.SetDefault("history.snapshot_path", "data/payments.json")
	v.SetDefault("history.log_path", "data/logs.txt")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PAYOUT_HORIZON_URL -> horizon.url
	v.SetEnvPrefix("PAYOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
