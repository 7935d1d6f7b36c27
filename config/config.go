package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Reward   RewardConfig   `mapstructure:"reward"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// RewardConfig holds the reward program rules and the treasury wallet binding.
// TreasuryWalletID may be empty at startup; redemption reports a wallet-missing
// failure at call time instead of crashing the process.
type RewardConfig struct {
	TreasuryWalletID      string  `mapstructure:"treasury_wallet_id"`
	EligibilityWindowDays int     `mapstructure:"eligibility_window_days"`
	MinBookings           int     `mapstructure:"min_bookings"`
	ExpiryDays            int     `mapstructure:"expiry_days"`
	WinProbability        float64 `mapstructure:"win_probability"`
	MaxWinAmount          int64   `mapstructure:"max_win_amount"`
	SweepEnabled          bool    `mapstructure:"sweep_enabled"`
	SweepSchedule         string  `mapstructure:"sweep_schedule"`
}

// EligibilityWindow returns the trailing activity window as a duration.
func (r RewardConfig) EligibilityWindow() time.Duration {
	return time.Duration(r.EligibilityWindowDays) * 24 * time.Hour
}

// Expiry returns the reward validity period as a duration.
func (r RewardConfig) Expiry() time.Duration {
	return time.Duration(r.ExpiryDays) * 24 * time.Hour
}

type NotifierConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TRS_ (Ticketing Rewards Service).
// Nested keys use underscore: TRS_DATABASE_HOST, TRS_REWARD_TREASURY_WALLET_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "ticketing_rewards")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "ticketing-rewards")
	v.SetDefault("reward.treasury_wallet_id", "")
	v.SetDefault("reward.eligibility_window_days", 15)
	v.SetDefault("reward.min_bookings", 15)
	v.SetDefault("reward.expiry_days", 7)
	v.SetDefault("reward.win_probability", 0.5)
	v.SetDefault("reward.max_win_amount", 20)
	v.SetDefault("reward.sweep_enabled", true)
	v.SetDefault("reward.sweep_schedule", "@hourly")
	v.SetDefault("notifier.url", "")
	v.SetDefault("notifier.timeout", "10s")
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

	// Environment variables: TRS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TRS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
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
