package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Broker   BrokerConfig
	Purchase PurchaseConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// BrokerConfig configures the reward-reminder publisher. An empty Host
// disables publishing entirely.
type BrokerConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Exchange string
}

type PurchaseConfig struct {
	TxTimeout        time.Duration
	MaxRetryAttempts int
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "barista")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "janifruitful")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_TOKEN_TTL", "12h")
	viper.SetDefault("BROKER_HOST", "")
	viper.SetDefault("BROKER_PORT", 5672)
	viper.SetDefault("BROKER_USER", "guest")
	viper.SetDefault("BROKER_PASSWORD", "guest")
	viper.SetDefault("BROKER_EXCHANGE", "loyalty_reminders")
	viper.SetDefault("PURCHASE_TX_TIMEOUT", "5s")
	viper.SetDefault("PURCHASE_MAX_RETRY_ATTEMPTS", 3)

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	tokenTTL, err := time.ParseDuration(viper.GetString("JWT_TOKEN_TTL"))
	if err != nil {
		return nil, err
	}

	txTimeout, err := time.ParseDuration(viper.GetString("PURCHASE_TX_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		Broker: BrokerConfig{
			Host:     viper.GetString("BROKER_HOST"),
			Port:     viper.GetInt("BROKER_PORT"),
			User:     viper.GetString("BROKER_USER"),
			Password: viper.GetString("BROKER_PASSWORD"),
			Exchange: viper.GetString("BROKER_EXCHANGE"),
		},
		Purchase: PurchaseConfig{
			TxTimeout:        txTimeout,
			MaxRetryAttempts: viper.GetInt("PURCHASE_MAX_RETRY_ATTEMPTS"),
		},
	}

	return cfg, nil
}
