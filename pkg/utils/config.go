package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Planner  PlannerConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type PlannerConfig struct {
	// ProviderTimeout bounds how long a planning session waits for both
	// provider replies before the session is dispatched as a timeout failure.
	ProviderTimeout time.Duration
	TripNights      int
	MaxPlans        int
}

type PaymentConfig struct {
	GatewayMinDelay time.Duration
	GatewayMaxDelay time.Duration
	SuccessRate     float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TRIP_NIGHTS", 3)
	viper.SetDefault("MAX_PLANS", 3)
	viper.SetDefault("GATEWAY_MIN_DELAY_MS", 1500)
	viper.SetDefault("GATEWAY_MAX_DELAY_MS", 3000)
	viper.SetDefault("PAYMENT_SUCCESS_RATE", 0.95)

	// .env is optional; defaults plus real environment variables are enough
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Planner: PlannerConfig{
			ProviderTimeout: time.Duration(viper.GetInt("PROVIDER_TIMEOUT_SECONDS")) * time.Second,
			TripNights:      viper.GetInt("TRIP_NIGHTS"),
			MaxPlans:        viper.GetInt("MAX_PLANS"),
		},
		Payment: PaymentConfig{
			GatewayMinDelay: time.Duration(viper.GetInt("GATEWAY_MIN_DELAY_MS")) * time.Millisecond,
			GatewayMaxDelay: time.Duration(viper.GetInt("GATEWAY_MAX_DELAY_MS")) * time.Millisecond,
			SuccessRate:     viper.GetFloat64("PAYMENT_SUCCESS_RATE"),
		},
	}

	return config, nil
}
