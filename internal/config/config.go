package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	ServerAddr              string `mapstructure:"SERVER_ADDR"`
	MobyGamesAPIKey         string `mapstructure:"MOBYGAMES_API_KEY"`
	MobyGamesBaseURL        string `mapstructure:"MOBYGAMES_BASE_URL"`
	MobyGamesTimeoutSeconds int    `mapstructure:"MOBYGAMES_TIMEOUT_SECONDS"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("MOBYGAMES_BASE_URL", "https://api.mobygames.com/v1")
	viper.SetDefault("MOBYGAMES_TIMEOUT_SECONDS", 10)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
