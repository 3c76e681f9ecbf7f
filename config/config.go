package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string   `mapstructure:"port"`
	MongoURI     string   `mapstructure:"MONGODB_URI"`
	DatabaseName string   `mapstructure:"database_name"`
	JWTSecret    string   `mapstructure:"JWT_SECRET"`
	UploadDir    string   `mapstructure:"upload_dir"`
	AI           AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Provider     string `mapstructure:"provider"` // "openai" or "gemini"
	Endpoint     string `mapstructure:"endpoint"`
	Model        string `mapstructure:"model"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	TimeoutSecs  int    `mapstructure:"timeout_seconds"`
}

func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSecs) * time.Second
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Secrets come from the environment, never the config file
	v.BindEnv("MONGODB_URI")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("ai.OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("ai.GEMINI_API_KEY", "GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return &config, nil
}
