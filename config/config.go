package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Portfolio chatbot specifics
	Groq    GroqConfig
	Chatbot ChatbotConfig
	Static  StaticConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GroqConfig configures the model client. An empty APIKey is not an
// error: the service starts and reports apiConfigured=false instead.
type GroqConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
}

type ChatbotConfig struct {
	SessionCapacity int
	RateLimitPerMin int
}

type StaticConfig struct {
	Dir string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Groq model client
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	cfg.Groq.Temperature = viper.GetFloat64("groq.temperature")

	// Chatbot
	cfg.Chatbot.SessionCapacity = viper.GetInt("chatbot.session_capacity")
	cfg.Chatbot.RateLimitPerMin = viper.GetInt("chatbot.rate_limit_per_min")

	// Static site
	cfg.Static.Dir = viper.GetString("static.dir")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("groq.api_key", "")
	viper.SetDefault("groq.model", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.base_url", "")
	viper.SetDefault("groq.temperature", 0.3)

	viper.SetDefault("chatbot.session_capacity", 1000)
	viper.SetDefault("chatbot.rate_limit_per_min", 60)

	viper.SetDefault("static.dir", "./public")
}
