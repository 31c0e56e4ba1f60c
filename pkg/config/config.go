package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Input      string           `mapstructure:"input"`
	Output     OutputConfig     `mapstructure:"output"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Notifier   NotifierConfig   `mapstructure:"notifier"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
}

type OutputConfig struct {
	CSVPath  string `mapstructure:"csv_path"`
	JSONPath string `mapstructure:"json_path"`
}

type ClassifierConfig struct {
	UseOpenAI bool `mapstructure:"use_openai"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type NotifierConfig struct {
	Type     string         `mapstructure:"type"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

type AnalyticsConfig struct {
	TopKeywords int `mapstructure:"top_keywords"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("input", "")
	v.SetDefault("output.csv_path", "email_triage_log.csv")
	v.SetDefault("output.json_path", "email_triage_log.json")
	v.SetDefault("classifier.use_openai", false)
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_tokens", 150)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("notifier.type", "console")
	v.SetDefault("analytics.top_keywords", 5)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file if one exists; defaults apply otherwise
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Get environment variable overrides
	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}

	if token := v.GetString("TELEGRAM_TOKEN"); token != "" {
		config.Notifier.Telegram.Token = token
	}

	return &config, nil
}
