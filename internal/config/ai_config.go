package config

import (
	"github.com/spf13/viper"
)

// AIConfig drives the optional match-explanation service; an empty key
// disables it.
type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32 `mapstructure:"max_requests_per_day"`
}

func (config AIConfig) Enabled() bool {
	return config.Key != ""
}

func (config AIConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("ai.key", "AI_KEY")
	if err != nil {
		return err
	}

	err = viper.BindEnv("ai.model", "AI_MODEL")
	if err != nil {
		return err
	}

	err = viper.BindEnv("ai.max_requests_per_minute", "AI_MAX_REQUESTS_PER_MINUTE")
	if err != nil {
		return err
	}

	return viper.BindEnv("ai.max_requests_per_day", "AI_MAX_REQUESTS_PER_DAY")
}
