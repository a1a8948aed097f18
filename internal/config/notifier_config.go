package config

import (
	"github.com/spf13/viper"
)

// NotifierConfig drives the optional telegram notifier; an empty token
// disables it.
type NotifierConfig struct {
	TgToken string `mapstructure:"tg_token"`
}

func (config NotifierConfig) Enabled() bool {
	return config.TgToken != ""
}

func (config NotifierConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("notifier.tg_token", "TG_TOKEN")
}
