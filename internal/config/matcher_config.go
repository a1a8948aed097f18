package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type MatcherConfig struct {
	CacheTTLMinutes     int `mapstructure:"cache_ttl_minutes"`
	JobExpirationInDays int `mapstructure:"job_expiration_days"`
	JobRemovalAfterDays int `mapstructure:"job_removal_after_days"`
}

func (config MatcherConfig) validate() error {
	if config.JobExpirationInDays <= 0 {
		return fmt.Errorf("job expiration in days must be greater than zero")
	}
	if config.JobRemovalAfterDays < config.JobExpirationInDays {
		return fmt.Errorf("job removal must not happen before expiration")
	}
	return nil
}

func (config MatcherConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("matcher.cache_ttl_minutes", "MATCH_CACHE_TTL_MINUTES")
	if err != nil {
		return err
	}

	err = viper.BindEnv("matcher.job_expiration_days", "JOB_EXPIRATION_DAYS")
	if err != nil {
		return err
	}

	return viper.BindEnv("matcher.job_removal_after_days", "JOB_REMOVAL_AFTER_DAYS")
}
