package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type APIConfig struct {
	Port                 int     `mapstructure:"port"`
	MetricsPort          int     `mapstructure:"metrics_port"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config APIConfig) validate() error {
	var errs []error

	if config.Port <= 0 {
		errs = append(errs, fmt.Errorf("api port must be greater than zero"))
	}
	if config.MetricsPort <= 0 {
		errs = append(errs, fmt.Errorf("metrics port must be greater than zero"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("api.port", "API_PORT")
	if err != nil {
		return err
	}

	err = viper.BindEnv("api.metrics_port", "METRICS_PORT")
	if err != nil {
		return err
	}

	return viper.BindEnv("api.max_requests_per_second", "API_MAX_REQUESTS_PER_SECOND")
}
