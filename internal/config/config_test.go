package config

import (
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		DB:     DBConfig{ConnectionString: "newConnectionString"},
		Logger: LoggerConfig{LogLevel: LevelDebug},
		API: APIConfig{
			Port:                 9999,
			MaxRequestsPerSecond: 42,
		},
		Matcher: MatcherConfig{
			JobExpirationInDays: 14,
		},
		AI: AIConfig{
			Key:   "overrideKey",
			Model: "super_duper_model",
		},
		Notifier: NotifierConfig{TgToken: "overrideToken"},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("DB_CONNECTION_STRING", override.DB.ConnectionString)
	os.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))
	os.Setenv("API_PORT", strconv.Itoa(override.API.Port))
	os.Setenv("API_MAX_REQUESTS_PER_SECOND", fmt.Sprintf("%f", override.API.MaxRequestsPerSecond))
	os.Setenv("JOB_EXPIRATION_DAYS", strconv.Itoa(override.Matcher.JobExpirationInDays))
	os.Setenv("AI_KEY", override.AI.Key)
	os.Setenv("AI_MODEL", override.AI.Model)
	os.Setenv("TG_TOKEN", override.Notifier.TgToken)

	cfg := Get()

	assert.Equal(t, override.DB.ConnectionString, cfg.DB.ConnectionString)
	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
	assert.Equal(t, override.API.Port, cfg.API.Port)
	assert.Equal(t, override.API.MaxRequestsPerSecond, cfg.API.MaxRequestsPerSecond)
	assert.Equal(t, override.Matcher.JobExpirationInDays, cfg.Matcher.JobExpirationInDays)
	assert.Equal(t, override.AI.Key, cfg.AI.Key)
	assert.Equal(t, override.AI.Model, cfg.AI.Model)
	assert.Equal(t, override.Notifier.TgToken, cfg.Notifier.TgToken)
	assert.True(t, cfg.AI.Enabled())
	assert.True(t, cfg.Notifier.Enabled())
}
