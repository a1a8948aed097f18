package loki

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockLogger struct{}

func (m *mockLogger) Error(msg string, args ...any) {}

func Test_New_ValidatesConfigAndAppliesDefaults(t *testing.T) {
	_, err := New(context.Background(), Config{}, &mockLogger{})
	assert.Error(t, err)

	pusher, err := New(context.Background(), Config{Url: "http://loki.local/push"}, &mockLogger{})
	assert.NoError(t, err)
	defer pusher.Stop()

	assert.Equal(t, 1000, pusher.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, pusher.config.BatchMaxWait)
	assert.Equal(t, map[string]string{}, pusher.config.Labels)
}
