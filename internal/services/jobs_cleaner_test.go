package services

import (
	"context"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/talentgrid/matcher/internal/events"
)

type mockJobCleanup struct {
	mock.Mock
}

func (m *mockJobCleanup) CloseExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockJobCleanup) RemoveOldClosed(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func Test_NewJobsCleaner_RejectsBadRetention(t *testing.T) {
	bus := EventBus.New()

	_, err := NewJobsCleaner(&mockJobCleanup{}, bus, 0, 90)
	assert.Error(t, err)

	_, err = NewJobsCleaner(&mockJobCleanup{}, bus, 30, 7)
	assert.Error(t, err)
}

func Test_CleanStaleJobs_PublishesJobsChanged(t *testing.T) {

	jobs := &mockJobCleanup{}
	jobs.On("CloseExpired", mock.Anything, mock.Anything).Return(int64(2), nil)
	jobs.On("RemoveOldClosed", mock.Anything, mock.Anything).Return(int64(1), nil)

	bus := EventBus.New()
	var received events.JobsChanged
	require.NoError(t, bus.Subscribe(events.JobsChangedTopic, func(event events.JobsChanged) {
		received = event
	}))

	cleaner, err := NewJobsCleaner(jobs, bus, 30, 90)
	require.NoError(t, err)
	defer cleaner.Stop()

	cleaner.cleanStaleJobs()
	bus.WaitAsync()

	assert.Equal(t, int64(2), received.ClosedCount)
	assert.Equal(t, int64(1), received.RemovedCount)
}

func Test_CleanStaleJobs_NothingStale_StaysQuiet(t *testing.T) {

	jobs := &mockJobCleanup{}
	jobs.On("CloseExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
	jobs.On("RemoveOldClosed", mock.Anything, mock.Anything).Return(int64(0), nil)

	bus := EventBus.New()
	published := false
	require.NoError(t, bus.Subscribe(events.JobsChangedTopic, func(event events.JobsChanged) {
		published = true
	}))

	cleaner, err := NewJobsCleaner(jobs, bus, 30, 90)
	require.NoError(t, err)
	defer cleaner.Stop()

	cleaner.cleanStaleJobs()
	bus.WaitAsync()

	assert.False(t, published)
}
