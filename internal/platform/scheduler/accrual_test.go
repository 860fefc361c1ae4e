package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccrualSvc struct {
	mock.Mock
}

func (m *MockAccrualSvc) ApplyDailyAccrual(ctx context.Context, day time.Time) (domain.AccrualReport, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(domain.AccrualReport), args.Error(1)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrigger_UsesCalendarDayInLocation(t *testing.T) {
	tashkent, err := time.LoadLocation("Asia/Tashkent")
	require.NoError(t, err)

	// 20:30 UTC on 1 March is 01:30 on 2 March in Tashkent (UTC+5).
	instant := time.Date(2025, 3, 1, 20, 30, 0, 0, time.UTC)
	wantDay := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	svc := new(MockAccrualSvc)
	svc.On("ApplyDailyAccrual", mock.Anything, wantDay).Return(domain.AccrualReport{Day: wantDay, Paid: 3}, nil).Once()

	s, err := NewAccrualScheduler(svc, "0 0 * * *", tashkent, quietLogger(), WithClock(func() time.Time { return instant }))
	require.NoError(t, err)

	report, err := s.Trigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Paid)
	svc.AssertExpectations(t)
}

func TestTrigger_RepeatedSameDayPassesSameKey(t *testing.T) {
	instant := time.Date(2025, 3, 1, 0, 0, 5, 0, time.UTC)
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	svc := new(MockAccrualSvc)
	svc.On("ApplyDailyAccrual", mock.Anything, day).Return(domain.AccrualReport{Day: day}, nil).Twice()

	s, err := NewAccrualScheduler(svc, "0 0 * * *", time.UTC, quietLogger(), WithClock(func() time.Time { return instant }))
	require.NoError(t, err)

	_, err = s.Trigger(context.Background())
	require.NoError(t, err)
	_, err = s.Trigger(context.Background())
	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestNewAccrualScheduler_InvalidSpec(t *testing.T) {
	_, err := NewAccrualScheduler(new(MockAccrualSvc), "every day at noon", time.UTC, quietLogger())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid accrual schedule")
}

func TestStartStop(t *testing.T) {
	s, err := NewAccrualScheduler(new(MockAccrualSvc), "0 0 * * *", time.UTC, quietLogger())
	require.NoError(t, err)

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestStop_WaitsForTriggeredPass(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	svc := new(MockAccrualSvc)
	svc.On("ApplyDailyAccrual", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(domain.AccrualReport{Paid: 1}, nil).Once()

	s, err := NewAccrualScheduler(svc, "0 0 * * *", time.UTC, quietLogger())
	require.NoError(t, err)
	s.Start()

	triggerErr := make(chan error, 1)
	go func() {
		_, err := s.Trigger(context.Background())
		triggerErr <- err
	}()
	<-started

	short, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Stop(short), context.DeadlineExceeded)

	close(release)
	ctx, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, <-triggerErr)

	_, err = s.Trigger(context.Background())
	assert.ErrorIs(t, err, ErrStopped)
	svc.AssertExpectations(t)
}
