package schedule_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LylesZhang/Protothon-2026/internal/schedule"
)

func TestScheduler_FiresAfterDelay(t *testing.T) {
	s := schedule.New(zap.NewNop())
	defer s.Stop()

	done := make(chan struct{})
	s.AfterFunc(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never fired")
	}
}

func TestScheduler_CancelPreventsRun(t *testing.T) {
	s := schedule.New(zap.NewNop())
	defer s.Stop()

	var fired atomic.Bool
	cancel := s.AfterFunc(50*time.Millisecond, func() { fired.Store(true) })

	require.True(t, cancel(), "cancel of a pending task should succeed")
	assert.False(t, cancel(), "second cancel reports nothing to do")

	time.Sleep(100 * time.Millisecond)
	assert.False(t, fired.Load(), "canceled task must not run")
}

func TestScheduler_CancelAfterFire(t *testing.T) {
	s := schedule.New(zap.NewNop())
	defer s.Stop()

	done := make(chan struct{})
	cancel := s.AfterFunc(5*time.Millisecond, func() { close(done) })

	<-done
	assert.False(t, cancel(), "cancel after the task ran reports false")
}

func TestScheduler_StopCancelsPending(t *testing.T) {
	s := schedule.New(zap.NewNop())

	var fired atomic.Int32
	for i := 0; i < 5; i++ {
		s.AfterFunc(time.Hour, func() { fired.Add(1) })
	}

	s.Stop()
	assert.Equal(t, int32(0), fired.Load())
}

func TestScheduler_ScheduleAfterStopIsNoOp(t *testing.T) {
	s := schedule.New(zap.NewNop())
	s.Stop()

	var fired atomic.Bool
	cancel := s.AfterFunc(time.Millisecond, func() { fired.Store(true) })
	assert.False(t, cancel())

	time.Sleep(20 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestScheduler_StopWaitsForRunningTask(t *testing.T) {
	s := schedule.New(zap.NewNop())

	started := make(chan struct{})
	var finished atomic.Bool
	s.AfterFunc(time.Millisecond, func() {
		close(started)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	s.Stop()
	assert.True(t, finished.Load(), "Stop must drain the in-flight task")
}
