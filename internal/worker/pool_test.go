package worker

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	id    string
	count *int32
	gate  chan struct{}
}

func (j *countingJob) ID() string { return j.id }

func (j *countingJob) Execute() error {
	if j.gate != nil {
		<-j.gate
	}
	atomic.AddInt32(j.count, 1)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestDispatcher_ExecutesSubmittedJobs(t *testing.T) {
	d := NewDispatcher(2, 8, testLogger())
	d.Run()

	var count int32
	for i := 0; i < 5; i++ {
		require.NoError(t, d.SubmitJob(&countingJob{id: "job", count: &count}))
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&count) == 5
	}, 2*time.Second, 10*time.Millisecond)

	d.Stop()
}

func TestDispatcher_RejectsWhenQueueFull(t *testing.T) {
	// Not running the dispatcher keeps the queue from draining, so the
	// single slot stays occupied.
	d := NewDispatcher(1, 1, testLogger())

	var count int32
	require.NoError(t, d.SubmitJob(&countingJob{id: "first", count: &count}))

	err := d.SubmitJob(&countingJob{id: "overflow", count: &count})
	assert.ErrorIs(t, err, ErrQueueFull)
}
