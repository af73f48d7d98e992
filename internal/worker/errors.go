package worker

import "errors"

// ErrQueueFull is returned by SubmitJob when the job queue cannot accept
// more work.
var ErrQueueFull = errors.New("worker: job queue full")
