package worker

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Job represents a unit of background work, e.g. transcribing one interview.

type Job interface {
	Execute() error // The method that performs the actual work
	ID() string     // A unique identifier for the job
}

// Worker is responsible for processing jobs.
// It runs in its own goroutine and pulls jobs from its dedicated channel.
type Worker struct {
	ID         int
	WorkerPool chan chan Job // A pool of channels, used to register this worker's job channel
	JobChannel chan Job      // A channel specific to this worker, to receive jobs
	Quit       chan bool     // A channel to signal the worker to stop
	Wg         *sync.WaitGroup
	Logger     *logrus.Logger
}

// NewWorker creates a new Worker.
func NewWorker(id int, workerPool chan chan Job, wg *sync.WaitGroup, logger *logrus.Logger) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job),
		Quit:       make(chan bool),
		Wg:         wg,
		Logger:     logger,
	}
}

// Start makes the Worker listen for jobs on its JobChannel.
func (w Worker) Start() {
	w.Wg.Add(1)
	go func() {
		defer w.Wg.Done()
		for {
			// Register the current worker's JobChannel to the worker pool.
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				w.Logger.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID()}).Info("Started job")
				if err := job.Execute(); err != nil {
					w.Logger.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID()}).WithError(err).Error("Job failed")
				} else {
					w.Logger.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID()}).Info("Finished job")
				}
			case <-w.Quit:
				w.Logger.WithField("worker", w.ID).Info("Worker stopping")
				return
			}
		}
	}()
}

// Stop signals the worker to stop processing new jobs.
func (w Worker) Stop() {
	go func() {
		w.Quit <- true
	}()
}

// Dispatcher manages a pool of workers and dispatches jobs to them.
type Dispatcher struct {
	MaxWorkers int
	WorkerPool chan chan Job
	JobQueue   chan Job
	Workers    []Worker
	Wg         sync.WaitGroup
	Quit       chan bool
	Logger     *logrus.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(maxWorkers int, jobQueueSize int, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		MaxWorkers: maxWorkers,
		WorkerPool: make(chan chan Job, maxWorkers),
		JobQueue:   make(chan Job, jobQueueSize),
		Workers:    make([]Worker, 0, maxWorkers),
		Quit:       make(chan bool),
		Logger:     logger,
	}
}

// Run starts the dispatcher and its workers.
func (d *Dispatcher) Run() {
	d.Logger.WithField("workers", d.MaxWorkers).Info("Dispatcher starting")
	for i := 1; i <= d.MaxWorkers; i++ {
		worker := NewWorker(i, d.WorkerPool, &d.Wg, d.Logger)
		d.Workers = append(d.Workers, worker)
		worker.Start()
	}

	go d.dispatch()
}

// dispatch listens to the JobQueue and sends jobs to available workers.
func (d *Dispatcher) dispatch() {
	for {
		select {
		case job := <-d.JobQueue:
			// A job request has been received. Try to obtain a worker job channel.
			go func(job Job) {
				// Wait for a worker to become available.
				jobChannel := <-d.WorkerPool
				jobChannel <- job
			}(job)
		case <-d.Quit:
			d.Logger.Info("Dispatcher stopping dispatch loop")
			return
		}
	}
}

// SubmitJob adds a job to the job queue. It returns an error instead of
// blocking when the queue is full so callers can surface backpressure.
func (d *Dispatcher) SubmitJob(job Job) error {
	select {
	case d.JobQueue <- job:
		d.Logger.WithField("job", job.ID()).Info("Job submitted to queue")
		return nil
	default:
		d.Logger.WithField("job", job.ID()).Warn("Job queue full, job rejected")
		return ErrQueueFull
	}
}

// Stop gracefully shuts down the dispatcher and all its workers.
func (d *Dispatcher) Stop() {
	d.Quit <- true

	for _, worker := range d.Workers {
		worker.Stop()
	}

	// Wait for all workers to complete their current jobs and exit.
	d.Wg.Wait()
	close(d.JobQueue)
	close(d.WorkerPool)
	d.Logger.Info("Dispatcher shutdown complete")
}
