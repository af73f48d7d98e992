package processing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/internal/store"
	"interviewhub/api-gateway/internal/worker"
	"interviewhub/api-gateway/models"
)

// Machine drives interviews through uploaded -> processing -> completed or
// failed. It owns the gate that prevents duplicate concurrent processing of
// the same interview and the discard of results for deleted records.
type Machine struct {
	store       *store.Store
	transcriber Transcriber
	pool        *worker.Dispatcher
	logger      *logrus.Logger
}

// NewMachine wires the state machine to its collaborators.
func NewMachine(s *store.Store, t Transcriber, pool *worker.Dispatcher, logger *logrus.Logger) *Machine {
	return &Machine{store: s, transcriber: t, pool: pool, logger: logger}
}

// Start transitions the interview to processing and schedules the background
// completion step. The status flip is observable before any background work
// begins. A second call for the same interview is rejected, not queued.
func (m *Machine) Start(id uuid.UUID) error {
	_, err := m.store.Update(id, func(iv *models.Interview) error {
		if iv.Status != models.StatusUploaded {
			return apperrors.InvalidState("interview %s is %s, processing can only start from %s", id, iv.Status, models.StatusUploaded)
		}
		return iv.BeginProcessing()
	})
	if err != nil {
		return err
	}

	job := &transcriptionJob{machine: m, interviewID: id}
	if err := m.pool.SubmitJob(job); err != nil {
		// The record already shows processing; record the scheduling failure
		// the same way a collaborator failure is recorded.
		if _, failErr := m.store.Update(id, func(iv *models.Interview) error {
			return iv.Fail("processing could not be scheduled: queue full")
		}); failErr != nil {
			m.logger.WithField("interview_id", id).WithError(failErr).Error("Failed to record scheduling failure")
		}
		return apperrors.Wrap(err, apperrors.KindStorage, "could not schedule processing")
	}
	return nil
}

// Status returns the interview's current lifecycle state and, when failed,
// the recorded error reason.
func (m *Machine) Status(id uuid.UUID) (models.Status, *string, error) {
	iv, err := m.store.Get(id)
	if err != nil {
		return "", nil, err
	}
	return iv.Status, iv.ErrorReason, nil
}

// transcriptionJob is the background completion step for one interview.
type transcriptionJob struct {
	machine     *Machine
	interviewID uuid.UUID
}

func (j *transcriptionJob) ID() string {
	return fmt.Sprintf("transcribe-%s", j.interviewID)
}

// Execute runs the transcription collaborator and writes the outcome back
// through the store. If the interview was deleted mid-processing the result
// is discarded rather than treated as an error.
func (j *transcriptionJob) Execute() error {
	m := j.machine
	log := m.logger.WithField("interview_id", j.interviewID)

	iv, err := m.store.Get(j.interviewID)
	if err != nil {
		log.Info("Interview deleted before processing began, discarding job")
		return nil
	}

	result, trErr := m.transcriber.Transcribe(context.Background(), iv.FilePath)
	if trErr != nil {
		log.WithError(trErr).Warn("Transcription collaborator failed")
		_, err := m.store.Update(j.interviewID, func(rec *models.Interview) error {
			return rec.Fail(trErr.Error())
		})
		if err != nil && apperrors.IsKind(err, apperrors.KindNotFound) {
			log.Info("Interview deleted during processing, discarding failure")
			return nil
		}
		return err
	}

	_, err = m.store.Update(j.interviewID, func(rec *models.Interview) error {
		return rec.Complete(result.Transcript, result.Analysis)
	})
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			log.Info("Interview deleted during processing, discarding result")
			return nil
		}
		return err
	}

	log.WithField("segments", len(result.Transcript)).Info("Interview processing completed")
	return nil
}
