package tags

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/internal/store"
	"interviewhub/api-gateway/models"
)

// AddRequest is the payload for attaching a tag to an interview's timeline.
type AddRequest struct {
	Text      string  `json:"text" validate:"required"`
	StartTime float64 `json:"start_time" validate:"gte=0"`
	EndTime   float64 `json:"end_time" validate:"gte=0"`
	Color     string  `json:"color" validate:"required,hexcolor"`
}

// Manager attaches and removes time-ranged annotations on interviews. All
// mutation goes through the store so updated_at stays accurate.
type Manager struct {
	store    *store.Store
	validate *validator.Validate
}

// NewManager creates a tag manager over the given store.
func NewManager(s *store.Store) *Manager {
	return &Manager{store: s, validate: validator.New()}
}

// Add validates the request against the interview's transcript bounds,
// generates a tag id, and appends the tag.
func (m *Manager) Add(interviewID uuid.UUID, req AddRequest) (models.Tag, error) {
	if err := m.validate.Struct(req); err != nil {
		return models.Tag{}, apperrors.Wrap(err, apperrors.KindValidation, "invalid tag")
	}
	if req.StartTime > req.EndTime {
		return models.Tag{}, apperrors.Validation("tag start_time %.2f is after end_time %.2f", req.StartTime, req.EndTime)
	}

	tag := models.Tag{
		ID:        uuid.New(),
		Text:      req.Text,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Color:     req.Color,
		CreatedAt: time.Now().UTC(),
	}

	_, err := m.store.Update(interviewID, func(iv *models.Interview) error {
		if max := iv.MaxTimestamp(); len(iv.Transcript) > 0 && req.EndTime > max {
			return apperrors.Validation("tag end_time %.2f exceeds transcript end %.2f", req.EndTime, max)
		}
		iv.Tags = append(iv.Tags, tag)
		return nil
	})
	if err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

// Remove deletes the tag with the given id from the interview.
func (m *Manager) Remove(interviewID, tagID uuid.UUID) error {
	_, err := m.store.Update(interviewID, func(iv *models.Interview) error {
		for i, tag := range iv.Tags {
			if tag.ID == tagID {
				iv.Tags = append(iv.Tags[:i], iv.Tags[i+1:]...)
				return nil
			}
		}
		return apperrors.NotFound("tag %s not found on interview %s", tagID, interviewID)
	})
	return err
}
