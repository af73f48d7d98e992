package transcript

import (
	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/models"
)

// Keywords returns the analysis keyword list in relevance order.
func Keywords(iv *models.Interview) ([]string, error) {
	if err := requireCompleted(iv); err != nil {
		return nil, err
	}
	return iv.Analysis.Keywords, nil
}

// Questions returns the detected question and answer pairs.
func Questions(iv *models.Interview) ([]models.QAPair, error) {
	if err := requireCompleted(iv); err != nil {
		return nil, err
	}
	return iv.Analysis.Questions, nil
}

// Topics returns the detected topics with confidence scores.
func Topics(iv *models.Interview) ([]models.Topic, error) {
	if err := requireCompleted(iv); err != nil {
		return nil, err
	}
	return iv.Analysis.Topics, nil
}

// SpeakerAnalysis returns per-speaker participation stats.
func SpeakerAnalysis(iv *models.Interview) (map[string]models.SpeakerStats, error) {
	if err := requireCompleted(iv); err != nil {
		return nil, err
	}
	return iv.Analysis.SpeakerAnalysis, nil
}

func requireCompleted(iv *models.Interview) error {
	if iv.Status != models.StatusCompleted || iv.Analysis == nil {
		return apperrors.NotReady("interview %s is %s, analysis is only available once completed", iv.ID, iv.Status)
	}
	return nil
}
