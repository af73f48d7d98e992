package handlers

import (
	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/internal/storage"
	"interviewhub/api-gateway/models"
)

func invalidIDError(raw string) error {
	return apperrors.Validation("invalid interview ID format %q", raw)
}

func fileRefOf(iv *models.Interview) storage.FileRef {
	return storage.FileRef{
		Path:           iv.FilePath,
		RemoteURL:      iv.RemoteURL,
		RemotePublicID: iv.RemotePublicID,
	}
}
