package handlers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interviewhub/api-gateway/internal/store"
	"interviewhub/api-gateway/models"
	"interviewhub/api-gateway/utils"
)

// contentTypeExtensions maps upload content types to a file extension when
// the client did not send a usable filename.
var contentTypeExtensions = map[string]string{
	"audio/mpeg":      ".mp3",
	"audio/mp3":       ".mp3",
	"audio/wav":       ".wav",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
}

// UploadInterview receives a multipart recording, stores the bytes through
// the object store, and registers a fresh interview.
func (h *ApplicationHandler) UploadInterview(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Logger.WithError(err).Warn("Upload request without a file part")
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Error getting file: %v", err))
	}

	originalName := fileHeader.Filename
	if originalName == "" {
		originalName = "unknown_file"
	}
	contentType := fileHeader.Header.Get("Content-Type")

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		if inferred, ok := contentTypeExtensions[strings.ToLower(contentType)]; ok {
			ext = inferred
		} else if strings.Contains(strings.ToLower(contentType), "video") {
			ext = ".mp4"
		} else if strings.Contains(strings.ToLower(contentType), "audio") {
			ext = ".mp3"
		}
	}

	if err := h.Store.CheckUpload(fileHeader.Size, ext); err != nil {
		h.Logger.WithField("original_name", originalName).WithError(err).Warn("Upload rejected by policy")
		return utils.RespondWithAppError(c, err)
	}

	fileHandle, err := fileHeader.Open()
	if err != nil {
		h.Logger.WithError(err).Error("Error opening uploaded file")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error opening file: %v", err))
	}
	defer fileHandle.Close()

	data, err := io.ReadAll(fileHandle)
	if err != nil {
		h.Logger.WithError(err).Error("Error reading uploaded file")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error reading file: %v", err))
	}

	storedName := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	ref, err := h.Storage.Save(c.Context(), storedName, contentType, data)
	if err != nil {
		h.Logger.WithField("stored_name", storedName).WithError(err).Error("Error storing uploaded file")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to store uploaded file")
	}

	iv, err := h.Store.Create(store.NewInterviewParams{
		Filename:       storedName,
		OriginalName:   originalName,
		Extension:      ext,
		FileSize:       int64(len(data)),
		FilePath:       ref.Path,
		RemoteURL:      ref.RemoteURL,
		RemotePublicID: ref.RemotePublicID,
	})
	if err != nil {
		if removeErr := h.Storage.Remove(c.Context(), ref); removeErr != nil {
			h.Logger.WithField("stored_name", storedName).WithError(removeErr).Warn("Failed to clean up file after rejected upload")
		}
		return utils.RespondWithAppError(c, err)
	}

	h.Logger.WithFields(map[string]interface{}{
		"interview_id":  iv.ID,
		"original_name": iv.OriginalName,
		"file_size":     iv.FileSize,
	}).Info("Interview uploaded")
	return utils.RespondWithJSON(c, fiber.StatusCreated, iv)
}

// ListInterviews returns a filtered, paginated page of interviews with the
// total match count.
func (h *ApplicationHandler) ListInterviews(c *fiber.Ctx) error {
	filter := store.Filter{
		Search: utils.SanitizeInput(c.Query("search")),
	}
	if statusParam := c.Query("status"); statusParam != "" {
		status := models.Status(statusParam)
		if !models.ValidStatus(status) {
			return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Unknown status %q", statusParam))
		}
		filter.Status = status
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	items, total := h.Store.List(filter, limit, offset)
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"items": items,
		"total": total,
	})
}

// GetInterview returns one interview by id.
func (h *ApplicationHandler) GetInterview(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	iv, err := h.Store.Get(id)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, iv)
}

// DeleteInterview removes the interview together with its tags and requests
// best-effort deletion of the underlying file.
func (h *ApplicationHandler) DeleteInterview(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	iv, err := h.Store.Delete(id)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	if err := h.Storage.Remove(c.Context(), fileRefOf(iv)); err != nil {
		h.Logger.WithField("interview_id", id).WithError(err).Warn("File cleanup failed after delete")
	}

	h.Logger.WithField("interview_id", id).Info("Interview deleted")
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"message": "Interview deleted successfully",
	})
}

// GetInterviewFile resolves the interview's file reference: the remote URL
// when the file was mirrored to cloud storage, the local bytes otherwise.
func (h *ApplicationHandler) GetInterviewFile(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	iv, err := h.Store.Get(id)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	if iv.RemoteURL != nil {
		return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
			"url":  *iv.RemoteURL,
			"type": "remote",
		})
	}
	return c.Download(iv.FilePath, iv.OriginalName)
}

// GetRemoteFileURL reports the cloud copy of the recording, if one exists.
func (h *ApplicationHandler) GetRemoteFileURL(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	iv, err := h.Store.Get(id)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	if iv.RemoteURL == nil {
		return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
			"url":       nil,
			"public_id": nil,
			"type":      "local",
			"message":   "File not uploaded to cloud storage",
		})
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"url":       *iv.RemoteURL,
		"public_id": iv.RemotePublicID,
		"type":      "remote",
	})
}

func parseInterviewID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, invalidIDError(c.Params("id"))
	}
	return id, nil
}
