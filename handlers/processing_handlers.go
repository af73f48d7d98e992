package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interviewhub/api-gateway/utils"
)

// TranscribeInterview starts background processing for an uploaded
// interview. The status flips to processing before this handler returns;
// re-invoking it for a non-uploaded interview is rejected.
func (h *ApplicationHandler) TranscribeInterview(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	if err := h.Machine.Start(id); err != nil {
		return utils.RespondWithAppError(c, err)
	}

	h.Logger.WithField("interview_id", id).Info("Interview processing started")
	return utils.RespondWithJSON(c, fiber.StatusAccepted, fiber.Map{
		"status": "processing",
	})
}

// GetInterviewStatus returns the interview's lifecycle state and, when
// failed, the recorded error reason.
func (h *ApplicationHandler) GetInterviewStatus(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	status, errorReason, err := h.Machine.Status(id)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	payload := fiber.Map{"status": status}
	if errorReason != nil {
		payload["error_reason"] = *errorReason
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, payload)
}
