package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interviewhub/api-gateway/internal/tags"
	"interviewhub/api-gateway/utils"
)

// AddTag attaches a time-ranged annotation to an interview's timeline.
func (h *ApplicationHandler) AddTag(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	payload := new(tags.AddRequest)
	if err := c.BodyParser(payload); err != nil {
		h.Logger.WithError(err).Warn("Error parsing tag payload")
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}

	tag, err := h.Tags.Add(id, *payload)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	h.Logger.WithFields(map[string]interface{}{
		"interview_id": id,
		"tag_id":       tag.ID,
	}).Info("Tag added")
	return utils.RespondWithJSON(c, fiber.StatusCreated, tag)
}

// DeleteTag removes one tag from an interview.
func (h *ApplicationHandler) DeleteTag(c *fiber.Ctx) error {
	id, err := parseInterviewID(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	tagID, err := uuid.Parse(c.Params("tagId"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid tag ID format %q", c.Params("tagId")))
	}

	if err := h.Tags.Remove(id, tagID); err != nil {
		return utils.RespondWithAppError(c, err)
	}

	h.Logger.WithFields(map[string]interface{}{
		"interview_id": id,
		"tag_id":       tagID,
	}).Info("Tag deleted")
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"message": "Tag deleted successfully",
	})
}
