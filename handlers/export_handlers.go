package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"interviewhub/api-gateway/internal/export"
	"interviewhub/api-gateway/internal/stats"
	"interviewhub/api-gateway/utils"
)

// ExportInterview renders a completed interview as json or txt.
func (h *ApplicationHandler) ExportInterview(c *fiber.Ctx) error {
	iv, err := h.getInterview(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	format := export.Format(strings.ToLower(c.Query("format", "json")))
	data, err := export.Render(iv, format)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	c.Set(fiber.HeaderContentType, export.ContentType(format))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s_export.%s", iv.ID, format))
	return c.Status(fiber.StatusOK).Send(data)
}

// GetStats returns cross-interview counts and averages, recomputed from the
// live store.
func (h *ApplicationHandler) GetStats(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, stats.Collect(h.Store))
}

// HealthCheck reports service liveness and the storage mode in use.
func (h *ApplicationHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":           "healthy",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"total_interviews": h.Store.Len(),
		"storage_mode":     h.Storage.Mode(),
	})
}
