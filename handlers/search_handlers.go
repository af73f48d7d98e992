package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interviewhub/api-gateway/internal/transcript"
	"interviewhub/api-gateway/models"
	"interviewhub/api-gateway/utils"
)

// SearchTranscript locates literal occurrences of a query inside the
// interview's transcript segments.
func (h *ApplicationHandler) SearchTranscript(c *fiber.Ctx) error {
	iv, err := h.getInterview(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}

	matches, err := transcript.Search(iv, c.Query("query"), c.QueryBool("case_sensitive", false))
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"results": matches,
		"total":   len(matches),
	})
}

// GetKeywords returns the analysis keywords in relevance order.
func (h *ApplicationHandler) GetKeywords(c *fiber.Ctx) error {
	iv, err := h.getInterview(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	keywords, err := transcript.Keywords(iv)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"keywords": keywords})
}

// GetQuestions returns the detected question and answer pairs.
func (h *ApplicationHandler) GetQuestions(c *fiber.Ctx) error {
	iv, err := h.getInterview(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	questions, err := transcript.Questions(iv)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"questions": questions})
}

// GetTopics returns the detected topics with confidence scores.
func (h *ApplicationHandler) GetTopics(c *fiber.Ctx) error {
	iv, err := h.getInterview(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	topics, err := transcript.Topics(iv)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"topics": topics})
}

// GetSpeakerAnalysis returns per-speaker participation stats.
func (h *ApplicationHandler) GetSpeakerAnalysis(c *fiber.Ctx) error {
	iv, err := h.getInterview(c)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	speakers, err := transcript.SpeakerAnalysis(iv)
	if err != nil {
		return utils.RespondWithAppError(c, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"speaker_analysis": speakers})
}

func (h *ApplicationHandler) getInterview(c *fiber.Ctx) (*models.Interview, error) {
	id, err := parseInterviewID(c)
	if err != nil {
		return nil, err
	}
	return h.Store.Get(id)
}
