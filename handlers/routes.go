package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the interview API under /api.
func RegisterRoutes(app *fiber.App, h *ApplicationHandler) {
	api := app.Group("/api")

	api.Get("/health", h.HealthCheck)
	api.Get("/stats", h.GetStats)

	interviews := api.Group("/interviews")
	interviews.Post("/upload", h.UploadInterview)
	interviews.Get("", h.ListInterviews)
	interviews.Get("/:id", h.GetInterview)
	interviews.Delete("/:id", h.DeleteInterview)
	interviews.Post("/:id/transcribe", h.TranscribeInterview)
	interviews.Get("/:id/status", h.GetInterviewStatus)
	interviews.Get("/:id/file", h.GetInterviewFile)
	interviews.Get("/:id/remote-url", h.GetRemoteFileURL)
	interviews.Get("/:id/cloudinary-url", h.GetRemoteFileURL) // legacy route kept for the existing frontend
	interviews.Get("/:id/search", h.SearchTranscript)
	interviews.Get("/:id/keywords", h.GetKeywords)
	interviews.Get("/:id/questions", h.GetQuestions)
	interviews.Get("/:id/topics", h.GetTopics)
	interviews.Get("/:id/speaker-analysis", h.GetSpeakerAnalysis)
	interviews.Post("/:id/tags", h.AddTag)
	interviews.Delete("/:id/tags/:tagId", h.DeleteTag)
	interviews.Get("/:id/export", h.ExportInterview)
}
