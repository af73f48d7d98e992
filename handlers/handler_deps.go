package handlers

import (
	"github.com/sirupsen/logrus"

	"interviewhub/api-gateway/config"
	"interviewhub/api-gateway/internal/processing"
	"interviewhub/api-gateway/internal/storage"
	"interviewhub/api-gateway/internal/store"
	"interviewhub/api-gateway/internal/tags"
)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger  *logrus.Logger
	Config  config.Config
	Store   *store.Store
	Machine *processing.Machine
	Tags    *tags.Manager
	Storage storage.ObjectStore
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(logger *logrus.Logger, cfg config.Config, s *store.Store, machine *processing.Machine, tagManager *tags.Manager, objectStore storage.ObjectStore) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:  logger,
		Config:  cfg,
		Store:   s,
		Machine: machine,
		Tags:    tagManager,
		Storage: objectStore,
	}
}
