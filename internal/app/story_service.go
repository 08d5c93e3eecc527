package app

import (
	"log/slog"

	"github.com/jsamuelsen11/restaurant-api/internal/domain/story"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that StoryService implements ports.StoryService.
var _ ports.StoryService = (*StoryService)(nil)

// StoryService implements ports.StoryService with plain CRUD.
type StoryService struct {
	*EntityService[story.Story, *story.Story]
}

// NewStoryService creates a StoryService.
func NewStoryService(store ports.Store[story.Story], paging Paging, logger *slog.Logger) *StoryService {
	return &StoryService{EntityService: NewEntityService(store, "story", paging, logger)}
}
