package handlers

import (
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/story"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// StoryHandler handles HTTP requests for stories. Anonymous callers only
// see published stories.
type StoryHandler struct {
	*Resource[story.Story, dto.StoryResponse]
}

// NewStoryHandler creates a new StoryHandler with the given service port.
func NewStoryHandler(svc ports.StoryService) *StoryHandler {
	return &StoryHandler{
		Resource: newResource[story.Story, dto.StoryResponse](svc,
			decoder(plain((*dto.StoryRequest).ToEntity)),
			dto.ToStoryResponse,
			listConfig{
				filters: []queryFilter{boolFilter("published")},
				public:  domain.Filter{"published": "true"},
			},
			func(s *story.Story) bool { return s.Published },
		),
	}
}
