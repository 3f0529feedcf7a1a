package social

import (
	"time"

	"github.com/google/uuid"
)

type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Body      string    `json:"body"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(p *Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Body:      p.Body,
		Language:  p.Language,
		CreatedAt: p.CreatedAt,
	}
}
