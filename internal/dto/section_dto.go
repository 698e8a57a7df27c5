package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	NotebookId uuid.UUID `json:"notebook_id" validate:"required"`
	Title      string    `json:"title" validate:"required"`
}

type CreateSectionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SectionResponse struct {
	Id        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	Pages     []PageResponse `json:"pages"`
}
