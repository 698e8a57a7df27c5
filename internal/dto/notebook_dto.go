package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}

type NotebookResponse struct {
	Id        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	CreatedAt time.Time         `json:"created_at"`
	Sections  []SectionResponse `json:"sections"`
}
