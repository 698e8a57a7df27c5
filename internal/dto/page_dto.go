package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePageRequest struct {
	SectionId uuid.UUID `json:"section_id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
}

type CreatePageResponse struct {
	Id uuid.UUID `json:"id"`
}

type PageResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

type ShowPageResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	NotebookId   uuid.UUID `json:"notebook_id"`
	SectionId    uuid.UUID `json:"section_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

type UpdatePageContentRequest struct {
	Id      uuid.UUID
	Content string `json:"content"`
}

type UpdatePageContentResponse struct {
	Id           uuid.UUID `json:"id"`
	LastModified time.Time `json:"last_modified"`
}

type PreviewPageResponse struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Html  string    `json:"html"`
}
