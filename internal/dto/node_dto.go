package dto

import (
	"notestack-be/internal/entity"

	"github.com/google/uuid"
)

type RenameNodeRequest struct {
	Kind  entity.NodeKind
	Id    uuid.UUID
	Title string `json:"title" validate:"required"`
}

type RenameNodeResponse struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
