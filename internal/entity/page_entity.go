package entity

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	Id           uuid.UUID
	Title        string
	Content      string // Markdown
	CreatedAt    time.Time
	LastModified time.Time
}
