package model

import "time"

// On-disk document types. Field names define the persisted JSON schema, so
// changes here are format changes.

type HierarchyDocument struct {
	Notebooks []NotebookModel `json:"notebooks"`
}

type NotebookModel struct {
	Id        string         `json:"id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	Sections  []SectionModel `json:"sections"`
}

type SectionModel struct {
	Id        string      `json:"id"`
	Title     string      `json:"title"`
	CreatedAt time.Time   `json:"created_at"`
	Pages     []PageModel `json:"pages"`
}

type PageModel struct {
	Id           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}
