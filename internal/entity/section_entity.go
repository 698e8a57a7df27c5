package entity

import (
	"time"

	"github.com/google/uuid"
)

type Section struct {
	Id        uuid.UUID
	Title     string
	CreatedAt time.Time
	Pages     []*Page
}

func (s *Section) Clone() *Section {
	clone := &Section{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		Pages:     make([]*Page, 0, len(s.Pages)),
	}
	for _, page := range s.Pages {
		pageCopy := *page
		clone.Pages = append(clone.Pages, &pageCopy)
	}
	return clone
}
