package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id        uuid.UUID
	Title     string
	CreatedAt time.Time
	Sections  []*Section
}

func (n *Notebook) Clone() *Notebook {
	clone := &Notebook{
		Id:        n.Id,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
		Sections:  make([]*Section, 0, len(n.Sections)),
	}
	for _, section := range n.Sections {
		clone.Sections = append(clone.Sections, section.Clone())
	}
	return clone
}
