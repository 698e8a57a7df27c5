package contract

import (
	"context"

	"notestack-be/internal/entity"
)

// HierarchyRepository owns the on-disk copy of the tree. Load is called once
// at startup; Save after every applied mutation.
type HierarchyRepository interface {
	Load(ctx context.Context) (*entity.Hierarchy, error)
	Save(ctx context.Context, h *entity.Hierarchy) error
}
