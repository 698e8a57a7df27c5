package memory

import (
	"context"
	"errors"

	"notestack-be/internal/entity"
)

// HierarchyRepository keeps the saved tree in memory. Used by unit tests to
// observe what was persisted and to inject save failures.
type HierarchyRepository struct {
	saved    *entity.Hierarchy
	failSave bool
}

func NewHierarchyRepository() *HierarchyRepository {
	return &HierarchyRepository{}
}

func (r *HierarchyRepository) Load(_ context.Context) (*entity.Hierarchy, error) {
	if r.saved == nil {
		return entity.NewHierarchy(), nil
	}
	return r.saved.Clone(), nil
}

func (r *HierarchyRepository) Save(_ context.Context, h *entity.Hierarchy) error {
	if r.failSave {
		return errors.New("save failed")
	}
	r.saved = h.Clone()
	return nil
}

// FailNextSaves makes every following Save return an error until reset.
func (r *HierarchyRepository) FailNextSaves(fail bool) {
	r.failSave = fail
}

// Saved exposes the last persisted tree.
func (r *HierarchyRepository) Saved() *entity.Hierarchy {
	return r.saved
}
