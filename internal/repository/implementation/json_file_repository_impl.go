package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"notestack-be/internal/apperror"
	"notestack-be/internal/entity"
	"notestack-be/internal/mapper"
	"notestack-be/internal/model"
	"notestack-be/internal/repository/contract"
)

type jsonFileHierarchyRepository struct {
	path string
}

// NewJsonFileHierarchyRepository stores the whole hierarchy as one JSON
// document at path. The parent directory is created on first save.
func NewJsonFileHierarchyRepository(path string) contract.HierarchyRepository {
	return &jsonFileHierarchyRepository{path: path}
}

func (r *jsonFileHierarchyRepository) Load(_ context.Context) (*entity.Hierarchy, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run
			return entity.NewHierarchy(), nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var doc model.HierarchyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperror.NewCorruptData(r.path, err)
	}
	if doc.Notebooks == nil {
		return nil, apperror.NewCorruptData(r.path, fmt.Errorf("missing notebooks field"))
	}

	h, err := mapper.ToHierarchy(doc)
	if err != nil {
		return nil, apperror.NewCorruptData(r.path, err)
	}
	return h, nil
}

func (r *jsonFileHierarchyRepository) Save(_ context.Context, h *entity.Hierarchy) error {
	doc := mapper.ToHierarchyDocument(h)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal hierarchy: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}

	// Write-then-rename so a crash mid-write never leaves a truncated
	// document where the next Load can see it.
	tmp := r.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
