package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"notestack-be/internal/apperror"
	"notestack-be/internal/dto"
	"notestack-be/internal/entity"
	"notestack-be/internal/pkg/logger"
	"notestack-be/internal/repository/contract"

	"github.com/google/uuid"
)

// ErrEmptyTitle rejects titles that are empty after trimming.
var ErrEmptyTitle = errors.New("title must not be empty")

type IHierarchyService interface {
	GetTree(ctx context.Context) *dto.HierarchyResponse
	CreateNotebook(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error)
	CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.CreateSectionResponse, error)
	CreatePage(ctx context.Context, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error)
	ShowPage(ctx context.Context, id uuid.UUID) (*dto.ShowPageResponse, error)
	UpdatePageContent(ctx context.Context, req *dto.UpdatePageContentRequest) (*dto.UpdatePageContentResponse, error)
	Rename(ctx context.Context, req *dto.RenameNodeRequest) (*dto.RenameNodeResponse, error)
	Delete(ctx context.Context, kind entity.NodeKind, id uuid.UUID) error
}

// hierarchyService owns the in-memory tree for the process lifetime. The
// repository is a durability sink, never re-read during a session. Fiber
// serves requests on multiple goroutines, so all access goes through mu.
type hierarchyService struct {
	repo   contract.HierarchyRepository
	logger logger.ILogger

	mu   sync.RWMutex
	tree *entity.Hierarchy
}

// NewHierarchyService loads the persisted tree once. A corrupt data file
// surfaces here so the caller can decide whether to abort.
func NewHierarchyService(ctx context.Context, repo contract.HierarchyRepository, log logger.ILogger) (IHierarchyService, error) {
	tree, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &hierarchyService{repo: repo, logger: log, tree: tree}, nil
}

// commit persists the mutated clone and swaps it in only on success, so a
// failed save leaves both memory and disk untouched.
func (s *hierarchyService) commit(ctx context.Context, next *entity.Hierarchy) error {
	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("hierarchy", "save failed, mutation rolled back", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.tree = next
	return nil
}

func (s *hierarchyService) GetTree(_ context.Context) *dto.HierarchyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return toHierarchyResponse(s.tree)
}

func (s *hierarchyService) CreateNotebook(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tree.Clone()
	notebook := &entity.Notebook{
		Id:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now(),
		Sections:  make([]*entity.Section, 0),
	}
	next.Notebooks = append(next.Notebooks, notebook)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &dto.CreateNotebookResponse{Id: notebook.Id}, nil
}

func (s *hierarchyService) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.CreateSectionResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tree.Clone()
	notebook := findNotebook(next, req.NotebookId)
	if notebook == nil {
		return nil, apperror.NewNotFound(string(entity.NodeKindNotebook), req.NotebookId.String())
	}

	section := &entity.Section{
		Id:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now(),
		Pages:     make([]*entity.Page, 0),
	}
	notebook.Sections = append(notebook.Sections, section)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &dto.CreateSectionResponse{Id: section.Id}, nil
}

func (s *hierarchyService) CreatePage(ctx context.Context, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tree.Clone()
	_, section := findSection(next, req.SectionId)
	if section == nil {
		return nil, apperror.NewNotFound(string(entity.NodeKindSection), req.SectionId.String())
	}

	now := time.Now()
	page := &entity.Page{
		Id:           uuid.New(),
		Title:        title,
		Content:      "",
		CreatedAt:    now,
		LastModified: now,
	}
	section.Pages = append(section.Pages, page)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &dto.CreatePageResponse{Id: page.Id}, nil
}

func (s *hierarchyService) ShowPage(_ context.Context, id uuid.UUID) (*dto.ShowPageResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notebook, section, page := findPage(s.tree, id)
	if page == nil {
		return nil, apperror.NewNotFound(string(entity.NodeKindPage), id.String())
	}

	return &dto.ShowPageResponse{
		Id:           page.Id,
		Title:        page.Title,
		Content:      page.Content,
		NotebookId:   notebook.Id,
		SectionId:    section.Id,
		CreatedAt:    page.CreatedAt,
		LastModified: page.LastModified,
	}, nil
}

// UpdatePageContent is the auto-save path. Every call persists; no
// debouncing happens here.
func (s *hierarchyService) UpdatePageContent(ctx context.Context, req *dto.UpdatePageContentRequest) (*dto.UpdatePageContentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tree.Clone()
	_, _, page := findPage(next, req.Id)
	if page == nil {
		return nil, apperror.NewNotFound(string(entity.NodeKindPage), req.Id.String())
	}

	page.Content = req.Content
	page.LastModified = time.Now()

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &dto.UpdatePageContentResponse{Id: page.Id, LastModified: page.LastModified}, nil
}

func (s *hierarchyService) Rename(ctx context.Context, req *dto.RenameNodeRequest) (*dto.RenameNodeResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tree.Clone()

	switch req.Kind {
	case entity.NodeKindNotebook:
		notebook := findNotebook(next, req.Id)
		if notebook == nil {
			return nil, apperror.NewNotFound(string(req.Kind), req.Id.String())
		}
		notebook.Title = title
	case entity.NodeKindSection:
		_, section := findSection(next, req.Id)
		if section == nil {
			return nil, apperror.NewNotFound(string(req.Kind), req.Id.String())
		}
		section.Title = title
	case entity.NodeKindPage:
		_, _, page := findPage(next, req.Id)
		if page == nil {
			return nil, apperror.NewNotFound(string(req.Kind), req.Id.String())
		}
		page.Title = title
	default:
		return nil, apperror.NewNotFound(string(req.Kind), req.Id.String())
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &dto.RenameNodeResponse{Id: req.Id, Title: title}, nil
}

// Delete removes a node and everything it owns. Descendants go with the
// parent because the tree owns them outright.
func (s *hierarchyService) Delete(ctx context.Context, kind entity.NodeKind, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tree.Clone()

	switch kind {
	case entity.NodeKindNotebook:
		idx := notebookIndex(next, id)
		if idx < 0 {
			return apperror.NewNotFound(string(kind), id.String())
		}
		next.Notebooks = append(next.Notebooks[:idx], next.Notebooks[idx+1:]...)
	case entity.NodeKindSection:
		notebook, idx := sectionIndex(next, id)
		if idx < 0 {
			return apperror.NewNotFound(string(kind), id.String())
		}
		notebook.Sections = append(notebook.Sections[:idx], notebook.Sections[idx+1:]...)
	case entity.NodeKindPage:
		section, idx := pageIndex(next, id)
		if idx < 0 {
			return apperror.NewNotFound(string(kind), id.String())
		}
		section.Pages = append(section.Pages[:idx], section.Pages[idx+1:]...)
	default:
		return apperror.NewNotFound(string(kind), id.String())
	}

	return s.commit(ctx, next)
}

// Tree lookups. Linear scans are fine at notes-app scale.

func findNotebook(h *entity.Hierarchy, id uuid.UUID) *entity.Notebook {
	for _, notebook := range h.Notebooks {
		if notebook.Id == id {
			return notebook
		}
	}
	return nil
}

func findSection(h *entity.Hierarchy, id uuid.UUID) (*entity.Notebook, *entity.Section) {
	for _, notebook := range h.Notebooks {
		for _, section := range notebook.Sections {
			if section.Id == id {
				return notebook, section
			}
		}
	}
	return nil, nil
}

func findPage(h *entity.Hierarchy, id uuid.UUID) (*entity.Notebook, *entity.Section, *entity.Page) {
	for _, notebook := range h.Notebooks {
		for _, section := range notebook.Sections {
			for _, page := range section.Pages {
				if page.Id == id {
					return notebook, section, page
				}
			}
		}
	}
	return nil, nil, nil
}

func notebookIndex(h *entity.Hierarchy, id uuid.UUID) int {
	for i, notebook := range h.Notebooks {
		if notebook.Id == id {
			return i
		}
	}
	return -1
}

func sectionIndex(h *entity.Hierarchy, id uuid.UUID) (*entity.Notebook, int) {
	for _, notebook := range h.Notebooks {
		for i, section := range notebook.Sections {
			if section.Id == id {
				return notebook, i
			}
		}
	}
	return nil, -1
}

func pageIndex(h *entity.Hierarchy, id uuid.UUID) (*entity.Section, int) {
	for _, notebook := range h.Notebooks {
		for _, section := range notebook.Sections {
			for i, page := range section.Pages {
				if page.Id == id {
					return section, i
				}
			}
		}
	}
	return nil, -1
}

func toHierarchyResponse(h *entity.Hierarchy) *dto.HierarchyResponse {
	res := &dto.HierarchyResponse{Notebooks: make([]dto.NotebookResponse, 0, len(h.Notebooks))}
	for _, notebook := range h.Notebooks {
		nb := dto.NotebookResponse{
			Id:        notebook.Id,
			Title:     notebook.Title,
			CreatedAt: notebook.CreatedAt,
			Sections:  make([]dto.SectionResponse, 0, len(notebook.Sections)),
		}
		for _, section := range notebook.Sections {
			sec := dto.SectionResponse{
				Id:        section.Id,
				Title:     section.Title,
				CreatedAt: section.CreatedAt,
				Pages:     make([]dto.PageResponse, 0, len(section.Pages)),
			}
			for _, page := range section.Pages {
				sec.Pages = append(sec.Pages, dto.PageResponse{
					Id:           page.Id,
					Title:        page.Title,
					Content:      page.Content,
					CreatedAt:    page.CreatedAt,
					LastModified: page.LastModified,
				})
			}
			nb.Sections = append(nb.Sections, sec)
		}
		res.Notebooks = append(res.Notebooks, nb)
	}
	return res
}
