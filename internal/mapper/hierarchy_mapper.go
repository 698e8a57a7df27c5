package mapper

import (
	"fmt"

	"notestack-be/internal/entity"
	"notestack-be/internal/model"

	"github.com/google/uuid"
)

func ToHierarchyDocument(h *entity.Hierarchy) model.HierarchyDocument {
	doc := model.HierarchyDocument{Notebooks: make([]model.NotebookModel, 0, len(h.Notebooks))}
	for _, notebook := range h.Notebooks {
		nb := model.NotebookModel{
			Id:        notebook.Id.String(),
			Title:     notebook.Title,
			CreatedAt: notebook.CreatedAt,
			Sections:  make([]model.SectionModel, 0, len(notebook.Sections)),
		}
		for _, section := range notebook.Sections {
			sec := model.SectionModel{
				Id:        section.Id.String(),
				Title:     section.Title,
				CreatedAt: section.CreatedAt,
				Pages:     make([]model.PageModel, 0, len(section.Pages)),
			}
			for _, page := range section.Pages {
				sec.Pages = append(sec.Pages, model.PageModel{
					Id:           page.Id.String(),
					Title:        page.Title,
					Content:      page.Content,
					CreatedAt:    page.CreatedAt,
					LastModified: page.LastModified,
				})
			}
			nb.Sections = append(nb.Sections, sec)
		}
		doc.Notebooks = append(doc.Notebooks, nb)
	}
	return doc
}

// ToHierarchy rebuilds the in-memory tree and validates the document while
// doing so: ids must parse and must be unique within their sibling scope.
func ToHierarchy(doc model.HierarchyDocument) (*entity.Hierarchy, error) {
	h := entity.NewHierarchy()
	notebookIds := make(map[uuid.UUID]struct{}, len(doc.Notebooks))

	for _, nb := range doc.Notebooks {
		notebookId, err := uuid.Parse(nb.Id)
		if err != nil {
			return nil, fmt.Errorf("notebook id %q: %w", nb.Id, err)
		}
		if _, dup := notebookIds[notebookId]; dup {
			return nil, fmt.Errorf("duplicate notebook id %s", nb.Id)
		}
		notebookIds[notebookId] = struct{}{}

		notebook := &entity.Notebook{
			Id:        notebookId,
			Title:     nb.Title,
			CreatedAt: nb.CreatedAt,
			Sections:  make([]*entity.Section, 0, len(nb.Sections)),
		}

		sectionIds := make(map[uuid.UUID]struct{}, len(nb.Sections))
		for _, sec := range nb.Sections {
			sectionId, err := uuid.Parse(sec.Id)
			if err != nil {
				return nil, fmt.Errorf("section id %q: %w", sec.Id, err)
			}
			if _, dup := sectionIds[sectionId]; dup {
				return nil, fmt.Errorf("duplicate section id %s in notebook %s", sec.Id, nb.Id)
			}
			sectionIds[sectionId] = struct{}{}

			section := &entity.Section{
				Id:        sectionId,
				Title:     sec.Title,
				CreatedAt: sec.CreatedAt,
				Pages:     make([]*entity.Page, 0, len(sec.Pages)),
			}

			pageIds := make(map[uuid.UUID]struct{}, len(sec.Pages))
			for _, pg := range sec.Pages {
				pageId, err := uuid.Parse(pg.Id)
				if err != nil {
					return nil, fmt.Errorf("page id %q: %w", pg.Id, err)
				}
				if _, dup := pageIds[pageId]; dup {
					return nil, fmt.Errorf("duplicate page id %s in section %s", pg.Id, sec.Id)
				}
				pageIds[pageId] = struct{}{}

				section.Pages = append(section.Pages, &entity.Page{
					Id:           pageId,
					Title:        pg.Title,
					Content:      pg.Content,
					CreatedAt:    pg.CreatedAt,
					LastModified: pg.LastModified,
				})
			}
			notebook.Sections = append(notebook.Sections, section)
		}
		h.Notebooks = append(h.Notebooks, notebook)
	}
	return h, nil
}
