package service

import (
	"context"
	"testing"
	"time"

	"notestack-be/internal/apperror"
	"notestack-be/internal/dto"
	"notestack-be/internal/entity"
	"notestack-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestService(t *testing.T) (IHierarchyService, *memory.HierarchyRepository) {
	t.Helper()
	repo := memory.NewHierarchyRepository()
	svc, err := NewHierarchyService(context.Background(), repo, nopLogger{})
	require.NoError(t, err)
	return svc, repo
}

// seed builds Work -> Meetings -> Standup and returns the three ids.
func seed(t *testing.T, svc IHierarchyService) (uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	nb, err := svc.CreateNotebook(ctx, &dto.CreateNotebookRequest{Title: "Work"})
	require.NoError(t, err)
	sec, err := svc.CreateSection(ctx, &dto.CreateSectionRequest{NotebookId: nb.Id, Title: "Meetings"})
	require.NoError(t, err)
	pg, err := svc.CreatePage(ctx, &dto.CreatePageRequest{SectionId: sec.Id, Title: "Standup"})
	require.NoError(t, err)

	return nb.Id, sec.Id, pg.Id
}

func TestCreateChain(t *testing.T) {
	svc, repo := newTestService(t)
	notebookId, sectionId, pageId := seed(t, svc)

	tree := svc.GetTree(context.Background())
	require.Len(t, tree.Notebooks, 1)
	assert.Equal(t, notebookId, tree.Notebooks[0].Id)
	assert.Equal(t, "Work", tree.Notebooks[0].Title)
	require.Len(t, tree.Notebooks[0].Sections, 1)
	assert.Equal(t, sectionId, tree.Notebooks[0].Sections[0].Id)
	require.Len(t, tree.Notebooks[0].Sections[0].Pages, 1)
	assert.Equal(t, pageId, tree.Notebooks[0].Sections[0].Pages[0].Id)
	assert.Equal(t, "", tree.Notebooks[0].Sections[0].Pages[0].Content)

	// Every mutation persisted
	saved := repo.Saved()
	require.NotNil(t, saved)
	require.Len(t, saved.Notebooks, 1)
	require.Len(t, saved.Notebooks[0].Sections, 1)
	require.Len(t, saved.Notebooks[0].Sections[0].Pages, 1)
}

func TestCreateSectionUnknownNotebook(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)

	before := svc.GetTree(context.Background())

	_, err := svc.CreateSection(context.Background(), &dto.CreateSectionRequest{
		NotebookId: uuid.New(),
		Title:      "Orphan",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	assert.Equal(t, before, svc.GetTree(context.Background()))
}

func TestCreatePageUnknownSection(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)

	before := svc.GetTree(context.Background())

	_, err := svc.CreatePage(context.Background(), &dto.CreatePageRequest{
		SectionId: uuid.New(),
		Title:     "Orphan",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	assert.Equal(t, before, svc.GetTree(context.Background()))
}

func TestTitlesAreTrimmed(t *testing.T) {
	svc, _ := newTestService(t)

	nb, err := svc.CreateNotebook(context.Background(), &dto.CreateNotebookRequest{Title: "  Work  "})
	require.NoError(t, err)

	tree := svc.GetTree(context.Background())
	assert.Equal(t, "Work", tree.Notebooks[0].Title)

	_, err = svc.CreateSection(context.Background(), &dto.CreateSectionRequest{NotebookId: nb.Id, Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestRenamePreservesIdAndOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, title := range []string{"First", "Second", "Third"} {
		nb, err := svc.CreateNotebook(ctx, &dto.CreateNotebookRequest{Title: title})
		require.NoError(t, err)
		ids = append(ids, nb.Id)
	}

	res, err := svc.Rename(ctx, &dto.RenameNodeRequest{
		Kind:  entity.NodeKindNotebook,
		Id:    ids[1],
		Title: "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, ids[1], res.Id)

	tree := svc.GetTree(ctx)
	require.Len(t, tree.Notebooks, 3)
	for i, id := range ids {
		assert.Equal(t, id, tree.Notebooks[i].Id)
	}
	assert.Equal(t, []string{"First", "Renamed", "Third"}, []string{
		tree.Notebooks[0].Title, tree.Notebooks[1].Title, tree.Notebooks[2].Title,
	})
}

func TestRenameUnknownNode(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)

	for _, kind := range []entity.NodeKind{entity.NodeKindNotebook, entity.NodeKindSection, entity.NodeKindPage} {
		_, err := svc.Rename(context.Background(), &dto.RenameNodeRequest{
			Kind:  kind,
			Id:    uuid.New(),
			Title: "X",
		})
		require.Error(t, err, string(kind))
		assert.True(t, apperror.IsNotFound(err), string(kind))
	}
}

func TestUpdatePageContentBumpsLastModified(t *testing.T) {
	svc, repo := newTestService(t)
	_, _, pageId := seed(t, svc)
	ctx := context.Background()

	page, err := svc.ShowPage(ctx, pageId)
	require.NoError(t, err)
	before := page.LastModified

	time.Sleep(5 * time.Millisecond)

	res, err := svc.UpdatePageContent(ctx, &dto.UpdatePageContentRequest{Id: pageId, Content: "# Notes"})
	require.NoError(t, err)
	assert.True(t, res.LastModified.After(before) || res.LastModified.Equal(before))

	page, err = svc.ShowPage(ctx, pageId)
	require.NoError(t, err)
	assert.Equal(t, "# Notes", page.Content)
	assert.False(t, page.LastModified.Before(before))

	saved := repo.Saved()
	assert.Equal(t, "# Notes", saved.Notebooks[0].Sections[0].Pages[0].Content)
}

func TestUpdatePageContentUnknownPage(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)

	_, err := svc.UpdatePageContent(context.Background(), &dto.UpdatePageContentRequest{
		Id:      uuid.New(),
		Content: "x",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteNotebookCascades(t *testing.T) {
	svc, _ := newTestService(t)
	notebookId, sectionId, pageId := seed(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, entity.NodeKindNotebook, notebookId))

	assert.Empty(t, svc.GetTree(ctx).Notebooks)

	_, err := svc.ShowPage(ctx, pageId)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Rename(ctx, &dto.RenameNodeRequest{Kind: entity.NodeKindSection, Id: sectionId, Title: "X"})
	assert.True(t, apperror.IsNotFound(err))

	err = svc.Delete(ctx, entity.NodeKindNotebook, notebookId)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteSectionAndPage(t *testing.T) {
	svc, _ := newTestService(t)
	notebookId, sectionId, pageId := seed(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, entity.NodeKindPage, pageId))
	tree := svc.GetTree(ctx)
	assert.Empty(t, tree.Notebooks[0].Sections[0].Pages)

	require.NoError(t, svc.Delete(ctx, entity.NodeKindSection, sectionId))
	tree = svc.GetTree(ctx)
	assert.Empty(t, tree.Notebooks[0].Sections)
	assert.Equal(t, notebookId, tree.Notebooks[0].Id)
}

func TestFailedSaveRollsBack(t *testing.T) {
	svc, repo := newTestService(t)
	_, _, pageId := seed(t, svc)
	ctx := context.Background()

	before := svc.GetTree(ctx)
	repo.FailNextSaves(true)

	_, err := svc.CreateNotebook(ctx, &dto.CreateNotebookRequest{Title: "Doomed"})
	require.Error(t, err)

	_, err = svc.UpdatePageContent(ctx, &dto.UpdatePageContentRequest{Id: pageId, Content: "lost"})
	require.Error(t, err)

	err = svc.Delete(ctx, entity.NodeKindPage, pageId)
	require.Error(t, err)

	// Memory and disk stayed in the pre-failure state
	assert.Equal(t, before, svc.GetTree(ctx))
	assert.Equal(t, "", repo.Saved().Notebooks[0].Sections[0].Pages[0].Content)

	repo.FailNextSaves(false)
	_, err = svc.CreateNotebook(ctx, &dto.CreateNotebookRequest{Title: "Recovered"})
	require.NoError(t, err)
	assert.Len(t, svc.GetTree(ctx).Notebooks, 2)
}

func TestServiceStartsFromPersistedTree(t *testing.T) {
	repo := memory.NewHierarchyRepository()
	first, err := NewHierarchyService(context.Background(), repo, nopLogger{})
	require.NoError(t, err)

	nb, err := first.CreateNotebook(context.Background(), &dto.CreateNotebookRequest{Title: "Work"})
	require.NoError(t, err)

	second, err := NewHierarchyService(context.Background(), repo, nopLogger{})
	require.NoError(t, err)

	tree := second.GetTree(context.Background())
	require.Len(t, tree.Notebooks, 1)
	assert.Equal(t, nb.Id, tree.Notebooks[0].Id)
}
