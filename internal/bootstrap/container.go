package bootstrap

import (
	"context"

	"notestack-be/internal/config"
	"notestack-be/internal/controller"
	"notestack-be/internal/pkg/logger"
	"notestack-be/internal/repository/implementation"
	"notestack-be/internal/service"
	"notestack-be/pkg/markdown"
)

type Container struct {
	// Controllers
	HierarchyController controller.IHierarchyController
	NotebookController  controller.INotebookController
	SectionController   controller.ISectionController
	PageController      controller.IPageController
	NodeController      controller.INodeController

	Logger logger.ILogger
}

// NewContainer wires the dependency graph. Loading the persisted hierarchy
// happens here; a corrupt data file is returned to main, which aborts rather
// than resetting the user's notes.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	hierarchyRepo := implementation.NewJsonFileHierarchyRepository(cfg.DataFilePath())

	hierarchyService, err := service.NewHierarchyService(ctx, hierarchyRepo, sysLogger)
	if err != nil {
		return nil, err
	}

	sysLogger.Info("bootstrap", "hierarchy loaded", map[string]interface{}{
		"data_file": cfg.DataFilePath(),
	})

	renderer := markdown.NewRenderer()

	return &Container{
		HierarchyController: controller.NewHierarchyController(hierarchyService),
		NotebookController:  controller.NewNotebookController(hierarchyService),
		SectionController:   controller.NewSectionController(hierarchyService),
		PageController:      controller.NewPageController(hierarchyService, renderer),
		NodeController:      controller.NewNodeController(hierarchyService),
		Logger:              sysLogger,
	}, nil
}
