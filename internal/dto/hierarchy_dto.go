package dto

type HierarchyResponse struct {
	Notebooks []NotebookResponse `json:"notebooks"`
}
