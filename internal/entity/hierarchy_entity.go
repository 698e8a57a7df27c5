package entity

// Hierarchy is the full Notebook -> Section -> Page tree held in memory for
// the lifetime of the process. Sibling order is insertion order.
type Hierarchy struct {
	Notebooks []*Notebook
}

func NewHierarchy() *Hierarchy {
	return &Hierarchy{Notebooks: make([]*Notebook, 0)}
}

// Clone returns a deep copy. Mutations are applied to a clone first so a
// failed save never leaves the live tree half-changed.
func (h *Hierarchy) Clone() *Hierarchy {
	clone := &Hierarchy{Notebooks: make([]*Notebook, 0, len(h.Notebooks))}
	for _, notebook := range h.Notebooks {
		clone.Notebooks = append(clone.Notebooks, notebook.Clone())
	}
	return clone
}
