package entity

import "fmt"

// NodeKind tags the polymorphic rename/delete operations. Kept as a tagged
// value rather than an interface hierarchy so dispatch stays in one switch.
type NodeKind string

const (
	NodeKindNotebook NodeKind = "notebook"
	NodeKindSection  NodeKind = "section"
	NodeKindPage     NodeKind = "page"
)

func ParseNodeKind(s string) (NodeKind, error) {
	switch NodeKind(s) {
	case NodeKindNotebook, NodeKindSection, NodeKindPage:
		return NodeKind(s), nil
	}
	return "", fmt.Errorf("unknown node kind %q", s)
}
