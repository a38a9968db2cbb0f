package perm

import "github.com/buckeye43210/pyPERM/internal/model"

// ElseLabel labels a branch that stands in for several sibling values that
// all lead to the same single item.
const ElseLabel = model.ElseLabel

// Tree is a built decision tree: one group per priority group.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Tree struct {
	Title  string  `json:"title"`
	Groups []Group `json:"groups"`
}

// Group is the subtree for one priority group.
type Group struct {
	Title    string   `json:"title"`
	Branches []Branch `json:"branches"`
}

// Branch is labeled by an attribute value, ElseLabel, or for leaves an item name.
type Branch struct {
	Label    string   `json:"label"`
	Children []Branch `json:"children,omitempty"`
}

// IsLeaf reports whether b names an item.
func (b Branch) IsLeaf() bool {
	return len(b.Children) == 0
}

func treeFromModel(t *model.Tree) Tree {
	out := Tree{Title: t.Title, Groups: make([]Group, len(t.Groups))}
	for i, g := range t.Groups {
		out.Groups[i] = Group{Title: g.Title, Branches: branchesFromModel(g.Branches)}
	}
	return out
}

func branchesFromModel(bs []*model.Branch) []Branch {
	if len(bs) == 0 {
		return nil
	}
	out := make([]Branch, len(bs))
	for i, b := range bs {
		out[i] = Branch{Label: b.Label, Children: branchesFromModel(b.Children)}
	}
	return out
}

func (t Tree) toModel() *model.Tree {
	out := &model.Tree{Title: t.Title, Groups: make([]model.Group, len(t.Groups))}
	for i, g := range t.Groups {
		out.Groups[i] = model.Group{Title: g.Title, Branches: branchesToModel(g.Branches)}
	}
	return out
}

func branchesToModel(bs []Branch) []*model.Branch {
	if len(bs) == 0 {
		return nil
	}
	out := make([]*model.Branch, len(bs))
	for i, b := range bs {
		out[i] = &model.Branch{Label: b.Label, Children: branchesToModel(b.Children)}
	}
	return out
}
