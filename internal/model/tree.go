package model

import "sort"

// ElseLabel marks a branch that replaces several sibling values leading to the same item.
const ElseLabel = "ELSE:"

// Tree is the decision tree produced by the builder. It is never mutated
// after construction.
type Tree struct {
	Title  string  `json:"title" yaml:"title"`
	Groups []Group `json:"groups" yaml:"groups"`
}

// Group is one priority group's subtree.
type Group struct {
	Title    string    `json:"title" yaml:"title"`
	Branches []*Branch `json:"branches" yaml:"branches"`
}

// Branch is a tree node labeled by an attribute value, ElseLabel, or (for
// leaves) an item name.
type Branch struct {
	Label    string    `json:"label" yaml:"label"`
	Children []*Branch `json:"children,omitempty" yaml:"children,omitempty"`
}

// Leaf returns a childless branch labeled name.
func Leaf(name string) *Branch {
	return &Branch{Label: name}
}

// IsLeaf reports whether the branch has no children.
func (b *Branch) IsLeaf() bool {
	return len(b.Children) == 0
}

// Leaves returns the sorted, de-duplicated labels of every leaf below b.
// A leaf branch has no leaves below it.
func (b *Branch) Leaves() []string {
	set := make(map[string]struct{})
	collectLeaves(b.Children, set)
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func collectLeaves(bs []*Branch, set map[string]struct{}) {
	for _, b := range bs {
		if b.IsLeaf() {
			set[b.Label] = struct{}{}
			continue
		}
		collectLeaves(b.Children, set)
	}
}

// Walk calls fn for b and every descendant in depth-first pre-order.
// depth is 0 for b itself.
func (b *Branch) Walk(fn func(br *Branch, depth int)) {
	b.walk(0, fn)
}

func (b *Branch) walk(depth int, fn func(*Branch, int)) {
	fn(b, depth)
	for _, c := range b.Children {
		c.walk(depth+1, fn)
	}
}

// Stats counts branches and leaves across the whole tree.
func (t *Tree) Stats() (branches, leaves int) {
	for _, g := range t.Groups {
		for _, b := range g.Branches {
			b.Walk(func(br *Branch, _ int) {
				branches++
				if br.IsLeaf() {
					leaves++
				}
			})
		}
	}
	return branches, leaves
}
