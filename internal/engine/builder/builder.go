// Package builder turns a catalog and its resolved category partition into a
// decision tree, one subtree per priority group.
package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/buckeye43210/pyPERM/internal/engine/taxonomy"
	"github.com/buckeye43210/pyPERM/internal/model"
)

var (
	// ErrUnknownCategory is returned when a priority group names a category
	// the partition does not define.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrEmptyGroup is returned when a priority group lists no categories.
	ErrEmptyGroup = errors.New("group lists no categories")
)

// Condition is one (category, value) step on the path from a group root.
type Condition struct {
	Category string
	Value    string
}

// Builder holds read-only references to the catalog and the partition.
// It never mutates either.
type Builder struct {
	catalog model.Catalog
	tax     *taxonomy.Taxonomy
}

// New creates a Builder over catalog and tax.
func New(catalog model.Catalog, tax *taxonomy.Taxonomy) *Builder {
	return &Builder{catalog: catalog, tax: tax}
}

// Validate checks that every group lists at least one category and that every
// listed category exists. All problems are reported together.
func (b *Builder) Validate(p model.Priority) error {
	var errs []error
	for _, g := range p.Groups {
		if len(g.Categories) == 0 {
			errs = append(errs, fmt.Errorf("builder: group %q: %w", g.Title, ErrEmptyGroup))
			continue
		}
		for _, c := range g.Categories {
			if !b.tax.Has(c) {
				errs = append(errs, fmt.Errorf("builder: group %q: %w %q%s",
					g.Title, ErrUnknownCategory, c, suggest(c, b.tax.Names())))
			}
		}
	}
	return errors.Join(errs...)
}

func suggest(name string, candidates []string) string {
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
}

// Build validates p and builds the tree. For each group, every value of the
// group's first category that some item carries becomes a top-level branch.
func (b *Builder) Build(p model.Priority) (*model.Tree, error) {
	if err := b.Validate(p); err != nil {
		return nil, err
	}
	tree := &model.Tree{Title: p.Title, Groups: make([]model.Group, 0, len(p.Groups))}
	for _, g := range p.Groups {
		top := g.Categories[0]
		group := model.Group{Title: g.Title}
		for _, v := range b.tax.Values(top) {
			items := b.catalog.WithValue(v)
			if len(items) == 0 {
				continue
			}
			group.Branches = append(group.Branches, &model.Branch{
				Label:    v,
				Children: b.Split(items, []Condition{{Category: top, Value: v}}, g.Categories[1:], top),
			})
		}
		tree.Groups = append(tree.Groups, group)
	}
	return tree, nil
}

// Split narrows items by the first category in remaining that tells them
// apart. conditions is the path taken so far and is never modified.
//
// One item ends in its leaf. With no categories left every item becomes a
// parallel leaf. A category whose values do not differ across items is
// skipped. Items carrying no value of the split category are kept under a
// trailing ELSE: branch, and siblings are then left unmerged.
func (b *Builder) Split(items []model.Item, conditions []Condition, remaining []string, top string) []*model.Branch {
	if len(items) == 1 {
		return []*model.Branch{model.Leaf(items[0].Name)}
	}
	if len(remaining) == 0 {
		return leaves(items)
	}

	cat, rest := remaining[0], remaining[1:]
	if !b.discriminates(items, cat) {
		return b.Split(items, conditions, rest, top)
	}

	var children []*model.Branch
	for _, v := range b.tax.Values(cat) {
		path := extend(conditions, Condition{Category: cat, Value: v})
		sub := filter(items, path)
		if len(sub) == 0 {
			continue
		}
		children = append(children, &model.Branch{Label: v, Children: b.Split(sub, path, rest, top)})
	}
	// The ELSE: for items lacking cat must stay the only one, so siblings
	// are merged only when every item holds some value of cat.
	missing := b.lacking(items, cat)
	if len(children) > 1 && cat != top && len(missing) == 0 {
		children = consolidate(children)
	}
	if len(missing) > 0 {
		children = append(children, &model.Branch{
			Label:    model.ElseLabel,
			Children: b.Split(missing, conditions, rest, top),
		})
	}
	if len(children) == 0 {
		return leaves(items)
	}
	return children
}

// discriminates reports whether items carry more than one distinct value of cat.
func (b *Builder) discriminates(items []model.Item, cat string) bool {
	seen := make(map[string]struct{})
	for _, it := range items {
		for _, a := range it.Attributes {
			if b.tax.Contains(cat, a) {
				seen[a] = struct{}{}
				if len(seen) > 1 {
					return true
				}
			}
		}
	}
	return false
}

// lacking returns the items holding no value of cat.
func (b *Builder) lacking(items []model.Item, cat string) []model.Item {
	var out []model.Item
	for _, it := range items {
		found := false
		for _, a := range it.Attributes {
			if b.tax.Contains(cat, a) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, it)
		}
	}
	return out
}

// consolidate collapses sibling branches that all lead to the same single
// item into one ELSE: branch at the position of the first of them. Siblings
// sharing a multi-item leaf set are kept as they are.
func consolidate(children []*model.Branch) []*model.Branch {
	type leafSet struct {
		key    string
		single string
	}
	sets := make([]leafSet, len(children))
	counts := make(map[string]int, len(children))
	for i, c := range children {
		names := c.Leaves()
		sets[i].key = strings.Join(names, "\x00")
		if len(names) == 1 {
			sets[i].single = names[0]
		}
		counts[sets[i].key]++
	}

	out := make([]*model.Branch, 0, len(children))
	merged := make(map[string]bool)
	for i, c := range children {
		s := sets[i]
		if s.single == "" || counts[s.key] < 2 {
			out = append(out, c)
			continue
		}
		if merged[s.key] {
			continue
		}
		merged[s.key] = true
		out = append(out, &model.Branch{
			Label:    model.ElseLabel,
			Children: []*model.Branch{model.Leaf(s.single)},
		})
	}
	return out
}

func leaves(items []model.Item) []*model.Branch {
	out := make([]*model.Branch, len(items))
	for i, it := range items {
		out[i] = model.Leaf(it.Name)
	}
	return out
}

func extend(conditions []Condition, c Condition) []Condition {
	out := make([]Condition, len(conditions), len(conditions)+1)
	copy(out, conditions)
	return append(out, c)
}

// filter keeps the items satisfying every condition.
func filter(items []model.Item, conditions []Condition) []model.Item {
	var out []model.Item
	for _, it := range items {
		ok := true
		for _, c := range conditions {
			if !it.Has(c.Value) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}
