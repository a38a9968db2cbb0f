package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/buckeye43210/pyPERM/internal/model"
)

// Order controls the iteration order of values within a category, and with
// it the order of sibling branches in the tree.
type Order int

const (
	DocumentOrder Order = iota // explicit values as listed, inferred values appended
	LexicalOrder               // byte-wise sorted
)

// ParseOrder converts "document" or "lexical" to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "document":
		return DocumentOrder, nil
	case "lexical":
		return LexicalOrder, nil
	default:
		return DocumentOrder, fmt.Errorf("taxonomy: unknown order %q (want document or lexical)", s)
	}
}

func (o Order) String() string {
	if o == LexicalOrder {
		return "lexical"
	}
	return "document"
}

// Taxonomy is the resolved category partition: every category with the full
// set of values it owns after inference.
type Taxonomy struct {
	names      []string
	values     map[string][]string
	members    map[string]map[string]struct{}
	owner      map[string]string
	inferred   map[string]string
	unresolved []string
	overlaps   []string
}

// New resolves the explicit categories against the catalog.
//
// A value missing from every category is placed by looking at the items that
// carry it, in catalog order: the first category owning another value of such
// an item claims it. Values are visited in first-seen order and a value placed
// this way counts as placed for the values after it. Values with no candidate
// are left unresolved.
func New(cats model.Categories, catalog model.Catalog, order Order) *Taxonomy {
	t := &Taxonomy{
		values:   make(map[string][]string, len(cats)),
		members:  make(map[string]map[string]struct{}, len(cats)),
		owner:    make(map[string]string),
		inferred: make(map[string]string),
	}
	overlap := make(map[string]bool)
	for _, c := range cats {
		if _, dup := t.members[c.Name]; !dup {
			t.names = append(t.names, c.Name)
			t.members[c.Name] = make(map[string]struct{})
		}
		for _, v := range c.Values {
			t.add(c.Name, v)
			if owner := t.owner[v]; owner != c.Name && !overlap[v] {
				overlap[v] = true
				t.overlaps = append(t.overlaps, v)
			}
		}
	}

	for _, v := range catalog.Values() {
		if _, ok := t.owner[v]; ok {
			continue
		}
		if name, ok := t.infer(v, catalog); ok {
			t.add(name, v)
			t.inferred[v] = name
			continue
		}
		t.unresolved = append(t.unresolved, v)
	}

	if order == LexicalOrder {
		for _, vs := range t.values {
			sort.Strings(vs)
		}
	}
	return t
}

func (t *Taxonomy) add(name, value string) {
	if _, ok := t.members[name][value]; ok {
		return
	}
	t.members[name][value] = struct{}{}
	t.values[name] = append(t.values[name], value)
	if _, ok := t.owner[value]; !ok {
		t.owner[value] = name
	}
}

func (t *Taxonomy) infer(value string, catalog model.Catalog) (string, bool) {
	for _, it := range catalog.Items {
		if !it.Has(value) {
			continue
		}
		for _, name := range t.names {
			for _, a := range it.Attributes {
				if _, ok := t.members[name][a]; ok {
					return name, true
				}
			}
		}
	}
	return "", false
}

// Has reports whether the category exists.
func (t *Taxonomy) Has(category string) bool {
	_, ok := t.members[category]
	return ok
}

// Names returns category names in category-document order.
func (t *Taxonomy) Names() []string {
	return t.names
}

// Values returns the values owned by category in the taxonomy's order.
// The returned slice must not be modified.
func (t *Taxonomy) Values(category string) []string {
	return t.values[category]
}

// Contains reports whether value belongs to category.
func (t *Taxonomy) Contains(category, value string) bool {
	_, ok := t.members[category][value]
	return ok
}

// CategoryOf returns the first category (in document order) owning value.
func (t *Taxonomy) CategoryOf(value string) (string, bool) {
	name, ok := t.owner[value]
	return name, ok
}

// Inferred maps each value placed by inference to the category that claimed it.
func (t *Taxonomy) Inferred() map[string]string {
	return t.inferred
}

// Unresolved returns catalog values no category could claim, in first-seen order.
func (t *Taxonomy) Unresolved() []string {
	return t.unresolved
}

// Overlaps returns values explicitly listed under more than one category.
func (t *Taxonomy) Overlaps() []string {
	return t.overlaps
}
