package model

// Category is a named decision axis: a set of mutually alternative values.
type Category struct {
	Name   string
	Values []string
}

// Categories is the explicit category assignment in category-document order.
type Categories []Category

// Names returns the category names in document order.
func (cs Categories) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

// Priority is the parsed priority document.
type Priority struct {
	Title  string
	Groups []PriorityGroup
}

// PriorityGroup lists the categories to split on for one subtree, root first.
type PriorityGroup struct {
	Title      string
	Categories []string
}
