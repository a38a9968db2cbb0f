package model

// Item is a catalog entry: a name plus the attribute values it carries.
type Item struct {
	Name       string
	Attributes []string // full values, attribute-document order
}

// Has reports whether the item carries value.
func (it Item) Has(value string) bool {
	for _, a := range it.Attributes {
		if a == value {
			return true
		}
	}
	return false
}

// Catalog is the ordered list of items parsed from an attribute document.
type Catalog struct {
	Items []Item
}

// Values returns every attribute value in the catalog in first-seen order.
func (c Catalog) Values() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range c.Items {
		for _, a := range it.Attributes {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// WithValue returns the items carrying value, in catalog order.
func (c Catalog) WithValue(value string) []Item {
	var out []Item
	for _, it := range c.Items {
		if it.Has(value) {
			out = append(out, it)
		}
	}
	return out
}

// DuplicateNames returns item names that occur more than once, in first-seen order.
// Duplicates are kept as distinct items; only their labels collide.
func (c Catalog) DuplicateNames() []string {
	counts := make(map[string]int, len(c.Items))
	var out []string
	for _, it := range c.Items {
		counts[it.Name]++
		if counts[it.Name] == 2 {
			out = append(out, it.Name)
		}
	}
	return out
}
