// Package perm builds attribute-driven decision trees.
//
// An attributes document lists items and the attribute values each holds, a
// categories document groups values into mutually exclusive categories, and a
// priorities document names ordered groups of categories. Each group becomes
// one subtree that splits the items on its categories in order, skipping
// categories that do not tell the remaining items apart.
//
// Quick start:
//
//	p := perm.New()
//	tree, err := p.BuildFiles("attributes.txt", "categories.txt", "priorities.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = p.Render(os.Stdout, tree, "gemtext")
//
// A Perm holds no per-build state and is safe for concurrent use.
package perm
