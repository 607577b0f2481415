package categories

import (
	"slices"
	"strings"
)

// Table maps normalized extensions to category names. It is immutable once
// built and safe to share.
type Table struct {
	byExt     map[string]string
	ambiguous map[string][]string
	order     []Category
}

// Resolution is the outcome of classifying one name.
type Resolution struct {
	Extension string
	Category  string
	Reason    Reason
}

// Build compiles declarations into a Table. An extension claimed by more than
// one distinct category resolves to Others; repeating an extension inside one
// category counts as a single claim. An empty declaration set is a caller
// error and yields a table that classifies everything as Others.
func Build(defs []Category) *Table {
	claims := make(map[string][]string)
	order := make([]Category, 0, len(defs))

	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			continue
		}
		normalized := make([]string, 0, len(def.Extensions))
		for _, raw := range def.Extensions {
			ext := NormalizeExtension(raw)
			if ext == "" || slices.Contains(normalized, ext) {
				continue
			}
			normalized = append(normalized, ext)
			if !slices.Contains(claims[ext], name) {
				claims[ext] = append(claims[ext], name)
			}
		}
		order = append(order, Category{Name: name, Extensions: normalized})
	}

	t := &Table{
		byExt:     make(map[string]string, len(claims)),
		ambiguous: make(map[string][]string),
		order:     order,
	}
	for ext, owners := range claims {
		if len(owners) == 1 {
			t.byExt[ext] = owners[0]
			continue
		}
		t.byExt[ext] = Others
		t.ambiguous[ext] = owners
	}
	return t
}

// Lookup returns the category for an extension. The extension is normalized
// first; unknown and empty extensions resolve to Others.
func (t *Table) Lookup(ext string) string {
	return t.resolveExtension(NormalizeExtension(ext)).Category
}

// Classify resolves a file's base name to its category.
func (t *Table) Classify(name string) Resolution {
	return t.resolveExtension(ExtensionOf(name))
}

func (t *Table) resolveExtension(ext string) Resolution {
	if ext == "" {
		return Resolution{Category: Others, Reason: ReasonNoExtension}
	}
	category, ok := t.byExt[ext]
	switch {
	case !ok:
		return Resolution{Extension: ext, Category: Others, Reason: ReasonUnknown}
	case t.ambiguous[ext] != nil:
		return Resolution{Extension: ext, Category: Others, Reason: ReasonAmbiguous}
	default:
		return Resolution{Extension: ext, Category: category, Reason: ReasonDeclared}
	}
}

// Categories returns the normalized declarations in declaration order.
// Ambiguous extensions are omitted because they resolve to Others.
func (t *Table) Categories() []Category {
	out := make([]Category, 0, len(t.order))
	for _, c := range t.order {
		exts := make([]string, 0, len(c.Extensions))
		for _, ext := range c.Extensions {
			if _, shared := t.ambiguous[ext]; !shared {
				exts = append(exts, ext)
			}
		}
		out = append(out, Category{Name: c.Name, Extensions: exts})
	}
	return out
}

// Shared is an extension claimed by several categories.
type Shared struct {
	Extension string
	Claimants []string
}

// Ambiguous lists the extensions claimed by several categories, sorted by
// extension, with claimants in declaration order.
func (t *Table) Ambiguous() []Shared {
	out := make([]Shared, 0, len(t.ambiguous))
	for ext, owners := range t.ambiguous {
		out = append(out, Shared{Extension: ext, Claimants: slices.Clone(owners)})
	}
	slices.SortFunc(out, func(a, b Shared) int { return strings.Compare(a.Extension, b.Extension) })
	return out
}
