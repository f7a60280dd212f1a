package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Catalog is the immutable collection of attraction records. It is built
// once at startup by New and shared by reference with every consumer;
// nothing is added, mutated, or removed at runtime.
type Catalog struct {
	attractions []Attraction
	byID        map[string]int
}

// New validates the embedded dataset and returns the catalog. It fails on
// duplicate ids, unknown categories, out-of-range coordinates, negative
// costs, or a category missing display metadata.
func New() (*Catalog, error) {
	return newFrom(attractions)
}

func newFrom(records []Attraction) (*Catalog, error) {
	for _, c := range Categories() {
		if _, ok := categoryInfos[c]; !ok {
			return nil, fmt.Errorf("category %q has no display metadata", c)
		}
	}

	validate := validator.New()

	byID := make(map[string]int, len(records))
	for i, a := range records {
		if err := validate.Struct(a); err != nil {
			return nil, fmt.Errorf("attraction %q: %w", a.ID, err)
		}
		if _, ok := categoryInfos[a.Category]; !ok {
			return nil, fmt.Errorf("attraction %q: unknown category %q", a.ID, a.Category)
		}
		if prev, dup := byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate attraction id %q (records %d and %d)", a.ID, prev, i)
		}
		byID[a.ID] = i
	}

	return &Catalog{attractions: records, byID: byID}, nil
}

// All returns every attraction in catalog order. The returned slice is a
// copy; the records themselves are shared and must not be mutated.
func (c *Catalog) All() []Attraction {
	out := make([]Attraction, len(c.attractions))
	copy(out, c.attractions)
	return out
}

// ByID looks up an attraction by its stable id.
func (c *Catalog) ByID(id string) (Attraction, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Attraction{}, false
	}
	return c.attractions[i], true
}

// Len returns the number of attractions in the catalog.
func (c *Catalog) Len() int {
	return len(c.attractions)
}
