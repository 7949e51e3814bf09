// Package merge keeps the merged cell ranges of a sheet.
package merge

import (
	"fmt"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// Registry is an insertion-ordered list of merged ranges. A region is
// identified by its position; removing region i moves every later region
// down by one. Overlapping or single-cell regions are accepted as is.
type Registry struct {
	regions []models.CellRange
}

// NewRegistry creates a registry holding regions in the given order.
func NewRegistry(regions ...models.CellRange) *Registry {
	r := &Registry{}
	r.regions = append(r.regions, regions...)
	return r
}

// Add appends region and returns the number of regions now registered.
func (r *Registry) Add(region models.CellRange) int {
	r.regions = append(r.regions, region)
	return len(r.regions)
}

// Get returns the region at index.
func (r *Registry) Get(index int) (models.CellRange, error) {
	if err := r.check(index); err != nil {
		return models.CellRange{}, err
	}
	return r.regions[index], nil
}

// RemoveAt deletes the region at index and closes the gap.
func (r *Registry) RemoveAt(index int) error {
	if err := r.check(index); err != nil {
		return err
	}
	r.regions = append(r.regions[:index], r.regions[index+1:]...)
	return nil
}

// Count returns the number of regions.
func (r *Registry) Count() int {
	return len(r.regions)
}

// All returns a copy of the regions in order.
func (r *Registry) All() []models.CellRange {
	if len(r.regions) == 0 {
		return nil
	}
	out := make([]models.CellRange, len(r.regions))
	copy(out, r.regions)
	return out
}

// IndexOf returns the position of the first region equal to region, or -1.
func (r *Registry) IndexOf(region models.CellRange) int {
	for i, existing := range r.regions {
		if existing == region {
			return i
		}
	}
	return -1
}

func (r *Registry) check(index int) error {
	if len(r.regions) == 0 {
		return fmt.Errorf("sheet does not contain merged regions: %w", models.ErrIllegalState)
	}
	if index < 0 || index >= len(r.regions) {
		return fmt.Errorf("merged region index %d not in [0,%d): %w", index, len(r.regions), models.ErrOutOfRange)
	}
	return nil
}
