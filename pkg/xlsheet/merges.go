package xlsheet

import "github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"

// AddMergedRegion registers region and returns the number of merged regions
// now on the sheet. Overlapping and single-cell regions are accepted.
func (s *Sheet) AddMergedRegion(region models.CellRange) int {
	return s.merges.Add(region)
}

// MergedRegion returns the merged region at index. It fails with
// ErrIllegalState when the sheet has no merged regions and with
// ErrOutOfRange when index is not below NumMergedRegions.
func (s *Sheet) MergedRegion(index int) (models.CellRange, error) {
	region, err := s.merges.Get(index)
	if err != nil {
		return models.CellRange{}, NewSheetError(s.name, "get merged region", err)
	}
	return region, nil
}

// RemoveMergedRegion deletes the merged region at index. Regions after it
// move down by one position.
func (s *Sheet) RemoveMergedRegion(index int) error {
	if err := s.merges.RemoveAt(index); err != nil {
		return NewSheetError(s.name, "remove merged region", err)
	}
	return nil
}

// NumMergedRegions returns the number of merged regions.
func (s *Sheet) NumMergedRegions() int {
	return s.merges.Count()
}

// MergedRegions returns the merged regions in order.
func (s *Sheet) MergedRegions() []models.CellRange {
	return s.merges.All()
}

// MergedRegionIndex returns the position of region, or -1.
func (s *Sheet) MergedRegionIndex(region models.CellRange) int {
	return s.merges.IndexOf(region)
}
