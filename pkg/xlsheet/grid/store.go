// Package grid provides the ordered row container of a sheet.
package grid

import (
	"github.com/google/btree"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

const degree = 32

// Store maps row numbers to rows and iterates them in ascending order.
//
// The key of every entry is the row's Num at insertion time. Callers that
// change Num must remove and re-insert the row, or use Rebuild.
type Store struct {
	tree *btree.BTreeG[*models.Row]
}

func lessRow(a, b *models.Row) bool {
	return a.Num < b.Num
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tree: btree.NewG(degree, lessRow)}
}

// Get returns the row numbered num, or nil.
func (s *Store) Get(num int) *models.Row {
	row, ok := s.tree.Get(&models.Row{Num: num})
	if !ok {
		return nil
	}
	return row
}

// Create adds a new empty row numbered num. An existing row with the same
// number is replaced.
func (s *Store) Create(num int) *models.Row {
	row := models.NewRow(num)
	s.tree.ReplaceOrInsert(row)
	return row
}

// Insert adds row under its own Num, replacing any existing entry.
func (s *Store) Insert(row *models.Row) {
	s.tree.ReplaceOrInsert(row)
}

// Remove deletes the row numbered num.
func (s *Store) Remove(num int) {
	s.tree.Delete(&models.Row{Num: num})
}

// Ascend calls fn for each row in ascending order until fn returns false.
func (s *Store) Ascend(fn func(row *models.Row) bool) {
	s.tree.Ascend(fn)
}

// AscendRange calls fn for rows numbered in [from, to] in ascending order.
func (s *Store) AscendRange(from, to int, fn func(row *models.Row) bool) {
	if to < from {
		return
	}
	s.tree.AscendRange(&models.Row{Num: from}, &models.Row{Num: to + 1}, fn)
}

// Rows returns all rows in ascending order.
func (s *Store) Rows() []*models.Row {
	rows := make([]*models.Row, 0, s.tree.Len())
	s.tree.Ascend(func(row *models.Row) bool {
		rows = append(rows, row)
		return true
	})
	return rows
}

// FirstRowNum returns the lowest row number, or -1 when empty.
func (s *Store) FirstRowNum() int {
	row, ok := s.tree.Min()
	if !ok {
		return -1
	}
	return row.Num
}

// LastRowNum returns the highest row number, or -1 when empty.
func (s *Store) LastRowNum() int {
	row, ok := s.tree.Max()
	if !ok {
		return -1
	}
	return row.Num
}

// PhysicalRowCount returns the number of stored rows.
func (s *Store) PhysicalRowCount() int {
	return s.tree.Len()
}

// Rebuild replaces the content with rows keyed by their current Num.
// The new tree is built aside and swapped in at the end.
func (s *Store) Rebuild(rows []*models.Row) {
	tree := btree.NewG(degree, lessRow)
	for _, row := range rows {
		tree.ReplaceOrInsert(row)
	}
	s.tree = tree
}
