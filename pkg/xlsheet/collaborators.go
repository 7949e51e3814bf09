package xlsheet

import (
	"sort"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// HyperlinkResolver resolves cell hyperlinks.
type HyperlinkResolver interface {
	Hyperlink(row, col int) (models.Hyperlink, bool)
	// Hyperlinks returns every hyperlink ordered by row then column.
	Hyperlinks() []models.Hyperlink
}

// CommentsSource looks up cell comments.
type CommentsSource interface {
	Comment(row, col int) (models.Comment, bool)
	// Comments returns every comment ordered by row then column.
	Comments() []models.Comment
}

type cellKey struct {
	row, col int
}

func lessCell(a, b cellKey) bool {
	if a.row != b.row {
		return a.row < b.row
	}
	return a.col < b.col
}

// HyperlinkTable is an in-memory HyperlinkResolver.
type HyperlinkTable struct {
	links map[cellKey]models.Hyperlink
}

// NewHyperlinkTable creates a table holding links. A later link for the same
// cell replaces an earlier one.
func NewHyperlinkTable(links ...models.Hyperlink) *HyperlinkTable {
	t := &HyperlinkTable{links: make(map[cellKey]models.Hyperlink, len(links))}
	for _, l := range links {
		t.Set(l)
	}
	return t
}

// Set adds or replaces the hyperlink of a cell.
func (t *HyperlinkTable) Set(link models.Hyperlink) {
	t.links[cellKey{link.Row, link.Col}] = link
}

// Remove deletes the hyperlink of a cell.
func (t *HyperlinkTable) Remove(row, col int) {
	delete(t.links, cellKey{row, col})
}

func (t *HyperlinkTable) Hyperlink(row, col int) (models.Hyperlink, bool) {
	l, ok := t.links[cellKey{row, col}]
	return l, ok
}

func (t *HyperlinkTable) Hyperlinks() []models.Hyperlink {
	if len(t.links) == 0 {
		return nil
	}
	out := make([]models.Hyperlink, 0, len(t.links))
	for _, l := range t.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessCell(cellKey{out[i].Row, out[i].Col}, cellKey{out[j].Row, out[j].Col})
	})
	return out
}

// CommentTable is an in-memory CommentsSource.
type CommentTable struct {
	comments map[cellKey]models.Comment
}

// NewCommentTable creates a table holding comments.
func NewCommentTable(comments ...models.Comment) *CommentTable {
	t := &CommentTable{comments: make(map[cellKey]models.Comment, len(comments))}
	for _, c := range comments {
		t.Set(c)
	}
	return t
}

// Set adds or replaces the comment of a cell.
func (t *CommentTable) Set(comment models.Comment) {
	t.comments[cellKey{comment.Row, comment.Col}] = comment
}

// Remove deletes the comment of a cell.
func (t *CommentTable) Remove(row, col int) {
	delete(t.comments, cellKey{row, col})
}

func (t *CommentTable) Comment(row, col int) (models.Comment, bool) {
	c, ok := t.comments[cellKey{row, col}]
	return c, ok
}

func (t *CommentTable) Comments() []models.Comment {
	if len(t.comments) == 0 {
		return nil
	}
	out := make([]models.Comment, 0, len(t.comments))
	for _, c := range t.comments {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessCell(cellKey{out[i].Row, out[i].Col}, cellKey{out[j].Row, out[j].Col})
	})
	return out
}

// SetHyperlinkResolver replaces the source of cell hyperlinks. nil installs
// an empty table.
func (s *Sheet) SetHyperlinkResolver(r HyperlinkResolver) {
	if r == nil {
		r = NewHyperlinkTable()
	}
	s.links = r
}

// SetCommentsSource replaces the source of cell comments. nil installs an
// empty table.
func (s *Sheet) SetCommentsSource(c CommentsSource) {
	if c == nil {
		c = NewCommentTable()
	}
	s.comments = c
}

// Hyperlink returns the hyperlink of the cell at (row, col).
func (s *Sheet) Hyperlink(row, col int) (models.Hyperlink, bool) {
	return s.links.Hyperlink(row, col)
}

// CellComment returns the comment of the cell at (row, col).
func (s *Sheet) CellComment(row, col int) (models.Comment, bool) {
	return s.comments.Comment(row, col)
}

// HasComments reports whether any cell carries a comment.
func (s *Sheet) HasComments() bool {
	return len(s.comments.Comments()) > 0
}

// ProtectSheet is accepted for compatibility and does nothing. Sheet
// protection is not modelled.
func (s *Sheet) ProtectSheet(password string) {}
