package xlsheet

import (
	"fmt"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/headerfooter"
)

// HeaderFooter gives section access to one encoded header or footer string
// of a sheet. Changes are written through to the sheet.
type HeaderFooter struct {
	text *string
	// flag is raised on every change, e.g. DifferentOddEven for even pages.
	flag *bool
}

// Left returns the left section.
func (h *HeaderFooter) Left() string { return headerfooter.GetLeft(*h.text) }

// Center returns the center section.
func (h *HeaderFooter) Center() string { return headerfooter.GetCenter(*h.text) }

// Right returns the right section.
func (h *HeaderFooter) Right() string { return headerfooter.GetRight(*h.text) }

// SetLeft replaces the left section.
func (h *HeaderFooter) SetLeft(text string) { h.set(headerfooter.SetLeft(*h.text, text)) }

// SetCenter replaces the center section.
func (h *HeaderFooter) SetCenter(text string) { h.set(headerfooter.SetCenter(*h.text, text)) }

// SetRight replaces the right section.
func (h *HeaderFooter) SetRight(text string) { h.set(headerfooter.SetRight(*h.text, text)) }

// Raw returns the encoded string.
func (h *HeaderFooter) Raw() string { return *h.text }

// SetRaw replaces the encoded string.
func (h *HeaderFooter) SetRaw(value string) { h.set(value) }

func (h *HeaderFooter) set(value string) {
	*h.text = value
	if h.flag != nil {
		*h.flag = true
	}
}

// Header returns the odd page header, used on every page unless even or
// first page headers are enabled.
func (s *Sheet) Header() *HeaderFooter { return s.OddHeader() }

// Footer returns the odd page footer.
func (s *Sheet) Footer() *HeaderFooter { return s.OddFooter() }

// OddHeader returns the odd page header.
func (s *Sheet) OddHeader() *HeaderFooter {
	return &HeaderFooter{text: &s.headerFooter.OddHeader}
}

// OddFooter returns the odd page footer.
func (s *Sheet) OddFooter() *HeaderFooter {
	return &HeaderFooter{text: &s.headerFooter.OddFooter}
}

// EvenHeader returns the even page header. Changing it enables distinct
// odd and even pages.
func (s *Sheet) EvenHeader() *HeaderFooter {
	return &HeaderFooter{text: &s.headerFooter.EvenHeader, flag: &s.headerFooter.DifferentOddEven}
}

// EvenFooter returns the even page footer. Changing it enables distinct odd
// and even pages.
func (s *Sheet) EvenFooter() *HeaderFooter {
	return &HeaderFooter{text: &s.headerFooter.EvenFooter, flag: &s.headerFooter.DifferentOddEven}
}

// FirstHeader returns the first page header. Changing it enables a distinct
// first page.
func (s *Sheet) FirstHeader() *HeaderFooter {
	return &HeaderFooter{text: &s.headerFooter.FirstHeader, flag: &s.headerFooter.DifferentFirst}
}

// FirstFooter returns the first page footer. Changing it enables a distinct
// first page.
func (s *Sheet) FirstFooter() *HeaderFooter {
	return &HeaderFooter{text: &s.headerFooter.FirstFooter, flag: &s.headerFooter.DifferentFirst}
}

// HeaderFooterKind names one of the six header/footer strings.
type HeaderFooterKind string

const (
	KindOddHeader   HeaderFooterKind = "odd-header"
	KindOddFooter   HeaderFooterKind = "odd-footer"
	KindEvenHeader  HeaderFooterKind = "even-header"
	KindEvenFooter  HeaderFooterKind = "even-footer"
	KindFirstHeader HeaderFooterKind = "first-header"
	KindFirstFooter HeaderFooterKind = "first-footer"
)

// HeaderFooter returns the header or footer named by kind.
func (s *Sheet) HeaderFooter(kind HeaderFooterKind) (*HeaderFooter, error) {
	switch kind {
	case KindOddHeader:
		return s.OddHeader(), nil
	case KindOddFooter:
		return s.OddFooter(), nil
	case KindEvenHeader:
		return s.EvenHeader(), nil
	case KindEvenFooter:
		return s.EvenFooter(), nil
	case KindFirstHeader:
		return s.FirstHeader(), nil
	case KindFirstFooter:
		return s.FirstFooter(), nil
	}
	return nil, NewSheetError(s.name, "header/footer", fmt.Errorf("unknown kind %q: %w", kind, ErrIllegalState))
}
