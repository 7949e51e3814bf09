// Package headerfooter reads and writes the left, center and right sections
// of an encoded header or footer string.
//
// An encoded value is a sequence of runs, each introduced by a two character
// tag: &L, &C or &R. A run extends to the next tag or to the end of the
// string.
package headerfooter

import "strings"

// Section identifies one of the three parts of a header or footer.
type Section byte

const (
	Left   Section = 'L'
	Center Section = 'C'
	Right  Section = 'R'
)

// Sections lists the sections in display order.
var Sections = []Section{Left, Center, Right}

// Tag returns the two character marker of the section, e.g. "&L".
func (s Section) Tag() string {
	return "&" + string(s)
}

func (s Section) String() string {
	switch s {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "unknown"
}

// Get returns the text of section in value, or "" when the section is absent.
// A single trailing & is not part of the returned text.
func Get(value string, section Section) string {
	start, end := run(value, section)
	if start < 0 {
		return ""
	}
	return strings.TrimSuffix(value[start:end], "&")
}

// Set returns value with the text of section replaced by text. A missing
// section is appended at the end.
func Set(value, text string, section Section) string {
	start, end := run(value, section)
	if start < 0 {
		return value + section.Tag() + text
	}
	return value[:start] + text + value[end:]
}

// GetLeft returns the left section of value.
func GetLeft(value string) string { return Get(value, Left) }

// GetCenter returns the center section of value.
func GetCenter(value string) string { return Get(value, Center) }

// GetRight returns the right section of value.
func GetRight(value string) string { return Get(value, Right) }

// SetLeft replaces the left section of value.
func SetLeft(value, text string) string { return Set(value, text, Left) }

// SetCenter replaces the center section of value.
func SetCenter(value, text string) string { return Set(value, text, Center) }

// SetRight replaces the right section of value.
func SetRight(value, text string) string { return Set(value, text, Right) }

// Split returns the left, center and right sections of value.
func Split(value string) (left, center, right string) {
	return GetLeft(value), GetCenter(value), GetRight(value)
}

// Join encodes the three sections, skipping empty ones.
func Join(left, center, right string) string {
	var b strings.Builder
	for i, text := range []string{left, center, right} {
		if text == "" {
			continue
		}
		b.WriteString(Sections[i].Tag())
		b.WriteString(text)
	}
	return b.String()
}

// run locates the text of section in value as the half-open interval
// [start, end). start is -1 when the tag is missing.
func run(value string, section Section) (start, end int) {
	at := strings.Index(value, section.Tag())
	if at < 0 {
		return -1, -1
	}
	start = at + 2
	return start, start + nextTag(value[start:])
}

// nextTag returns the offset of the first section tag in s, or len(s).
func nextTag(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '&' {
			continue
		}
		switch Section(s[i+1]) {
		case Left, Center, Right:
			return i
		}
	}
	return len(s)
}
