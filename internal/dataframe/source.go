package dataframe

import (
	"encoding/csv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Source is an ordered, finite sequence of printable rows.
// Line must return the same text for the same index on every call.
type Source interface {
	Len() int
	Line(i int) string
}

// columnGap separates aligned columns.
const columnGap = "  "

// CSVLines renders each record as one CSV-encoded line, using the delimiter
// the frame was parsed with.
type CSVLines struct {
	frame *Frame
}

// NewCSVLines returns a CSV renderer over frame.
func NewCSVLines(frame *Frame) *CSVLines {
	return &CSVLines{frame: frame}
}

// Len returns the number of records.
func (c *CSVLines) Len() int {
	return c.frame.Len()
}

// Line returns record i encoded as CSV without the trailing newline.
func (c *CSVLines) Line(i int) string {
	return encodeCSV(c.frame.Records[i], c.frame.Comma)
}

// HeaderLine returns the header encoded as CSV.
func (c *CSVLines) HeaderLine() string {
	return encodeCSV(c.frame.Header, c.frame.Comma)
}

func encodeCSV(fields []string, comma rune) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if comma != 0 {
		w.Comma = comma
	}
	// Writes to a strings.Builder cannot fail.
	_ = w.Write(fields)
	w.Flush()
	return strings.TrimRight(sb.String(), "\r\n")
}

// AlignedLines renders records as space-padded columns.
type AlignedLines struct {
	frame    *Frame
	widths   []int
	maxWidth int
}

// NewAlignedLines returns an aligned renderer over frame. Lines wider than
// maxWidth display cells are truncated; zero disables truncation.
func NewAlignedLines(frame *Frame, maxWidth int) *AlignedLines {
	a := &AlignedLines{frame: frame, maxWidth: maxWidth}
	a.measure(frame.Header)
	for _, record := range frame.Records {
		a.measure(record)
	}
	return a
}

func (a *AlignedLines) measure(fields []string) {
	for i, field := range fields {
		if i >= len(a.widths) {
			a.widths = append(a.widths, 0)
		}
		if w := runewidth.StringWidth(flatten(field)); w > a.widths[i] {
			a.widths[i] = w
		}
	}
}

// Len returns the number of records.
func (a *AlignedLines) Len() int {
	return a.frame.Len()
}

// Line returns record i with every cell padded to its column width.
func (a *AlignedLines) Line(i int) string {
	return a.format(a.frame.Records[i])
}

// HeaderLine returns the aligned header.
func (a *AlignedLines) HeaderLine() string {
	return a.format(a.frame.Header)
}

func (a *AlignedLines) format(fields []string) string {
	var sb strings.Builder
	for i, field := range fields {
		cell := flatten(field)
		if i > 0 {
			sb.WriteString(columnGap)
		}
		if i < len(fields)-1 {
			cell = runewidth.FillRight(cell, a.widths[i])
		}
		sb.WriteString(cell)
	}

	line := strings.TrimRight(sb.String(), " ")
	if a.maxWidth > 0 && runewidth.StringWidth(line) > a.maxWidth {
		line = runewidth.Truncate(line, a.maxWidth, "…")
	}
	return line
}

// flatten keeps an embedded newline from splitting a row across lines.
func flatten(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}
