package pager

// Page is a half-open range [Start, End) of row indices.
type Page struct {
	Start int
	End   int
	// Final is set when no rows remain after this page.
	Final bool
}

// Len returns the number of rows on the page.
func (p Page) Len() int {
	return p.End - p.Start
}

// Cursor is the pagination state of one display session.
type Cursor struct {
	Position   int
	PageHeight int
	Finished   bool
}

// NewCursor returns a cursor at the first row. Heights below 1 are clamped
// to 1.
func NewCursor(pageHeight int) *Cursor {
	if pageHeight < 1 {
		pageHeight = 1
	}
	return &Cursor{PageHeight: pageHeight}
}

// Next returns the next page of a source with n rows and advances the cursor
// past it. It returns false, and marks the cursor finished, once every row
// has been handed out.
func (c *Cursor) Next(n int) (Page, bool) {
	if c.Finished || c.Position >= n {
		c.Finished = true
		return Page{}, false
	}
	page := PageAt(c.Position, c.PageHeight, n)
	c.Position = page.End
	return page, true
}

// PageAt returns the page of height rows starting at start, clipped to n.
func PageAt(start, height, n int) Page {
	if start < 0 {
		start = 0
	}
	if height < 1 {
		height = 1
	}
	end := start + height
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return Page{Start: start, End: end, Final: end >= n}
}

// LastPageStart returns the start index of the final page when pages of
// height rows are laid out from row 0.
func LastPageStart(height, n int) int {
	if n <= 0 {
		return 0
	}
	if height < 1 {
		height = 1
	}
	return ((n - 1) / height) * height
}

// PageHeightFor returns the usable page height for a terminal of rows lines
// once reserved lines are set aside. The result is at least 1.
func PageHeightFor(rows uint16, reserved int) int {
	h := int(rows) - reserved
	if h < 1 {
		return 1
	}
	return h
}
