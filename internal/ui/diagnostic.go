package ui

import (
	"fmt"
	"io"
)

// PrintError writes a one-line diagnostic for err to w.
func PrintError(w io.Writer, err error) {
	r := NewRenderer(w)
	fmt.Fprintf(w, "%s %s\n",
		ErrorTitleStyle(r).Render("Error:"),
		ErrorMessageStyle(r).Render(err.Error()),
	)
}
