// Package pager slices a row source into terminal-sized pages and drives the
// blocking continue/quit interaction between them.
//
// # Pagination
//
// A Cursor tracks the next unrendered row. Each call to Next yields the
// half-open range [Position, Position+PageHeight) clipped to the source
// length and moves Position to the end of that range, so every row is
// rendered exactly once and in order. One terminal row is reserved for the
// prompt (and one more when a header line is repeated on every page).
//
// # Session
//
// Renderer probes the terminal once, then loops: print a page, and unless it
// was the last one, flush, print the prompt and read one line of input. The
// trimmed input "q" ends the session; anything else continues. A failure to
// read input ends the session the same way.
//
//	r := pager.NewRenderer(os.Stdout, os.Stdin,
//	    pager.WithHeader(src.HeaderLine()),
//	    pager.WithFallback(pager.FallbackDefault),
//	)
//	if err := r.Run(src); err != nil {
//	    return err
//	}
//
// When no terminal geometry is available the Fallback policy decides:
// return ErrTerminalUnavailable, page with a default height, or dump every
// row without prompting.
package pager
