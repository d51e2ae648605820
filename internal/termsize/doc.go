// Package termsize queries the host terminal driver for the current window
// geometry.
//
// The probe is read-only: it never writes to the terminal and never blocks.
// When the file is not attached to an interactive terminal (redirected to a
// file or a pipe) no driver call is attempted and the probe reports absence.
//
//	size, ok := termsize.Probe(os.Stdout)
//	if !ok {
//	    // no terminal: pick a default height or dump everything
//	}
//
// Absence is always the second return value; a WindowSize obtained from a
// successful probe has both dimensions positive.
package termsize
