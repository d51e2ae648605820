package termsize

import (
	"fmt"
	"math"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/muurk/csvpage/internal/logging"
)

// Fallback geometry used when the caller opts into a default page height.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// WindowSize is the terminal geometry in character cells.
type WindowSize struct {
	Rows uint16
	Cols uint16
}

// String returns the size in the "rows cols" form printed by `stty size`.
func (s WindowSize) String() string {
	return fmt.Sprintf("%d %d", s.Rows, s.Cols)
}

// Overridable for tests.
var (
	isTerminal = func(fd uintptr) bool {
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	termGetSize = term.GetSize
)

// Probe returns the current dimensions of the terminal attached to f.
// It returns false when f is not an interactive terminal or the driver
// query fails.
func Probe(f *os.File) (WindowSize, bool) {
	if f == nil {
		return WindowSize{}, false
	}
	fd := f.Fd()
	if !isTerminal(fd) {
		logging.LogProbe(f.Name(), "not_a_terminal", 0, 0)
		return WindowSize{}, false
	}

	cols, rows, err := termGetSize(int(fd))
	if err != nil {
		logging.LogProbe(f.Name(), "query_failed", 0, 0)
		return WindowSize{}, false
	}
	if rows <= 0 || cols <= 0 || rows > math.MaxUint16 || cols > math.MaxUint16 {
		logging.LogProbe(f.Name(), "invalid_geometry", rows, cols)
		return WindowSize{}, false
	}

	logging.LogProbe(f.Name(), "ok", rows, cols)
	return WindowSize{Rows: uint16(rows), Cols: uint16(cols)}, true
}

// Default returns the fallback geometry.
func Default() WindowSize {
	return WindowSize{Rows: DefaultRows, Cols: DefaultCols}
}
