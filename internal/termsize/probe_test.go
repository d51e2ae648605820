package termsize

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
)

func TestProbeRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if size, ok := Probe(f); ok {
		t.Errorf("Probe(regular file) = %v, true; want absent", size)
	}
}

func TestProbePipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	if size, ok := Probe(w); ok {
		t.Errorf("Probe(pipe) = %v, true; want absent", size)
	}
}

func TestProbeNil(t *testing.T) {
	if _, ok := Probe(nil); ok {
		t.Error("Probe(nil) should report absence")
	}
}

func TestProbeNoDriverCallWhenNotTerminal(t *testing.T) {
	origTerm, origSize := isTerminal, termGetSize
	defer func() { isTerminal, termGetSize = origTerm, origSize }()

	called := false
	isTerminal = func(uintptr) bool { return false }
	termGetSize = func(int) (int, int, error) {
		called = true
		return 80, 24, nil
	}

	if _, ok := Probe(os.Stdout); ok {
		t.Error("Probe() should report absence when not a terminal")
	}
	if called {
		t.Error("Probe() queried the driver for a non-terminal")
	}
}

func TestProbeDriverResults(t *testing.T) {
	origTerm, origSize := isTerminal, termGetSize
	defer func() { isTerminal, termGetSize = origTerm, origSize }()
	isTerminal = func(uintptr) bool { return true }

	tests := []struct {
		name   string
		cols   int
		rows   int
		err    error
		want   WindowSize
		wantOK bool
	}{
		{name: "normal", cols: 80, rows: 24, want: WindowSize{Rows: 24, Cols: 80}, wantOK: true},
		{name: "large", cols: 300, rows: 90, want: WindowSize{Rows: 90, Cols: 300}, wantOK: true},
		{name: "driver error", err: errors.New("inappropriate ioctl"), wantOK: false},
		{name: "zero rows", cols: 80, rows: 0, wantOK: false},
		{name: "zero cols", cols: 0, rows: 24, wantOK: false},
		{name: "overflow", cols: 80, rows: 70000, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			termGetSize = func(int) (int, int, error) {
				return tt.cols, tt.rows, tt.err
			}
			got, ok := Probe(os.Stdout)
			if ok != tt.wantOK {
				t.Fatalf("Probe() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Probe() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The probe must agree with the size the kernel holds for a real tty.
func TestProbePseudoTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminal unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	sizes := []pty.Winsize{
		{Rows: 10, Cols: 40},
		{Rows: 50, Cols: 132},
	}
	for _, ws := range sizes {
		if err := pty.Setsize(ptmx, &ws); err != nil {
			t.Fatalf("Setsize(%v) error = %v", ws, err)
		}

		got, ok := Probe(tty)
		if !ok {
			t.Fatalf("Probe(tty) reported absence for %dx%d", ws.Rows, ws.Cols)
		}
		if got.Rows != ws.Rows || got.Cols != ws.Cols {
			t.Errorf("Probe(tty) = %+v, want rows=%d cols=%d", got, ws.Rows, ws.Cols)
		}
	}
}

func TestWindowSizeString(t *testing.T) {
	if got := (WindowSize{Rows: 24, Cols: 80}).String(); got != "24 80" {
		t.Errorf("String() = %q, want %q", got, "24 80")
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.Rows != DefaultRows || d.Cols != DefaultCols {
		t.Errorf("Default() = %+v", d)
	}
}
