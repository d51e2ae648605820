package pager

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/csvpage/internal/dataframe"
	"github.com/muurk/csvpage/internal/logging"
	"github.com/muurk/csvpage/internal/termsize"
	"github.com/muurk/csvpage/internal/ui"
)

// QuitToken ends a session when entered at the prompt.
const QuitToken = "q"

// ProbeFunc reports the terminal geometry, or false when there is none.
type ProbeFunc func() (termsize.WindowSize, bool)

// Renderer drives an interactive paging session.
type Renderer struct {
	out           io.Writer
	in            io.Reader
	probe         ProbeFunc
	fallback      Fallback
	defaultHeight int
	header        string
	prompt        string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProbe replaces the terminal probe.
func WithProbe(p ProbeFunc) Option {
	return func(r *Renderer) { r.probe = p }
}

// WithFixedHeight skips probing and pages as if the terminal had rows lines.
func WithFixedHeight(rows uint16) Option {
	return WithProbe(func() (termsize.WindowSize, bool) {
		return termsize.WindowSize{Rows: rows, Cols: termsize.DefaultCols}, rows > 0
	})
}

// WithFallback sets the policy used when the probe reports no terminal.
func WithFallback(f Fallback) Option {
	return func(r *Renderer) { r.fallback = f }
}

// WithDefaultHeight sets the terminal height assumed by FallbackDefault.
func WithDefaultHeight(rows int) Option {
	return func(r *Renderer) { r.defaultHeight = rows }
}

// WithHeader repeats header at the top of every page. An empty header
// disables it.
func WithHeader(header string) Option {
	return func(r *Renderer) { r.header = header }
}

// WithPrompt replaces the text shown between pages.
func WithPrompt(prompt string) Option {
	return func(r *Renderer) { r.prompt = prompt }
}

// NewRenderer returns a renderer writing pages to out and reading decisions
// from in. By default it probes out when out is a file, fails when there is
// no terminal, and uses ui.DefaultPrompt.
func NewRenderer(out io.Writer, in io.Reader, opts ...Option) *Renderer {
	r := &Renderer{
		out:           out,
		in:            in,
		fallback:      FallbackFail,
		defaultHeight: termsize.DefaultRows,
		prompt:        ui.DefaultPrompt,
	}
	if f, ok := out.(*os.File); ok {
		r.probe = func() (termsize.WindowSize, bool) { return termsize.Probe(f) }
	} else {
		r.probe = func() (termsize.WindowSize, bool) { return termsize.WindowSize{}, false }
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run renders src one page at a time. It returns nil when the rows are
// exhausted, the user quits, or input can no longer be read. With
// FallbackFail and no terminal it returns ErrTerminalUnavailable before
// writing anything.
func (r *Renderer) Run(src dataframe.Source) error {
	size, ok := r.probe()
	if !ok {
		switch r.fallback {
		case FallbackDump:
			logging.Warn("No terminal geometry, dumping all rows")
			return Dump(r.out, src, r.header)
		case FallbackDefault:
			rows := r.defaultHeight
			if rows < 2 {
				rows = 2
			}
			logging.Warn("No terminal geometry, using default height", zap.Int("rows", rows))
			size = termsize.WindowSize{Rows: uint16(rows), Cols: termsize.DefaultCols}
		default:
			return fmt.Errorf("cannot page output: %w", ErrTerminalUnavailable)
		}
	}

	reserved := 1
	if r.header != "" {
		reserved++
	}
	cursor := NewCursor(PageHeightFor(size.Rows, reserved))

	styles := ui.NewRenderer(r.out)
	prompt := ui.RenderLine(ui.PromptStyle(styles), r.prompt)
	header := ui.RenderLine(ui.HeaderStyle(styles), r.header)

	w := bufio.NewWriter(r.out)
	in := bufio.NewReader(r.in)
	n := src.Len()
	reason := "exhausted"

	for !cursor.Finished {
		page, ok := cursor.Next(n)
		if !ok {
			break
		}

		if r.header != "" {
			fmt.Fprintln(w, header)
		}
		for i := page.Start; i < page.End; i++ {
			fmt.Fprintln(w, src.Line(i))
		}
		logging.LogPage(page.Start, page.End, n)

		if page.Final {
			cursor.Finished = true
			break
		}

		fmt.Fprint(w, prompt)
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}

		line, err := in.ReadString('\n')
		if err != nil {
			// No further interaction is possible; end as if quit.
			logging.Debug("Input closed at prompt", zap.Error(err))
			fmt.Fprintln(w)
			cursor.Finished = true
			reason = "input_closed"
			break
		}
		if strings.TrimSpace(line) == QuitToken {
			cursor.Finished = true
			reason = "quit"
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	logging.Info("Session finished",
		zap.String("reason", reason),
		zap.Int("rendered", cursor.Position),
		zap.Int("total", n),
	)
	return nil
}

// Dump writes every row of src to out without pagination, preceded by
// header when it is not empty.
func Dump(out io.Writer, src dataframe.Source, header string) error {
	w := bufio.NewWriter(out)
	if header != "" {
		fmt.Fprintln(w, header)
	}
	for i := 0; i < src.Len(); i++ {
		fmt.Fprintln(w, src.Line(i))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
