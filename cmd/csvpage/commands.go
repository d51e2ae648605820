package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/csvpage/internal/browse"
	"github.com/muurk/csvpage/internal/config"
	"github.com/muurk/csvpage/internal/dataframe"
	"github.com/muurk/csvpage/internal/logging"
	"github.com/muurk/csvpage/internal/pager"
	"github.com/muurk/csvpage/internal/termsize"
	"github.com/muurk/csvpage/internal/version"
)

// viewFlags holds the command-line overrides for a viewing session.
type viewFlags struct {
	configPath string
	logLevel   string
	format     string
	header     bool
	fallback   string
	height     int
	tui        bool
	lenient    bool
	delimiter  string
}

// table is a row source that can also render its header.
type table interface {
	dataframe.Source
	HeaderLine() string
}

func newRootCmd() *cobra.Command {
	flags := &viewFlags{}

	rootCmd := &cobra.Command{
		Use:   "csvpage <file.csv>",
		Short: "Page through a CSV file in the terminal",
		Long: `Print a CSV file one terminal-sized page at a time.

After each page, press Enter to continue or type "q" and press Enter to quit.
The page height follows the terminal height, with one line kept for the prompt.
With --header the column header opens every page and takes one more line.

When standard output is not a terminal the --fallback policy applies:
  fail     exit with an error (default)
  default  page with the configured default height
  dump     print every row without prompting`,
		Example: `  # Page through a file
  csvpage survey.csv

  # Aligned columns with the header repeated on every page
  csvpage survey.csv --format aligned --header

  # Pipe-friendly: dump everything when not on a terminal
  csvpage survey.csv --fallback dump | grep 2024

  # Full-screen browser with backwards paging
  csvpage survey.csv --tui`,
		Version:       version.Full(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(flags.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags, args[0])
		},
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level written to stderr (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flags.format, "format", config.FormatCSV, "Row format (csv, aligned)")
	rootCmd.Flags().BoolVar(&flags.header, "header", false, "Repeat the header on every page (uses one more line)")
	rootCmd.Flags().StringVar(&flags.fallback, "fallback", string(pager.FallbackFail), "Policy without a terminal (fail, default, dump)")
	rootCmd.Flags().IntVar(&flags.height, "height", 0, "Page as if the terminal had this many rows (skips probing)")
	rootCmd.Flags().BoolVar(&flags.tui, "tui", false, "Open the full-screen browser")
	rootCmd.Flags().BoolVar(&flags.lenient, "lenient", false, "Accept records with a different number of fields")
	rootCmd.Flags().StringVar(&flags.delimiter, "delimiter", "", `Field delimiter (default ","; use \t for tab)`)

	rootCmd.AddCommand(newProbeCmd())
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// settings merges the config file with the flags the user set explicitly.
func settings(cmd *cobra.Command, flags *viewFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = flags.format
	}
	if fs.Changed("header") {
		cfg.Header = flags.header
	}
	if fs.Changed("fallback") {
		cfg.Fallback = flags.fallback
	}
	if fs.Changed("lenient") {
		cfg.Lenient = flags.lenient
	}
	if fs.Changed("delimiter") {
		cfg.Delimiter = flags.delimiter
	}
	if flags.height < 0 || flags.height > config.MaxDefaultHeight {
		return nil, fmt.Errorf("invalid --height %d", flags.height)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newTable(format string, frame *dataframe.Frame, width int) (table, error) {
	switch format {
	case config.FormatCSV:
		return dataframe.NewCSVLines(frame), nil
	case config.FormatAligned:
		return dataframe.NewAlignedLines(frame, width), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func probeWriter(w io.Writer) (termsize.WindowSize, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return termsize.WindowSize{}, false
	}
	return termsize.Probe(f)
}

func runView(cmd *cobra.Command, flags *viewFlags, path string) error {
	cfg, err := settings(cmd, flags)
	if err != nil {
		return err
	}
	if flags.logLevel == "" && cfg.LogLevel != "" {
		if err := logging.Initialize(cfg.LogLevel); err != nil {
			return err
		}
	}

	comma, err := cfg.Comma()
	if err != nil {
		return err
	}
	frame, err := dataframe.FromCSV(path, dataframe.Options{Lenient: cfg.Lenient, Comma: comma})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var size termsize.WindowSize
	var probed bool
	if flags.height > 0 {
		size, probed = termsize.WindowSize{Rows: uint16(flags.height), Cols: termsize.DefaultCols}, true
	} else {
		size, probed = probeWriter(out)
	}

	width := 0
	if probed {
		width = int(size.Cols)
	}
	src, err := newTable(cfg.Format, frame, width)
	if err != nil {
		return err
	}
	header := ""
	if cfg.Header {
		header = src.HeaderLine()
	}

	fallback, err := pager.ParseFallback(cfg.Fallback)
	if err != nil {
		return err
	}

	if flags.tui {
		return runBrowser(out, src, header, size, probed, fallback)
	}

	r := pager.NewRenderer(out, cmd.InOrStdin(),
		pager.WithProbe(func() (termsize.WindowSize, bool) { return size, probed }),
		pager.WithFallback(fallback),
		pager.WithDefaultHeight(cfg.DefaultHeight),
		pager.WithHeader(header),
		pager.WithPrompt(cfg.Prompt),
	)
	return r.Run(src)
}

func runBrowser(out io.Writer, src table, header string, size termsize.WindowSize, probed bool, fallback pager.Fallback) error {
	if _, tty := probeWriter(out); !tty {
		switch fallback {
		case pager.FallbackDump:
			return pager.Dump(out, src, header)
		case pager.FallbackFail:
			return fmt.Errorf("cannot open browser: %w", pager.ErrTerminalUnavailable)
		}
		// The browser sizes itself from the first window-size message.
		probed = false
	}
	return browse.Run(src, header, size, probed)
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print the terminal size as \"rows cols\"",
		Long: `Query the terminal attached to standard output for its size.

Prints "rows cols", the same format as 'stty size'. Exits with an error when
standard output is not an interactive terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, ok := probeWriter(cmd.OutOrStdout())
			if !ok {
				return fmt.Errorf("standard output: %w", pager.ErrTerminalUnavailable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), size.String())
			return nil
		},
	}
}

func newConfigCmd(flags *viewFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd, pathCmd)
	return configCmd
}

func configPath(flags *viewFlags) (string, error) {
	if flags.configPath != "" {
		return flags.configPath, nil
	}
	return config.GetConfigPath()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "csvpage %s (commit: %s)\n", version.Version, version.Commit)
		},
	}
}
