// Package config manages the csvpage preferences file.
//
// The file is YAML and stores display defaults: rendering format, whether the
// header is repeated on every page, what to do without a terminal, and the
// prompt text. Command-line flags override every value.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/csvpage/config.yaml or $HOME/.config/csvpage/config.yaml
//   - macOS: $HOME/.config/csvpage/config.yaml
//   - Windows: %LOCALAPPDATA%\csvpage\config.yaml
//
// A missing file is not an error; Load returns the defaults.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	cfg.Format = config.FormatAligned
//	if err := cfg.Save(""); err != nil {
//	    return err
//	}
package config
