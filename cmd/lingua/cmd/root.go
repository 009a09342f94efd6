package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/lingua/core/config"
	"github.com/msto63/lingua/core/log"
)

var (
	cfgFile string
	locale  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "lingua - locale-aware message formatting",
	Long: `lingua formats localized messages from simple message resources.

Message patterns may interpolate arguments and call the DATETIME
function to render calendar dates and times with locale rules:

  today = Today is { DATETIME($date, dateStyle: "full") }

Commands:
  format   - format a message from a resource file
  locales  - list the available locale data
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/lingua.toml)")
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "", "locale for formatting (default: en-US)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the configuration file when present. A missing
// default file is not an error; an explicitly named file must exist.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = "configs/lingua.toml"
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, err
		}
		return config.LoadFromString("", config.FormatTOML)
	}

	return config.LoadWithOptions(path, config.Options{
		EnvPrefix: "LINGUA",
	})
}

// newLogger builds the command logger from config and the verbose flag,
// tagged with a fresh request ID.
func newLogger(cfg *config.Config) *log.Logger {
	level, _ := log.ParseLevel(cfg.GetString("log.level", "info"))
	if verbose {
		level = log.LevelDebug
	}

	logger := log.New().
		WithName("lingua").
		WithLevel(level).
		WithOutput(os.Stderr).
		WithRequestID(uuid.NewString())

	if format, ok := log.ParseFormat(cfg.GetString("log.format", "text")); ok {
		logger = logger.WithFormat(format)
	}
	return logger
}

// effectiveLocale resolves the locale from flag, then config, then the
// built-in default.
func effectiveLocale(cfg *config.Config) string {
	if locale != "" {
		return locale
	}
	return cfg.GetString("format.locale", "en-US")
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "error: %s: %v\n", msg, err)
}
