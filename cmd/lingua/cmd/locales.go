package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/lingua/core/log"
	"github.com/msto63/lingua/intl"
)

var localeDirs []string

var (
	localeHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	localeNameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Width(8)
	localeDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the available locale data",
	Long: `List the locales known to the formatter, with a sample short
date/time rendering for each. Additional locale data files (TOML or
YAML) can be loaded from directories given with --dir or configured
under locales.dirs.`,
	RunE: runLocales,
}

func init() {
	localesCmd.Flags().StringArrayVar(&localeDirs, "dir", nil, "additional locale data directory")
	rootCmd.AddCommand(localesCmd)
}

func runLocales(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError(os.Stderr, "failed to load config", err)
		return err
	}
	logger := newLogger(cfg)

	catalog, err := intl.NewCatalog()
	if err != nil {
		return err
	}

	dirs := append(cfg.GetStringSlice("locales.dirs"), localeDirs...)
	for _, dir := range dirs {
		if err := catalog.LoadDir(dir); err != nil {
			logger.Warn("skipping locale directory",
				log.Fields{"dir": dir, "error": err.Error()})
			continue
		}
		logger.Debug("loaded locale directory", log.Fields{"dir": dir})
	}

	sample := time.Date(1989, time.November, 9, 23, 30, 0, 0, time.UTC)
	sampleOpts := intl.Options{
		DateStyle: intl.DateStyleShort,
		TimeStyle: intl.TimeStyleShort,
	}

	fmt.Println(localeHeaderStyle.Render("Available locales"))
	for _, loc := range catalog.Locales() {
		f, err := intl.NewFormatterWithCatalog(loc, catalog)
		if err != nil {
			continue
		}
		rendered, err := f.Format(sample, sampleOpts)
		if err != nil {
			rendered = localeDimStyle.Render("(no sample)")
		}
		fmt.Printf("  %s %s\n", localeNameStyle.Render(loc), rendered)
	}
	return nil
}
