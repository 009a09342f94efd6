package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/lingua/core/log"
	"github.com/msto63/lingua/datetime"
	"github.com/msto63/lingua/message"
	"github.com/msto63/lingua/message/value"
)

var (
	resourceFile string
	stringArgs   []string
	numberArgs   []string
	dateArgs     []string
	noIsolation  bool
)

var formatCmd = &cobra.Command{
	Use:   "format <message-id>",
	Short: "Format a message from a resource file",
	Long: `Format a message from a resource file for the selected locale.

Arguments are passed with repeatable flags:

  --arg name=Anne                       string argument
  --num count=3                         numeric argument
  --date when=1989-11-09T23:30:00Z      date/time argument (RFC 3339)

Example:

  lingua format today --resource messages.txt --date date=1989-11-09T23:30:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&resourceFile, "resource", "r", "", "message resource file (required)")
	formatCmd.Flags().StringArrayVar(&stringArgs, "arg", nil, "string argument as key=value")
	formatCmd.Flags().StringArrayVar(&numberArgs, "num", nil, "numeric argument as key=value")
	formatCmd.Flags().StringArrayVar(&dateArgs, "date", nil, "date/time argument as key=RFC3339")
	formatCmd.Flags().BoolVar(&noIsolation, "no-isolation", false, "disable Unicode bidi isolation of placeables")
	_ = formatCmd.MarkFlagRequired("resource")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError(os.Stderr, "failed to load config", err)
		return err
	}
	logger := newLogger(cfg)

	source, err := os.ReadFile(resourceFile)
	if err != nil {
		printError(os.Stderr, "failed to read resource file", err)
		return err
	}

	bundle, err := message.New(message.Options{
		Locale:           effectiveLocale(cfg),
		Logger:           logger,
		DisableIsolating: noIsolation || !cfg.GetBool("format.isolation", true),
	})
	if err != nil {
		return err
	}
	if err := datetime.Register(bundle); err != nil {
		return err
	}

	if errs := bundle.AddResource(string(source)); len(errs) > 0 {
		for _, e := range errs {
			logger.Warn("resource problem", log.Field("error", e.Error()))
		}
	}

	msgArgs, err := collectArgs()
	if err != nil {
		printError(os.Stderr, "invalid argument", err)
		return err
	}

	out, errs := bundle.FormatMessage(args[0], msgArgs)
	for _, e := range errs {
		logger.Warn("formatting problem", log.Field("error", e.Error()))
	}
	if out == "" && len(errs) > 0 {
		return errs[0]
	}

	fmt.Println(out)
	return nil
}

// collectArgs converts the repeated argument flags into message values
func collectArgs() (value.Args, error) {
	msgArgs := make(value.Args)

	for _, raw := range stringArgs {
		key, val, err := splitArg(raw)
		if err != nil {
			return nil, err
		}
		msgArgs[key] = value.String(val)
	}

	for _, raw := range numberArgs {
		key, val, err := splitArg(raw)
		if err != nil {
			return nil, err
		}
		num, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number: %w", key, err)
		}
		msgArgs[key] = value.Number(num)
	}

	for _, raw := range dateArgs {
		key, val, err := splitArg(raw)
		if err != nil {
			return nil, err
		}
		when, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not an RFC 3339 timestamp: %w", key, err)
		}
		msgArgs[key] = value.Wrap(datetime.New(when))
	}

	return msgArgs, nil
}

func splitArg(raw string) (string, string, error) {
	key, val, found := strings.Cut(raw, "=")
	if !found || key == "" {
		return "", "", fmt.Errorf("argument %q is not in key=value form", raw)
	}
	return key, val, nil
}
