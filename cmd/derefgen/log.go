package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Log format constants
const (
	FormatFlagName = "logformat"

	FormatJSON = "json"
	FormatText = "text"
)

// Log level constants
const (
	LevelFlagName = "loglevel"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log output constants
const (
	OutputFlagName = "logoutput"

	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

var (
	formats = []string{FormatText, FormatJSON}
	levels  = []string{LevelWarn, LevelDebug, LevelInfo, LevelError}
	outputs = []string{OutputStderr, OutputStdout}
)

// RegisterLoggingFlags registers the logging-related flags on flagset.
// go:generate runs surface stderr, so logs default to warnings on stderr.
//
//	--logformat json     # Output logs in JSON format for machine processing
//	--loglevel debug     # Show all logs including planned delegations
//	--logoutput stdout   # Write logs to standard output
func RegisterLoggingFlags(flagset *pflag.FlagSet) {
	flagset.String(FormatFlagName, FormatText, fmt.Sprintf("log format, one of %v", formats))
	flagset.String(LevelFlagName, LevelWarn, fmt.Sprintf("log level, one of %v", levels))
	flagset.String(OutputFlagName, OutputStderr, fmt.Sprintf("log destination, one of %v", outputs))
}

// GetBaseLogger creates a slog.Logger from the command's logging flags.
func GetBaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	logLevel, err := loggerLevelFromCommand(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get log level: %w", err)
	}

	format, err := enumFlag(cmd.Flags(), FormatFlagName, formats)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log format from the command flag: %w", err)
	}

	output, err := enumFlag(cmd.Flags(), OutputFlagName, outputs)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log output from the command flag: %w", err)
	}

	var outputWriter io.Writer
	switch output {
	case OutputStdout:
		outputWriter = cmd.OutOrStdout()
	case OutputStderr:
		outputWriter = cmd.ErrOrStderr()
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(outputWriter, opts)
	default:
		handler = slog.NewTextHandler(outputWriter, opts)
	}
	return slog.New(handler), nil
}

// loggerLevelFromCommand converts the log level flag to a slog.Level.
func loggerLevelFromCommand(cmd *cobra.Command) (slog.Level, error) {
	logLevel, err := enumFlag(cmd.Flags(), LevelFlagName, levels)
	if err != nil {
		return slog.LevelWarn, err
	}
	switch logLevel {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, nil
	}
}

func enumFlag(flags *pflag.FlagSet, name string, allowed []string) (string, error) {
	v, err := flags.GetString(name)
	if err != nil {
		return "", err
	}
	if !slices.Contains(allowed, v) {
		return "", fmt.Errorf("invalid %s %q, must be one of %v", name, v, allowed)
	}
	return v, nil
}
