package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/permcalc/pkg/logging"
	"github.com/provide-io/permcalc/pkg/utils/permissions"
)

const version = "0.1.0"

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "permcalc %s\n", version)
	fmt.Fprintf(w, "Built: %s\n", getBuildTimestamp())
}

type app struct {
	logLevel string
	noColor  bool
	logger   hclog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:           "permcalc",
		Short:         "Convert Unix permission triples between binary and octal form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := a.logLevel
			if level == "" {
				level = logging.GetLogLevel()
			}
			a.logger = logging.NewLogger("permcalc", level, cmd.ErrOrStderr())
			if a.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:     "to-decimal BINARY",
			Short:   "Convert a 9-digit binary permission to octal (111101101 -> 755)",
			Args:    cobra.ExactArgs(1),
			Example: "  permcalc to-decimal 111101101",
			RunE:    a.toDecimal,
		},
		&cobra.Command{
			Use:     "to-binary DECIMAL",
			Short:   "Convert a 3-digit octal permission to binary (755 -> 111101101)",
			Args:    cobra.ExactArgs(1),
			Example: "  permcalc to-binary 755",
			RunE:    a.toBinary,
		},
		&cobra.Command{
			Use:   "check STRING",
			Short: "Report whether a string is a binary or decimal permission",
			Args:  cobra.ExactArgs(1),
			RunE:  a.check,
		},
		&cobra.Command{
			Use:   "table",
			Short: "Print every binary/decimal permission pair",
			Args:  cobra.NoArgs,
			RunE:  a.table,
		},
	)

	return rootCmd
}

func (a *app) toDecimal(cmd *cobra.Command, args []string) error {
	decimal, err := permissions.BinaryToDecimal(args[0])
	if err != nil {
		return fmt.Errorf("to-decimal: %w", err)
	}
	a.logger.Debug("Converted permission", "binary", args[0], "decimal", decimal)
	fmt.Fprintln(cmd.OutOrStdout(), decimal)
	return nil
}

func (a *app) toBinary(cmd *cobra.Command, args []string) error {
	binary, err := permissions.DecimalToBinary(args[0])
	if err != nil {
		return fmt.Errorf("to-binary: %w", err)
	}
	a.logger.Debug("Converted permission", "decimal", args[0], "binary", binary)
	fmt.Fprintln(cmd.OutOrStdout(), binary)
	return nil
}

func (a *app) check(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	mode, enc, err := permissions.Parse(args[0])
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "%s: invalid\n", args[0])
		return err
	}
	a.logger.Debug("Classified permission", "input", args[0], "encoding", enc.String(), "mode", fmt.Sprintf("%#o", mode))
	color.New(color.FgGreen).Fprintf(out, "%s: %s\n", args[0], enc)
	return nil
}

func (a *app) table(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, p := range permissions.Table() {
		if _, err := fmt.Fprintf(out, "%s %s\n", p.Binary, p.Decimal); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
