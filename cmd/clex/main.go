// Command clex lexes C sources and reports tokens and decoded literal values.
//
//	clex [flags] <source-path>
//	clex dump <file> --format text|json|cbor
//	clex digest <file>... [--ignore-comments]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		FormatError(os.Stderr, err, ShouldUseColor(noColorRequested(rootCmd)))
		os.Exit(exitCode(err))
	}
}

// newRootCmd wires the command tree. Each invocation gets its own viper
// instance so commands can be built and run repeatedly in tests.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "clex [flags] <source-path>",
		Short:         "Lex C sources and extract literal values",
		Long:          "Lex a C source file, or every C source under a directory, printing tokens and decoded values.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, v)
			if err != nil {
				return err
			}
			return a.runLex(cmd.Context(), args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.BoolP(keyExtractKeywords, "k", false, "Extract keywords")
	flags.BoolP(keyExtractComments, "C", false, "Extract comment texts")
	flags.BoolP(keyExtractChars, "c", false, "Extract character literals")
	flags.BoolP(keyExtractStrings, "s", false, "Extract string literals")
	flags.BoolP(keyExtractInts, "i", false, "Extract integer literals (as 128-bit signed)")
	flags.BoolP(keyExtractFloats, "f", false, "Extract floating-point literals (as 64-bit)")
	flags.BoolP(keyPrintExtracted, "x", false, "Print extracted data")
	flags.BoolP(keyPrintTokens, "t", false, "Print token data")
	flags.BoolP(keyPrintFiles, "p", false, "Print file paths")
	flags.BoolP(keyPrintDirs, "d", false, "Print directory paths")
	flags.StringSlice(keyExt, []string{"c"}, "File extensions treated as C sources")
	flags.Int(keyJobs, 0, "Files lexed in parallel (0 means one per CPU)")
	flags.StringSlice(keyOnly, nil, "Token kinds printed by --print-tokens (default all)")
	flags.Bool(keyWatch, false, "Keep running and re-lex sources when they change")

	persistent := rootCmd.PersistentFlags()
	persistent.Bool(keyNoColor, false, "Disable colored output")
	persistent.Bool(keyDebug, false, "Enable debug logging")
	persistent.Bool(keyTrace, false, "Log every rule measurement of the lexer (implies --debug)")
	persistent.String(keyConfig, "", "Config file (default .clex.yaml in the working directory if present)")

	rootCmd.AddCommand(newDumpCmd(v), newDigestCmd(v))
	return rootCmd
}

// noColorRequested reads --no-color after a failed run, when no config exists
func noColorRequested(cmd *cobra.Command) bool {
	noColor, err := cmd.PersistentFlags().GetBool(keyNoColor)
	return err == nil && noColor
}

// getInputReader returns stdin for "-" and an open file otherwise
func getInputReader(cmd *cobra.Command, path string) (io.Reader, func() error, error) {
	if path == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, &CLIError{
				Type:    errInput,
				Message: fmt.Sprintf("no such file: %s", path),
				Hint:    "Pass a C source file, or - to read standard input",
			}
		}
		return nil, nil, fmt.Errorf("error opening file %s: %w", path, err)
	}
	return f, f.Close, nil
}

// readSource reads a whole source from a file or stdin
func readSource(cmd *cobra.Command, path string) (string, error) {
	r, closeFunc, err := getInputReader(cmd, path)
	if err != nil {
		return "", err
	}
	defer func() { _ = closeFunc() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(data), nil
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
