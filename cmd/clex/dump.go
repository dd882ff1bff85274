package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opal-lang/clex/runtime/dump"
)

func newDumpCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Write the lexeme stream of a source with decoded values",
		Long:  "Write every lexeme of a source as text, JSON or canonical CBOR. Reads standard input for - or when input is piped.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, v)
			if err != nil {
				return err
			}

			path, err := inputPath(args)
			if err != nil {
				return err
			}

			format, err := dump.ParseFormat(a.cfg.Format)
			if err != nil {
				return &CLIError{Type: errUsage, Message: err.Error(), Hint: "Use --format text, json or cbor"}
			}

			src, err := readSource(cmd, path)
			if err != nil {
				return err
			}

			records := dump.Collect(src)
			a.log.Debug().Str("path", path).Int("records", len(records)).Msg("dumping")
			return dump.Encode(a.stdout, records, format)
		},
	}

	cmd.Flags().String(keyFormat, string(dump.FormatText), "Output format: text, json or cbor")
	return cmd
}

// inputPath picks the single source argument, defaulting to piped stdin
func inputPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if hasPipedInput() {
		return "-", nil
	}
	return "", &CLIError{
		Type:    errInput,
		Message: "no input",
		Hint:    "Pass a C source file, or pipe one into standard input",
	}
}
