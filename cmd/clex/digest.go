package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opal-lang/clex/runtime/dump"
)

func newDigestCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest <file>...",
		Short: "Fingerprint the token streams of sources",
		Long: "Print a BLAKE2b digest of each source's token stream. Sources that differ only in " +
			"whitespace and layout share a digest; with --ignore-comments, so do sources that differ only in comments.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, v)
			if err != nil {
				return err
			}

			opts := dump.DigestOptions{IgnoreComments: a.cfg.IgnoreComments}
			for _, path := range args {
				src, err := readSource(cmd, path)
				if err != nil {
					return err
				}
				d, err := dump.DigestSource(src, opts)
				if err != nil {
					return fmt.Errorf("cannot digest %s: %w", path, err)
				}
				_, _ = fmt.Fprintf(a.stdout, "%s  %s\n", d, path)
			}
			return nil
		},
	}

	cmd.Flags().Bool(keyIgnoreComments, false, "Leave comments out of the digest")
	return cmd
}
