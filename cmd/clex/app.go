package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opal-lang/clex/runtime/lexer"
)

// app carries the resolved configuration and output streams of one run
type app struct {
	cfg      Config
	stdout   io.Writer
	stderr   io.Writer
	log      zerolog.Logger
	useColor bool
	only     map[lexer.TokenKind]bool // nil prints every kind
}

func newApp(cmd *cobra.Command, v *viper.Viper) (*app, error) {
	cfg, err := LoadConfig(cmd, v)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		stdout:   cmd.OutOrStdout(),
		stderr:   cmd.ErrOrStderr(),
		useColor: ShouldUseColor(cfg.NoColor),
	}
	a.log = newLogger(a.stderr, cfg.Debug, a.useColor)

	if len(cfg.Only) > 0 {
		kinds, err := resolveKinds(cfg.Only)
		if err != nil {
			return nil, err
		}
		a.only = make(map[lexer.TokenKind]bool, len(kinds))
		for _, k := range kinds {
			a.only[k] = true
		}
	}

	a.log.Debug().
		Strs("ext", cfg.Ext).
		Int("jobs", cfg.Jobs).
		Str("config", v.ConfigFileUsed()).
		Msg("configuration loaded")

	return a, nil
}

// newLogger writes human-readable logs to w, serialized across goroutines.
// Debug level is enabled by --debug.
func newLogger(w io.Writer, debug, useColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), NoColor: !useColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
