package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag names double as config keys; env variables use the CLEX_ prefix with
// dashes turned into underscores (CLEX_EXTRACT_INTS=true).
const (
	keyExtractKeywords = "extract-keywords"
	keyExtractComments = "extract-comments"
	keyExtractChars    = "extract-chars"
	keyExtractStrings  = "extract-strings"
	keyExtractInts     = "extract-ints"
	keyExtractFloats   = "extract-floats"
	keyPrintExtracted  = "print-extracted"
	keyPrintTokens     = "print-tokens"
	keyPrintFiles      = "print-files"
	keyPrintDirs       = "print-dirs"
	keyExt             = "ext"
	keyJobs            = "jobs"
	keyOnly            = "only"
	keyWatch           = "watch"
	keyNoColor         = "no-color"
	keyDebug           = "debug"
	keyTrace           = "trace"
	keyConfig          = "config"
	keyFormat          = "format"
	keyIgnoreComments  = "ignore-comments"
)

const envPrefix = "CLEX"

// Config stores all configuration of the command.
// The values are read by viper from flags, environment variables or a config file.
type Config struct {
	ExtractKeywords bool `mapstructure:"extract-keywords"`
	ExtractComments bool `mapstructure:"extract-comments"`
	ExtractChars    bool `mapstructure:"extract-chars"`
	ExtractStrings  bool `mapstructure:"extract-strings"`
	ExtractInts     bool `mapstructure:"extract-ints"`
	ExtractFloats   bool `mapstructure:"extract-floats"`

	PrintExtracted bool `mapstructure:"print-extracted"`
	PrintTokens    bool `mapstructure:"print-tokens"`
	PrintFiles     bool `mapstructure:"print-files"`
	PrintDirs      bool `mapstructure:"print-dirs"`

	Ext   []string `mapstructure:"ext"`
	Jobs  int      `mapstructure:"jobs"`
	Only  []string `mapstructure:"only"`
	Watch bool     `mapstructure:"watch"`

	NoColor bool `mapstructure:"no-color"`
	Debug   bool `mapstructure:"debug"`
	Trace   bool `mapstructure:"trace"`

	Format         string `mapstructure:"format"`
	IgnoreComments bool   `mapstructure:"ignore-comments"`
}

// LoadConfig reads configuration for cmd. Precedence, highest first: flags
// set on the command line, CLEX_* environment variables, the config file,
// flag defaults.
func LoadConfig(cmd *cobra.Command, v *viper.Viper) (config Config, err error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return config, fmt.Errorf("cannot bind flags: %w", err)
	}

	file, _ := cmd.Flags().GetString(keyConfig)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".clex")
		v.AddConfigPath(".")
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return config, &CLIError{
				Type:    errConfig,
				Message: "cannot read config file",
				Details: err.Error(),
				Hint:    "Check the file passed to --config, or remove it",
			}
		}
	} else if err = validateConfigFile(v.ConfigFileUsed()); err != nil {
		return config, err
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("cannot decode config: %w", err)
	}

	if config.Trace {
		config.Debug = true
	}
	if config.Jobs <= 0 {
		config.Jobs = runtime.NumCPU()
	}
	config.Ext = normalizeExts(config.Ext)
	return config, nil
}

// normalizeExts strips leading dots so ".c" and "c" are equivalent
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
