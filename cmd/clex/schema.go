package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/viper"
	"golang.org/x/mod/semver"
)

// configVersion is the config file format this build reads. Files may pin
// any version with the same major.
const configVersion = "v1.0.0"

//go:embed config.schema.json
var configSchemaJSON string

var compileConfigSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	compiler.Formats["semver"] = func(v interface{}) bool {
		s, ok := v.(string)
		if !ok {
			return true // Type validation happens separately
		}
		return semver.IsValid(canonicalVersion(s))
	}

	url := "schema://clex-config.json"
	if err := compiler.AddResource(url, strings.NewReader(configSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
})

// validateConfigFile checks the keys and value types of a config file on
// its own, before flags and environment are layered over it.
func validateConfigFile(path string) error {
	fv := viper.New()
	fv.SetConfigFile(path)
	if err := fv.ReadInConfig(); err != nil {
		return &CLIError{Type: errConfig, Message: "cannot read config file", Details: err.Error()}
	}

	doc, err := jsonDocument(fv.AllSettings())
	if err != nil {
		return fmt.Errorf("cannot convert config %s: %w", path, err)
	}

	schema, err := compileConfigSchema()
	if err != nil {
		return fmt.Errorf("config schema compilation failed: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		return &CLIError{
			Type:    errConfig,
			Message: fmt.Sprintf("invalid config file %s", path),
			Details: strings.Join(validationLeaves(ve), "\n"),
			Hint:    "Config keys are the long flag names, e.g. print-tokens: true",
		}
	}

	if v, ok := fv.Get("version").(string); ok {
		if semver.Major(canonicalVersion(v)) != semver.Major(configVersion) {
			return &CLIError{
				Type:    errConfig,
				Message: fmt.Sprintf("unsupported config version %q in %s", v, path),
				Hint:    fmt.Sprintf("This build reads config version %s", semver.Major(configVersion)),
			}
		}
	}
	return nil
}

// jsonDocument turns decoded settings into the raw JSON value a schema
// validates; numbers stay json.Number so integers are not floats.
func jsonDocument(settings map[string]any) (any, error) {
	b, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// validationLeaves flattens a validation error tree into one
// "location: message" line per failing keyword
func validationLeaves(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{loc + ": " + ve.Message}
	}

	var out []string
	for _, c := range ve.Causes {
		out = append(out, validationLeaves(c)...)
	}
	sort.Strings(out)
	return out
}

// canonicalVersion accepts versions with or without the v prefix
func canonicalVersion(s string) string {
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	return s
}
