package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and captures both streams
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-color"))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// writeFile creates path under dir with content, making parents as needed
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// linesWith keeps the lines starting with prefix
func linesWith(s, prefix string) []string {
	var out []string
	for _, l := range lines(s) {
		if strings.HasPrefix(l, prefix) {
			out = append(out, l)
		}
	}
	return out
}

func TestPrintTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.c", "int x = 'a';\n")

	stdout, stderr, err := execute(t, "-t", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t, []string{
		`  -- Identifier [0..3) "int"`,
		`  -- Identifier [4..5) "x"`,
		`  -- Symbol [6..7) "="`,
		`  -- Char [8..11) "'a'"`,
		`  -- Symbol [11..12) ";"`,
		`** processed 0 dirs and 1 files`,
	}, lines(stdout))
}

func TestExtractValues(t *testing.T) {
	src := "/* hi */\nunsigned n = 0x1f; char c = '\\n'; double d = 1.25e-4; s = \"a\" \"b\";\n"
	path := writeFile(t, t.TempDir(), "vals.c", src)

	stdout, stderr, err := execute(t, "-k", "-C", "-c", "-s", "-i", "-f", "-x", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t, []string{
		`    >> comment: " hi "`,
		`    >> keyword: unsigned`,
		`    >> int: 31`,
		`    >> keyword: char`,
		`    >> char: '\n'`,
		`    >> keyword: double`,
		`    >> float: 0.000125`,
		`    >> string: "ab"`,
	}, linesWith(stdout, "    >>"))
}

func TestExtractWithoutPrintIsSilent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quiet.c", "int x = 1;\n")

	stdout, _, err := execute(t, "-k", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "** processed 0 dirs and 1 files\n", stdout)
}

func TestReportFailuresAndUnknown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.c", "char c = 'ab'; x = 0x1p3; @\n")

	stdout, stderr, err := execute(t, "-c", "-f", "-x", path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		`    !! char: [9..13) "'ab'" (` + path + `)`,
		`    !! float: [19..24) "0x1p3" (` + path + `)`,
		`  ?? [26..27) "@" (` + path + `:1:27)`,
	}, lines(stderr))
	assert.Empty(t, linesWith(stdout, "    >>"))
}

func TestWideIntFailure(t *testing.T) {
	// One past the largest signed 128-bit value
	path := writeFile(t, t.TempDir(), "wide.c", "0x80000000000000000000000000000000 0x7fffffffffffffffffffffffffffffff\n")

	stdout, stderr, err := execute(t, "-i", "-x", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, `!! int: [0..34)`)
	assert.Equal(t, []string{"    >> int: 170141183460469231731687303715884105727"}, linesWith(stdout, "    >>"))
}

func TestWalkDirectory(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.c", "a;")
	writeFile(t, root, "b.h", "b;")
	writeFile(t, root, "notes.txt", "n")
	c := writeFile(t, root, "sub/c.c", "c;")

	stdout, _, err := execute(t, "-p", "-d", root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"** " + root,
		"@@ " + a,
		"** " + filepath.Join(root, "sub"),
		"@@ " + c,
		"** processed 2 dirs and 2 files",
	}, lines(stdout))

	stdout, _, err = execute(t, "--ext", "c,.h", root)
	require.NoError(t, err)
	assert.Equal(t, "** processed 2 dirs and 3 files\n", stdout)
}

func TestParallelOutputIsOrdered(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 20; i++ {
		name := filepath.Join(string(rune('a'+i)), "f.c")
		writeFile(t, root, name, strings.Repeat("x = 1.5 + 'q';\n", i+1))
	}

	serial, _, err := execute(t, "-t", "-p", "--jobs", "1", root)
	require.NoError(t, err)
	parallel, _, err := execute(t, "-t", "-p", "--jobs", "8", root)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	assert.Contains(t, serial, "** processed 21 dirs and 20 files")
}

func TestNotACSource(t *testing.T) {
	path := writeFile(t, t.TempDir(), "readme.md", "# hi")

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "Not a C source: "+path+"\n", stderr)
	assert.Equal(t, "** processed 0 dirs and 0 files\n", stdout)
}

func TestMissingPath(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "nope"))

	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, "input", cliErr.Type)
	assert.Contains(t, cliErr.Message, "no such file or directory")
}

func TestRequiresOnePath(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}

func TestOnlyKinds(t *testing.T) {
	path := writeFile(t, t.TempDir(), "only.c", "int x = 1 + 2.0;\n")

	stdout, _, err := execute(t, "-t", "--only", "int,FLOAT", path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`  -- Int [8..9) "1"`,
		`  -- Float [12..15) "2.0"`,
	}, linesWith(stdout, "  --"))
}

func TestOnlyKindsSuggestsOnTypo(t *testing.T) {
	path := writeFile(t, t.TempDir(), "typo.c", "x;")

	_, _, err := execute(t, "-t", "--only", "strng", path)

	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, `unknown token kind "strng"`, cliErr.Message)
	assert.Equal(t, `Did you mean "String"?`, cliErr.Hint)
	assert.Contains(t, cliErr.Details, "Identifier")
}

func TestEnvironmentConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "env.c", "y")
	t.Setenv("CLEX_PRINT_TOKENS", "true")

	stdout, _, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `  -- Identifier [0..1) "y"`)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cfg.c", "z")
	cfg := writeFile(t, dir, "clex.yaml", "print-files: true\nprint-tokens: true\n")

	stdout, _, err := execute(t, "--config", cfg, path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"@@ " + path,
		`  -- Identifier [0..1) "z"`,
		"** processed 0 dirs and 1 files",
	}, lines(stdout))

	// Flags still win over the file
	stdout, _, err = execute(t, "--config", cfg, "--print-tokens=false", path)
	require.NoError(t, err)
	assert.Empty(t, linesWith(stdout, "  --"))
}

func TestMissingConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.c", "x")

	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), path)

	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, "config", cliErr.Type)
}

func TestDebugLogging(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dbg.c", "int x;")

	_, stderr, err := execute(t, "--debug", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")
	assert.Contains(t, stderr, "lexed")
	assert.Contains(t, stderr, "telemetry")
	assert.Contains(t, stderr, "lexer trace")
	assert.Contains(t, stderr, "select_identifier")
	assert.Contains(t, stderr, "select_symbol")
}

func TestTraceLogsMeasurements(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dbg.c", "int  x;")

	_, stderr, err := execute(t, "--trace", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")
	assert.Contains(t, stderr, "measure_float")
	assert.Contains(t, stderr, "skip_whitespace")
	assert.Contains(t, stderr, "select_identifier")
}

func TestNoTraceWithoutDebug(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dbg.c", "int x;")

	_, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "lexer trace")
}
