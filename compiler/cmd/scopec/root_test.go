package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "" +
	"fn main() {\n" +
	"  { a = 1 }\n" +
	"  { a = 2 { b = 3 } }\n" +
	"}\n"

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(newRootCmd(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestParseCommand(t *testing.T) {
	file := writeSource(t, "main.m", example)

	code, out, _ := runCLI(t, "parse", file)
	require.Equal(t, 0, code)
	want := "" +
		"Function: main\n" +
		"  {\n" +
		"    a mutated as \"=\" by 1\n" +
		"  }\n" +
		"  {\n" +
		"    a mutated as \"=\" by 2\n" +
		"    {\n" +
		"      b mutated as \"=\" by 3\n" +
		"    }\n" +
		"  }\n"
	assert.Equal(t, want, out)
}

func TestParseCommandReportsErrors(t *testing.T) {
	file := writeSource(t, "bad.m", "fn main() { a = }")

	code, out, errOut := runCLI(t, "parse", file)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "DPE0001")
	assert.Contains(t, errOut, "bad.m")
}

func TestTableCommandPlain(t *testing.T) {
	file := writeSource(t, "main.m", example)

	code, out, _ := runCLI(t, "table", "--format", "plain", file)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"a\t0.0\tunknown\tassignment\t2:5",
		"a\t0.1\tunknown\tassignment\t3:5",
		"b\t0.1.0\tunknown\tassignment\t3:13",
	}, lines)
}

func TestTableCommandTable(t *testing.T) {
	file := writeSource(t, "main.m", example)

	code, out, _ := runCLI(t, "table", file)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Scope")
	assert.Contains(t, out, "0.1.0")
	assert.Contains(t, out, "3 binding(s)")
}

func TestTableCommandMultipleFiles(t *testing.T) {
	first := writeSource(t, "a.m", "fn a() { x = 1 }")
	second := writeSource(t, "b.m", "fn b() { { y = 1 } }")

	code, out, _ := runCLI(t, "table", "-f", "plain", "-p", "2", first, second)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "x\t0\t")
	assert.Contains(t, out, "y\t1.0\t")
}

func TestTableCommandWarnings(t *testing.T) {
	file := writeSource(t, "main.m", "fn main() { a = b }")

	code, _, errOut := runCLI(t, "table", "-f", "plain", file)
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "W0001")

	code, _, errOut = runCLI(t, "table", "-f", "plain", "--Werror", file)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "treated as errors")
}

func TestTableCommandPolicy(t *testing.T) {
	file := writeSource(t, "main.m", "fn main() { a = 1 }")

	code, _, errOut := runCLI(t, "table", "--policy", "declare-before-use", file)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "DSE0011")

	code, _, errOut = runCLI(t, "table", "--policy", "bogus", file)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown binding policy")
}

func TestTableCommandDuplicateDeclaration(t *testing.T) {
	file := writeSource(t, "main.m", "fn main() {\n  int a = 1\n  int a = 2\n}")

	code, _, errOut := runCLI(t, "table", file)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "DSE0010")
}

func TestLookupCommand(t *testing.T) {
	file := writeSource(t, "main.m", example)

	code, out, _ := runCLI(t, "lookup", file, "a", "0.1.0")
	require.Equal(t, 0, code)
	assert.Equal(t, "a @ 0.1.0 -> 0.1: variable unknown (assignment at 3:5)\n", out)

	code, out, errOut := runCLI(t, "lookup", file, "b", "0.0")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `"b" is undeclared in scope 0.0`)

	code, _, errOut = runCLI(t, "lookup", file, "a", "x.y")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid scope index")
}

func TestConfigFile(t *testing.T) {
	file := writeSource(t, "main.m", example)
	cfg := writeSource(t, "scopec.toml", "[output]\nformat = \"plain\"\n")

	code, out, _ := runCLI(t, "table", "--config", cfg, file)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "a\t0.0\t"), out)

	code, _, errOut := runCLI(t, "table", "--config", filepath.Join(t.TempDir(), "missing.toml"), file)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "scopec "))
}

func TestMissingArgs(t *testing.T) {
	code, _, errOut := runCLI(t, "table")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "requires at least 1 arg")
}
