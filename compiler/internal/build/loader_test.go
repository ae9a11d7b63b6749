package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/diag"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func funcNames(funcs []ast.Node) []string {
	var out []string
	for _, n := range funcs {
		name, _ := ast.NameOf(n.(*ast.Function).Name)
		out = append(out, name)
	}
	return out
}

func TestLoadFilesConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.m", "fn one() { x = 1 }\nfn two() {}")
	b := writeFile(t, dir, "b.m", "fn three() { { y = 2 } }")

	funcs, errs := LoadFiles(a, b, a)
	require.Empty(t, errs)
	assert.Equal(t, []string{"one", "two", "three"}, funcNames(funcs))
}

func TestLoadFilesCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.m", "fn main() {}")
	bad := writeFile(t, dir, "bad.m", "fn main() { a = }")
	missing := filepath.Join(dir, "missing.m")

	funcs, errs := LoadFiles(good, bad, missing)
	assert.Nil(t, funcs)
	require.Len(t, errs, 2)

	var d diag.Diagnostic
	require.ErrorAs(t, errs[0], &d)
	assert.Equal(t, "DPE0001", d.Code)
	assert.ErrorIs(t, errs[1], os.ErrNotExist)
}

func TestLoadNoInputs(t *testing.T) {
	_, errs := LoadFiles()
	require.Len(t, errs, 1)
}

func TestLoadUnitsKeepsPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.m", "fn one() {}")
	units, errs := LoadUnits(a)
	require.Empty(t, errs)
	require.Len(t, units, 1)
	assert.True(t, filepath.IsAbs(units[0].Path))
}
