package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/desilang/scopec/compiler/internal/ast"
	"github.com/desilang/scopec/compiler/internal/parser"
)

// Unit is one parsed source file.
type Unit struct {
	Path  string // absolute file path
	Funcs []ast.Node
}

// LoadFiles reads and parses every path and returns the functions of all
// units concatenated in argument order, so later files continue the
// top-level function index. Rules:
//   - the same file named twice is loaded once
//   - read and parse failures are collected per file; no functions are
//     returned if any file failed
func LoadFiles(paths ...string) ([]ast.Node, []error) {
	units, errs := LoadUnits(paths...)
	if len(errs) > 0 {
		return nil, errs
	}
	var funcs []ast.Node
	for _, u := range units {
		funcs = append(funcs, u.Funcs...)
	}
	return funcs, nil
}

// LoadUnits is LoadFiles without the concatenation.
func LoadUnits(paths ...string) ([]*Unit, []error) {
	var (
		errs  []error
		seen  = map[string]bool{} // absolute path → true
		units []*Unit
	)
	if len(paths) == 0 {
		return nil, []error{fmt.Errorf("no input files")}
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("abs(%s): %v", p, err))
			continue
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true

		data, err := os.ReadFile(abs)
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", p, err))
			continue
		}
		funcs, err := ParseSource(string(data))
		if err != nil {
			errs = append(errs, fmt.Errorf("parse %s: %w", p, err))
			continue
		}
		units = append(units, &Unit{Path: abs, Funcs: funcs})
	}
	return units, errs
}

// ParseSource parses one in-memory program.
func ParseSource(src string) ([]ast.Node, error) {
	return parser.New(src).ParseFile()
}
