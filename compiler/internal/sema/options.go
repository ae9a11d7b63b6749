package sema

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// Policy decides which constructs create bindings.
type Policy int

const (
	// PolicyAutoDeclare binds every mutation target at the current scope,
	// so a first assignment declares the variable. Declarations bind too.
	PolicyAutoDeclare Policy = iota
	// PolicyDeclareBeforeUse binds only at declarations; mutation targets
	// and value references must resolve to an earlier declaration.
	PolicyDeclareBeforeUse
)

func (p Policy) String() string {
	switch p {
	case PolicyAutoDeclare:
		return "auto-declare"
	case PolicyDeclareBeforeUse:
		return "declare-before-use"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy reads the String form of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto-declare", "auto":
		return PolicyAutoDeclare, nil
	case "declare-before-use", "strict":
		return PolicyDeclareBeforeUse, nil
	default:
		return 0, fmt.Errorf("unknown binding policy %q (want auto-declare or declare-before-use)", s)
	}
}

// DefaultMaxDepth bounds scope key length, the function index included.
const DefaultMaxDepth = 1000

// Options configure a build. The zero value is usable.
type Options struct {
	Policy   Policy
	Workers  int // AnalyzeParallel goroutine bound; <= 0 means GOMAXPROCS
	MaxDepth int // longest scope key allowed; <= 0 means DefaultMaxDepth
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
