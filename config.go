package rex

import "github.com/rexlang/rex/ast"

// Optimization levels accepted by Config.OptLevel. Both run the identity
// transform today: no optimization pass is defined in this core, but the
// level is validated at Compile time so a pass can be switched on later
// without an API change.
const (
	OptNone  = "O0"
	OptBasic = "O1"
)

// Config tunes the parser and executor. There is no DFA or prefilter layer
// in this core, so most of it is a single knob today: MaxRecursionDepth
// guards the parser's recursive-descent grammar against pathological
// input (deeply nested groups or alternations) the way
// meta.Config.MaxRecursionDepth guards the Thompson construction in a full
// multi-engine implementation.
type Config struct {
	// MaxRecursionDepth bounds how deeply parseExpr/parseTerm/parseAtom may
	// recurse before Compile gives up with a parse error. Zero means no
	// limit.
	MaxRecursionDepth int

	// OptLevel selects the optimization level: OptNone ("O0") or OptBasic
	// ("O1"). Empty is OptNone. Any other value is a Compile error.
	OptLevel string

	// Optimize, when set, is given the parsed AST before it is compiled to
	// an NFA and may return a rewritten equivalent tree. The identity
	// function (no rewrite) is the default: no optimization pass is
	// defined, but the seam stays in place so a caller (or a later pass)
	// can plug one in without changing Compile's signature.
	Optimize func(ast.Node) ast.Node
}

// DefaultConfig returns a Config with no recursion limit, OptNone, and the
// identity optimizer.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: 0,
		OptLevel:          OptNone,
		Optimize:          identityOptimize,
	}
}

func identityOptimize(n ast.Node) ast.Node { return n }
