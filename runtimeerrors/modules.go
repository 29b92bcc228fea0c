package runtimeerrors

import (
	"math"

	"github.com/cloudcmds/clarify/object"
)

// knownModules is the registry of importable modules. Import analysis
// searches it for misspelled module names and misspelled imported names;
// name analysis uses it to detect a missing import. Embedding
// applications register the modules their interpreter actually provides.
var knownModules = map[string]*object.Module{}

// RegisterModule makes a module known to the analysis.
func RegisterModule(module *object.Module) {
	knownModules[module.Name()] = module
}

// moduleNames returns the names of all registered modules.
func moduleNames() []string {
	names := make([]string, 0, len(knownModules))
	for name := range knownModules {
		names = append(names, name)
	}
	return names
}

func init() {
	RegisterModule(mathModule())
}

// mathModule describes the standard math module, registered by default
// since misspelled math functions are among the most common import
// errors novices run into.
func mathModule() *object.Module {
	module := object.NewModule("math")
	for _, name := range []string{
		"acos", "acosh", "asin", "asinh", "atan", "atan2", "atanh",
		"ceil", "comb", "copysign", "cos", "cosh", "degrees", "dist",
		"erf", "erfc", "exp", "expm1", "fabs", "factorial", "floor",
		"fmod", "frexp", "fsum", "gamma", "gcd", "hypot", "isclose",
		"isfinite", "isinf", "isnan", "isqrt", "lcm", "ldexp", "lgamma",
		"log", "log10", "log1p", "log2", "modf", "perm", "pow", "prod",
		"radians", "remainder", "sin", "sinh", "sqrt", "tan", "tanh",
		"trunc",
	} {
		module.Register(name, object.NewBuiltin(name, nil))
	}
	module.Register("pi", object.NewFloat(3.141592653589793))
	module.Register("e", object.NewFloat(2.718281828459045))
	module.Register("tau", object.NewFloat(6.283185307179586))
	module.Register("inf", object.NewFloat(math.Inf(1)))
	return module
}
