// Package runtimeerrors determines the likely cause of runtime
// exceptions. For each exception type an ordered list of rules is tried;
// the first rule that recognizes the situation wins.
package runtimeerrors

import (
	"fmt"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/internal/diag"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/hashicorp/go-multierror"
)

// Rule examines one exception and returns an empty Info when it does not
// recognize the situation.
type Rule struct {
	Name  string
	Apply func(e *exc.Exception, data *traceback.TracebackData) cause.Info
}

// NoInformation is returned when every rule was tried without success.
// Callers can detect it with IsNoInformation; its text tells the user the
// absence of an explanation is not another error.
var NoInformation = cause.Info{
	Cause: "I have no additional information for you.\n" +
		"Perhaps the message of the exception itself, shown above,\n" +
		"already describes what went wrong.\n",
}

// IsNoInformation reports whether info is the exhaustion sentinel.
func IsNoInformation(info cause.Info) bool {
	return info == NoInformation
}

// builtinRules holds the ordered rule list for each exception type. Every
// list is built at package init; at a few dozen rules in total, deferring
// construction until a type is first analyzed would save nothing
// measurable.
var builtinRules = map[*exc.Type][]Rule{
	exc.NameError:           nameErrorRules,
	exc.UnboundLocalError:   unboundLocalRules,
	exc.IndexError:          indexErrorRules,
	exc.KeyError:            keyErrorRules,
	exc.ZeroDivisionError:   zeroDivisionRules,
	exc.TypeError:           typeErrorRules,
	exc.AttributeError:      attributeErrorRules,
	exc.ImportError:         importErrorRules,
	exc.ModuleNotFoundError: moduleNotFoundRules,
	exc.ValueError:          valueErrorRules,
	exc.FileNotFoundError:   fileNotFoundRules,
	exc.OverflowError:       overflowRules,
	exc.RecursionError:      recursionRules,
}

var customRules = map[*exc.Type][]Rule{}

// AddRule registers an additional rule for one exception type, tried
// before the builtin rules. This is the extension point for libraries
// whose objects raise errors with recognizable messages.
func AddRule(typ *exc.Type, name string, apply func(e *exc.Exception, data *traceback.TracebackData) cause.Info) {
	customRules[typ] = append(customRules[typ], Rule{Name: name, Apply: apply})
}

// Analyze runs the rules registered for the exception's type. The
// returned error aggregates internal failures of individual rules; a
// failed rule never prevents the remaining rules from being tried, so a
// non-empty Info can be returned together with a non-nil error.
func Analyze(data *traceback.TracebackData) (cause.Info, error) {
	e := data.Exc
	var failures error
	for _, rule := range append(customRules[e.Type], builtinRules[e.Type]...) {
		info, err := applyRule(rule, e, data)
		if err != nil {
			failures = multierror.Append(failures, err)
			continue
		}
		if !info.Empty() {
			return info, failures
		}
	}
	return NoInformation, failures
}

// applyRule is the barrier between one rule and the rest of the
// analysis.
func applyRule(rule Rule, e *exc.Exception, data *traceback.TracebackData) (info cause.Info, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule %s failed on %s: %v", rule.Name, e.Type.Name, r)
			diag.Log().Error().
				Str("rule", rule.Name).
				Str("exception", e.Type.Name).
				Msg(err.Error())
			info = cause.Info{}
		}
	}()
	return rule.Apply(e, data), nil
}
