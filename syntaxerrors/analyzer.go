package syntaxerrors

import (
	"fmt"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/internal/diag"
)

// Rule inspects a statement and returns an empty Info when it does not
// apply. Rules are tried in order; the first non-empty result wins.
type Rule struct {
	Name  string
	Apply func(st *Statement) cause.Info
}

var customRules []Rule

// AddRule registers an additional rule, tried before the builtin ones.
// This is the extension point for libraries that recognize error patterns
// of their own.
func AddRule(name string, apply func(st *Statement) cause.Info) {
	customRules = append(customRules, Rule{Name: name, Apply: apply})
}

const unknownCause = `Currently, I cannot guess the likely cause of this error.
Try to examine closely the line indicated as well as the line
immediately above to see if you can identify some misspelled
word, or missing symbols, like (, ), [, ], :, etc.
`

// Analyze determines the likely cause of the syntax error described by
// st. It never fails: a rule that panics is logged and skipped, and when
// no rule applies a generic explanation is returned.
func (st *Statement) Analyze() cause.Info {
	// Messages more descriptive than "invalid syntax" are trusted first:
	// explaining in simpler words what the message means beats guessing.
	if st.Message != "invalid syntax" && st.Message != "" {
		if info := runRules(customRules, st); !info.Empty() {
			return info
		}
		if info := runRules(messageRules, st); !info.Empty() {
			return info
		}
		info := runRules(statementRules, st)
		if st.Message == "expected ':'" {
			note := "The interpreter expected a colon at the position indicated.\n" +
				"However, adding a colon or replacing something else by a colon\n" +
				"would not fix the problem.\n"
			if info.Empty() {
				return cause.Info{Cause: note}
			}
			return info.Prepend(note)
		}
		if !info.Empty() {
			return info
		}
		return cause.Info{Cause: unknownCause}
	}

	if info := runRules(customRules, st); !info.Empty() {
		return info
	}
	if info := runRules(statementRules, st); !info.Empty() {
		return info
	}
	return cause.Info{Cause: unknownCause}
}

func runRules(rules []Rule, st *Statement) cause.Info {
	for _, rule := range rules {
		info := applyRule(rule, st)
		if !info.Empty() {
			return info
		}
	}
	return cause.Info{}
}

// applyRule is the barrier between one rule and the rest of the
// analysis: a panicking rule must not take down the explanation.
func applyRule(rule Rule, st *Statement) (info cause.Info) {
	defer func() {
		if r := recover(); r != nil {
			diag.Log().Error().
				Str("rule", rule.Name).
				Str("message", st.Message).
				Msg(fmt.Sprintf("syntax rule panicked: %v", r))
			info = cause.Info{}
		}
	}()
	return rule.Apply(st)
}
