package scope

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/object"
)

// MaxReprLength bounds the representation of a single value when
// variables are displayed alongside an explanation.
const MaxReprLength = 60

// GetDefinitionScopes returns where name is defined relative to frame:
// any of "local", "global" and "nonlocal", in that order.
//
// A name found in an enclosing frame counts as nonlocal only when its
// value is a different object than the global of the same name. When both
// refer to the very same object the enclosing frame merely sees the
// global, and reporting "nonlocal" would point the user at the wrong
// scope.
func GetDefinitionScopes(name string, frame *Frame) []string {
	var scopes []string
	if frame == nil {
		return scopes
	}
	if frame.Locals().Has(name) {
		scopes = append(scopes, "local")
	}
	globalValue, inGlobals := frame.Globals().Get(name)
	if inGlobals {
		scopes = append(scopes, "global")
	}
	for enclosing := frame.Back; enclosing != nil; enclosing = enclosing.Back {
		value, ok := enclosing.Locals().Get(name)
		if !ok {
			continue
		}
		if inGlobals && value == globalValue {
			break
		}
		scopes = append(scopes, "nonlocal")
		break
	}
	return scopes
}

// GetVariablesByScope enumerates the variables frame can see in one scope
// kind: "local", "global" or "nonlocal". The nonlocal variables are the
// locals of enclosing function frames not shadowed by a nearer frame; the
// value-identity rule of GetDefinitionScopes applies here too, so an
// enclosing local that is the very same object as the global of that name
// is not reported.
func GetVariablesByScope(frame *Frame, kind string) []NamedObject {
	if frame == nil {
		return nil
	}
	switch kind {
	case "local":
		return namespaceVariables(frame.Locals())
	case "global":
		return namespaceVariables(frame.Globals())
	case "nonlocal":
		return nonlocalVariables(frame)
	}
	return nil
}

func namespaceVariables(ns *Namespace) []NamedObject {
	var variables []NamedObject
	for _, name := range ns.Names() {
		value, _ := ns.Get(name)
		variables = append(variables, NamedObject{Name: name, Object: value})
	}
	return variables
}

func nonlocalVariables(frame *Frame) []NamedObject {
	shadowed := map[string]bool{}
	for _, name := range frame.Locals().Names() {
		shadowed[name] = true
	}
	var variables []NamedObject
	for enclosing := frame.Back; enclosing != nil; enclosing = enclosing.Back {
		if enclosing.IsModuleLevel() {
			// Module level locals are the globals.
			continue
		}
		for _, name := range enclosing.Locals().Names() {
			if shadowed[name] {
				continue
			}
			shadowed[name] = true
			value, _ := enclosing.Locals().Get(name)
			if globalValue, ok := frame.Globals().Get(name); ok && value == globalValue {
				continue
			}
			variables = append(variables, NamedObject{Name: name, Object: value})
		}
	}
	return variables
}

// SimplifyRepr shortens a representation for display. Memory addresses
// are removed, and text longer than maxLength is truncated with its
// closing delimiter preserved so the reader can still tell what kind of
// object it was.
func SimplifyRepr(repr string, maxLength int) string {
	if index := strings.Index(repr, " at 0x"); index >= 0 && strings.HasSuffix(repr, ">") {
		repr = repr[:index] + ">"
	}
	if maxLength <= 0 || len(repr) <= maxLength {
		return repr
	}
	closing := ""
	switch repr[len(repr)-1] {
	case ')', ']', '}', '>', '\'', '"':
		closing = string(repr[len(repr)-1])
	}
	return repr[:maxLength] + "..." + closing
}

// FindRenamedBuiltins returns the names of builtins the frame has
// shadowed with a different value. Redefining `len` or `max` is a common
// novice mistake that surfaces later as a confusing TypeError.
func FindRenamedBuiltins(frame *Frame) []string {
	if frame == nil {
		return nil
	}
	locals := frame.Locals()
	var renamed []string
	for _, name := range frame.Builtins().Names() {
		value, ok := locals.Get(name)
		if !ok {
			continue
		}
		// A wildcard import of the math module redefines pow; that one
		// is intentional and not worth a warning.
		if name == "pow" && locals.Has("cos") && locals.Has("cosh") && locals.Has("pi") {
			continue
		}
		builtinValue, _ := frame.Builtins().Get(name)
		if value != builtinValue {
			renamed = append(renamed, name)
		}
	}
	return renamed
}

// FormatVarInfo renders the variables in info as an indented block, one
// variable per line, for inclusion below an explanation:
//
//	    a = [1, 2, 3]
//	    n = 3
//
// When a container's representation had to be truncated, a len() line is
// added so the size is still known.
func FormatVarInfo(info *ObjectsInfo) string {
	var lines []string
	for _, named := range info.All() {
		repr := object.SafeInspect(named.Object)
		simplified := SimplifyRepr(repr, MaxReprLength)
		lines = append(lines, fmt.Sprintf("    %s = %s", named.Name, simplified))
		if simplified != repr {
			if length, ok, err := object.TryLen(named.Object); ok && err == nil {
				lines = append(lines, fmt.Sprintf("        len(%s): %d", named.Name, length))
			}
		}
	}
	return strings.Join(lines, "\n")
}
