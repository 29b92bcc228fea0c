package runtimeerrors

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/tokenizer"
	"github.com/cloudcmds/clarify/traceback"
)

var zeroDivisionRules = []Rule{
	{Name: "division-by-zero", Apply: divisionByZero},
}

// operation descriptions keyed by fragments of the reported message.
var zeroDivisionOperations = []struct {
	fragment  string
	operation string
}{
	{"integer division or modulo by zero", "a division or modulo operation"},
	{"float floor division by zero", "a floor division"},
	{"float division by zero", "a division"},
	{"float modulo", "a modulo operation"},
	{"division by zero", "a division"},
	{"divmod()", "a `divmod` operation"},
	{"0.0 cannot be raised to a negative power", "an exponentiation"},
	{"0.0 to a negative or complex power", "an exponentiation"},
}

func divisionByZero(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	message := e.SafeMessage()
	operation := ""
	for _, entry := range zeroDivisionOperations {
		if strings.Contains(message, entry.fragment) {
			operation = entry.operation
			break
		}
	}
	if operation == "" {
		return cause.Info{}
	}

	info := cause.Of("You are attempting %s by zero.\n", operation)

	// A literal zero divisor needs no further digging.
	if literalZeroDivisor(data.BadLine) {
		info.Cause += "The second operand is the literal number `0`;\n" +
			"dividing by zero is not defined.\n"
		return info
	}

	// Otherwise name the expressions on the line whose value is zero.
	zeros := zeroValuedExpressions(data.BadLine, data.CurrentFrame())
	switch len(zeros) {
	case 0:
	case 1:
		info.Cause += fmt.Sprintf(
			"The following expression is equal to zero: `%s`.\n", zeros[0])
	default:
		info.Cause += fmt.Sprintf(
			"The following expressions are equal to zero: %s.\n",
			backtickJoin(zeros))
	}
	return info
}

// literalZeroDivisor reports whether a division-like operator on the
// line is directly followed by a zero literal.
func literalZeroDivisor(line string) bool {
	tokens := tokenizer.GetSignificantTokens(line)
	for index, tok := range tokens {
		switch tok.String {
		case "/", "//", "%":
			if index+1 < len(tokens) && isZeroLiteral(tokens[index+1].String) {
				return true
			}
		}
	}
	return false
}

func isZeroLiteral(s string) bool {
	switch s {
	case "0", "0.0", "0.", ".0", "0j", "0.0j":
		return true
	}
	return false
}

// zeroValuedExpressions returns the names and small expressions on the
// line whose current value is zero.
func zeroValuedExpressions(line string, frame *scope.Frame) []string {
	var zeros []string
	for _, named := range scope.GetAllObjects(line, frame).All() {
		switch value := named.Object.(type) {
		case *object.Int:
			if value.IsZero() {
				zeros = append(zeros, named.Name)
			}
		case *object.Float:
			if value.IsZero() {
				zeros = append(zeros, named.Name)
			}
		case *object.Complex:
			if value.IsZero() {
				zeros = append(zeros, named.Name)
			}
		}
	}
	return zeros
}
