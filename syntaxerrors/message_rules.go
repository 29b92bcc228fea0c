package syntaxerrors

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/token"
	"github.com/dlclark/regexp2"
)

// messageRules recognize the descriptive error messages produced by the
// interpreter itself and restate them in simpler words, sometimes adding
// information recovered from the statement.
var messageRules = []Rule{
	{Name: "assign-to-keyword", Apply: assignToKeyword},
	{Name: "assign-to-literal", Apply: assignToLiteral},
	{Name: "assign-to-function-call", Apply: assignToFunctionCall},
	{Name: "walrus-with-literal", Apply: walrusWithLiteral},
	{Name: "bracket-never-closed", Apply: bracketNeverClosed},
	{Name: "unmatched-bracket", Apply: unmatchedBracket},
	{Name: "eol-in-string", Apply: eolInString},
	{Name: "unclosed-triple-quote", Apply: unclosedTripleQuote},
	{Name: "unexpected-eof", Apply: unexpectedEOF},
	{Name: "invalid-character", Apply: invalidCharacter},
	{Name: "print-is-a-function", Apply: printIsAFunction},
	{Name: "break-outside-loop", Apply: breakOutsideLoop},
	{Name: "continue-outside-loop", Apply: continueOutsideLoop},
	{Name: "duplicate-argument", Apply: duplicateArgument},
	{Name: "nonlocal-and-global", Apply: nonlocalAndGlobal},
	{Name: "expected-indented-block", Apply: expectedIndentedBlock},
	{Name: "unexpected-indent", Apply: unexpectedIndent},
	{Name: "unindent-mismatch", Apply: unindentMismatch},
	{Name: "inconsistent-tabs", Apply: inconsistentTabs},
}

func assignToKeyword(st *Statement) cause.Info {
	message := st.Message
	if !strings.Contains(message, "assign to keyword") &&
		!strings.Contains(message, "assignment to keyword") &&
		!strings.Contains(message, "cannot assign to None") &&
		!strings.Contains(message, "cannot assign to True") &&
		!strings.Contains(message, "cannot assign to False") &&
		!strings.Contains(message, "cannot assign to __debug__") &&
		!strings.Contains(message, "assign to Ellipsis") &&
		!strings.Contains(message, "named assignment with") &&
		!strings.Contains(message, "assignment expressions with") {
		return cause.Info{}
	}
	word := ""
	for _, constant := range []string{"None", "True", "False", "__debug__", "Ellipsis"} {
		if strings.Contains(message, constant) {
			word = constant
			break
		}
	}
	if word == "" {
		word = findKeyword(st)
		if word == "" {
			return cause.Info{}
		}
	}
	if word == "Ellipsis" {
		return cause.Of(
			"The ellipsis symbol `...` is a constant; you cannot assign it a different value.\n").
			WithSuggest("You cannot assign a value to the ellipsis symbol [`...`].\n")
	}
	if word == "None" || word == "True" || word == "False" || word == "__debug__" {
		return cause.Of(
			"`%s` is a constant; you cannot assign it a different value.\n", word).
			WithSuggest("You cannot assign a value to `%s`.\n", word)
	}
	return cause.Of(
		"You were trying to assign a value to the keyword `%s`.\nThis is not allowed.\n", word).
		WithSuggest("You cannot assign a value to `%s`.\n", word)
}

// findKeyword looks for a keyword followed or preceded by an equal sign.
func findKeyword(st *Statement) string {
	for index, tok := range st.Tokens {
		if !tok.IsKeyword() {
			continue
		}
		if index+1 < len(st.Tokens) && st.Tokens[index+1].Is("=") {
			return tok.String
		}
		if index > 0 && st.Tokens[index-1].Is("=") {
			return tok.String
		}
	}
	return ""
}

func assignToLiteral(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "cannot assign to literal") &&
		!strings.Contains(st.Message, "can't assign to literal") &&
		!strings.Contains(st.Message, "cannot assign to set display") &&
		!strings.Contains(st.Message, "cannot assign to dict display") {
		return cause.Info{}
	}
	literal := st.BadToken.String
	name := literalKind(st.BadToken)
	info := cause.Of(
		"You wrote an expression like\n\n    %s = ...\n\n"+
			"where `%s`, %s, cannot be given a value.\n"+
			"Perhaps you meant to compare with `==` instead of assigning with `=`,\n"+
			"or the name and the value are reversed.\n",
		literal, literal, name)
	if strings.Contains(st.Message, "Maybe you meant '==' instead of '='") ||
		looksLikeComparison(st) {
		info = info.WithSuggest("Perhaps you needed `==` instead of `=`.\n")
	}
	return info
}

func looksLikeComparison(st *Statement) bool {
	for _, tok := range st.Tokens {
		if tok.Is("=") {
			return true
		}
	}
	return false
}

func literalKind(tok *token.Token) string {
	switch {
	case tok == nil:
		return "a literal"
	case tok.IsString():
		return "a string"
	case tok.IsInteger():
		return "an integer"
	case tok.IsFloat():
		return "a float"
	default:
		return "a literal"
	}
}

func assignToFunctionCall(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "assign to function call") {
		return cause.Info{}
	}
	return cause.Of(
		"You wrote an expression that assigns a value to a function call\n" +
			"instead of assigning it to a variable name.\n" +
			"A function call cannot appear on the left-hand side of `=`.\n").
		WithSuggest("Perhaps the left and right-hand sides are reversed.\n")
}

func walrusWithLiteral(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "cannot use assignment expressions with") {
		return cause.Info{}
	}
	return cause.Of(
		"You cannot use the augmented assignment operator `:=`,\n"+
			"sometimes called the walrus operator, with literals like `%s`.\n"+
			"You can only assign objects to identifiers (variable names).\n",
		st.BadToken.String)
}

var neverClosedRe = regexp2.MustCompile(`'(.)' was never closed`, 0)

func bracketNeverClosed(st *Statement) cause.Info {
	match, err := neverClosedRe.FindStringMatch(st.Message)
	if err != nil || match == nil {
		return cause.Info{}
	}
	bracket := bracketName(match.GroupByNumber(1).String())
	where := ""
	if len(st.BeginBrackets) > 0 {
		open := st.BeginBrackets[0]
		where = fmt.Sprintf("The opening %s is on line %d of your code.\n",
			open.String, open.Start.Row)
	}
	return cause.Of("The %s was never closed.\n%s", bracket, where).
		WithSuggest("The %s was never closed.\n", bracket)
}

func unmatchedBracket(st *Statement) cause.Info {
	var bracket string
	switch st.Message {
	case "unmatched ')'":
		bracket = bracketName(")")
	case "unmatched ']'":
		bracket = bracketName("]")
	case "unmatched '}'":
		bracket = bracketName("}")
	default:
		return cause.Info{}
	}
	return cause.Of(
		"The closing %s on line %d does not match anything.\n",
		bracket, st.Linenumber)
}

func bracketName(bracket string) string {
	switch bracket {
	case "(", ")":
		return "parenthesis `" + bracket + "`"
	case "[", "]":
		return "square bracket `" + bracket + "`"
	default:
		return "curly bracket `" + bracket + "`"
	}
}

func eolInString(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "EOL while scanning string literal") &&
		!strings.Contains(st.Message, "unterminated string literal") {
		return cause.Info{}
	}
	info := cause.Of(
		"You started writing a string with a single or double quote\n" +
			"but never ended the string with another quote on that line.\n").
		WithSuggest("Did you forget a closing quote?\n")
	if st.PrevToken.Is("\\") ||
		(len(st.BadLine) >= 2 && st.BadLine[len(st.BadLine)-2] == '\\') {
		info.Cause += "Perhaps you meant to write the backslash character, `\\`\n" +
			"as the last character in the string and forgot that you\n" +
			"needed to escape it by writing two `\\` in a row.\n"
		info.Suggest = "Did you forget to escape a backslash character?\n"
	}
	return info
}

func unclosedTripleQuote(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "EOF in multi-line string") &&
		!strings.Contains(st.Message, "unterminated triple-quoted string literal") {
		return cause.Info{}
	}
	return cause.Of(
		"You started writing a triple-quoted string but never wrote\n" +
			"the matching triple quotes to end it, before the end of the file.\n").
		WithSuggest("Did you forget to close a triple-quoted string?\n")
}

func unexpectedEOF(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "unexpected EOF while parsing") {
		return cause.Info{}
	}
	info := cause.Of(
		"The interpreter reached the end of the file while still expecting more content.\n")
	if len(st.BeginBrackets) > 0 {
		open := st.BeginBrackets[0]
		info.Cause += fmt.Sprintf("The %s opened on line %d was never closed.\n",
			bracketName(open.String), open.Start.Row)
		info.Suggest = fmt.Sprintf("Did you forget to close the %s?\n",
			bracketName(open.String))
	}
	return info
}

var invalidCharRe = regexp2.MustCompile(`invalid character '(.+)'`, 0)

// Characters that show up when code is copied from word processors or
// web pages.
var fancyQuotes = map[string]string{
	"“": "\"", "”": "\"", "‘": "'", "’": "'", "«": "\"", "»": "\"",
}

func invalidCharacter(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "invalid character") {
		return cause.Info{}
	}
	char := st.BadToken.String
	if match, err := invalidCharRe.FindStringMatch(st.Message); err == nil && match != nil {
		char = match.GroupByNumber(1).String()
	}
	if plain, ok := fancyQuotes[char]; ok {
		return cause.Of(
			"The quote character `%s` is not valid; only plain quotes like `%s`\n"+
				"can delimit strings. This often happens when code is copied from\n"+
				"a word processor or a web page.\n", char, plain).
			WithSuggest("Did you mean to use the quote character `%s`?\n", plain)
	}
	return cause.Of("The character `%s` cannot be used in code outside of a string.\n", char)
}

func printIsAFunction(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "Missing parentheses in call to 'print'") {
		return cause.Info{}
	}
	return cause.Of(
		"`print` is a function and its arguments must be surrounded by parentheses.\n").
		WithSuggest("Did you mean `print(%s)`?\n", printArguments(st))
}

func breakOutsideLoop(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "'break' outside loop") {
		return cause.Info{}
	}
	return cause.Of(
		"The keyword `break` can only be used inside a `for` loop or a `while` loop.\n")
}

func continueOutsideLoop(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "'continue' not properly in loop") &&
		!strings.Contains(st.Message, "'continue' outside loop") {
		return cause.Info{}
	}
	return cause.Of(
		"The keyword `continue` can only be used inside a `for` loop or a `while` loop.\n")
}

var duplicateArgRe = regexp2.MustCompile(`duplicate argument '(.+)' in function definition`, 0)

func duplicateArgument(st *Statement) cause.Info {
	match, err := duplicateArgRe.FindStringMatch(st.Message)
	if err != nil || match == nil {
		return cause.Info{}
	}
	return cause.Of(
		"You declared the argument `%s` more than once in the same\n"+
			"function definition; each argument must have a distinct name.\n",
		match.GroupByNumber(1).String())
}

var nonlocalGlobalRe = regexp2.MustCompile(`name '(.+)' is nonlocal and global`, 0)

func nonlocalAndGlobal(st *Statement) cause.Info {
	match, err := nonlocalGlobalRe.FindStringMatch(st.Message)
	if err != nil || match == nil {
		return cause.Info{}
	}
	return cause.Of(
		"You declared `%s` as being both a global and a nonlocal variable.\n"+
			"A variable can be global, or nonlocal, but not both at the same time.\n",
		match.GroupByNumber(1).String())
}

func expectedIndentedBlock(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "expected an indented block") {
		return cause.Info{}
	}
	return cause.Of(
		"The line identified above was expected to begin a new indented block.\n").
		WithSuggest("Did you forget to indent the line after the colon?\n")
}

func unexpectedIndent(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "unexpected indent") {
		return cause.Info{}
	}
	return cause.Of(
		"The line identified above is more indented than expected\n" +
			"and does not match the indentation of the previous line.\n")
}

func unindentMismatch(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "unindent does not match") {
		return cause.Info{}
	}
	return cause.Of(
		"The line identified above is less indented than expected\n" +
			"and does not match the indentation of any previous block.\n")
}

func inconsistentTabs(st *Statement) cause.Info {
	if !strings.Contains(st.Message, "inconsistent use of tabs and spaces") {
		return cause.Info{}
	}
	return cause.Of(
		"You mixed spaces and tab characters to indent your code.\n" +
			"Pick one of the two and use it consistently.\n").
		WithSuggest("Use spaces or tab characters for indentation, but not both.\n")
}
