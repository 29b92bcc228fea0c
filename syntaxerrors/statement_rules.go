package syntaxerrors

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/token"
	"github.com/cloudcmds/clarify/tokenizer"
)

// statementRules guess the cause from the reconstructed statement when
// the message itself says nothing useful. Each rule examines the bad
// token and its surroundings; order matters, most specific first.
var statementRules = []Rule{
	{Name: "copy-pasted-character", Apply: copyPastedCharacter},
	{Name: "keyword-assigned-a-value", Apply: keywordAssignedAValue},
	{Name: "print-without-parentheses", Apply: printWithoutParentheses},
	{Name: "def-without-parentheses", Apply: defWithoutParentheses},
	{Name: "missing-comma-between-items", Apply: missingCommaBetweenItems},
	{Name: "missing-colon-for-block", Apply: missingColonForBlock},
	{Name: "unmatched-closing-bracket", Apply: unmatchedClosingBracket},
	{Name: "unclosed-opening-bracket", Apply: unclosedOpeningBracket},
	{Name: "adjacent-names", Apply: adjacentNames},
}

func copyPastedCharacter(st *Statement) cause.Info {
	if st.BadToken == nil || !st.BadToken.IsError() {
		return cause.Info{}
	}
	if plain, ok := fancyQuotes[st.BadToken.String]; ok {
		return cause.Of(
			"The quote character `%s` is not valid; only plain quotes like `%s`\n"+
				"can delimit strings. This often happens when code is copied from\n"+
				"a word processor or a web page.\n", st.BadToken.String, plain).
			WithSuggest("Did you mean to use the quote character `%s`?\n", plain)
	}
	return cause.Of(
		"The character `%s` cannot be used in code outside of a string.\n",
		st.BadToken.String)
}

func keywordAssignedAValue(st *Statement) cause.Info {
	word := findKeyword(st)
	if word == "" {
		return cause.Info{}
	}
	if word == "None" || word == "True" || word == "False" {
		return cause.Of(
			"`%s` is a constant; you cannot assign it a different value.\n", word).
			WithSuggest("You cannot assign a value to `%s`.\n", word)
	}
	return cause.Of(
		"You were trying to assign a value to the keyword `%s`.\nThis is not allowed.\n", word).
		WithSuggest("You cannot assign a value to `%s`.\n", word)
}

func printWithoutParentheses(st *Statement) cause.Info {
	if st.FirstToken == nil || !st.FirstToken.Is("print") || st.NbTokens < 2 {
		return cause.Info{}
	}
	if st.Tokens[1].Is("(") {
		return cause.Info{}
	}
	return cause.Of(
		"`print` is a function and its arguments must be surrounded by parentheses.\n").
		WithSuggest("Did you mean `print(%s)`?\n", printArguments(st))
}

// printArguments recovers the text following the print keyword.
func printArguments(st *Statement) string {
	line := strings.TrimSpace(st.BadLine)
	if line == "" {
		line = strings.TrimSpace(st.EntireStatement)
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "print"))
}

func defWithoutParentheses(st *Statement) cause.Info {
	if st.FirstToken == nil || !st.FirstToken.Is("def") || st.NbTokens < 3 {
		return cause.Info{}
	}
	name := st.Tokens[1]
	if !name.IsIdentifier() || st.Tokens[2].Is("(") {
		return cause.Info{}
	}
	return cause.Of(
		"A function definition needs parentheses after the function name,\n" +
			"even when the function takes no arguments.\n").
		WithSuggest("Did you mean `def %s(...):`?\n", name.String)
}

// missingCommaBetweenItems recognizes two literals side by side inside
// brackets, like `{'a': 1, 'b': 2 'c': 3}`, where a separating comma is
// by far the most likely intent.
func missingCommaBetweenItems(st *Statement) cause.Info {
	if st.BadToken == nil || st.PrevToken == nil {
		return cause.Info{}
	}
	if !isItemLike(st.PrevToken) || !isItemLike(st.BadToken) {
		return cause.Info{}
	}
	if !bracketOpenBefore(st) {
		return cause.Info{}
	}
	fixed := suggestWithComma(st)
	info := cause.Of(
		"The interpreter found the item `%s` directly after `%s`,\n"+
			"with no separator between them. Items in a collection must be\n"+
			"separated by commas.\n",
		st.BadToken.String, st.PrevToken.String).
		WithSuggest("Did you forget a comma?\n")
	if fixed != "" {
		info.Cause += fmt.Sprintf("Perhaps you meant:\n\n    %s\n", fixed)
	}
	return info
}

func isItemLike(tok *token.Token) bool {
	return tok.IsString() || tok.IsNumber() || tok.IsIdentifier()
}

// bracketOpenBefore reports whether a bracket is still open when the bad
// token is reached.
func bracketOpenBefore(st *Statement) bool {
	depth := 0
	for _, tok := range st.Tokens {
		if tok == st.BadToken {
			return depth > 0
		}
		if token.OpenBracket(tok.String) {
			depth++
		} else if token.CloseBracket(tok.String) && depth > 0 {
			depth--
		}
	}
	return false
}

// suggestWithComma rebuilds the statement with a comma inserted before
// the bad token.
func suggestWithComma(st *Statement) string {
	var parts []string
	for _, tok := range st.Tokens {
		if tok == st.BadToken {
			parts = append(parts, ",")
		}
		if tok.Type == token.ENDMARKER {
			continue
		}
		parts = append(parts, tok.String)
	}
	rebuilt := strings.Join(parts, " ")
	rebuilt = strings.ReplaceAll(rebuilt, " ,", ",")
	rebuilt = strings.ReplaceAll(rebuilt, " :", ":")
	if len(rebuilt) > 60 {
		return ""
	}
	return strings.TrimSpace(rebuilt)
}

var blockStarters = map[string]bool{
	"class": true, "def": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "if": true,
	"try": true, "while": true, "with": true,
}

func missingColonForBlock(st *Statement) cause.Info {
	if st.FirstToken == nil || !blockStarters[st.FirstToken.String] {
		return cause.Info{}
	}
	if st.LastToken == nil || st.LastToken.Is(":") || len(st.StatementBrackets) > 0 {
		return cause.Info{}
	}
	if st.BadToken != st.LastToken {
		return cause.Info{}
	}
	return cause.Of(
		"A `%s` statement introduces a new block of code and the header\n"+
			"line must end with a colon `:`.\n", st.FirstToken.String).
		WithSuggest("Did you forget a colon `:` at the end of the line?\n")
}

func unmatchedClosingBracket(st *Statement) cause.Info {
	if st.EndBracket == nil {
		return cause.Info{}
	}
	return cause.Of(
		"The closing %s on line %d does not match anything opened before it.\n",
		bracketName(st.EndBracket.String), st.EndBracket.Start.Row)
}

func unclosedOpeningBracket(st *Statement) cause.Info {
	if len(st.BeginBrackets) == 0 {
		return cause.Info{}
	}
	open := st.BeginBrackets[0]
	return cause.Of(
		"The %s opened on line %d was never closed before the error location.\n",
		bracketName(open.String), open.Start.Row).
		WithSuggest("Did you forget to close the %s?\n", bracketName(open.String))
}

// adjacentNames catches `a b` outside any bracket: two names in a row
// with nothing joining them.
func adjacentNames(st *Statement) cause.Info {
	if st.BadToken == nil || st.PrevToken == nil {
		return cause.Info{}
	}
	if !st.BadToken.IsIdentifier() || !st.PrevToken.IsIdentifier() {
		return cause.Info{}
	}
	if st.BadToken.Start.Row != st.PrevToken.End.Row {
		return cause.Info{}
	}
	// Recompute whether the pair alone would be valid when joined by an
	// operator; if not, stay silent rather than guess wrong.
	joined := st.PrevToken.String + " " + st.BadToken.String
	if len(tokenizer.GetSignificantTokens(joined)) != 2 {
		return cause.Info{}
	}
	return cause.Of(
		"The interpreter found the name `%s` written directly after `%s`.\n"+
			"Two names cannot follow each other with nothing in between:\n"+
			"perhaps an operator, a comma, or a line break is missing.\n",
		st.BadToken.String, st.PrevToken.String)
}
