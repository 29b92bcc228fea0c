package main

import (
	"fmt"
	"os"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/explain"
	"github.com/cloudcmds/clarify/format"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/cloudcmds/clarify/token"
	"github.com/cloudcmds/clarify/tokenizer"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a script for syntax problems and explain the first one found",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(data)
	sourcecache.Add(path, source)

	e := findSyntaxProblem(path, source)
	if e == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no syntax problems found\n", path)
		return nil
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	record := explain.NewCompiler(e).Compile("en")
	fmt.Fprint(cmd.OutOrStdout(), format.NewFormatter(!noColor).Format(record))
	return fmt.Errorf("%s: syntax problem found", path)
}

// findSyntaxProblem scans the token stream for the first problem the
// tokenizer can detect on its own: an unterminated string, a stray or
// mismatched closing bracket, or a bracket left open at the end of the
// file.
func findSyntaxProblem(filename, source string) *exc.Exception {
	var open []*token.Token
	for _, tok := range tokenizer.Tokenize(source) {
		switch {
		case tok.IsUnclosedString():
			return syntaxProblem(filename, tok,
				"unterminated string literal (detected at line %d)", tok.Start.Row)
		case token.OpenBracket(tok.String):
			open = append(open, tok)
		case token.CloseBracket(tok.String):
			if len(open) == 0 {
				return syntaxProblem(filename, tok, "unmatched '%s'", tok.String)
			}
			opener := open[len(open)-1]
			if !token.MatchingBrackets(opener.String, tok.String) {
				return syntaxProblem(filename, tok,
					"closing parenthesis '%s' does not match opening parenthesis '%s'",
					tok.String, opener.String)
			}
			open = open[:len(open)-1]
		case tok.IsError():
			return syntaxProblem(filename, tok, "invalid syntax")
		}
	}
	if len(open) > 0 {
		return syntaxProblem(filename, open[0], "'%s' was never closed", open[0].String)
	}
	return nil
}

func syntaxProblem(filename string, tok *token.Token, msgFormat string, args ...interface{}) *exc.Exception {
	e := exc.New(exc.SyntaxError, msgFormat, args...)
	e.Filename = filename
	e.Lineno = tok.Start.Row
	e.Offset = tok.Start.Col + 1
	return e
}
