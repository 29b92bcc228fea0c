package main

import (
	"fmt"
	"os"

	"github.com/cloudcmds/clarify/tokenizer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	for _, tok := range tokenizer.Tokenize(string(data)) {
		fmt.Fprintf(cmd.OutOrStdout(), "%-16s %3d,%-3d %q\n",
			tok.Type, tok.Start.Row, tok.Start.Col, tok.String)
	}
	return nil
}
