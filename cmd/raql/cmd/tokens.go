package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/raql/foundation/raql/parser"
)

var tokensList bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <text...>",
	Short: "Zeigt die Token-Folge einer Eingabe",
	Long: `Zerlegt die Eingabe in Tokens und gibt sie als "[tok] [tok] ..." aus.

Beispiele:
  raql tokens 'a <- select ( x>=1 ) b;'
  raql tokens --list 'INSERT INTO t VALUES FROM ("a b", -1);'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVarP(&tokensList, "list", "l", false, "Ein Token pro Zeile mit Position")
}

func runTokens(cmd *cobra.Command, args []string) error {
	tokens := parser.Tokenize(strings.Join(args, " "))
	out := cmd.OutOrStdout()

	if !tokensList {
		fmt.Fprintln(out, tokens.Dump())
		return nil
	}

	for i, tok := range tokens {
		fmt.Fprintf(out, "%3d  %4d-%-4d %s\n", i, tok.Pos(), tok.EndPos(), tok.Text)
	}
	return nil
}
