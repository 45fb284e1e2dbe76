package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/raql/foundation/raql/registry"
	"github.com/msto63/raql/internal/tui/repl"
)

var grammarCmd = &cobra.Command{
	Use:     "grammar",
	Aliases: []string{"commands", "keywords"},
	Short:   "Listet Kommandos und Schluesselwoerter",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, repl.LogoStyle.Render("Kommandos"))
		for _, c := range registry.Commands() {
			fmt.Fprintf(out, "  %-8s %s\n", c.Keyword, c.Syntax)
			fmt.Fprintf(out, "  %-8s %s\n", "", repl.HelpDescStyle.Render(c.Description))
			fmt.Fprintf(out, "  %-8s %s\n", "", repl.HelpDescStyle.Render("z.B. "+c.Example))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, repl.LogoStyle.Render("Abfragen"))
		fmt.Fprintln(out, "  relation <- select ( bedingung ) ausdruck")
		fmt.Fprintln(out, "  relation <- project ( attribute ) ausdruck")
		fmt.Fprintln(out, "  relation <- rename ( attribute ) ausdruck")
		fmt.Fprintln(out, "  relation <- ausdruck + ausdruck | ausdruck - ausdruck | ausdruck * ausdruck")
		fmt.Fprintf(out, "  Vergleiche: %s, verknuepft mit && und ||\n", strings.Join(registry.ComparisonOperators, " "))

		fmt.Fprintln(out)
		fmt.Fprintln(out, repl.LogoStyle.Render("Reservierte Woerter"))
		fmt.Fprintf(out, "  %s\n", strings.Join(registry.Keywords(), " "))
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}
