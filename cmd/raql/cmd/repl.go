package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/raql/foundation/core/log"
	"github.com/msto63/raql/internal/tui/repl"
)

var replMaxHistory int

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"console", "konsole"},
	Short:   "Startet die interaktive RAQL Konsole",
	Long: `Startet die interaktive RAQL Konsole.

Jede eingegebene Zeile wird als Programm geprueft, das Ergebnis
erscheint mit Diagnose im Verlauf.

Tastenkuerzel:
  Enter       Zeile pruefen
  Ctrl+T      Diagnose-Stufe wechseln (0-4)
  Ctrl+K      Kleinschreibung von Schluesselwoertern an/aus
  Ctrl+L      Verlauf leeren
  F1          Grammatik anzeigen
  Esc/Ctrl+C  Beenden (oder "leave" eingeben)`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().IntVar(&replMaxHistory, "max-history", 200, "Maximale Anzahl der Eintraege im Verlauf")
}

func runRepl(cmd *cobra.Command, args []string) error {
	opts := engineOptions()
	// Log output would corrupt the alternate screen
	opts.Logger = mdwlog.Discard()

	return repl.Run(repl.Config{
		Options:    opts,
		MaxHistory: replMaxHistory,
	})
}
