package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/raql/foundation/core/config"
	mdwlog "github.com/msto63/raql/foundation/core/log"
	"github.com/msto63/raql/foundation/raql"
	"github.com/msto63/raql/foundation/raql/parser"
	"github.com/msto63/raql/pkg/core/logging"
)

var (
	cfgFile         string
	verbose         bool
	caseInsensitive bool
	verbosity       int

	settings *config.Settings
	logger   *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "raql",
	Short: "RAQL - Werkzeuge fuer die Relational Algebra Query Language",
	Long: `raql prueft Anweisungen der Relational Algebra Query Language.

Jede Anweisung endet mit ';'. Kommandos (OPEN, CLOSE, WRITE, EXIT, SHOW,
CREATE TABLE, UPDATE, INSERT INTO, DELETE FROM) und Abfragen der Form
'relation <- ausdruck' werden erkannt, aber nicht ausgefuehrt.

Befehle:
  check    - Dateien oder Programme pruefen
  tokens   - Token-Folge einer Eingabe anzeigen
  grammar  - Kommandos und Schluesselwoerter auflisten
  repl     - Interaktive Konsole
  serve    - Erkennungs-Gateway (HTTP/WebSocket)`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./raql.toml, ./config/raql.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output (Log-Level debug)")
	rootCmd.PersistentFlags().BoolVarP(&caseInsensitive, "case-insensitive", "i", false, "Schluesselwoerter auch klein geschrieben akzeptieren")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "V", 1, "Diagnose-Stufe 0-4 (0=still, 1=Ergebnis, 2=Tokens, 3=Fehler, 4=Trace)")
}

// loadSettings reads the configuration and applies command line overrides
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		settings, err = config.Load(cfgFile)
	} else {
		settings, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return fmt.Errorf("Konfiguration nicht geladen: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("case-insensitive") {
		settings.Parser.CaseInsensitive = caseInsensitive
	}
	if flags.Changed("verbosity") {
		settings.Parser.Verbosity = verbosity
	}
	if verbose {
		settings.Log.Level = "debug"
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger = logging.New(logging.FromSettings("raql", settings.Log))
	mdwlog.SetDefault(logger.Logger)

	logger.Debug("Settings loaded",
		"source", settings.Source(),
		"caseInsensitive", settings.Parser.CaseInsensitive,
		"verbosity", settings.Parser.Verbosity,
	)
	return nil
}

// engineOptions returns the recognizer options of the loaded settings
func engineOptions() raql.Options {
	opts := raql.OptionsFromSettings(settings)
	opts.Logger = logger.Logger
	return opts
}

func verbosityName() string {
	return parser.Verbosity(settings.Parser.Verbosity).String()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
