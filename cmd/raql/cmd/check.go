package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/raql/foundation/core/error"
	"github.com/msto63/raql/foundation/raql"
	"github.com/msto63/raql/foundation/raql/executor"
	"github.com/msto63/raql/foundation/raql/parser"
	"github.com/msto63/raql/internal/tui/repl"
)

var (
	checkProgram  string
	checkHalt     bool
	checkJSON     bool
	checkDispatch bool
)

var checkCmd = &cobra.Command{
	Use:   "check [datei...]",
	Short: "Prueft RAQL-Dateien oder ein Programm",
	Long: `Prueft RAQL-Anweisungen und meldet PASSED oder FAILED je Anweisung.

Dateien werden zeilenweise gelesen: Leerzeilen werden uebersprungen, jede
andere Zeile ist ein Programm aus einer oder mehreren Anweisungen.
Mit --program wird ein einzelnes Programm direkt geprueft.

Beispiele:
  raql check queries.raql
  raql check -V 3 queries.raql           # Fehlermeldungen anzeigen
  raql check -i --program "open animals;" # Kleinschreibung erlauben
  raql check --halt queries.raql          # Nach jeder Anweisung anhalten`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkProgram, "program", "p", "", "Programm direkt pruefen statt Dateien zu lesen")
	checkCmd.Flags().BoolVar(&checkHalt, "halt", false, "Nach jeder Anweisung auf Enter warten")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Bericht als JSON ausgeben")
	checkCmd.Flags().BoolVar(&checkDispatch, "dispatch", false, "Erkannte Anweisungen an den Relation-Store-Logger weiterreichen")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkProgram == "" && len(args) == 0 {
		return fmt.Errorf("keine Eingabe: Datei oder --program angeben")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := engineOptions()
	if checkHalt || settings.Driver.HaltBetween {
		opts.Pause = enterPause(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	if checkDispatch {
		dispatcher, err := executor.New(executor.Options{
			Logger:  logger.Logger,
			Handler: executor.NewLogHandler(logger.Logger),
		})
		if err != nil {
			return err
		}
		opts.Dispatcher = dispatcher
	}

	engine, err := raql.New(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var reports []*raql.Report

	if checkProgram != "" {
		report, err := engine.RecognizeProgram(ctx, checkProgram)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil && !mdwerror.HasCode(err, mdwerror.CodeNoTerminator) {
			return err
		}
	}

	for _, path := range args {
		report, err := engine.RecognizeFile(ctx, path)
		if err != nil && report == nil {
			printError("Datei nicht lesbar", err)
			return err
		}
		reports = append(reports, report)
		if mdwerror.HasCode(err, mdwerror.CodeCancelled) {
			break
		}
	}

	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			printReport(out, report)
		}
	}

	failed := 0
	for _, report := range reports {
		failed += report.Failed
	}
	if failed > 0 {
		return fmt.Errorf("%d Anweisung(en) fehlerhaft", failed)
	}
	return nil
}

// printReport writes one line per statement followed by its diagnostics
func printReport(w io.Writer, report *raql.Report) {
	if report.Source != "" {
		fmt.Fprintf(w, "== %s\n", report.Source)
	}
	for _, res := range report.Results {
		location := fmt.Sprintf("#%d", res.Index+1)
		if res.Line > 0 {
			location = fmt.Sprintf("Zeile %d", res.Line)
		}
		fmt.Fprintf(w, "%s %-9s %s\n", repl.RenderResultBadge(res.Accepted), location, res.Statement)

		for _, d := range res.Diagnostics {
			if d.Kind == parser.KindResult {
				continue
			}
			fmt.Fprintf(w, "    %s\n", repl.DiagnosticStyle.Render(d.String()))
		}
		if !res.Accepted && res.Message != "" {
			fmt.Fprintf(w, "    %s\n", repl.ErrorTextStyle.Render(fmt.Sprintf("%s: %s", res.Code, res.Message)))
		}
		if res.HandlerErr != "" {
			fmt.Fprintf(w, "    %s\n", repl.ErrorTextStyle.Render("Relation-Store: "+res.HandlerErr))
		}
	}
	fmt.Fprintf(w, "%s\n", repl.CountStyle.Render(fmt.Sprintf("%d Anweisungen, %d bestanden, %d fehlerhaft (%s)",
		len(report.Results), report.Passed(), report.Failed, report.Duration.Round(time.Microsecond))))
}

// enterPause waits for a line on in after every statement
func enterPause(in io.Reader, prompt io.Writer) raql.PauseFunc {
	reader := bufio.NewReader(in)
	return func(ctx context.Context) error {
		fmt.Fprint(prompt, "-- Weiter mit Enter --")
		done := make(chan error, 1)
		go func() {
			_, err := reader.ReadString('\n')
			done <- err
		}()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-done:
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
