package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/raql/internal/gateway"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet das Erkennungs-Gateway",
	Long: `Startet das RAQL Erkennungs-Gateway.

Endpunkte:
  GET  /healthz       Zustand und Version
  POST /v1/recognize  {"program": "...", "case_insensitive": bool, "verbosity": n}
  GET  /v1/ws         WebSocket, Nachrichten "recognize" und "ping"

Beispiele:
  raql serve
  raql serve --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host-Adresse (default aus Konfiguration)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port (default aus Konfiguration)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := gateway.ConfigFromSettings(settings)
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	cfg.Options = engineOptions()
	cfg.Logger = logger

	srv := gateway.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "RAQL Gateway laeuft auf http://%s (Verbosity %s)\n", srv.Address(), verbosityName())

	select {
	case err := <-errCh:
		if err != nil {
			printError("Gateway beendet", err)
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
