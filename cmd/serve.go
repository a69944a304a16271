package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/cyber-portfolio/internal/store"
	"github.com/Zachkp/cyber-portfolio/internal/web"
)

//nolint:gochecknoglobals // Cobra boilerplate
var servePort string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			appConfig.Port = servePort
		}

		content, err := loadContent(appConfig)
		if err != nil {
			return err
		}

		var db *store.Store
		if appConfig.Database != "" {
			db, err = store.Open(appConfig.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
		}

		srv, err := web.New(appConfig, content, db)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		srv.Start(ctx)

		httpServer := &http.Server{
			Addr:              appConfig.Addr(),
			Handler:           srv.Engine(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("Portfolio listening on %s", httpServer.Addr)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err = <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Println("Shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
