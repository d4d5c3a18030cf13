package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/assess-cli/internal/assess"
	"github.com/sells-group/assess-cli/internal/recommend"
	"github.com/sells-group/assess-cli/internal/server"
	"github.com/sells-group/assess-cli/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP API",
	Long: `Serve the scoring engine over HTTP for the intake form:

  GET  /health        liveness probe
  GET  /catalog       question bank, services, and weights
  POST /assess        score a submission (optionally persist it)
  GET  /results       list saved assessments
  GET  /results/{id}  fetch one saved assessment

The server shuts down gracefully on SIGINT/SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Bool("no-store", false, "run without persistence (POST /assess save requests fail)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var st store.Store
	if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
		st, err = openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	assembler := assess.New(cat, assess.WithRecommendConfig(recommend.Config{MinCount: cfg.Recommend.MinCount}))
	srv := server.New(cat, assembler, st, cfg.Server)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("serve: listening", zap.Int("port", cfg.Server.Port))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "serve: listen")
		}
	case <-ctx.Done():
		zap.L().Info("serve: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "serve: shutdown")
		}
	}
	return nil
}
