package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardapp/app/config"
	"boardapp/app/repositories"
	"boardapp/app/routes"
)

const shutdownTimeout = 10 * time.Second

// RunAppServer opens the database, serves the API on cfg.Addr() and blocks
// until SIGINT or SIGTERM.
func RunAppServer(cfg *config.Config) error {
	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting discussion board API on %s (db %s, uploads %s)", srv.Addr, cfg.DBPath, cfg.UploadDir)
	return serve(ctx, srv)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}
