package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/middleware"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cinefinder: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(a.logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Gzip())
	r.Use(middleware.CORS())
	a.handler.RegisterRoutes(r)

	a.startSweepers(ctx)

	srv := &http.Server{
		Addr:    ":" + a.cfg.Port,
		Handler: r,
	}

	go func() {
		a.logger.Infof("[App] starting HTTP server on port %s", a.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf("[App] server failed: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	a.logger.Infof("[App] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Errorf("[App] graceful shutdown failed: %v", err)
	}
}
