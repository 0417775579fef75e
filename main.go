package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/config"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/handlers"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/logger"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config file")
	addrFlag := flag.String("addr", "", "Listen address (overrides config)")
	debugFlag := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	closer, err := logger.Setup(cfg.Log, cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
		gin.DebugPrintRouteFunc = func(method, path, handler string, _ int) {
			log.Debugf("route %-7s %s -> %s", method, path, handler)
		}
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Collections live for the lifetime of the process.
	st := store.NewMemory()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		m.WatchUsers("favorites", st.FavoriteUsers)
		m.WatchUsers("reservations", st.ReservationUsers)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handlers.NewRouter(cfg, st, m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("listening on %s (debug=%t, default user %q)", cfg.Addr, cfg.Debug, cfg.DefaultUserID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infof("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("server: %v", err)
		closer.Close()
		os.Exit(1)
	}
}
