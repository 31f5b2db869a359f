package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coastline-labs/shorecast/internal/api/v1/handlers"
	"github.com/coastline-labs/shorecast/internal/config"
	"github.com/coastline-labs/shorecast/internal/connections"
	"github.com/coastline-labs/shorecast/internal/services"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadDotenv()
	zerolog.SetGlobalLevel(config.GetLogLevel())
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	svcs, err := services.InitializeServices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer svcs.Close()

	manager := connections.NewManager(connections.DefaultTimeouts)
	router := setupRouter(svcs, manager)

	addr := config.GetHost() + ":" + config.GetPort()
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // agent turns can be slow
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Shutting down")
	manager.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), config.GetShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func setupRouter(svcs *services.Services, manager *connections.Manager) *mux.Router {
	r := mux.NewRouter()
	handlers.RegisterRoutes(r, svcs, manager)
	return r
}
