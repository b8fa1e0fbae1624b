package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-ecommerce-api/internal/config"
	"github.com/imrishuroy/go-ecommerce-api/internal/handlers"
	"github.com/imrishuroy/go-ecommerce-api/internal/logging"
	"github.com/imrishuroy/go-ecommerce-api/internal/mongodb"
	"github.com/imrishuroy/go-ecommerce-api/internal/shutdown"
)

func setupRouter(cfg config.Config, store mongodb.API, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, handlers.HandlerConfig{
		Store: store,
		Log:   log,
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      setupRouter(cfg, client.Store(), log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr, "db", cfg.DBName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	drainCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(drainCtx); err != nil {
		log.Error("server shutdown failed", "err", err)
	}
	if err := client.Close(drainCtx); err != nil {
		log.Error("mongo disconnect failed", "err", err)
	}
}
