// @title Tripvana Backend API
// @version 1.0
// @description Tripvana Backend API for trip listings and seat bookings
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "TRIPVANA_BACK-END/docs" // This is required for swagger
	"TRIPVANA_BACK-END/internal/cache"
	"TRIPVANA_BACK-END/internal/config"
	"TRIPVANA_BACK-END/internal/core"
	"TRIPVANA_BACK-END/internal/handlers"
	"TRIPVANA_BACK-END/internal/routes"
	"TRIPVANA_BACK-END/internal/store"
	"TRIPVANA_BACK-END/migrations"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dsn := conf.GetDSN()

	// pgxpool with simple protocol so the service works behind PgBouncer
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "tripvana-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = conf.Database.MaxConns
	poolCfg.MinConns = conf.Database.MinConns
	poolCfg.MaxConnLifetime = conf.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	if err := migrations.Up(dsn); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// Optional Redis read-side cache
	var cacheClient core.Cache
	if conf.Redis.URL != "" {
		redisCache, err := cache.New(conf.Redis.URL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisCache.Close()
		cacheClient = redisCache
	}

	// --- Services and HTTP handlers ---

	pg := store.New(pool)
	tripService := core.NewTripService(pg, cacheClient)
	bookingService := core.NewBookingService(pg, cacheClient)

	tripsHandler := handlers.NewTripsHandler(tripService)
	organizerTripsHandler := handlers.NewOrganizerTripsHandler(tripService, bookingService)
	bookingsHandler := handlers.NewBookingsHandler(bookingService)
	organizerBookingsHandler := handlers.NewOrganizerBookingsHandler(bookingService)
	healthHandler := handlers.NewHealthHandler(pool)

	routes.SetupRoutes(conf, tripsHandler, organizerTripsHandler, bookingsHandler, organizerBookingsHandler, healthHandler)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   conf.CORS.AllowedOrigins,
		AllowedMethods:   conf.CORS.AllowedMethods,
		AllowedHeaders:   conf.CORS.AllowedHeaders,
		AllowCredentials: conf.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + conf.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       conf.Server.ReadTimeout,
		WriteTimeout:      conf.Server.WriteTimeout,
		IdleTimeout:       conf.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", conf.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
