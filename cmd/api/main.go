package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/adapters/auth/supabase"
	"github.com/pedroolvr19/PetPal-Connect/internal/adapters/capabilities/plansfeatures"
	"github.com/pedroolvr19/PetPal-Connect/internal/adapters/storage/postgres"
	"github.com/pedroolvr19/PetPal-Connect/internal/config"
	"github.com/pedroolvr19/PetPal-Connect/internal/platform/logger"
	"github.com/pedroolvr19/PetPal-Connect/internal/router"

	"github.com/joho/godotenv"
)

// @title PetPal Connect API
// @version 1.0
// @description Backend de gestión de salud de mascotas: pets, eventos médicos, tratamientos, peso y reportes.
// @BasePath /
func main() {
	// .env opcional, útil en dev. En producción mandan las env vars.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.NewFromEnv()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	opts := router.Options{Log: log}

	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("postgres connected", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory repositories", nil)
	}

	if cfg.SupabaseEnabled() {
		client, err := supabase.NewClient(supabase.Config{
			ProjectURL: cfg.SupabaseURL,
			AnonKey:    cfg.SupabaseAnonKey,
		})
		if err != nil {
			log.Error("supabase client init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.AuthVerifier = supabase.NewVerifier(client)
		opts.AuthClient = client
		log.Info("supabase auth enabled", nil)
	} else {
		log.Warn("supabase not configured, dev auth via X-Debug-User-ID", nil)
	}

	if cfg.PlansEnabled() || cfg.AllowAllCapabilities {
		var client *plansfeatures.Client
		if cfg.PlansEnabled() {
			var err error
			client, err = plansfeatures.NewClient(plansfeatures.Config{
				BaseURL: cfg.PlansURL,
				APIKey:  cfg.PlansAPIKey,
			})
			if err != nil {
				log.Error("plans-features client init failed", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
		}
		opts.Features = plansfeatures.NewResolver(client, cfg.AllowAllCapabilities)
	}

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Address(), "app": cfg.AppName})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Shutdown ordenado con SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
