package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config agrupa toda la configuración del servicio, cargada de env vars.
// main carga primero un .env opcional con godotenv.
type Config struct {
	AppName string
	Port    int

	LogLevel  string
	LogFormat string

	// Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string

	// Supabase (auth gestionada). Vacío => modo dev con X-Debug-User-ID.
	SupabaseURL     string
	SupabaseAnonKey string

	// plans-features (gating de capabilities, p.ej. reports:pdf).
	PlansURL    string
	PlansAPIKey string

	AllowAllCapabilities bool
}

// FromEnv construye el Config desde el environment.
func FromEnv() Config {
	port := 8080
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	return Config{
		AppName:              envOr("APP_NAME", "petpal-connect"),
		Port:                 port,
		LogLevel:             envOr("LOG_LEVEL", "info"),
		LogFormat:            envOr("LOG_FORMAT", "text"),
		DBDSN:                strings.TrimSpace(os.Getenv("DB_DSN")),
		SupabaseURL:          strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		SupabaseAnonKey:      strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		PlansURL:             strings.TrimSpace(os.Getenv("PLANS_URL")),
		PlansAPIKey:          strings.TrimSpace(os.Getenv("PLANS_API_KEY")),
		AllowAllCapabilities: strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_ALL_CAPABILITIES")), "true"),
	}
}

// Validate valida la configuración.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AppName, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.SupabaseURL, is.URL),
		validation.Field(&c.PlansURL, is.URL),
	)
}

// Address devuelve la dirección de escucha del servidor HTTP.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SupabaseEnabled indica si hay auth gestionada configurada.
func (c Config) SupabaseEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// PlansEnabled indica si el gating de capabilities está configurado.
func (c Config) PlansEnabled() bool {
	return c.PlansURL != "" && c.PlansAPIKey != ""
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
