package router

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	mem "github.com/pedroolvr19/PetPal-Connect/internal/adapters/storage/memory"
	pg "github.com/pedroolvr19/PetPal-Connect/internal/adapters/storage/postgres"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/events"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/pets"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/reports"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/treatments"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/vets"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/weights"
	"github.com/pedroolvr19/PetPal-Connect/internal/middleware"
	"github.com/pedroolvr19/PetPal-Connect/internal/platform/logger"
	"github.com/pedroolvr19/PetPal-Connect/internal/ports/auth"
	"github.com/pedroolvr19/PetPal-Connect/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SessionRevoker cierra la sesión del tutor en el backend de auth.
// Lo implementa el cliente de Supabase; en dev puede ser nil.
type SessionRevoker interface {
	SignOut(ctx context.Context, accessToken string) error
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev con X-Debug-User-ID)
	AuthClient   SessionRevoker    // puede ser nil; /auth/logout responde 204 igual

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Gate de capabilities por plan (reports:pdf). Si es nil, el módulo
	// de reportes no se registra.
	Features capabilities.CapabilitiesResolver

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		petRepo       pets.Repository
		eventRepo     events.Repository
		treatmentRepo treatments.Repository
		weightRepo    weights.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
		treatmentRepo = pg.NewTreatmentsRepo(opts.DB)
		weightRepo = pg.NewWeightsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		eventRepo = mem.NewEventRepo()
		treatmentRepo = mem.NewTreatmentRepo()
		weightRepo = mem.NewWeightRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	eventsSvc := events.NewService(eventRepo)
	treatmentsSvc := treatments.NewService(treatmentRepo)
	weightsSvc := weights.NewService(weightRepo)
	reportsSvc := reports.NewService(petsSvc, eventsSvc, weightsSvc)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	events.RegisterRoutes(r, eventsSvc, petsSvc)
	treatments.RegisterRoutes(r, treatmentsSvc, petsSvc)
	weights.RegisterRoutes(r, weightsSvc, petsSvc)
	vets.RegisterRoutes(r)
	if opts.Features != nil {
		reports.RegisterRoutes(r, reportsSvc, petsSvc, opts.Features)
	}

	r.Get("/me", meHandler())
	r.Post("/auth/logout", logoutHandler(opts.AuthClient))

	return r
}

// meHandler devuelve el perfil del tutor autenticado a partir de los
// claims que dejó el middleware.
func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		fullName := claims.FullName
		if fullName == "" {
			fullName = "Tutor"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id":    claims.UserID,
			"email":      claims.Email,
			"nome":       fullName,
			"avatar_url": claims.AvatarURL,
		})
	}
}

// logoutHandler revoca la sesión en el backend de auth si hay cliente
// configurado. Siempre termina 204: el front descarta el token igual.
func logoutHandler(revoker SessionRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if revoker != nil {
			authz := r.Header.Get("Authorization")
			if parts := strings.SplitN(authz, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				_ = revoker.SignOut(r.Context(), strings.TrimSpace(parts[1]))
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
