package weights

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/pets"
	"github.com/pedroolvr19/PetPal-Connect/internal/middleware"
	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/weights", func(wr chi.Router) {
		wr.Post("/", recordWeightHandler(svc, petsSvc))
		wr.Get("/", listWeightsHandler(svc, petsSvc))
		wr.Get("/latest", latestWeightHandler(svc, petsSvc))
	})
}

type recordWeightRequest struct {
	WeighedAt string  `json:"data_pesagem"` // YYYY-MM-DD
	WeightKg  float64 `json:"peso"`
}

type weightResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	WeighedAt string    `json:"data_pesagem"`
	WeightKg  float64   `json:"peso"`
	CreatedAt time.Time `json:"created_at"`
}

// recordWeightHandler godoc
// @Summary Registrar pesada
// @Description Agrega una pesada al historial de peso de la mascota. El historial es append-only.
// @Tags weights
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body recordWeightRequest true "Datos de la pesada"
// @Success 201 {object} weightResponse
// @Failure 400 {string} string "invalid json / peso o fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/weights [post]
func recordWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var req recordWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		when, err := dates.ParseCanonical(req.WeighedAt)
		if err != nil {
			http.Error(w, "data_pesagem must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		sample, err := svc.Record(r.Context(), petID, RecordInput{WeighedAt: when, WeightKg: req.WeightKg})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toWeightResponse(sample))
	}
}

// listWeightsHandler godoc
// @Summary Historial de peso
// @Description Lista las pesadas de la mascota en orden cronológico, para graficar la evolución.
// @Tags weights
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} weightResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/weights [get]
func listWeightsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.History(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]weightResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toWeightResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// latestWeightHandler godoc
// @Summary Última pesada
// @Tags weights
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} weightResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found / sin pesadas"
// @Router /pets/{petID}/weights/latest [get]
func latestWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		sample, err := svc.Latest(r.Context(), petID)
		if err != nil {
			http.Error(w, "no weight samples", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toWeightResponse(sample))
	}
}

func ownPet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	petID := chi.URLParam(r, "petID")
	owner, err := petsSvc.OwnerOf(r.Context(), petID)
	if err != nil || owner != claims.UserID {
		http.Error(w, "pet not found", http.StatusNotFound)
		return "", false
	}

	return petID, true
}

func toWeightResponse(s WeightSample) weightResponse {
	return weightResponse{
		ID:        s.ID,
		PetID:     s.PetID,
		WeighedAt: dates.Canonical(s.WeighedAt),
		WeightKg:  s.WeightKg,
		CreatedAt: s.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
