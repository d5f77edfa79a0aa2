package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/middleware"
	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
	})

	// Cards del dashboard (total, especie más común, edad promedio)
	r.Get("/dashboard/stats", statsHandler(svc))
}

type createPetRequest struct {
	Name      string   `json:"nome"`
	Species   string   `json:"tipo_animal"`
	Breed     string   `json:"raca"`
	Sex       string   `json:"sexo"`
	AgeYears  *int     `json:"idade"`
	BirthDate string   `json:"data_nascimento"` // YYYY-MM-DD opcional
	WeightKg  *float64 `json:"peso"`
	Neutered  bool     `json:"castrado"`
	Microchip string   `json:"microchip"`
	Allergies string   `json:"alergias"`
	Notes     string   `json:"observacoes"`
	PhotoURL  string   `json:"foto_url"`
}

type petResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"nome"`
	Species     string    `json:"tipo_animal"`
	Breed       string    `json:"raca"`
	Sex         string    `json:"sexo"`
	AgeYears    *int      `json:"idade,omitempty"`
	BirthDate   *string   `json:"data_nascimento,omitempty"`
	WeightKg    *float64  `json:"peso,omitempty"`
	Neutered    bool      `json:"castrado"`
	Microchip   string    `json:"microchip"`
	Allergies   string    `json:"alergias"`
	Notes       string    `json:"observacoes"`
	PhotoURL    string    `json:"foto_url"`
	DisplayAge  string    `json:"idade_exibicao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string `json:"nome"`
	Species   *string `json:"tipo_animal"`
	Breed     *string `json:"raca"`
	Sex       *string `json:"sexo"`
	Microchip *string `json:"microchip"`
	Allergies *string `json:"alergias"`
	Notes     *string `json:"observacoes"`
	PhotoURL  *string `json:"foto_url"`
	Neutered  *bool   `json:"castrado"`
}

type statsResponse struct {
	TotalPets         int     `json:"total_pets"`
	MostCommonSpecies string  `json:"tipo_mais_comum"`
	AverageAgeYears   float64 `json:"idade_media"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := dates.ParseCanonical(req.BirthDate)
			if err != nil {
				http.Error(w, "data_nascimento must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Sex:       req.Sex,
			AgeYears:  req.AgeYears,
			BirthDate: bd,
			WeightKg:  req.WeightKg,
			Neutered:  req.Neutered,
			Microchip: req.Microchip,
			Allergies: req.Allergies,
			Notes:     req.Notes,
			PhotoURL:  req.PhotoURL,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p, svc.Today()))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		today := svc.Today()
		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p, today))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := svc.GetByID(r.Context(), petID)
		if err != nil || p.OwnerUserID != claims.UserID {
			// 404 también para pets ajenos: no filtramos existencia
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p, svc.Today()))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil || current.OwnerUserID != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		// Para soportar null en idade/data_nascimento/peso hay que detectar
		// presencia del campo, así que decodificamos primero a un map.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updatePetRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		in := UpdateProfileInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Sex:       req.Sex,
			Microchip: req.Microchip,
			Allergies: req.Allergies,
			Notes:     req.Notes,
			PhotoURL:  req.PhotoURL,
			Neutered:  req.Neutered,
		}

		if v, exists := raw["idade"]; exists {
			in.AgeYears.Present = true
			if string(v) != "null" {
				var n int
				if err := json.Unmarshal(v, &n); err != nil {
					http.Error(w, "idade must be a number or null", http.StatusBadRequest)
					return
				}
				in.AgeYears.Value = &n
			}
		}
		if v, exists := raw["data_nascimento"]; exists {
			in.BirthDate.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "data_nascimento must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				t, err := dates.ParseCanonical(s)
				if err != nil {
					http.Error(w, "data_nascimento must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				in.BirthDate.Value = &t
			}
		}
		if v, exists := raw["peso"]; exists {
			in.WeightKg.Present = true
			if string(v) != "null" {
				var f float64
				if err := json.Unmarshal(v, &f); err != nil {
					http.Error(w, "peso must be a number or null", http.StatusBadRequest)
					return
				}
				in.WeightKg.Value = &f
			}
		}

		updated, err := svc.UpdateProfile(r.Context(), petID, in)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated, svc.Today()))
	}
}

func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		st := ComputeStats(items, svc.Today())
		writeJSON(w, http.StatusOK, statsResponse{
			TotalPets:         st.TotalPets,
			MostCommonSpecies: st.MostCommonSpecies,
			AverageAgeYears:   st.AverageAgeYears,
		})
	}
}

func toPetResponse(p Pet, today time.Time) petResponse {
	var bd *string
	if p.BirthDate != nil {
		s := dates.Canonical(*p.BirthDate)
		bd = &s
	}
	return petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Sex:         p.Sex,
		AgeYears:    p.AgeYears,
		BirthDate:   bd,
		WeightKg:    p.WeightKg,
		Neutered:    p.Neutered,
		Microchip:   p.Microchip,
		Allergies:   p.Allergies,
		Notes:       p.Notes,
		PhotoURL:    p.PhotoURL,
		DisplayAge:  DisplayAge(p, today),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
