package treatments

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
	r.Route("/pets/{petID}/treatments", func(tr chi.Router) {
		tr.Post("/", createTreatmentHandler(svc, petsSvc))
		tr.Get("/", listPetTreatmentsHandler(svc, petsSvc))
	})

	r.Route("/treatments", func(tr chi.Router) {
		// Vista cruzada del tutor, agrupada por pet
		tr.Get("/", listGroupedTreatmentsHandler(svc, petsSvc))

		tr.Patch("/{treatmentID}", updateTreatmentHandler(svc, petsSvc))
		tr.Post("/{treatmentID}/complete", completeTreatmentHandler(svc, petsSvc))
		tr.Delete("/{treatmentID}", deleteTreatmentHandler(svc, petsSvc))
	})
}

// createTreatmentRequest es el cuerpo para registrar un medicamento.
type createTreatmentRequest struct {
	Name         string   `json:"nome_medicamento"`
	Dosage       string   `json:"dosagem"`
	Schedule     []string `json:"horarios"` // HH:MM
	Instructions string   `json:"instrucoes"`
	StartDate    string   `json:"data_inicio"` // YYYY-MM-DD
	DurationDays int      `json:"duracao_dias"`
}

type updateTreatmentRequest struct {
	Name         *string   `json:"nome_medicamento"`
	Dosage       *string   `json:"dosagem"`
	Schedule     *[]string `json:"horarios"`
	Instructions *string   `json:"instrucoes"`
	StartDate    *string   `json:"data_inicio"`
	DurationDays *int      `json:"duracao_dias"`
}

// treatmentResponse representa un tratamiento con su fase derivada "hoy".
type treatmentResponse struct {
	ID           string          `json:"id"`
	PetID        string          `json:"pet_id"`
	Name         string          `json:"nome_medicamento"`
	Dosage       string          `json:"dosagem"`
	Schedule     []string        `json:"horarios"`
	Instructions string          `json:"instrucoes"`
	StartDate    string          `json:"data_inicio"` // YYYY-MM-DD
	DurationDays int             `json:"duracao_dias"`
	Status       TreatmentStatus `json:"status"`
	Progress     Progress        `json:"progresso"`
	CreatedAt    time.Time       `json:"created_at"`
}

// createTreatmentHandler godoc
// @Summary Registrar medicamento
// @Description Registra un tratamiento (medicamento con horarios y duración en días) para la mascota del tutor autenticado.
// @Tags treatments
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body createTreatmentRequest true "Datos del tratamiento"
// @Success 201 {object} treatmentResponse
// @Failure 400 {string} string "invalid json / duración o fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/treatments [post]
func createTreatmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, petID, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var req createTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := dates.ParseCanonical(req.StartDate)
		if err != nil {
			http.Error(w, "data_inicio must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), petID, CreateInput{
			Name:         req.Name,
			Dosage:       req.Dosage,
			Schedule:     req.Schedule,
			Instructions: req.Instructions,
			StartDate:    start,
			DurationDays: req.DurationDays,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		wp, err := svc.Derive(t)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toTreatmentResponse(wp))
	}
}

// listPetTreatmentsHandler godoc
// @Summary Listar tratamientos de una mascota
// @Description Lista los tratamientos de la mascota con la fase derivada al día de hoy (a_iniciar, em_andamento, atrasado, concluido) y el porcentaje de avance.
// @Tags treatments
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/treatments [get]
func listPetTreatmentsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, petID, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toTreatmentResponses(items))
	}
}

// listGroupedTreatmentsHandler godoc
// @Summary Tratamientos del tutor agrupados por pet
// @Description Devuelve los tratamientos de todas las mascotas del tutor, agrupados por pet_id. Registros sin pet caen en el bucket "desconhecido".
// @Tags treatments
// @Produce json
// @Success 200 {object} map[string][]treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Router /treatments [get]
func listGroupedTreatmentsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		owned, err := petsSvc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		petIDs := make([]string, 0, len(owned))
		for _, p := range owned {
			petIDs = append(petIDs, p.ID)
		}

		items, err := svc.ListByPets(r.Context(), petIDs)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		plain := make([]Treatment, 0, len(items))
		progress := make(map[string]Progress, len(items))
		for _, it := range items {
			plain = append(plain, it.Treatment)
			progress[it.Treatment.ID] = it.Progress
		}

		groups := GroupByPet(plain)
		out := make(map[string][]treatmentResponse, len(groups))
		for petID, ts := range groups {
			rs := make([]treatmentResponse, 0, len(ts))
			for _, t := range ts {
				rs = append(rs, toTreatmentResponse(WithProgress{Treatment: t, Progress: progress[t.ID]}))
			}
			out[petID] = rs
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// updateTreatmentHandler godoc
// @Summary Editar tratamiento
// @Description Parchea campos del tratamiento. Campos ausentes quedan intactos.
// @Tags treatments
// @Accept json
// @Produce json
// @Param treatmentID path string true "ID del tratamiento"
// @Param payload body updateTreatmentRequest true "Campos a modificar"
// @Success 200 {object} treatmentResponse
// @Failure 400 {string} string "invalid json / duración o fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "treatment not found"
// @Router /treatments/{treatmentID} [patch]
func updateTreatmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := ownTreatment(w, r, svc, petsSvc)
		if !ok {
			return
		}

		var req updateTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:         req.Name,
			Dosage:       req.Dosage,
			Schedule:     req.Schedule,
			Instructions: req.Instructions,
			DurationDays: req.DurationDays,
		}
		if req.StartDate != nil {
			start, err := dates.ParseCanonical(*req.StartDate)
			if err != nil {
				http.Error(w, "data_inicio must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.StartDate = &start
		}

		updated, err := svc.Update(r.Context(), t.ID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		wp, err := svc.Derive(updated)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toTreatmentResponse(wp))
	}
}

// completeTreatmentHandler godoc
// @Summary Concluir tratamiento
// @Description Marca el tratamiento como concluido. La fase derivada pasa a concluido/100 sin importar el calendario.
// @Tags treatments
// @Produce json
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200 {object} treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "treatment not found"
// @Router /treatments/{treatmentID}/complete [post]
func completeTreatmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := ownTreatment(w, r, svc, petsSvc)
		if !ok {
			return
		}

		updated, err := svc.Complete(r.Context(), t.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		wp, err := svc.Derive(updated)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toTreatmentResponse(wp))
	}
}

func deleteTreatmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := ownTreatment(w, r, svc, petsSvc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), t.ID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ownPet corta con 401/404 si el pet no existe o no es del tutor autenticado.
func ownPet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (string, string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	petID := chi.URLParam(r, "petID")
	owner, err := petsSvc.OwnerOf(r.Context(), petID)
	if err != nil || owner != claims.UserID {
		http.Error(w, "pet not found", http.StatusNotFound)
		return "", "", false
	}

	return claims.UserID, petID, true
}

func ownTreatment(w http.ResponseWriter, r *http.Request, svc *Service, petsSvc *pets.Service) (Treatment, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Treatment{}, false
	}

	t, err := svc.GetByID(r.Context(), chi.URLParam(r, "treatmentID"))
	if err != nil {
		http.Error(w, "treatment not found", http.StatusNotFound)
		return Treatment{}, false
	}

	owner, err := petsSvc.OwnerOf(r.Context(), t.PetID)
	if err != nil || owner != claims.UserID {
		http.Error(w, "treatment not found", http.StatusNotFound)
		return Treatment{}, false
	}

	return t, true
}

func toTreatmentResponses(items []WithProgress) []treatmentResponse {
	out := make([]treatmentResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toTreatmentResponse(it))
	}
	return out
}

func toTreatmentResponse(it WithProgress) treatmentResponse {
	t := it.Treatment
	schedule := t.Schedule
	if schedule == nil {
		schedule = []string{}
	}
	return treatmentResponse{
		ID:           t.ID,
		PetID:        t.PetID,
		Name:         t.Name,
		Dosage:       t.Dosage,
		Schedule:     schedule,
		Instructions: t.Instructions,
		StartDate:    dates.Canonical(t.StartDate),
		DurationDays: t.DurationDays,
		Status:       t.Status,
		Progress:     it.Progress,
		CreatedAt:    t.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
