package events

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
	r.Route("/pets/{petID}/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc, petsSvc))
		er.Get("/", listPetEventsHandler(svc, petsSvc))
	})

	r.Route("/events", func(er chi.Router) {
		// Vistas cross-pet del tutor (lista filtrada y grid mensual)
		er.Get("/", listAllEventsHandler(svc, petsSvc))
		er.Get("/calendar", calendarHandler(svc, petsSvc))

		er.Post("/{eventID}/status", updateEventStatusHandler(svc, petsSvc))
		er.Delete("/{eventID}", deleteEventHandler(svc, petsSvc))
	})
}

// createEventRequest es el cuerpo para registrar un evento médico.
type createEventRequest struct {
	Type         string   `json:"tipo" enums:"consulta,vacinacao,exame,cirurgia,medicamento,outro"`
	Title        string   `json:"titulo"`
	Description  string   `json:"descricao"`
	Date         string   `json:"data"` // YYYY-MM-DD
	TimeOfDay    string   `json:"hora"` // HH:MM opcional
	Veterinarian string   `json:"veterinario"`
	Clinic       string   `json:"clinica"`
	Status       string   `json:"status" enums:"agendado,realizado,cancelado"`
	Price        *float64 `json:"preco"`
	Notes        string   `json:"observacoes"`
	Reminder     bool     `json:"lembrete"`
}

type updateEventStatusRequest struct {
	Status string `json:"status" enums:"agendado,realizado,cancelado"`
}

// eventResponse representa un evento médico devuelto por la API.
type eventResponse struct {
	ID           string      `json:"id"`
	PetID        string      `json:"pet_id"`
	Type         EventType   `json:"tipo"`
	Title        string      `json:"titulo"`
	Description  string      `json:"descricao"`
	Date         string      `json:"data"` // YYYY-MM-DD canónico
	TimeOfDay    string      `json:"hora,omitempty"`
	Veterinarian string      `json:"veterinario"`
	Clinic       string      `json:"clinica"`
	Status       EventStatus `json:"status"`
	Price        *float64    `json:"preco,omitempty"`
	Notes        string      `json:"observacoes"`
	Reminder     bool        `json:"lembrete"`
	CreatedAt    time.Time   `json:"created_at"`
}

// createEventHandler godoc
// @Summary Crear evento médico
// @Description Registra un evento médico (consulta, vacuna, examen...) para la mascota del tutor autenticado. Fechas en formato YYYY-MM-DD; hora opcional HH:MM. Tipo y status se validan contra enumeraciones cerradas.
// @Tags events
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body createEventRequest true "Datos del evento"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / data inválida / tipo o status desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/events [post]
func createEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, petID, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		typ, err := ParseEventType(req.Type)
		if err != nil {
			http.Error(w, "unknown tipo", http.StatusBadRequest)
			return
		}

		var status EventStatus
		if strings.TrimSpace(req.Status) != "" {
			status, err = ParseEventStatus(req.Status)
			if err != nil {
				http.Error(w, "unknown status", http.StatusBadRequest)
				return
			}
		}

		day, err := dates.ParseCanonical(req.Date)
		if err != nil {
			http.Error(w, "data must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.TimeOfDay) != "" {
			if _, err := time.Parse("15:04", strings.TrimSpace(req.TimeOfDay)); err != nil {
				http.Error(w, "hora must be HH:MM", http.StatusBadRequest)
				return
			}
		}

		e, err := svc.Create(r.Context(), petID, CreateInput{
			Type:         typ,
			Status:       status,
			Title:        req.Title,
			Description:  req.Description,
			Date:         day,
			TimeOfDay:    req.TimeOfDay,
			Veterinarian: req.Veterinarian,
			Clinic:       req.Clinic,
			Price:        req.Price,
			Notes:        req.Notes,
			Reminder:     req.Reminder,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listPetEventsHandler godoc
// @Summary Listar eventos de una mascota
// @Description Lista los eventos médicos de la mascota, con filtros opcionales por tipo, status y día (data=YYYY-MM-DD). "todos" equivale a filtro ausente.
// @Tags events
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param tipo query string false "Tipo de evento"
// @Param status query string false "Status del evento"
// @Param data query string false "Día calendario YYYY-MM-DD"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/events [get]
func listPetEventsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, petID, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, parseFilter(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEventResponses(items))
	}
}

// listAllEventsHandler godoc
// @Summary Listar eventos de todos los pets del tutor
// @Description Lista los eventos médicos de todas las mascotas del tutor autenticado, con filtros por tipo, pet_id, status y día.
// @Tags events
// @Produce json
// @Param tipo query string false "Tipo de evento"
// @Param pet_id query string false "ID de la mascota"
// @Param status query string false "Status del evento"
// @Param data query string false "Día calendario YYYY-MM-DD"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Router /events [get]
func listAllEventsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petIDs, err := ownedPetIDs(r, petsSvc, claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		items, err := svc.ListByPets(r.Context(), petIDs, parseFilter(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEventResponses(items))
	}
}

// calendarHandler godoc
// @Summary Grid mensual de eventos
// @Description Devuelve los eventos agrupados por día canónico (YYYY-MM-DD), opcionalmente acotados a un mes (month=YYYY-MM) y filtrados por tipo, pet_id y status. Pensado para pintar la grilla del calendario.
// @Tags events
// @Produce json
// @Param month query string false "Mes YYYY-MM"
// @Param tipo query string false "Tipo de evento"
// @Param pet_id query string false "ID de la mascota"
// @Param status query string false "Status del evento"
// @Success 200 {object} map[string][]eventResponse
// @Failure 400 {string} string "month inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /events/calendar [get]
func calendarHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		month := strings.TrimSpace(r.URL.Query().Get("month"))
		if month != "" {
			if _, err := time.Parse("2006-01", month); err != nil {
				http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
				return
			}
		}

		petIDs, err := ownedPetIDs(r, petsSvc, claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		items, err := svc.ListByPets(r.Context(), petIDs, parseFilter(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if month != "" {
			filtered := make([]MedicalEvent, 0, len(items))
			for _, e := range items {
				if strings.HasPrefix(dates.Canonical(e.Date), month+"-") {
					filtered = append(filtered, e)
				}
			}
			items = filtered
		}

		groups := GroupByDay(items)
		out := make(map[string][]eventResponse, len(groups))
		for day, evs := range groups {
			out[day] = toEventResponses(evs)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// updateEventStatusHandler godoc
// @Summary Cambiar status de un evento
// @Description Marca el evento como realizado/cancelado (o lo vuelve a agendar).
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param payload body updateEventStatusRequest true "Nuevo status"
// @Success 200 {object} eventResponse
// @Failure 400 {string} string "status desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/status [post]
func updateEventStatusHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := ownEvent(w, r, svc, petsSvc)
		if !ok {
			return
		}

		var req updateEventStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		status, err := ParseEventStatus(req.Status)
		if err != nil {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), e.ID, status)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEventResponse(updated))
	}
}

func deleteEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := ownEvent(w, r, svc, petsSvc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), e.ID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ownPet resuelve claims + petID y corta con 401/404 si el pet no existe
// o no pertenece al tutor autenticado.
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

// ownEvent resuelve el evento y verifica que su pet pertenezca al tutor.
func ownEvent(w http.ResponseWriter, r *http.Request, svc *Service, petsSvc *pets.Service) (MedicalEvent, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return MedicalEvent{}, false
	}

	eventID := chi.URLParam(r, "eventID")
	e, err := svc.GetByID(r.Context(), eventID)
	if err != nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return MedicalEvent{}, false
	}

	owner, err := petsSvc.OwnerOf(r.Context(), e.PetID)
	if err != nil || owner != claims.UserID {
		http.Error(w, "event not found", http.StatusNotFound)
		return MedicalEvent{}, false
	}

	return e, true
}

func ownedPetIDs(r *http.Request, petsSvc *pets.Service, ownerUserID string) ([]string, error) {
	items, err := petsSvc.ListByOwner(r.Context(), ownerUserID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func parseFilter(r *http.Request) Filter {
	q := r.URL.Query()
	return Filter{
		Type:   strings.TrimSpace(q.Get("tipo")),
		PetID:  strings.TrimSpace(q.Get("pet_id")),
		Status: strings.TrimSpace(q.Get("status")),
		OnDate: strings.TrimSpace(q.Get("data")),
	}
}

func toEventResponses(items []MedicalEvent) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toEventResponse(e MedicalEvent) eventResponse {
	return eventResponse{
		ID:           e.ID,
		PetID:        e.PetID,
		Type:         e.Type,
		Title:        e.Title,
		Description:  e.Description,
		Date:         dates.Canonical(e.Date),
		TimeOfDay:    e.TimeOfDay,
		Veterinarian: e.Veterinarian,
		Clinic:       e.Clinic,
		Status:       e.Status,
		Price:        e.Price,
		Notes:        e.Notes,
		Reminder:     e.Reminder,
		CreatedAt:    e.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
