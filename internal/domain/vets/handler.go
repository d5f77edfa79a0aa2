package vets

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/vets", listVetsHandler())
	r.Get("/vets/emergency-url", emergencyURLHandler())
}

type clinicResponse struct {
	Clinic
	MapsURL string `json:"maps_url"`
}

// listVetsHandler godoc
// @Summary Directorio de clínicas veterinarias
// @Description Devuelve el catálogo curado de clínicas (región de Olinda) con coordenadas, rating y link de Google Maps.
// @Tags vets
// @Produce json
// @Success 200 {array} clinicResponse
// @Router /vets [get]
func listVetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clinics := Directory()
		out := make([]clinicResponse, 0, len(clinics))
		for _, c := range clinics {
			out = append(out, clinicResponse{Clinic: c, MapsURL: c.MapsURL()})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// emergencyURLHandler godoc
// @Summary URL de emergencia
// @Description Arma el link de Google Maps que busca hospitales veterinarios 24h cerca de la posición informada (lat/lng en query).
// @Tags vets
// @Produce json
// @Param lat query number true "Latitud"
// @Param lng query number true "Longitud"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "lat/lng inválidos"
// @Router /vets/emergency-url [get]
func emergencyURLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat != nil || errLng != nil {
			http.Error(w, "lat and lng are required numbers", http.StatusBadRequest)
			return
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			http.Error(w, "lat/lng out of range", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"url": EmergencyURL(lat, lng)})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
