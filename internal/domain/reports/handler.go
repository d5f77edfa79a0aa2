package reports

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/pets"
	"github.com/pedroolvr19/PetPal-Connect/internal/middleware"
	"github.com/pedroolvr19/PetPal-Connect/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, features capabilities.CapabilitiesResolver) {
	r.Get("/pets/{petID}/report", healthReportHandler(svc, petsSvc, features))
}

// healthReportHandler godoc
// @Summary Reporte de salud en PDF
// @Description Genera el reporte de salud de la mascota (ficha, alergias e historial de eventos) como PDF descargable. Gateado por la capability reports:pdf del plan del tutor.
// @Tags reports
// @Produce application/pdf
// @Param petID path string true "ID de la mascota"
// @Success 200 {file} binary
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "plan sin reportes PDF"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/report [get]
func healthReportHandler(svc *Service, petsSvc *pets.Service, features capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		owner, err := petsSvc.OwnerOf(r.Context(), petID)
		if err != nil || owner != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		allowed, err := features.Has(r.Context(), capabilities.CapabilityCheck{
			UserID:     claims.UserID,
			Capability: capabilities.CapabilityReportsPDF,
		})
		if err != nil {
			http.Error(w, "capability check failed", http.StatusBadGateway)
			return
		}
		if !allowed {
			http.Error(w, "plan does not include PDF reports", http.StatusForbidden)
			return
		}

		pdfBytes, filename, err := svc.HealthReportPDF(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdfBytes)
	}
}
