package capabilities

import "context"

// Capabilities conocidas por el servicio.
const (
	CapabilityReportsPDF = "reports:pdf"
)

// CapabilityCheck es la consulta que hace un handler antes de una
// operación gateada por plan (hoy: generación de reportes PDF).
type CapabilityCheck struct {
	UserID     string
	Capability string
}

type CapabilitiesResolver interface {
	Has(ctx context.Context, in CapabilityCheck) (bool, error)
}
