package pets

import "context"

// OwnerOf expone el ownerUserID de una mascota.
// Lo usan los otros módulos (events, treatments, weights, reports) para
// autorizar sin importar el paquete completo.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}
