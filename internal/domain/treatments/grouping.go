package treatments

// UnknownPetID es el bucket reservado para tratamientos sin pet asociado.
// Duplicado a propósito con el de eventos: cada módulo agrupa lo suyo.
const UnknownPetID = "desconhecido"

// GroupByPet agrupa tratamientos por pet, con bucket reservado para
// registros huérfanos.
func GroupByPet(items []Treatment) map[string][]Treatment {
	out := make(map[string][]Treatment, len(items))
	for _, t := range items {
		key := t.PetID
		if key == "" {
			key = UnknownPetID
		}
		out[key] = append(out[key], t)
	}
	return out
}
