package pets

import (
	"math"
	"time"
)

// Stats resume los pets del tutor para las cards del dashboard.
type Stats struct {
	TotalPets         int
	MostCommonSpecies string
	AverageAgeYears   float64
}

// ComputeStats calcula las métricas del dashboard sobre un snapshot de pets.
// Sin pets, la especie más común es "Nenhum" y el promedio 0.
func ComputeStats(items []Pet, today time.Time) Stats {
	if len(items) == 0 {
		return Stats{MostCommonSpecies: "Nenhum"}
	}

	counts := map[string]int{}
	order := make([]string, 0)
	sum := 0
	for _, p := range items {
		if _, seen := counts[p.Species]; !seen {
			order = append(order, p.Species)
		}
		counts[p.Species]++
		sum += DerivedAgeYears(p, today)
	}

	// empate: gana la primera especie vista, para salida estable
	best := order[0]
	for _, s := range order {
		if counts[s] > counts[best] {
			best = s
		}
	}

	avg := float64(sum) / float64(len(items))
	return Stats{
		TotalPets:         len(items),
		MostCommonSpecies: best,
		AverageAgeYears:   math.Round(avg*10) / 10,
	}
}
