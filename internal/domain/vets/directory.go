package vets

import (
	"fmt"
	"net/url"
	"strconv"
)

// Clinic es una clínica veterinaria del directorio curado. El catálogo
// es estático: hoy cubre la región de Olinda, sin backend de terceros.
type Clinic struct {
	ID      int     `json:"id"`
	Name    string  `json:"nome"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Rating  float64 `json:"rating"`
	Address string  `json:"endereco"`
	Phone   string  `json:"telefone"`
}

var directory = []Clinic{
	{ID: 1, Name: "Hospital Veterinário 4 Patas", Lat: -7.994825, Lng: -34.839247,
		Rating: 4.7, Address: "Av. Dr. José Augusto Moreira, 950 - Casa Caiada", Phone: "(81) 3431-3000"},
	{ID: 2, Name: "Plantão Veterinário Olinda 24h", Lat: -8.005368, Lng: -34.846619,
		Rating: 4.5, Address: "Av. Pres. Getúlio Vargas, 1533 - Bairro Novo", Phone: "(81) 3439-1533"},
	{ID: 3, Name: "Clínica Veterinária Harmonia", Lat: -8.002621, Lng: -34.843825,
		Rating: 4.8, Address: "R. Eduardo de Morais, 331 - Bairro Novo", Phone: "(81) 3429-4040"},
	{ID: 4, Name: "SOS Veterinária", Lat: -7.988220, Lng: -34.836255,
		Rating: 4.6, Address: "Av. Gov. Carlos de Lima Cavalcanti, 2337", Phone: "(81) 3432-6060"},
	{ID: 5, Name: "Centro Veterinário de Olinda", Lat: -8.013233, Lng: -34.850383,
		Rating: 4.4, Address: "Av. Sigismundo Gonçalves, 345 - Carmo", Phone: "(81) 3429-0099"},
}

// Directory devuelve una copia del catálogo para que el caller no pueda
// mutar el original.
func Directory() []Clinic {
	out := make([]Clinic, len(directory))
	copy(out, directory)
	return out
}

// MapsURL arma el link de Google Maps que abre la clínica en el mapa.
func (c Clinic) MapsURL() string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s,%s",
		strconv.FormatFloat(c.Lat, 'f', -1, 64),
		strconv.FormatFloat(c.Lng, 'f', -1, 64))
}

// EmergencyURL arma la búsqueda de hospitales veterinarios 24h centrada
// en la posición del tutor. Zoom 13z cubre un radio de unos 5-10 km.
func EmergencyURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps/search/%s/@%s,%s,13z",
		url.PathEscape("hospital veterinario 24h"),
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
}
