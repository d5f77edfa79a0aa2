package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/ports/capabilities"
	"github.com/pedroolvr19/PetPal-Connect/internal/router"
)

// allowAllFeatures habilita cualquier capability, para probar el
// endpoint de reportes sin upstream de planes.
type allowAllFeatures struct{}

func (allowAllFeatures) Has(ctx context.Context, in capabilities.CapabilityCheck) (bool, error) {
	return true, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: X-Debug-User-ID
		Features:     allowAllFeatures{},
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PetHealthFlow(t *testing.T) {
	ts := newTestServer(t)

	tutorID := "tutor-1"
	strangerID := "tutor-2"
	today := time.Now().UTC().Format("2006-01-02")

	// 1) Tutor crea mascota
	petID := createPet(t, ts.URL, tutorID, map[string]any{
		"nome":        "Mel",
		"tipo_animal": "gato",
		"raca":        "siamês",
		"sexo":        "femea",
		"idade":       3,
		"alergias":    "dipirona",
	})

	// 2) Otro tutor no la ve (404, sin filtrar existencia)
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, strangerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for another tutor, got %d", st)
		}
	}

	// 3) Evento médico agendado para hoy
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/events", tutorID, map[string]any{
			"tipo":        "vacinacao",
			"titulo":      "V10",
			"data":        today,
			"hora":        "14:30",
			"veterinario": "Dra. Paula",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
		}
	}

	// 4) Lista filtrada por tipo y día
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/events?tipo=vacinacao&data="+today, tutorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list events, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 filtered event, got %d body=%s", len(items), string(body))
		}
		// filtro "todos" equivale a sin filtro
		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/events?tipo=todos", tutorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with tipo=todos, got %d body=%s", st, string(body))
		}
	}

	// 5) Grid mensual agrupado por día
	{
		st, body := doReq(t, ts.URL, "GET", "/events/calendar?month="+today[:7], tutorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 calendar, got %d body=%s", st, string(body))
		}
		var groups map[string][]map[string]any
		_ = json.Unmarshal(body, &groups)
		if len(groups[today]) != 1 {
			t.Fatalf("expected event grouped under %s, body=%s", today, string(body))
		}
	}

	// 6) Tratamiento que empieza hoy => fase em_andamento
	treatmentID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/treatments", tutorID, map[string]any{
			"nome_medicamento": "Antibiótico",
			"dosagem":          "1 comprimido",
			"horarios":         []string{"08:00", "20:00"},
			"data_inicio":      today,
			"duracao_dias":     10,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create treatment, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID       string `json:"id"`
			Progress struct {
				Phase   string `json:"fase"`
				Percent int    `json:"percentual"`
			} `json:"progresso"`
		}
		_ = json.Unmarshal(body, &resp)
		treatmentID = resp.ID
		if resp.Progress.Phase != "em_andamento" {
			t.Fatalf("expected em_andamento on day 1, got %+v body=%s", resp.Progress, string(body))
		}
	}

	// 7) Concluir => concluido/100 gane lo que gane el calendario
	{
		st, body := doReq(t, ts.URL, "POST", "/treatments/"+treatmentID+"/complete", tutorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete, got %d body=%s", st, string(body))
		}
		var resp struct {
			Progress struct {
				Phase   string `json:"fase"`
				Percent int    `json:"percentual"`
			} `json:"progresso"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Progress.Phase != "concluido" || resp.Progress.Percent != 100 {
			t.Fatalf("expected concluido/100, got %+v", resp.Progress)
		}
	}

	// 8) Vista agrupada por pet
	{
		st, body := doReq(t, ts.URL, "GET", "/treatments", tutorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 grouped treatments, got %d body=%s", st, string(body))
		}
		var groups map[string][]map[string]any
		_ = json.Unmarshal(body, &groups)
		if len(groups[petID]) != 1 {
			t.Fatalf("expected 1 treatment for pet, body=%s", string(body))
		}
	}

	// 9) Historial de peso
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/weights", tutorID, map[string]any{
			"data_pesagem": today,
			"peso":         4.2,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record weight, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights/latest", tutorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 latest weight, got %d body=%s", st, string(body))
		}
		var latest struct {
			WeightKg float64 `json:"peso"`
		}
		_ = json.Unmarshal(body, &latest)
		if latest.WeightKg != 4.2 {
			t.Fatalf("expected peso 4.2, got %v", latest.WeightKg)
		}
	}

	// 10) Reporte PDF
	{
		req, _ := http.NewRequest("GET", ts.URL+"/pets/"+petID+"/report", nil)
		req.Header.Set("X-Debug-User-ID", tutorID)
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("report request: %v", err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 report, got %d", res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		raw, _ := io.ReadAll(res.Body)
		if !bytes.HasPrefix(raw, []byte("%PDF")) {
			t.Fatalf("expected PDF bytes")
		}
	}

	// 11) Dashboard stats
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard/stats", tutorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		var stats struct {
			TotalPets int `json:"total_pets"`
		}
		_ = json.Unmarshal(body, &stats)
		if stats.TotalPets != 1 {
			t.Fatalf("expected 1 pet in stats, got %d", stats.TotalPets)
		}
	}
}

func TestHTTP_CreateEvent_RejectsUnknownTipo(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, "tutor-1", map[string]any{
		"nome": "Thor", "tipo_animal": "cachorro",
	})

	st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/events", "tutor-1", map[string]any{
		"tipo":   "banho",
		"titulo": "Banho",
		"data":   "2024-05-01",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown tipo, got %d", st)
	}
}

func TestHTTP_EventOwnership(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, "tutor-1", map[string]any{
		"nome": "Thor", "tipo_animal": "cachorro",
	})

	st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/events", "tutor-1", map[string]any{
		"tipo": "consulta", "titulo": "Rotina", "data": "2024-05-01",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
	}
	var evt struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &evt)

	// otro tutor no puede tocar el evento
	st, _ = doReq(t, ts.URL, "POST", "/events/"+evt.ID+"/status", "tutor-2", map[string]any{
		"status": "realizado",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for another tutor, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/events/"+evt.ID+"/status", "tutor-1", map[string]any{
		"status": "realizado",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 status change, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/events/"+evt.ID, "tutor-1", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete event, got %d", st)
	}
}

func TestHTTP_MeAndVets(t *testing.T) {
	ts := newTestServer(t)

	// /me en modo dev: solo user_id, nombre cae a "Tutor"
	st, body := doReq(t, ts.URL, "GET", "/me", "tutor-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 me, got %d body=%s", st, string(body))
	}
	var me map[string]string
	_ = json.Unmarshal(body, &me)
	if me["user_id"] != "tutor-1" || me["nome"] != "Tutor" {
		t.Fatalf("unexpected me payload: %v", me)
	}

	// sin identidad => 401
	st, _ = doReq(t, ts.URL, "GET", "/me", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}

	// directorio de vets es público
	st, body = doReq(t, ts.URL, "GET", "/vets", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 vets, got %d", st)
	}
	var clinics []map[string]any
	_ = json.Unmarshal(body, &clinics)
	if len(clinics) == 0 {
		t.Fatalf("expected non-empty vet directory")
	}

	st, body = doReq(t, ts.URL, "GET", "/vets/emergency-url?lat=-8.0&lng=-34.842", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 emergency url, got %d", st)
	}
	var eu map[string]string
	_ = json.Unmarshal(body, &eu)
	if !strings.Contains(eu["url"], "google.com/maps") {
		t.Fatalf("unexpected emergency url: %v", eu)
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
