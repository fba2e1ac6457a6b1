package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dog-walk-service/internal/router"

	"golang.org/x/crypto/bcrypt"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{BcryptCost: bcrypt.MinCost}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_WalkLifecycleAndSummary(t *testing.T) {
	ts := newServer(t)

	// 1) Dueño, dos paseadores y un perro
	aliceID := registerUser(t, ts.URL, "alice123", "owner")
	bobID := registerUser(t, ts.URL, "bobwalker", "walker")
	samID := registerUser(t, ts.URL, "sam36", "walker")

	dogID := createID(t, ts.URL, "/api/dogs", map[string]any{
		"owner_id": aliceID,
		"name":     "Max",
		"size":     "large",
	}, "dog_id")

	// 2) Pedido ya terminado en el tiempo (para poder completarlo)
	requestID := createID(t, ts.URL, "/api/walkrequests", map[string]any{
		"dog_id":           dogID,
		"requested_time":   time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339),
		"duration_minutes": 30,
		"location":         "Central Park",
	}, "request_id")

	// 3) Aparece en el feed de abiertos
	{
		var open []map[string]any
		getJSON(t, ts.URL, "/api/walkrequests/open", &open)
		if len(open) != 1 || open[0]["dog_name"] != "Max" || open[0]["owner_username"] != "alice123" {
			t.Fatalf("unexpected open listing: %#v", open)
		}
	}

	// 4) Dos postulaciones; aplicar dos veces el mismo paseador => 409
	bobApp := createID(t, ts.URL, fmt.Sprintf("/api/walkrequests/%d/applications", requestID), map[string]any{"walker_id": bobID}, "application_id")
	samApp := createID(t, ts.URL, fmt.Sprintf("/api/walkrequests/%d/applications", requestID), map[string]any{"walker_id": samID}, "application_id")
	{
		st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/applications", requestID), map[string]any{"walker_id": bobID})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on duplicate apply, got %d", st)
		}
	}

	// 5) Un dueño no puede postularse
	{
		st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/applications", requestID), map[string]any{"walker_id": aliceID})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 when owner applies, got %d", st)
		}
	}

	// 6) Aceptar a bob; la segunda aceptación choca
	{
		st, body := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/applications/%d/accept", bobApp), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 accept, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/applications/%d/accept", samApp), nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second accept, got %d", st)
		}
	}
	{
		var apps []map[string]any
		getJSON(t, ts.URL, fmt.Sprintf("/api/walkrequests/%d/applications", requestID), &apps)
		statuses := map[float64]any{}
		for _, a := range apps {
			statuses[a["application_id"].(float64)] = a["status"]
		}
		if statuses[float64(bobApp)] != "accepted" || statuses[float64(samApp)] != "rejected" {
			t.Fatalf("unexpected application statuses: %#v", apps)
		}
	}

	// 7) Ya no está abierto
	{
		var open []map[string]any
		getJSON(t, ts.URL, "/api/walkrequests/open", &open)
		if len(open) != 0 {
			t.Fatalf("accepted request must leave the open listing: %#v", open)
		}
	}

	// 8) Calificar antes de completar => 409
	{
		st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/rating", requestID), map[string]any{"rating": 5})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 rating before completion, got %d", st)
		}
	}

	// 9) Completar
	{
		st, body := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/complete", requestID), nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"status":"completed"`) {
			t.Fatalf("expected 200 completed, got %d body=%s", st, string(body))
		}
	}

	// 10) Rating fuera de rango => 400; válido => 201; repetido => 409
	{
		st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/rating", requestID), map[string]any{"rating": 6})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for rating 6, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/rating", requestID), map[string]any{"rating": 5, "comment": "great"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 rating, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/rating", requestID), map[string]any{"rating": 4})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second rating, got %d", st)
		}
	}

	// 11) Resumen: bob 1/5.0/1, sam sin calificaciones => average null
	{
		st, body := doReq(t, ts.URL, "GET", "/api/walkers/summary", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}
		var got []map[string]any
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("decode summary: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 walkers, got %s", string(body))
		}
		if got[0]["walker_username"] != "bobwalker" || got[0]["total_ratings"] != float64(1) ||
			got[0]["average_rating"] != float64(5) || got[0]["completed_walks"] != float64(1) {
			t.Fatalf("unexpected bob summary: %#v", got[0])
		}
		if got[1]["walker_username"] != "sam36" || got[1]["average_rating"] != nil || got[1]["completed_walks"] != float64(0) {
			t.Fatalf("unexpected sam summary: %#v", got[1])
		}
		if !strings.Contains(string(body), `"average_rating":null`) {
			t.Fatalf("average_rating must serialize as null: %s", string(body))
		}
	}

	// 12) Métricas del ciclo de vida
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `dogwalk_walks_events_total{type="walk.rated"} 1`) {
			t.Fatalf("expected walk.rated counter, got %d", st)
		}
	}
}

func TestHTTP_CompleteBeforeEndIsConflict(t *testing.T) {
	ts := newServer(t)

	ownerID := registerUser(t, ts.URL, "carol123", "owner")
	walkerID := registerUser(t, ts.URL, "emily99", "walker")
	dogID := createID(t, ts.URL, "/api/dogs", map[string]any{"owner_id": ownerID, "name": "Bella", "size": "small"}, "dog_id")

	var dog struct {
		ID      int64  `json:"dog_id"`
		OwnerID int64  `json:"owner_id"`
		Name    string `json:"name"`
		Size    string `json:"size"`
	}
	getJSON(t, ts.URL, fmt.Sprintf("/api/dogs/%d", dogID), &dog)
	if dog.ID != dogID || dog.OwnerID != ownerID || dog.Name != "Bella" || dog.Size != "small" {
		t.Fatalf("unexpected dog: %+v", dog)
	}

	requestID := createID(t, ts.URL, "/api/walkrequests", map[string]any{
		"dog_id":           dogID,
		"requested_time":   time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		"duration_minutes": 45,
		"location":         "Riverside",
	}, "request_id")
	appID := createID(t, ts.URL, fmt.Sprintf("/api/walkrequests/%d/applications", requestID), map[string]any{"walker_id": walkerID}, "application_id")

	if st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/applications/%d/accept", appID), nil); st != http.StatusOK {
		t.Fatalf("expected 200 accept, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/complete", requestID), nil); st != http.StatusConflict {
		t.Fatalf("expected 409 completing a future walk, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/cancel", requestID), nil); st != http.StatusOK {
		t.Fatalf("expected 200 cancel, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/api/walkrequests/%d/cancel", requestID), nil); st != http.StatusConflict {
		t.Fatalf("expected 409 cancelling twice, got %d", st)
	}
}

func TestHTTP_ValidationAndNotFound(t *testing.T) {
	ts := newServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown role", "POST", "/api/users", map[string]any{"username": "x", "email": "x@example.com", "password": "secret123", "role": "admin"}, http.StatusBadRequest},
		{"unknown field", "POST", "/api/dogs", map[string]any{"owner_id": 1, "name": "Max", "size": "large", "color": "brown"}, http.StatusBadRequest},
		{"missing dog", "POST", "/api/walkrequests", map[string]any{"dog_id": 99, "requested_time": time.Now().UTC().Format(time.RFC3339), "duration_minutes": 30, "location": "Park"}, http.StatusNotFound},
		{"bad duration", "POST", "/api/walkrequests", map[string]any{"dog_id": 1, "requested_time": time.Now().UTC().Format(time.RFC3339), "duration_minutes": 0, "location": "Park"}, http.StatusBadRequest},
		{"duration over a day", "POST", "/api/walkrequests", map[string]any{"dog_id": 1, "requested_time": time.Now().UTC().Format(time.RFC3339), "duration_minutes": 200000000, "location": "Park"}, http.StatusBadRequest},
		{"missing dog by id", "GET", "/api/dogs/42", nil, http.StatusNotFound},
		{"bad time", "POST", "/api/walkrequests", map[string]any{"dog_id": 1, "requested_time": "tomorrow", "duration_minutes": 30, "location": "Park"}, http.StatusBadRequest},
		{"bad id", "GET", "/api/walkrequests/abc", nil, http.StatusBadRequest},
		{"missing request", "GET", "/api/walkrequests/42", nil, http.StatusNotFound},
		{"missing application", "POST", "/api/applications/42/accept", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
			if st != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, st, string(body))
			}
		})
	}

	// listados vacíos son [] y no null
	for _, p := range []string{"/api/dogs", "/api/walkrequests/open", "/api/walkers/summary"} {
		st, body := doReq(t, ts.URL, "GET", p, nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("GET %s: expected 200 [], got %d %s", p, st, string(body))
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)
	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %s", st, string(body))
	}
}

func registerUser(t *testing.T, baseURL, username, role string) int64 {
	t.Helper()
	return createID(t, baseURL, "/api/users", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
		"role":     role,
	}, "user_id")
}

func createID(t *testing.T, baseURL, path string, payload map[string]any, idField string) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, string(body))
	}

	var resp map[string]any
	_ = json.Unmarshal(body, &resp)
	id, ok := resp[idField].(float64)
	if !ok || id <= 0 {
		t.Fatalf("POST %s: missing %s body=%s", path, idField, string(body))
	}
	return int64(id)
}

func getJSON(t *testing.T, baseURL, path string, out any) {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", path, nil)
	if st != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d body=%s", path, st, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("GET %s: decode: %v", path, err)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
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

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
