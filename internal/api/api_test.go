package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/mmynk/restapis/internal/auth"
	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/service"
	"github.com/mmynk/restapis/internal/storage"
	"github.com/mmynk/restapis/internal/storage/sqlite"
)

// setupTestServer starts the full router over a temp SQLite store.
func setupTestServer(t *testing.T, strict bool) *httptest.Server {
	t.Helper()

	backend, err := sqlite.New(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	store := storage.New(backend)

	jwtManager := auth.NewJWTManager("test-secret", "restapis", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store, 4)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewRouter(Services{
		Composers: service.NewComposerService(store),
		Persons:   service.NewPersonService(store),
		Customers: service.NewCustomerService(store),
		Teams:     service.NewTeamService(store),
		Sessions:  service.NewSessionService(authenticator, jwtManager, store, logger),
	}, Options{
		Prefix:       "/api",
		StrictStatus: strict,
		JWTManager:   jwtManager,
	})

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

// do sends a request and decodes the JSON response into out when out is non-nil.
func do(t *testing.T, server *httptest.Server, method, path, body string, out any) int {
	t.Helper()
	return doWithHeader(t, server, method, path, body, nil, out)
}

func doWithHeader(t *testing.T, server *httptest.Server, method, path, body string, header http.Header, out any) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("%s %s: failed to decode %q: %v", method, path, data, err)
		}
	}
	return resp.StatusCode
}

func expectStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Fatalf("status = %d, want %d", got, want)
	}
}

func TestCreateComposerExample(t *testing.T) {
	server := setupTestServer(t, false)

	var created models.Composer
	status := do(t, server, http.MethodPost, "/api/composers", `{"firstName":"Johann","lastName":"Bach"}`, &created)
	expectStatus(t, status, http.StatusOK)

	if created.FirstName != "Johann" || created.LastName != "Bach" || created.ID == "" {
		t.Fatalf("unexpected composer: %+v", created)
	}

	var raw map[string]any
	do(t, server, http.MethodGet, "/api/composers/"+created.ID, "", &raw)
	if raw["_id"] != created.ID {
		t.Errorf("expected _id %q in %v", created.ID, raw)
	}
}

func TestComposerRoutes(t *testing.T) {
	server := setupTestServer(t, false)

	var list []models.Composer
	expectStatus(t, do(t, server, http.MethodGet, "/api/composers", "", &list), http.StatusOK)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty array, got %#v", list)
	}

	var missing *models.Composer
	expectStatus(t, do(t, server, http.MethodGet, "/api/composers/nope", "", &missing), http.StatusOK)
	if missing != nil {
		t.Fatalf("expected null, got %+v", missing)
	}

	var created models.Composer
	do(t, server, http.MethodPost, "/api/composers", `{"firstName":"Clara","lastName":"Wieck"}`, &created)

	var updated models.Composer
	expectStatus(t, do(t, server, http.MethodPut, "/api/composers/"+created.ID,
		`{"firstName":"Clara","lastName":"Schumann"}`, &updated), http.StatusOK)
	if updated.LastName != "Schumann" || updated.ID != created.ID {
		t.Errorf("unexpected update: %+v", updated)
	}

	var msg models.MessageResponse
	expectStatus(t, do(t, server, http.MethodPut, "/api/composers/nope",
		`{"firstName":"A","lastName":"B"}`, &msg), http.StatusUnauthorized)
	if msg.Message != "Invalid composerId." {
		t.Errorf("message = %q", msg.Message)
	}

	var deleted models.Composer
	expectStatus(t, do(t, server, http.MethodDelete, "/api/composers/"+created.ID, "", &deleted), http.StatusOK)
	if deleted.LastName != "Schumann" {
		t.Errorf("expected prior state, got %+v", deleted)
	}

	expectStatus(t, do(t, server, http.MethodDelete, "/api/composers/"+created.ID, "", &msg), http.StatusUnauthorized)
	if msg.Message != "Invalid composerId." {
		t.Errorf("message = %q", msg.Message)
	}
}

func TestValidationAndMalformedBodies(t *testing.T) {
	server := setupTestServer(t, false)

	var msg models.MessageResponse
	expectStatus(t, do(t, server, http.MethodPost, "/api/composers", `{"firstName":"Johann"}`, &msg),
		http.StatusNotImplemented)
	if !strings.HasPrefix(msg.Message, "Database Exception: ") || !strings.Contains(msg.Message, "lastName") {
		t.Errorf("message = %q", msg.Message)
	}

	expectStatus(t, do(t, server, http.MethodPost, "/api/composers", `{"firstName":`, &msg), http.StatusBadRequest)
	if msg.Message != "Invalid JSON" {
		t.Errorf("message = %q", msg.Message)
	}

	// Missing roles is rejected; empty roles is not.
	expectStatus(t, do(t, server, http.MethodPost, "/api/persons",
		`{"firstName":"A","lastName":"B","dependents":[],"birthDate":"2000-01-01"}`, &msg), http.StatusNotImplemented)

	var person models.Person
	expectStatus(t, do(t, server, http.MethodPost, "/api/persons",
		`{"firstName":"A","lastName":"B","roles":[],"dependents":[],"birthDate":"2000-01-01"}`, &person), http.StatusOK)
	if person.ID == "" || person.Roles == nil {
		t.Errorf("unexpected person: %+v", person)
	}
}

func TestStrictStatus(t *testing.T) {
	server := setupTestServer(t, true)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"missing composer", http.MethodPut, "/api/composers/nope", `{"firstName":"A","lastName":"B"}`, http.StatusNotFound},
		{"missing team", http.MethodGet, "/api/teams/nope/players", "", http.StatusNotFound},
		{"missing customer", http.MethodGet, "/api/customers/nobody/invoices", "", http.StatusNotFound},
		{"validation", http.MethodPost, "/api/teams", `{"name":"Gophers"}`, http.StatusBadRequest},
		{"bad credentials", http.MethodPost, "/api/login", `{"userName":"x","password":"y"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, do(t, server, tt.method, tt.path, tt.body, nil), tt.want)
		})
	}

	body := `{"userName":"gopher","password":"hunter2","emailAddress":"g@example.com"}`
	expectStatus(t, do(t, server, http.MethodPost, "/api/signup", body, nil), http.StatusOK)
	expectStatus(t, do(t, server, http.MethodPost, "/api/signup", body, nil), http.StatusConflict)
}

func TestCustomerInvoiceRoutes(t *testing.T) {
	server := setupTestServer(t, false)

	var msg models.MessageResponse
	expectStatus(t, do(t, server, http.MethodPost, "/api/customers",
		`{"firstName":"Node","lastName":"Shopper","userName":"nshopper"}`, &msg), http.StatusOK)
	if msg.Message != "Customer added." {
		t.Errorf("message = %q", msg.Message)
	}

	var invoices []models.Invoice
	expectStatus(t, do(t, server, http.MethodGet, "/api/customers/nshopper/invoices", "", &invoices), http.StatusOK)
	if invoices == nil || len(invoices) != 0 {
		t.Fatalf("expected empty array, got %#v", invoices)
	}

	for _, subtotal := range []string{"10", "20"} {
		invoice := `{"subtotal":` + subtotal + `,"tax":1,"dateCreated":"2024-01-01","dateShipped":"2024-01-02",` +
			`"lineItems":[{"name":"widget","price":` + subtotal + `,"quantity":1}]}`
		expectStatus(t, do(t, server, http.MethodPost, "/api/customers/nshopper/invoices", invoice, &msg), http.StatusOK)
		if msg.Message != "Invoice added." {
			t.Errorf("message = %q", msg.Message)
		}
	}

	expectStatus(t, do(t, server, http.MethodGet, "/api/customers/nshopper/invoices", "", &invoices), http.StatusOK)
	if len(invoices) != 2 || invoices[0].Subtotal != 10 || invoices[1].Subtotal != 20 {
		t.Fatalf("expected two invoices in order, got %+v", invoices)
	}

	// Zero is a value, not a missing field.
	zero := `{"subtotal":0,"tax":0,"dateCreated":"2024-01-01","dateShipped":"2024-01-02","lineItems":[]}`
	expectStatus(t, do(t, server, http.MethodPost, "/api/customers/nshopper/invoices", zero, nil), http.StatusOK)

	missingTax := `{"subtotal":1,"dateCreated":"2024-01-01","dateShipped":"2024-01-02","lineItems":[]}`
	expectStatus(t, do(t, server, http.MethodPost, "/api/customers/nshopper/invoices", missingTax, nil), http.StatusNotImplemented)

	expectStatus(t, do(t, server, http.MethodPost, "/api/customers/nobody/invoices", zero, &msg), http.StatusUnauthorized)
	expectStatus(t, do(t, server, http.MethodGet, "/api/customers/nobody/invoices", "", &msg), http.StatusUnauthorized)
}

func TestTeamRoutes(t *testing.T) {
	server := setupTestServer(t, false)

	var team models.Team
	expectStatus(t, do(t, server, http.MethodPost, "/api/teams", `{"name":"Gophers","mascot":"Gordon"}`, &team), http.StatusOK)
	if team.ID == "" || team.Players == nil {
		t.Fatalf("unexpected team: %+v", team)
	}

	var updated models.Team
	expectStatus(t, do(t, server, http.MethodPost, "/api/teams/"+team.ID+"/players",
		`{"firstName":"Rob","lastName":"Pike","salary":100}`, &updated), http.StatusOK)
	if len(updated.Players) != 1 || updated.Players[0].Salary != 100 {
		t.Fatalf("unexpected roster: %+v", updated.Players)
	}

	var players []models.Player
	expectStatus(t, do(t, server, http.MethodGet, "/api/teams/"+team.ID+"/players", "", &players), http.StatusOK)
	if len(players) != 1 || players[0].FirstName != "Rob" {
		t.Errorf("unexpected players: %+v", players)
	}

	var teams []models.Team
	expectStatus(t, do(t, server, http.MethodGet, "/api/teams", "", &teams), http.StatusOK)
	if len(teams) != 1 {
		t.Errorf("expected 1 team, got %d", len(teams))
	}

	var msg models.MessageResponse
	expectStatus(t, do(t, server, http.MethodPost, "/api/teams/nope/players",
		`{"firstName":"A","lastName":"B","salary":1}`, &msg), http.StatusUnauthorized)
	if msg.Message != "Invalid teamId." {
		t.Errorf("message = %q", msg.Message)
	}

	var deleted models.Team
	expectStatus(t, do(t, server, http.MethodDelete, "/api/teams/"+team.ID, "", &deleted), http.StatusOK)
	if deleted.ID != team.ID {
		t.Errorf("unexpected deleted team: %+v", deleted)
	}
	expectStatus(t, do(t, server, http.MethodDelete, "/api/teams/"+team.ID, "", &msg), http.StatusUnauthorized)
}

func TestSessionRoutes(t *testing.T) {
	server := setupTestServer(t, false)

	var raw map[string]any
	expectStatus(t, do(t, server, http.MethodPost, "/api/signup",
		`{"userName":"gopher","password":"hunter2","emailAddress":"g@example.com"}`, &raw), http.StatusOK)
	if _, ok := raw["password"]; ok {
		t.Fatalf("signup response leaked the password hash: %v", raw)
	}
	if raw["userName"] != "gopher" || raw["_id"] == "" {
		t.Errorf("unexpected signup response: %v", raw)
	}

	var msg models.MessageResponse
	expectStatus(t, do(t, server, http.MethodPost, "/api/signup",
		`{"userName":"gopher","password":"other","emailAddress":"h@example.com"}`, &msg), http.StatusUnauthorized)
	if msg.Message != "Username is already in use." {
		t.Errorf("message = %q", msg.Message)
	}

	var login models.LoginResponse
	expectStatus(t, do(t, server, http.MethodPost, "/api/login",
		`{"userName":"gopher","password":"hunter2"}`, &login), http.StatusOK)
	if login.Message != "User logged in." || login.Token == "" {
		t.Fatalf("unexpected login response: %+v", login)
	}

	var wrongPassword, unknownUser models.MessageResponse
	expectStatus(t, do(t, server, http.MethodPost, "/api/login",
		`{"userName":"gopher","password":"nope"}`, &wrongPassword), http.StatusUnauthorized)
	expectStatus(t, do(t, server, http.MethodPost, "/api/login",
		`{"userName":"nobody","password":"hunter2"}`, &unknownUser), http.StatusUnauthorized)
	if wrongPassword != unknownUser || wrongPassword.Message != "Invalid username and/or password." {
		t.Errorf("failures differ: %+v vs %+v", wrongPassword, unknownUser)
	}

	var me models.PublicUser
	header := http.Header{"Authorization": {"Bearer " + login.Token}}
	expectStatus(t, doWithHeader(t, server, http.MethodGet, "/api/users/me", "", header, &me), http.StatusOK)
	if me.UserName != "gopher" || me.EmailAddress != "g@example.com" {
		t.Errorf("unexpected me: %+v", me)
	}

	expectStatus(t, do(t, server, http.MethodGet, "/api/users/me", "", nil), http.StatusUnauthorized)
}

func TestOperationalRoutes(t *testing.T) {
	server := setupTestServer(t, false)

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "OK" {
		t.Errorf("health = %d %q", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID on every response")
	}

	// Generate at least one labelled sample before scraping.
	do(t, server, http.MethodGet, "/api/composers", "", nil)
	resp, err = http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !bytes.Contains(body, []byte("http_requests_total")) {
		t.Error("metrics output missing http_requests_total")
	}

	resp, err = http.Get(server.URL + "/api-docs/doc.json")
	if err != nil {
		t.Fatalf("GET /api-docs/doc.json failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !bytes.Contains(body, []byte(`"/composers"`)) {
		t.Errorf("doc.json = %d, body lacks /composers", resp.StatusCode)
	}

	expectStatus(t, do(t, server, http.MethodPatch, "/api/composers", "", nil), http.StatusMethodNotAllowed)
}
