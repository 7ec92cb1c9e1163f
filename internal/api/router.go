package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/mmynk/restapis/docs" // registers the OpenAPI document
	"github.com/mmynk/restapis/internal/auth"
	"github.com/mmynk/restapis/internal/middleware"
	"github.com/mmynk/restapis/internal/service"
)

// Services are the domain services behind the routes.
type Services struct {
	Composers *service.ComposerService
	Persons   *service.PersonService
	Customers *service.CustomerService
	Teams     *service.TeamService
	Sessions  *service.SessionService
}

// Options shape the HTTP surface.
type Options struct {
	// Prefix is prepended to every API route, e.g. "/api".
	Prefix       string
	StrictStatus bool
	CORSOrigins  []string
	JWTManager   *auth.JWTManager
}

// NewRouter registers every route and wraps the mux in the middleware chain.
func NewRouter(svc Services, opts Options) http.Handler {
	mux := http.NewServeMux()
	p := opts.Prefix

	composers := NewComposerHandler(svc.Composers, opts.StrictStatus)
	persons := NewPersonHandler(svc.Persons, opts.StrictStatus)
	customers := NewCustomerHandler(svc.Customers, opts.StrictStatus)
	teams := NewTeamHandler(svc.Teams, opts.StrictStatus)
	sessions := NewSessionHandler(svc.Sessions, opts.StrictStatus)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /api-docs/", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	// Composers
	mux.HandleFunc("GET "+p+"/composers", composers.List)
	mux.HandleFunc("GET "+p+"/composers/{id}", composers.Get)
	mux.HandleFunc("POST "+p+"/composers", composers.Create)
	mux.HandleFunc("PUT "+p+"/composers/{id}", composers.Update)
	mux.HandleFunc("DELETE "+p+"/composers/{id}", composers.Delete)

	// Persons
	mux.HandleFunc("GET "+p+"/persons", persons.List)
	mux.HandleFunc("POST "+p+"/persons", persons.Create)

	// Customers and invoices
	mux.HandleFunc("POST "+p+"/customers", customers.Create)
	mux.HandleFunc("POST "+p+"/customers/{username}/invoices", customers.CreateInvoice)
	mux.HandleFunc("GET "+p+"/customers/{username}/invoices", customers.ListInvoices)

	// Teams and players
	mux.HandleFunc("GET "+p+"/teams", teams.List)
	mux.HandleFunc("POST "+p+"/teams", teams.Create)
	mux.HandleFunc("POST "+p+"/teams/{id}/players", teams.AssignPlayer)
	mux.HandleFunc("GET "+p+"/teams/{id}/players", teams.ListPlayers)
	mux.HandleFunc("DELETE "+p+"/teams/{id}", teams.Delete)

	// Session
	mux.HandleFunc("POST "+p+"/signup", sessions.Signup)
	mux.HandleFunc("POST "+p+"/login", sessions.Login)
	mux.Handle("GET "+p+"/users/me", middleware.RequireAuth(opts.JWTManager)(http.HandlerFunc(sessions.Me)))

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging,
		middleware.CORS(opts.CORSOrigins),
		middleware.Metrics,
	)
}
