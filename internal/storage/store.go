package storage

import (
	"context"
	"errors"

	"github.com/mmynk/restapis/internal/models"
)

// Collection names.
const (
	ComposersCollection = "composers"
	PersonsCollection   = "persons"
	CustomersCollection = "customers"
	TeamsCollection     = "teams"
	UsersCollection     = "users"
)

// Store exposes the API's collections with entity-specific operations.
//
// Lookups that find nothing return (nil, nil). Writes that target a missing
// document return ErrNotFound. Backend failures are *OpError.
type Store struct {
	backend   Backend
	composers *Collection[models.Composer]
	persons   *Collection[models.Person]
	customers *Collection[models.Customer]
	teams     *Collection[models.Team]
	users     *Collection[models.User]
}

// New creates a Store over the given backend. The Store owns the backend and
// closes it in Close.
func New(backend Backend) *Store {
	return &Store{
		backend:   backend,
		composers: NewCollection[models.Composer](backend, ComposersCollection),
		persons:   NewCollection[models.Person](backend, PersonsCollection),
		customers: NewCollection[models.Customer](backend, CustomersCollection),
		teams:     NewCollection[models.Team](backend, TeamsCollection),
		users:     NewCollection[models.User](backend, UsersCollection),
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// CreateComposer persists a new composer and populates composer.ID.
func (s *Store) CreateComposer(ctx context.Context, composer *models.Composer) error {
	composer.ID = NewID()
	return s.composers.Insert(ctx, composer.ID, composer)
}

// ListComposers returns every composer.
func (s *Store) ListComposers(ctx context.Context) ([]models.Composer, error) {
	return s.composers.All(ctx)
}

// GetComposer retrieves a composer by ID.
func (s *Store) GetComposer(ctx context.Context, id string) (*models.Composer, error) {
	return notFoundAsNil(s.composers.Get(ctx, id))
}

// UpdateComposer overwrites an existing composer.
func (s *Store) UpdateComposer(ctx context.Context, composer *models.Composer) error {
	return s.composers.Replace(ctx, composer.ID, composer)
}

// DeleteComposer removes a composer and returns its prior state.
func (s *Store) DeleteComposer(ctx context.Context, id string) (*models.Composer, error) {
	return notFoundAsNil(s.composers.Delete(ctx, id))
}

// CreatePerson persists a new person and populates person.ID.
func (s *Store) CreatePerson(ctx context.Context, person *models.Person) error {
	person.ID = NewID()
	if person.Roles == nil {
		person.Roles = []models.Role{}
	}
	if person.Dependents == nil {
		person.Dependents = []models.Dependent{}
	}
	return s.persons.Insert(ctx, person.ID, person)
}

// ListPersons returns every person.
func (s *Store) ListPersons(ctx context.Context) ([]models.Person, error) {
	return s.persons.All(ctx)
}

// CreateCustomer persists a new customer with an empty invoice list.
func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.ID = NewID()
	if customer.Invoices == nil {
		customer.Invoices = []models.Invoice{}
	}
	return s.customers.Insert(ctx, customer.ID, customer)
}

// GetCustomerByUserName returns the first customer with the given user name.
func (s *Store) GetCustomerByUserName(ctx context.Context, userName string) (*models.Customer, error) {
	return notFoundAsNil(s.customers.FindOne(ctx, "userName", userName))
}

// AddInvoice appends an invoice to a customer in a single store operation.
func (s *Store) AddInvoice(ctx context.Context, customerID string, invoice models.Invoice) error {
	if invoice.LineItems == nil {
		invoice.LineItems = []models.LineItem{}
	}
	return s.customers.Push(ctx, customerID, "invoices", invoice)
}

// CreateTeam persists a new team with an empty roster.
func (s *Store) CreateTeam(ctx context.Context, team *models.Team) error {
	team.ID = NewID()
	if team.Players == nil {
		team.Players = []models.Player{}
	}
	return s.teams.Insert(ctx, team.ID, team)
}

// ListTeams returns every team.
func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.teams.All(ctx)
}

// GetTeam retrieves a team by ID.
func (s *Store) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	return notFoundAsNil(s.teams.Get(ctx, id))
}

// AddPlayer appends a player to a team in a single store operation.
func (s *Store) AddPlayer(ctx context.Context, teamID string, player models.Player) error {
	return s.teams.Push(ctx, teamID, "players", player)
}

// DeleteTeam removes a team and returns its prior state.
func (s *Store) DeleteTeam(ctx context.Context, id string) (*models.Team, error) {
	return notFoundAsNil(s.teams.Delete(ctx, id))
}

// CreateUser persists a new user and populates user.ID.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = NewID()
	return s.users.Insert(ctx, user.ID, user)
}

// GetUserByUserName retrieves a user by user name.
func (s *Store) GetUserByUserName(ctx context.Context, userName string) (*models.User, error) {
	return notFoundAsNil(s.users.FindOne(ctx, "userName", userName))
}

// GetUserByID retrieves a user by ID.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return notFoundAsNil(s.users.Get(ctx, id))
}

func notFoundAsNil[T any](doc *T, err error) (*T, error) {
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return doc, err
}
