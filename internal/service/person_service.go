package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/restapis/internal/models"
)

// PersonStore is the storage PersonService needs.
type PersonStore interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	ListPersons(ctx context.Context) ([]models.Person, error)
}

// PersonService creates and lists persons. Persons are never updated or deleted.
type PersonService struct {
	store PersonStore
}

func NewPersonService(store PersonStore) *PersonService {
	return &PersonService{store: store}
}

func (s *PersonService) List(ctx context.Context) ([]models.Person, error) {
	return s.store.ListPersons(ctx)
}

// Create validates and persists a new person. Empty roles and dependents are
// allowed; missing ones are not.
func (s *PersonService) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	if err := validate(person); err != nil {
		return nil, err
	}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		return nil, err
	}

	slog.Info("Person created", "person_id", person.ID, "roles_count", len(person.Roles))
	return person, nil
}
