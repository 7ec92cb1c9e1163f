package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/storage"
)

// ComposerStore is the storage ComposerService needs.
type ComposerStore interface {
	CreateComposer(ctx context.Context, composer *models.Composer) error
	ListComposers(ctx context.Context) ([]models.Composer, error)
	GetComposer(ctx context.Context, id string) (*models.Composer, error)
	UpdateComposer(ctx context.Context, composer *models.Composer) error
	DeleteComposer(ctx context.Context, id string) (*models.Composer, error)
}

// ComposerService implements composer CRUD.
type ComposerService struct {
	store ComposerStore
}

// NewComposerService creates a ComposerService with the given storage backend.
func NewComposerService(store ComposerStore) *ComposerService {
	return &ComposerService{store: store}
}

// List returns every composer.
func (s *ComposerService) List(ctx context.Context) ([]models.Composer, error) {
	return s.store.ListComposers(ctx)
}

// Get returns the composer with the given id, or nil if there is none.
func (s *ComposerService) Get(ctx context.Context, id string) (*models.Composer, error) {
	return s.store.GetComposer(ctx, id)
}

// Create validates and persists a new composer.
func (s *ComposerService) Create(ctx context.Context, firstName, lastName string) (*models.Composer, error) {
	composer := &models.Composer{FirstName: firstName, LastName: lastName}
	if err := validate(composer); err != nil {
		return nil, err
	}
	if err := s.store.CreateComposer(ctx, composer); err != nil {
		return nil, err
	}

	slog.Info("Composer created", "composer_id", composer.ID)
	return composer, nil
}

// Update replaces the names of an existing composer.
func (s *ComposerService) Update(ctx context.Context, id, firstName, lastName string) (*models.Composer, error) {
	composer, err := s.store.GetComposer(ctx, id)
	if err != nil {
		return nil, err
	}
	if composer == nil {
		return nil, ErrInvalidComposerID
	}

	composer.FirstName = firstName
	composer.LastName = lastName
	if err := validate(composer); err != nil {
		return nil, err
	}

	if err := s.store.UpdateComposer(ctx, composer); err != nil {
		// Deleted between the lookup and the write.
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidComposerID
		}
		return nil, err
	}

	slog.Info("Composer updated", "composer_id", composer.ID)
	return composer, nil
}

// Delete removes a composer and returns its prior state.
func (s *ComposerService) Delete(ctx context.Context, id string) (*models.Composer, error) {
	composer, err := s.store.DeleteComposer(ctx, id)
	if err != nil {
		return nil, err
	}
	if composer == nil {
		return nil, ErrInvalidComposerID
	}

	slog.Info("Composer deleted", "composer_id", id)
	return composer, nil
}
