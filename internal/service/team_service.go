package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/storage"
)

// TeamStore is the storage TeamService needs.
type TeamStore interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	AddPlayer(ctx context.Context, teamID string, player models.Player) error
	DeleteTeam(ctx context.Context, id string) (*models.Team, error)
}

// TeamService manages teams and their rosters.
type TeamService struct {
	store TeamStore
}

func NewTeamService(store TeamStore) *TeamService {
	return &TeamService{store: store}
}

func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	return s.store.ListTeams(ctx)
}

// Create persists a new team with an empty roster.
func (s *TeamService) Create(ctx context.Context, name, mascot string) (*models.Team, error) {
	team := &models.Team{Name: name, Mascot: mascot, Players: []models.Player{}}
	if err := validate(team); err != nil {
		return nil, err
	}
	if err := s.store.CreateTeam(ctx, team); err != nil {
		return nil, err
	}

	slog.Info("Team created", "team_id", team.ID, "name", name)
	return team, nil
}

// AssignPlayer appends a player to the team and returns the updated team.
func (s *TeamService) AssignPlayer(ctx context.Context, teamID string, player models.Player) (*models.Team, error) {
	if err := validate(&player); err != nil {
		return nil, err
	}

	if err := s.store.AddPlayer(ctx, teamID, player); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidTeamID
		}
		return nil, err
	}

	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrInvalidTeamID
	}

	slog.Info("Player assigned", "team_id", teamID, "players_count", len(team.Players))
	return team, nil
}

// ListPlayers returns the roster of a team.
func (s *TeamService) ListPlayers(ctx context.Context, teamID string) ([]models.Player, error) {
	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrInvalidTeamID
	}
	if team.Players == nil {
		return []models.Player{}, nil
	}
	return team.Players, nil
}

// Delete removes a team and returns its prior state.
func (s *TeamService) Delete(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.store.DeleteTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrInvalidTeamID
	}

	slog.Info("Team deleted", "team_id", teamID)
	return team, nil
}
