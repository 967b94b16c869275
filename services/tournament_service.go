package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aidosk/courtscore/formats"
	"github.com/aidosk/courtscore/models"
	"github.com/aidosk/courtscore/repositories"
)

type TournamentService interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
	Delete(ctx context.Context, id int) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository) TournamentService {
	return &tournamentService{tournamentRepo: tournamentRepo}
}

func (s *tournamentService) Create(ctx context.Context, tournament *models.Tournament) error {
	if strings.TrimSpace(tournament.Name) == "" {
		return ErrTournamentNameRequired
	}
	if tournament.DefaultFormatCode != "" {
		if _, err := formats.Parse(tournament.DefaultFormatCode); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidFormatCode, tournament.DefaultFormatCode)
		}
	}
	if !tournament.EndDate.IsZero() && tournament.EndDate.Before(tournament.StartDate) {
		return ErrTournamentInvalidDateRange
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNameConflict):
			return ErrTournamentNameConflict
		case errors.Is(err, repositories.ErrTournamentOrganizerInvalid):
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) List(ctx context.Context) ([]*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) Delete(ctx context.Context, id int) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return nil
}
