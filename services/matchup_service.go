package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aidosk/courtscore/formats"
	"github.com/aidosk/courtscore/models"
	"github.com/aidosk/courtscore/repositories"
)

type MatchUpService interface {
	Create(ctx context.Context, matchUp *models.MatchUp) error
	GetByID(ctx context.Context, id int) (*models.MatchUp, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.MatchUpStatus) ([]*models.MatchUp, error)
	Delete(ctx context.Context, id int) error
}

type matchUpService struct {
	db             *sql.DB
	matchUpRepo    repositories.MatchUpRepository
	tournamentRepo repositories.TournamentRepository
}

func NewMatchUpService(
	db *sql.DB,
	matchUpRepo repositories.MatchUpRepository,
	tournamentRepo repositories.TournamentRepository,
) MatchUpService {
	return &matchUpService{
		db:             db,
		matchUpRepo:    matchUpRepo,
		tournamentRepo: tournamentRepo,
	}
}

func (s *matchUpService) Create(ctx context.Context, matchUp *models.MatchUp) error {
	if strings.TrimSpace(matchUp.Side1Name) == "" || strings.TrimSpace(matchUp.Side2Name) == "" {
		return ErrSideNamesRequired
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, matchUp.TournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to load tournament %d: %w", matchUp.TournamentID, err)
	}

	// A matchUp without its own format code inherits the tournament default.
	if matchUp.FormatCode == "" {
		matchUp.FormatCode = tournament.DefaultFormatCode
	}
	if _, err := formats.Parse(matchUp.FormatCode); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormatCode, matchUp.FormatCode)
	}

	// New records start with an empty score regardless of the input payload.
	matchUp.ApplyScore(models.MatchScore{Status: models.StatusToBePlayed})

	if err := s.matchUpRepo.Create(ctx, s.db, matchUp); err != nil {
		if errors.Is(err, repositories.ErrMatchUpTournamentInvalid) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to create matchUp: %w", err)
	}
	return nil
}

func (s *matchUpService) GetByID(ctx context.Context, id int) (*models.MatchUp, error) {
	matchUp, err := s.matchUpRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchUpNotFound) {
			return nil, ErrMatchUpNotFound
		}
		return nil, fmt.Errorf("failed to get matchUp %d: %w", id, err)
	}
	return matchUp, nil
}

func (s *matchUpService) ListByTournament(ctx context.Context, tournamentID int, status *models.MatchUpStatus) ([]*models.MatchUp, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	matchUps, err := s.matchUpRepo.ListByTournament(ctx, tournamentID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list matchups for tournament %d: %w", tournamentID, err)
	}
	return matchUps, nil
}

func (s *matchUpService) Delete(ctx context.Context, id int) error {
	if err := s.matchUpRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchUpNotFound) {
			return ErrMatchUpNotFound
		}
		return fmt.Errorf("failed to delete matchUp %d: %w", id, err)
	}
	return nil
}
