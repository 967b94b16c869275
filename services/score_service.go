package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aidosk/courtscore/formats"
	"github.com/aidosk/courtscore/live"
	"github.com/aidosk/courtscore/models"
	"github.com/aidosk/courtscore/repositories"
	"github.com/aidosk/courtscore/scoring"
	"github.com/aidosk/courtscore/storage"
	"golang.org/x/sync/errgroup"
)

const exportConcurrency = 4

// ScoreRoomID names the live room for a matchUp.
func ScoreRoomID(matchUpID int) string {
	return fmt.Sprintf("matchup_%d", matchUpID)
}

// ScoreUpdate is the live payload pushed after every accepted token.
type ScoreUpdate struct {
	MatchUpID   int                  `json:"matchup_id"`
	Score       string               `json:"score"`
	Sets        []models.Set         `json:"sets"`
	WinningSide models.Side          `json:"winning_side,omitempty"`
	Status      models.MatchUpStatus `json:"status"`
}

// ExportResult reports one archived scoresheet.
type ExportResult struct {
	MatchUpID int    `json:"matchup_id"`
	Key       string `json:"key"`
	Location  string `json:"location"`
}

type ScoreService interface {
	// ApplyToken runs one entry token through the scoring engine against the
	// stored matchUp. Accepted tokens are persisted and broadcast; rejected
	// tokens change nothing and are reported back with the engine's message.
	ApplyToken(ctx context.Context, matchUpID int, token scoring.Token, cfg scoring.Config) (scoring.Result, error)

	// ExportCompleted archives a scoresheet for every completed matchUp of
	// the tournament.
	ExportCompleted(ctx context.Context, tournamentID int) ([]ExportResult, error)
}

type scoreService struct {
	matchUpRepo    repositories.MatchUpRepository
	tournamentRepo repositories.TournamentRepository
	hub            *live.Hub
	archiver       storage.ScoresheetArchiver
	logger         *slog.Logger
	exec           repositories.SQLExecutor
}

func NewScoreService(
	exec repositories.SQLExecutor,
	matchUpRepo repositories.MatchUpRepository,
	tournamentRepo repositories.TournamentRepository,
	hub *live.Hub,
	archiver storage.ScoresheetArchiver,
	logger *slog.Logger,
) ScoreService {
	return &scoreService{
		matchUpRepo:    matchUpRepo,
		tournamentRepo: tournamentRepo,
		hub:            hub,
		archiver:       archiver,
		logger:         logger,
		exec:           exec,
	}
}

func (s *scoreService) ApplyToken(ctx context.Context, matchUpID int, token scoring.Token, cfg scoring.Config) (scoring.Result, error) {
	matchUp, err := s.matchUpRepo.GetByID(ctx, matchUpID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchUpNotFound) {
			return scoring.Result{}, ErrMatchUpNotFound
		}
		return scoring.Result{}, fmt.Errorf("failed to load matchUp %d: %w", matchUpID, err)
	}

	format, err := formats.Parse(matchUp.FormatCode)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("%w: %q", ErrInvalidFormatCode, matchUp.FormatCode)
	}

	result := scoring.ApplyToken(matchUp.MatchScore(), format, token, cfg)
	if !result.Updated {
		return result, nil
	}

	if err := s.matchUpRepo.UpdateScore(ctx, s.exec, matchUpID, result.Score); err != nil {
		return scoring.Result{}, fmt.Errorf("failed to persist score for matchUp %d: %w", matchUpID, err)
	}

	s.hub.BroadcastToRoom(ScoreRoomID(matchUpID), live.Message{
		Type:   "SCORE_UPDATED",
		RoomID: ScoreRoomID(matchUpID),
		Payload: ScoreUpdate{
			MatchUpID:   matchUpID,
			Score:       result.Score.ScoreString,
			Sets:        result.Score.Sets,
			WinningSide: result.Score.WinningSide,
			Status:      result.Score.Status,
		},
	})

	s.logger.Info("token applied",
		slog.Int("matchup_id", matchUpID),
		slog.String("token", token.Raw),
		slog.String("score", result.Score.ScoreString))

	return result, nil
}

// scoresheet is the archived document: the record plus an export timestamp.
type scoresheet struct {
	models.MatchUp
	ExportedAt time.Time `json:"exported_at"`
}

func (s *scoreService) ExportCompleted(ctx context.Context, tournamentID int) ([]ExportResult, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	status := models.StatusCompleted
	matchUps, err := s.matchUpRepo.ListByTournament(ctx, tournamentID, &status)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed matchups: %w", err)
	}

	results := make([]ExportResult, len(matchUps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)

	for i, matchUp := range matchUps {
		i, matchUp := i, matchUp
		g.Go(func() error {
			body, err := json.Marshal(scoresheet{MatchUp: *matchUp, ExportedAt: time.Now().UTC()})
			if err != nil {
				return fmt.Errorf("failed to encode scoresheet for matchUp %d: %w", matchUp.ID, err)
			}

			key := fmt.Sprintf("scoresheets/%d/%d.json", tournamentID, matchUp.ID)
			uploaded, err := s.archiver.Upload(gctx, key, "application/json", bytes.NewReader(body))
			if err != nil {
				return err
			}

			results[i] = ExportResult{
				MatchUpID: matchUp.ID,
				Key:       uploaded.Key,
				Location:  uploaded.Location,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("scoresheets exported",
		slog.Int("tournament_id", tournamentID),
		slog.Int("count", len(results)))
	return results, nil
}
