package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aidosk/courtscore/models"
	"github.com/lib/pq"
)

var (
	ErrMatchUpNotFound          = errors.New("matchUp not found")
	ErrMatchUpTournamentInvalid = errors.New("matchUp tournament conflict or invalid")
)

type MatchUpRepository interface {
	Create(ctx context.Context, exec SQLExecutor, matchUp *models.MatchUp) error
	GetByID(ctx context.Context, id int) (*models.MatchUp, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.MatchUpStatus) ([]*models.MatchUp, error)
	UpdateScore(ctx context.Context, exec SQLExecutor, id int, score models.MatchScore) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchUpRepository struct {
	db *sql.DB
}

func NewPostgresMatchUpRepository(db *sql.DB) MatchUpRepository {
	return &postgresMatchUpRepository{db: db}
}

func (r *postgresMatchUpRepository) Create(ctx context.Context, exec SQLExecutor, matchUp *models.MatchUp) error {
	query := `
		INSERT INTO matchups
			(tournament_id, side1_name, side2_name, format_code, score, sets, winning_side, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	setsJSON, err := marshalSets(matchUp.Sets)
	if err != nil {
		return err
	}

	err = exec.QueryRowContext(ctx, query,
		matchUp.TournamentID,
		matchUp.Side1Name,
		matchUp.Side2Name,
		matchUp.FormatCode,
		matchUp.Score,
		setsJSON,
		matchUp.WinningSide,
		matchUp.Status,
	).Scan(&matchUp.ID, &matchUp.CreatedAt)

	return r.handleMatchUpError(err)
}

func (r *postgresMatchUpRepository) GetByID(ctx context.Context, id int) (*models.MatchUp, error) {
	query := `
		SELECT id, tournament_id, side1_name, side2_name, format_code, score, sets, winning_side, status, created_at
		FROM matchups
		WHERE id = $1`

	matchUp, err := scanMatchUp(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchUpNotFound
		}
		return nil, fmt.Errorf("failed to scan matchUp by id %d: %w", id, err)
	}
	return matchUp, nil
}

func (r *postgresMatchUpRepository) ListByTournament(ctx context.Context, tournamentID int, statusFilter *models.MatchUpStatus) ([]*models.MatchUp, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, tournament_id, side1_name, side2_name, format_code, score, sets, winning_side, status, created_at
		FROM matchups
		WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	if statusFilter != nil {
		queryBuilder.WriteString(" AND status = $")
		queryBuilder.WriteString(strconv.Itoa(len(args) + 1))
		args = append(args, *statusFilter)
	}
	queryBuilder.WriteString(" ORDER BY id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchups for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matchUps := make([]*models.MatchUp, 0)
	for rows.Next() {
		matchUp, scanErr := scanMatchUp(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan matchUp row: %w", scanErr)
		}
		matchUps = append(matchUps, matchUp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during matchUp rows iteration: %w", err)
	}
	return matchUps, nil
}

func (r *postgresMatchUpRepository) UpdateScore(ctx context.Context, exec SQLExecutor, id int, score models.MatchScore) error {
	query := `
		UPDATE matchups
		SET score = $1, sets = $2, winning_side = $3, status = $4
		WHERE id = $5`

	setsJSON, err := marshalSets(score.Sets)
	if err != nil {
		return err
	}

	result, err := exec.ExecContext(ctx, query, score.ScoreString, setsJSON, score.WinningSide, score.Status, id)
	if err != nil {
		return r.handleMatchUpError(err)
	}
	return checkAffectedRows(result, ErrMatchUpNotFound)
}

func (r *postgresMatchUpRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matchups WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchUpNotFound)
}

func (r *postgresMatchUpRepository) handleMatchUpError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Constraint == "matchups_tournament_id_fkey" {
			return ErrMatchUpTournamentInvalid
		}
	}
	return err
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanMatchUp reads one matchUp row, decoding the sets JSON column.
func scanMatchUp(row rowScanner) (*models.MatchUp, error) {
	matchUp := &models.MatchUp{}
	var setsJSON []byte

	err := row.Scan(
		&matchUp.ID,
		&matchUp.TournamentID,
		&matchUp.Side1Name,
		&matchUp.Side2Name,
		&matchUp.FormatCode,
		&matchUp.Score,
		&setsJSON,
		&matchUp.WinningSide,
		&matchUp.Status,
		&matchUp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(setsJSON) > 0 {
		if err := json.Unmarshal(setsJSON, &matchUp.Sets); err != nil {
			return nil, fmt.Errorf("failed to decode sets for matchUp %d: %w", matchUp.ID, err)
		}
	}
	return matchUp, nil
}

func marshalSets(sets []models.Set) ([]byte, error) {
	if sets == nil {
		return []byte("[]"), nil
	}
	out, err := json.Marshal(sets)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sets: %w", err)
	}
	return out, nil
}
