package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
	"github.com/traiders/practice-backend/internal/models"
	"github.com/traiders/practice-backend/internal/utils/mapping"
)

// PgxParityRepository implements the append-only parity store over
// Postgres. recorded_seq is a bigserial, so insertion order is the
// deterministic tie-break for identical timestamps.
type PgxParityRepository struct {
	BaseRepository
}

func newPgxParityRepository(pool *pgxpool.Pool) portsrepo.ParityRepositoryFacade {
	return &PgxParityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ParityRepositoryFacade = (*PgxParityRepository)(nil)

// SaveParity appends a new observation.
func (r *PgxParityRepository) SaveParity(ctx context.Context, parity domain.Parity) error {
	modelParity := mapping.ToModelParity(parity)

	query := `
		INSERT INTO parities (base_symbol, target_symbol, ratio, recorded_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelParity.BaseSymbol,
		modelParity.TargetSymbol,
		modelParity.Ratio,
		modelParity.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save parity %s/%s: %w", modelParity.BaseSymbol, modelParity.TargetSymbol, err)
	}
	return nil
}

// FindParities retrieves observations matching the filter in the
// ordering the query engine depends on: pairs ascending, then newest
// first with the insertion sequence breaking timestamp ties.
func (r *PgxParityRepository) FindParities(ctx context.Context, filter portsrepo.ParityFilter) ([]domain.Parity, error) {
	query := `
		SELECT recorded_seq, base_symbol, target_symbol, ratio, recorded_at
		FROM parities
		WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.BaseSymbol != nil {
		query += fmt.Sprintf(" AND base_symbol = $%d", argNum)
		args = append(args, *filter.BaseSymbol)
		argNum++
	}
	if filter.TargetSymbol != nil {
		query += fmt.Sprintf(" AND target_symbol = $%d", argNum)
		args = append(args, *filter.TargetSymbol)
		argNum++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND recorded_at >= $%d", argNum)
		args = append(args, *filter.From)
		argNum++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND recorded_at < $%d", argNum)
		args = append(args, *filter.To)
		argNum++
	}

	query += " ORDER BY base_symbol, target_symbol, recorded_at DESC, recorded_seq DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parities: %w", err)
	}
	defer rows.Close()

	modelParities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Parity, error) {
		var p models.Parity
		err := row.Scan(
			&p.RecordedSeq,
			&p.BaseSymbol,
			&p.TargetSymbol,
			&p.Ratio,
			&p.RecordedAt,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parities: %w", err)
	}

	return mapping.ToDomainParitySlice(modelParities), nil
}

// ListParityPairs retrieves the distinct ordered pairs with history.
func (r *PgxParityRepository) ListParityPairs(ctx context.Context) ([]domain.ParityPair, error) {
	query := `
		SELECT DISTINCT base_symbol, target_symbol
		FROM parities
		ORDER BY base_symbol, target_symbol;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query parity pairs: %w", err)
	}
	defer rows.Close()

	pairs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ParityPair, error) {
		var pair domain.ParityPair
		err := row.Scan(&pair.BaseSymbol, &pair.TargetSymbol)
		return pair, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parity pairs: %w", err)
	}
	return pairs, nil
}
