package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/traiders/practice-backend/internal/apperrors"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
	"github.com/traiders/practice-backend/internal/models"
	"github.com/traiders/practice-backend/internal/utils/mapping"
)

// PgxEquipmentRepository implements the equipment registry over Postgres.
type PgxEquipmentRepository struct {
	BaseRepository
}

func newPgxEquipmentRepository(pool *pgxpool.Pool) portsrepo.EquipmentRepositoryFacade {
	return &PgxEquipmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EquipmentRepositoryFacade = (*PgxEquipmentRepository)(nil)

// SaveEquipment inserts or updates an equipment row (administrative
// reseeding keeps the upsert semantics).
func (r *PgxEquipmentRepository) SaveEquipment(ctx context.Context, equipment domain.Equipment) error {
	modelEq := mapping.ToModelEquipment(equipment)

	query := `
		INSERT INTO equipment (symbol, name, category, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (symbol) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelEq.Symbol,
		modelEq.Name,
		modelEq.Category,
		modelEq.CreatedAt,
		modelEq.CreatedBy,
		modelEq.LastUpdatedAt,
		modelEq.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save equipment %s: %w", modelEq.Symbol, err)
	}
	return nil
}

// FindEquipmentBySymbol retrieves an equipment by its symbol.
func (r *PgxEquipmentRepository) FindEquipmentBySymbol(ctx context.Context, symbol string) (*domain.Equipment, error) {
	query := `
		SELECT symbol, name, category, created_at, created_by, last_updated_at, last_updated_by
		FROM equipment
		WHERE symbol = $1;
	`
	var modelEq models.Equipment
	err := r.Pool.QueryRow(ctx, query, symbol).Scan(
		&modelEq.Symbol,
		&modelEq.Name,
		&modelEq.Category,
		&modelEq.CreatedAt,
		&modelEq.CreatedBy,
		&modelEq.LastUpdatedAt,
		&modelEq.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find equipment by symbol %s: %w", symbol, err)
	}

	domainEq := mapping.ToDomainEquipment(modelEq)
	return &domainEq, nil
}

// ListEquipment retrieves all equipment ordered by symbol.
func (r *PgxEquipmentRepository) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	query := `
		SELECT symbol, name, category, created_at, created_by, last_updated_at, last_updated_by
		FROM equipment
		ORDER BY symbol;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}
	defer rows.Close()

	modelEquipment, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Equipment, error) {
		var eq models.Equipment
		err := row.Scan(
			&eq.Symbol,
			&eq.Name,
			&eq.Category,
			&eq.CreatedAt,
			&eq.CreatedBy,
			&eq.LastUpdatedAt,
			&eq.LastUpdatedBy,
		)
		return eq, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan equipment: %w", err)
	}

	return mapping.ToDomainEquipmentSlice(modelEquipment), nil
}
