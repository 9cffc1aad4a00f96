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

// PgxInvestmentRepository implements the investment ledger over
// Postgres. Every read and delete is scoped by owner_user_id so another
// user's rows behave exactly like missing rows.
type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryFacade {
	return &PgxInvestmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

// SaveInvestment persists a new investment.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.ManualInvestment) error {
	modelInv := mapping.ToModelInvestment(investment)

	query := `
		INSERT INTO manual_investments (
			investment_id, owner_user_id, base_symbol, target_symbol,
			base_amount, target_amount, invested_on,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelInv.InvestmentID,
		modelInv.OwnerUserID,
		modelInv.BaseSymbol,
		modelInv.TargetSymbol,
		modelInv.BaseAmount,
		modelInv.TargetAmount,
		modelInv.InvestedOn,
		modelInv.CreatedAt,
		modelInv.CreatedBy,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save investment %s: %w", modelInv.InvestmentID, err)
	}
	return nil
}

// FindInvestmentByID retrieves one investment owned by ownerUserID.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, ownerUserID, investmentID string) (*domain.ManualInvestment, error) {
	query := `
		SELECT investment_id, owner_user_id, base_symbol, target_symbol,
		       base_amount, target_amount, invested_on,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM manual_investments
		WHERE investment_id = $1 AND owner_user_id = $2;
	`
	var modelInv models.ManualInvestment
	err := r.Pool.QueryRow(ctx, query, investmentID, ownerUserID).Scan(
		&modelInv.InvestmentID,
		&modelInv.OwnerUserID,
		&modelInv.BaseSymbol,
		&modelInv.TargetSymbol,
		&modelInv.BaseAmount,
		&modelInv.TargetAmount,
		&modelInv.InvestedOn,
		&modelInv.CreatedAt,
		&modelInv.CreatedBy,
		&modelInv.LastUpdatedAt,
		&modelInv.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}

	domainInv := mapping.ToDomainInvestment(modelInv)
	return &domainInv, nil
}

// FindInvestmentsByOwner retrieves all of a user's investments in
// insertion order.
func (r *PgxInvestmentRepository) FindInvestmentsByOwner(ctx context.Context, ownerUserID string) ([]domain.ManualInvestment, error) {
	query := `
		SELECT investment_id, owner_user_id, base_symbol, target_symbol,
		       base_amount, target_amount, invested_on,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM manual_investments
		WHERE owner_user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	modelInvestments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ManualInvestment, error) {
		var inv models.ManualInvestment
		err := row.Scan(
			&inv.InvestmentID,
			&inv.OwnerUserID,
			&inv.BaseSymbol,
			&inv.TargetSymbol,
			&inv.BaseAmount,
			&inv.TargetAmount,
			&inv.InvestedOn,
			&inv.CreatedAt,
			&inv.CreatedBy,
			&inv.LastUpdatedAt,
			&inv.LastUpdatedBy,
		)
		return inv, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan investments: %w", err)
	}

	return mapping.ToDomainInvestmentSlice(modelInvestments), nil
}

// DeleteInvestment removes an investment owned by ownerUserID. Zero rows
// affected means the id does not exist under this owner.
func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, ownerUserID, investmentID string) error {
	query := `
		DELETE FROM manual_investments
		WHERE investment_id = $1 AND owner_user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, investmentID, ownerUserID)
	if err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
