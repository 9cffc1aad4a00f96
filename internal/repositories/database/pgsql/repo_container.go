package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of Postgres-backed
// repositories over a shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		EquipmentRepo:  newPgxEquipmentRepository(pool),
		ParityRepo:     newPgxParityRepository(pool),
		InvestmentRepo: newPgxInvestmentRepository(pool),
		UserRepo:       newPgxUserRepository(pool),
	}
}
