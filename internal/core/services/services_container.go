package services

import (
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
	portssvc "github.com/traiders/practice-backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The parity query engine is built first
// since the profit calculator uses it as its rate source.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Equipment = NewEquipmentService(repos.EquipmentRepo)
	container.Parity = NewParityService(repos.ParityRepo, repos.EquipmentRepo)
	container.Investment = NewInvestmentService(repos.InvestmentRepo, repos.EquipmentRepo)
	container.Profit = NewProfitService(container.Parity, repos.EquipmentRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.EquipmentSvcFacade  = (*EquipmentService)(nil)
	_ portssvc.ParitySvcFacade     = (*ParityService)(nil)
	_ portssvc.InvestmentSvcFacade = (*InvestmentService)(nil)
	_ portssvc.ProfitSvcFacade     = (*ProfitService)(nil)
	_ portssvc.UserSvcFacade       = (*UserService)(nil)
)
