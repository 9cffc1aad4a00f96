package repositories

// RepositoryProvider bundles the concrete repositories handed to the
// service container. Lifecycle of the underlying pool is owned by the
// composing application, not by any repository.
type RepositoryProvider struct {
	EquipmentRepo  EquipmentRepositoryFacade
	ParityRepo     ParityRepositoryFacade
	InvestmentRepo InvestmentRepositoryFacade
	UserRepo       UserRepositoryFacade
}
