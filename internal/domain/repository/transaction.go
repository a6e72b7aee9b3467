package repository

import "context"

// RepositoryFactory hands out repositories bound to a single transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewVendorAccountRepository() VendorAccountRepository
	NewVendorRepository() VendorRepository
}

// TransactionManager runs a unit of work atomically. Every repository obtained
// from the factory inside fn shares the same transaction; returning an error
// rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
