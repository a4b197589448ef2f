// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work maintains the list of aggregates staged by a
// business transaction and coordinates writing them out atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	affected, err := uow.Commit(ctx)
//
// Each UnitOfWork instance owns its own transaction state; concurrent
// operations must use separate instances obtained from the factory.
package postgres

import (
	"context"

	"coffeemachine/internal/adapters/out/postgres/coffeerepo"
	"coffeemachine/internal/adapters/out/postgres/orderrepo"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/core/ports"

	"gorm.io/gorm"
)

// stagedChange represents an aggregate staged for persistence during the
// unit of work. The commit result reports how many of these were written.
type stagedChange struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each business operation gets a fresh instance with
// its own transaction, isolated from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for business transaction
// management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:            f.db,
		stagedChanges: make([]stagedChange, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the
// aggregates staged through its repositories. Repositories are created
// lazily and cached, so every call to CoffeeRepository or OrderRepository
// within one unit of work returns the same instance, bound to the same
// transaction.
type GormUnitOfWork struct {
	db            *gorm.DB
	tx            *gorm.DB
	coffeeRepo    ports.CoffeeRepository
	orderRepo     ports.OrderRepository
	stagedChanges []stagedChange
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction.
// Calling Begin again on an instance with an active transaction is a no-op;
// nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and
// returns the number of staged changes that were written. A unit of work
// that staged nothing commits to zero. After commit the transaction is
// closed and the staged list is cleared.
//
// Returns an error if no active transaction exists or the commit fails; on
// failure nothing is written.
func (uow *GormUnitOfWork) Commit(_ context.Context) (int, error) {
	if uow.tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return 0, err
	}

	affected := len(uow.stagedChanges)
	uow.stagedChanges = uow.stagedChanges[:0]
	return affected, nil
}

// Rollback discards all changes made within the current transaction and
// clears the staged list. After rollback the transaction is closed and
// cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.stagedChanges = uow.stagedChanges[:0]
	return err
}

// CoffeeRepository returns the catalog repository bound to this unit of
// work. The instance is created on first access and reused for the lifetime
// of the unit of work. When a transaction is active the repository executes
// within it, otherwise it uses the main database connection.
func (uow *GormUnitOfWork) CoffeeRepository() ports.CoffeeRepository {
	if uow.coffeeRepo == nil {
		uow.coffeeRepo = coffeerepo.NewGormCoffeeRepository(uow.conn(), uow)
	}
	return uow.coffeeRepo
}

// OrderRepository returns the order repository bound to this unit of work.
// The instance is created on first access and reused for the lifetime of
// the unit of work. When a transaction is active the repository executes
// within it, otherwise it uses the main database connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.orderRepo == nil {
		uow.orderRepo = orderrepo.NewGormOrderRepository(uow.conn(), uow)
	}
	return uow.orderRepo
}

// TrackChange registers an aggregate as staged within this unit of work.
// Called by repository implementations when aggregates are added, updated,
// or deleted; the count of staged changes is what Commit reports.
func (uow *GormUnitOfWork) TrackChange(id kernel.UUID, aggregate any) {
	uow.stagedChanges = append(uow.stagedChanges, stagedChange{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
