package orderrepo

import (
	"context"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. Orders are
// append-only, so the repository exposes no update or delete path.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for registering staged changes with
// the enclosing unit of work.
type changeTracker interface {
	TrackChange(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker changeTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackChange(aggregate.ID(), aggregate)
	return nil
}

// GetAll retrieves every recorded order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
