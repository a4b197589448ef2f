package coffeerepo

import (
	"context"
	"errors"

	"coffeemachine/internal/core/domain/model/coffee"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCoffeeRepository implements CoffeeRepository using GORM.
type GormCoffeeRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for registering staged changes with
// the enclosing unit of work.
type changeTracker interface {
	TrackChange(id kernel.UUID, aggregate any)
}

// NewGormCoffeeRepository creates a new GORM coffee repository.
func NewGormCoffeeRepository(db *gorm.DB, tracker changeTracker) *GormCoffeeRepository {
	return &GormCoffeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
func (r *GormCoffeeRepository) Add(ctx context.Context, aggregate *coffee.Coffee) error {
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

// Update saves an existing catalog entry to the database.
func (r *GormCoffeeRepository) Update(ctx context.Context, aggregate *coffee.Coffee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CoffeeDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "price": dto.Price})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coffeeId", aggregate.ID().String())
	}

	r.tracker.TrackChange(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a catalog entry from the database.
func (r *GormCoffeeRepository) Delete(ctx context.Context, aggregate *coffee.Coffee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CoffeeDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coffeeId", aggregate.ID().String())
	}

	r.tracker.TrackChange(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormCoffeeRepository) Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CoffeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coffeeId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDOrName retrieves a catalog entry matching the given ID, the given
// name, or either. At least one of the two must be provided.
func (r *GormCoffeeRepository) GetByIDOrName(ctx context.Context, id *kernel.UUID, name string) (*coffee.Coffee, error) {
	tx := r.db.WithContext(ctx)

	var reference string
	switch {
	case id != nil && name != "":
		tx = tx.Where("id = ? OR name = ?", id.Bytes(), name)
		reference = id.String()
	case id != nil:
		tx = tx.Where("id = ?", id.Bytes())
		reference = id.String()
	case name != "":
		tx = tx.Where("name = ?", name)
		reference = name
	default:
		return nil, errs.NewValueIsRequiredError("id or name")
	}

	var dto CoffeeDTO
	if err := tx.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coffee", reference)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every catalog entry ordered by name.
func (r *GormCoffeeRepository) GetAll(ctx context.Context) ([]*coffee.Coffee, error) {
	var dtos []CoffeeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	coffees := make([]*coffee.Coffee, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		coffees = append(coffees, c)
	}

	return coffees, nil
}
