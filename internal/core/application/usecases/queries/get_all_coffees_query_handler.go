package queries

import (
	"context"

	"coffeemachine/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCoffeesQueryHandler retrieves the catalog from the database.
type GetAllCoffeesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCoffeesQueryHandler creates a handler for catalog listing.
// Requires a GORM database connection for query execution.
func NewGetAllCoffeesQueryHandler(db *gorm.DB) GetAllCoffeesQueryHandler {
	return GetAllCoffeesQueryHandler{db: db}
}

// Handle executes the query and returns all catalog entries sorted by name.
func (h GetAllCoffeesQueryHandler) Handle(
	ctx context.Context,
	query GetAllCoffeesQuery,
) ([]CoffeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	coffees := make([]CoffeeQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM coffees
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var price int64

		if err = rows.Scan(&id, &name, &price); err != nil {
			return nil, err
		}

		resp, respErr := newCoffeeQueryResponse(id, name, price)
		if respErr != nil {
			return nil, respErr
		}
		coffees = append(coffees, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return coffees, nil
}

func newCoffeeQueryResponse(id uuid.UUID, name string, price int64) (CoffeeQueryResponse, error) {
	coffeeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CoffeeQueryResponse{}, err
	}

	amount, err := kernel.NewMoney(price)
	if err != nil {
		return CoffeeQueryResponse{}, err
	}

	return CoffeeQueryResponse{
		ID:    coffeeID,
		Name:  name,
		Price: amount,
	}, nil
}
