package queries

import (
	"context"

	"coffeemachine/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCoffeeQueryHandler retrieves a single catalog entry from the database.
type GetCoffeeQueryHandler struct {
	db *gorm.DB
}

// NewGetCoffeeQueryHandler creates a handler for single catalog entry reads.
func NewGetCoffeeQueryHandler(db *gorm.DB) GetCoffeeQueryHandler {
	return GetCoffeeQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when no
// catalog entry matches the requested id.
func (h GetCoffeeQueryHandler) Handle(
	ctx context.Context,
	query GetCoffeeQuery,
) (CoffeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CoffeeQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM coffees
		WHERE id = ?
	`, query.CoffeeID().Bytes()).Rows()
	if err != nil {
		return CoffeeQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CoffeeQueryResponse{}, err
		}
		return CoffeeQueryResponse{}, errs.NewObjectNotFoundError("coffeeId", query.CoffeeID().String())
	}

	var id uuid.UUID
	var name string
	var price int64
	if err = rows.Scan(&id, &name, &price); err != nil {
		return CoffeeQueryResponse{}, err
	}

	return newCoffeeQueryResponse(id, name, price)
}
