package commands_test

import (
	"context"

	"coffeemachine/internal/core/application/usecases/commands"
	"coffeemachine/internal/core/domain/model/coffee"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/core/domain/model/order"
	"coffeemachine/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCoffeeRepository struct{ mock.Mock }

func (m *MockCoffeeRepository) Add(ctx context.Context, c *coffee.Coffee) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCoffeeRepository) Update(ctx context.Context, c *coffee.Coffee) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCoffeeRepository) Delete(ctx context.Context, c *coffee.Coffee) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCoffeeRepository) Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coffee.Coffee), args.Error(1)
}

func (m *MockCoffeeRepository) GetByIDOrName(
	ctx context.Context, id *kernel.UUID, name string,
) (*coffee.Coffee, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coffee.Coffee), args.Error(1)
}

func (m *MockCoffeeRepository) GetAll(ctx context.Context) ([]*coffee.Coffee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coffee.Coffee), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CoffeeRepository() ports.CoffeeRepository {
	args := m.Called()
	return args.Get(0).(ports.CoffeeRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCoffeeUoWFactory struct{ mock.Mock }

func (m *MockCoffeeUoWFactory) Create() commands.CoffeeUoW {
	args := m.Called()
	return args.Get(0).(commands.CoffeeUoW)
}
