package cmd

import (
	"coffeemachine/internal/adapters/out/postgres"
	"coffeemachine/internal/core/application/usecases/commands"
	"coffeemachine/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCoffeeCommandHandler() commands.CreateCoffeeCommandHandler {
	var f commands.CoffeeUoWFactory = FuncCoffeeUoWFactory(func() commands.CoffeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCoffeeCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCoffeeCommandHandler() commands.UpdateCoffeeCommandHandler {
	var f commands.CoffeeUoWFactory = FuncCoffeeUoWFactory(func() commands.CoffeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCoffeeCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCoffeeCommandHandler() commands.DeleteCoffeeCommandHandler {
	var f commands.CoffeeUoWFactory = FuncCoffeeUoWFactory(func() commands.CoffeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCoffeeCommandHandler(f)
}

func (c *CompositionRoot) CreatePurchaseCoffeeCommandHandler() commands.PurchaseCoffeeCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurchaseCoffeeCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllCoffeesQueryHandler() queries.GetAllCoffeesQueryHandler {
	return queries.NewGetAllCoffeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCoffeeQueryHandler() queries.GetCoffeeQueryHandler {
	return queries.NewGetCoffeeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummariesQueryHandler() queries.GetOrderSummariesQueryHandler {
	return queries.NewGetOrderSummariesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

type FuncCoffeeUoWFactory func() commands.CoffeeUoW

func (f FuncCoffeeUoWFactory) Create() commands.CoffeeUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
