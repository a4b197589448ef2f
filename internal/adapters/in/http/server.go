// Package http exposes the vending machine use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"coffeemachine/internal/core/application/usecases/commands"
	"coffeemachine/internal/core/application/usecases/queries"
	"coffeemachine/internal/core/domain/model/coffee"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/core/domain/services"
	"coffeemachine/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CoffeeRequest is the body for creating or updating a catalog entry.
// Price is in kopecks. ID is optional on create; when omitted the server
// generates one.
type CoffeeRequest struct {
	ID    *string `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price int64   `json:"price"`
}

// CoffeeResponse represents one catalog entry.
type CoffeeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// PurchaseRequest is the body for buying a coffee. The product is
// identified by id, by name, or both; tendered is the inserted amount in
// kopecks.
type PurchaseRequest struct {
	CoffeeID   *string `json:"coffeeId,omitempty"`
	CoffeeName string  `json:"coffeeName,omitempty"`
	Tendered   int64   `json:"tendered"`
}

// PurchaseResponse carries the change to dispense, largest banknote first.
type PurchaseResponse struct {
	Change []int64 `json:"change"`
}

// OrderSummaryResponse is the per-coffee sales report entry.
type OrderSummaryResponse struct {
	CoffeeID   string `json:"coffeeId"`
	Name       string `json:"name"`
	OrderCount int64  `json:"orderCount"`
	TotalCache int64  `json:"totalCache"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCoffeeHandler   commands.CreateCoffeeCommandHandler
	updateCoffeeHandler   commands.UpdateCoffeeCommandHandler
	deleteCoffeeHandler   commands.DeleteCoffeeCommandHandler
	purchaseCoffeeHandler commands.PurchaseCoffeeCommandHandler

	// Query handlers
	getAllCoffeesHandler     queries.GetAllCoffeesQueryHandler
	getCoffeeHandler         queries.GetCoffeeQueryHandler
	getOrderSummariesHandler queries.GetOrderSummariesQueryHandler
	getOrderSummaryHandler   queries.GetOrderSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCoffeeHandler commands.CreateCoffeeCommandHandler,
	updateCoffeeHandler commands.UpdateCoffeeCommandHandler,
	deleteCoffeeHandler commands.DeleteCoffeeCommandHandler,
	purchaseCoffeeHandler commands.PurchaseCoffeeCommandHandler,
	getAllCoffeesHandler queries.GetAllCoffeesQueryHandler,
	getCoffeeHandler queries.GetCoffeeQueryHandler,
	getOrderSummariesHandler queries.GetOrderSummariesQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
) *Server {
	return &Server{
		createCoffeeHandler:      createCoffeeHandler,
		updateCoffeeHandler:      updateCoffeeHandler,
		deleteCoffeeHandler:      deleteCoffeeHandler,
		purchaseCoffeeHandler:    purchaseCoffeeHandler,
		getAllCoffeesHandler:     getAllCoffeesHandler,
		getCoffeeHandler:         getCoffeeHandler,
		getOrderSummariesHandler: getOrderSummariesHandler,
		getOrderSummaryHandler:   getOrderSummaryHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/coffees", s.GetCoffees)
	e.POST("/api/v1/coffees", s.CreateCoffee)
	e.GET("/api/v1/coffees/:coffeeId", s.GetCoffee)
	e.PUT("/api/v1/coffees/:coffeeId", s.UpdateCoffee)
	e.DELETE("/api/v1/coffees/:coffeeId", s.DeleteCoffee)

	e.POST("/api/v1/orders", s.BuyCoffee)
	e.GET("/api/v1/orders/summaries", s.GetOrderSummaries)
	e.GET("/api/v1/orders/summaries/:coffeeId", s.GetOrderSummary)
}

// GetCoffees handles GET /api/v1/coffees - retrieves the catalog.
func (s *Server) GetCoffees(ctx echo.Context) error {
	query := queries.NewGetAllCoffeesQuery()

	coffees, err := s.getAllCoffeesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]CoffeeResponse, len(coffees))
	for i, c := range coffees {
		response[i] = CoffeeResponse{
			ID:    c.ID.String(),
			Name:  c.Name,
			Price: c.Price.Amount(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCoffee handles GET /api/v1/coffees/:coffeeId - retrieves one entry.
func (s *Server) GetCoffee(ctx echo.Context) error {
	coffeeID, err := kernel.UUIDFromString(ctx.Param("coffeeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee id: " + err.Error(),
		})
	}

	query, err := queries.NewGetCoffeeQuery(coffeeID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.getCoffeeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CoffeeResponse{
		ID:    result.ID.String(),
		Name:  result.Name,
		Price: result.Price.Amount(),
	})
}

// CreateCoffee handles POST /api/v1/coffees - registers a catalog entry.
func (s *Server) CreateCoffee(ctx echo.Context) error {
	var request CoffeeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	coffeeID, err := parseOptionalUUID(request.ID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee id: " + err.Error(),
		})
	}

	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee data: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateCoffeeCommand(coffeeID, request.Name, price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee data: " + err.Error(),
		})
	}

	created, err := s.createCoffeeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCoffeeResponse(created))
}

// UpdateCoffee handles PUT /api/v1/coffees/:coffeeId - renames or reprices
// a catalog entry. Recorded orders keep the price they were sold at.
func (s *Server) UpdateCoffee(ctx echo.Context) error {
	coffeeID, err := kernel.UUIDFromString(ctx.Param("coffeeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee id: " + err.Error(),
		})
	}

	var request CoffeeRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee data: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateCoffeeCommand(&coffeeID, request.Name, price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee data: " + err.Error(),
		})
	}

	updated, err := s.updateCoffeeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCoffeeResponse(updated))
}

// DeleteCoffee handles DELETE /api/v1/coffees/:coffeeId - removes a
// catalog entry.
func (s *Server) DeleteCoffee(ctx echo.Context) error {
	coffeeID, err := kernel.UUIDFromString(ctx.Param("coffeeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee id: " + err.Error(),
		})
	}

	cmd, err := commands.NewDeleteCoffeeCommand(coffeeID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	deleted, err := s.deleteCoffeeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCoffeeResponse(deleted))
}

// BuyCoffee handles POST /api/v1/orders - settles a purchase and returns
// the change to dispense.
func (s *Server) BuyCoffee(ctx echo.Context) error {
	var request PurchaseRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	coffeeID, err := parseOptionalUUID(request.CoffeeID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee id: " + err.Error(),
		})
	}

	tendered, err := kernel.NewMoney(request.Tendered)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tendered amount: " + err.Error(),
		})
	}

	cmd, err := commands.NewPurchaseCoffeeCommand(coffeeID, request.CoffeeName, tendered)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase data: " + err.Error(),
		})
	}

	change, err := s.purchaseCoffeeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	banknotes := make([]int64, len(change))
	for i, banknote := range change {
		banknotes[i] = banknote.Amount()
	}

	return ctx.JSON(http.StatusOK, PurchaseResponse{Change: banknotes})
}

// GetOrderSummaries handles GET /api/v1/orders/summaries - sales totals
// per coffee.
func (s *Server) GetOrderSummaries(ctx echo.Context) error {
	query := queries.NewGetOrderSummariesQuery()

	summaries, err := s.getOrderSummariesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderSummaryResponse(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderSummary handles GET /api/v1/orders/summaries/:coffeeId - sales
// totals for one coffee.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	coffeeID, err := kernel.UUIDFromString(ctx.Param("coffeeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid coffee id: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderSummaryQuery(coffeeID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponse(summary))
}

// errorResponse maps application errors onto HTTP status codes. Domain
// validation failures are client errors, a short tender is payment
// required, and change computation failures stay server side because the
// catalog allowed a price the denomination set cannot settle.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var changeErr *services.ChangeComputationError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.As(err, &changeErr):
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func toCoffeeResponse(c *coffee.Coffee) CoffeeResponse {
	return CoffeeResponse{
		ID:    c.ID().String(),
		Name:  c.Name(),
		Price: c.Price().Amount(),
	}
}

func toOrderSummaryResponse(summary queries.OrderSummaryQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		CoffeeID:   summary.CoffeeID.String(),
		Name:       summary.Name,
		OrderCount: summary.OrderCount,
		TotalCache: summary.TotalCache.Amount(),
	}
}

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
