// Package http exposes the order management API over Echo. Handlers translate
// requests into commands and queries, wrap results in the response envelope,
// and map domain errors onto HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createClientHandler  commands.CreateClientCommandHandler
	createProductHandler commands.CreateProductCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getAllClientsHandler  queries.GetAllClientsQueryHandler
	getAllProductsHandler queries.GetAllProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createClientHandler commands.CreateClientCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllClientsHandler queries.GetAllClientsQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
) *Server {
	return &Server{
		createClientHandler:   createClientHandler,
		createProductHandler:  createProductHandler,
		createOrderHandler:    createOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		getOrderHandler:       getOrderHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		getAllClientsHandler:  getAllClientsHandler,
		getAllProductsHandler: getAllProductsHandler,
	}
}

// RegisterRoutes binds all API routes onto the Echo instance. Paths keep
// their trailing slashes; the update endpoint accepts both PUT and PATCH
// with identical partial-update semantics.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/clients/", s.GetClients)
	e.POST("/clients/", s.CreateClient)

	e.GET("/products/", s.GetProducts)
	e.POST("/products/", s.CreateProduct)

	e.GET("/orders/", s.GetOrders)
	e.POST("/orders/", s.CreateOrder)
	e.GET("/orders/:id/", s.GetOrder)
	e.PUT("/orders/:id/update/", s.UpdateOrder)
	e.PATCH("/orders/:id/update/", s.UpdateOrder)
}

// GetClients handles GET /clients/ - lists all registered clients.
//
//	@Summary	List clients
//	@Tags		clients
//	@Produce	json
//	@Success	200	{array}	queries.ClientReadModel
//	@Router		/clients/ [get]
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.getAllClientsHandler.Handle(ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clients)
}

// CreateClient handles POST /clients/ - registers a new client.
//
//	@Summary	Create client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateClientRequest	true	"Client data"
//	@Success	201		{object}	Envelope
//	@Failure	400		{object}	Envelope
//	@Router		/clients/ [post]
func (s *Server) CreateClient(ctx echo.Context) error {
	var request CreateClientRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Envelope{Message: "Invalid request body"})
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, request.Name, request.Phone, request.Email)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.createClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{
		Message: "Client created successfully",
		Data: queries.ClientReadModel{
			ID:    clientID.Bytes(),
			Name:  request.Name,
			Phone: request.Phone,
			Email: request.Email,
		},
	})
}

// GetProducts handles GET /products/ - lists all registered products.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	queries.ProductReadModel
//	@Router		/products/ [get]
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /products/ - registers a new product.
//
//	@Summary	Create product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateProductRequest	true	"Product data"
//	@Success	201		{object}	Envelope
//	@Failure	400		{object}	Envelope
//	@Router		/products/ [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Envelope{Message: "Invalid request body"})
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, request.Name, request.Description, request.BasePrice)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{
		Message: "Product created successfully",
		Data: queries.ProductReadModel{
			ID:          productID.Bytes(),
			Name:        request.Name,
			Description: request.Description,
			BasePrice:   request.BasePrice,
		},
	})
}

// GetOrders handles GET /orders/ - lists all orders with items and totals.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	queries.OrderReadModel
//	@Router		/orders/ [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id/ - retrieves one order with its items.
//
//	@Summary	Retrieve order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	queries.OrderReadModel
//	@Failure	404	{object}	Envelope
//	@Router		/orders/{id}/ [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, Envelope{Message: "Order not found"})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orderModel, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModel)
}

// CreateOrder handles POST /orders/ - creates an order for a client.
//
//	@Summary	Create order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateOrderRequest	true	"Order data"
//	@Success	201		{object}	Envelope
//	@Failure	400		{object}	Envelope
//	@Router		/orders/ [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Envelope{Message: "Invalid request body"})
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Envelope{Message: "Invalid client_id"})
	}

	items, err := itemArguments(request.Items)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, items)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.orderEnvelope(ctx, http.StatusCreated, "Order created successfully", orderID)
}

// UpdateOrder handles PUT/PATCH /orders/:id/update/ - partially updates an
// order. An items array in the body, empty included, replaces the stored item
// set wholesale; an absent items key leaves it untouched.
//
//	@Summary	Update order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Order ID"
//	@Param		request	body		UpdateOrderRequest	true	"Fields to update"
//	@Success	200		{object}	Envelope
//	@Failure	400		{object}	Envelope
//	@Failure	404		{object}	Envelope
//	@Router		/orders/{id}/update/ [put]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, Envelope{Message: "Order not found"})
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Envelope{Message: "Invalid request body"})
	}

	var clientID *kernel.UUID
	if request.ClientID != nil {
		parsed, parseErr := kernel.UUIDFromString(*request.ClientID)
		if parseErr != nil {
			return ctx.JSON(http.StatusBadRequest, Envelope{Message: "Invalid client_id"})
		}
		clientID = &parsed
	}

	var items *[]commands.OrderItemArgument
	if request.Items != nil {
		parsed, argErr := itemArguments(*request.Items)
		if argErr != nil {
			return s.errorJSON(ctx, argErr)
		}
		items = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, clientID, items)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.orderEnvelope(ctx, http.StatusOK, "Order updated successfully", orderID)
}

// orderEnvelope responds with the current read model of an order wrapped in
// the message envelope. Used after successful writes so callers see the
// resulting state, derived total included.
func (s *Server) orderEnvelope(ctx echo.Context, status int, message string, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orderModel, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(status, Envelope{Message: message, Data: orderModel})
}

// itemArguments converts request line items into command arguments.
func itemArguments(requestItems []OrderItemRequest) ([]commands.OrderItemArgument, error) {
	items := make([]commands.OrderItemArgument, 0, len(requestItems))
	for _, requestItem := range requestItems {
		productID, err := kernel.UUIDFromString(requestItem.ProductID)
		if err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("product_id", err)
		}

		item, err := commands.NewOrderItemArgument(productID, requestItem.Quantity, requestItem.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// errorJSON maps an application error onto an HTTP status and writes the
// envelope. Not-found lookups become 404, validation failures 400, anything
// else 500.
func (s *Server) errorJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Envelope{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Envelope{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, Envelope{Message: "Internal server error"})
	}
}
