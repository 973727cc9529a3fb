package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/commands"
	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/queries"
	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests of the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getOrderStatusHandler queries.GetOrderStatusQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler

	queue  metrics.QueueStats
	now    func() time.Time
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	queue metrics.QueueStats,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		queue:                    queue,
		now:                      time.Now,
		logger:                   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&body); err != nil {
		return s.writeError(c, err)
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.OrderLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	ctx := c.Request().Context()
	s.logger.InfoContext(ctx, "Received order request", "customer_name", body.CustomerName)

	cmd, err := commands.NewCreateOrderCommand(body.CustomerName, lines, body.TotalAmount)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.createOrderHandler.Handle(ctx, cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderFromDomain(created))
}

// ListOrders handles GET /api/orders - returns one page of orders.
func (s *Server) ListOrders(c echo.Context) error {
	var (
		page, size            int
		sortBy, sortDirection string
		status, customerName  string
	)
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("size", &size).
		String("sortBy", &sortBy).
		String("sortDirection", &sortDirection).
		String("status", &status).
		String("customerName", &customerName).
		BindError(); err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	filter := queries.ListOrdersFilter{CustomerName: customerName}
	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return s.writeError(c, err)
		}
		filter.Status = parsed
	}

	query, err := queries.NewListOrdersQuery(page, size, sortBy, sortDirection, filter)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	content := make([]Order, 0, len(result.Orders))
	for _, o := range result.Orders {
		content = append(content, orderFromResponse(o))
	}

	return c.JSON(http.StatusOK, OrderPage{
		Content:       content,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromResponse(result))
}

// GetOrderStatus handles GET /api/orders/:id/status.
func (s *Server) GetOrderStatus(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	status, err := s.getOrderStatusHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderStatus{
		OrderID:   id,
		Status:    status,
		Timestamp: s.now().UnixMilli(),
	})
}

// UpdateOrderStatus handles PUT /api/orders/:id/status?status=X. It
// overwrites the status without checking the current one.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	var raw string
	if err = echo.QueryParamsBinder(c).MustString("status", &raw).BindError(); err != nil {
		return badRequest(c, "Query parameter status is required")
	}

	status, err := order.ParseStatus(raw)
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	s.logger.InfoContext(ctx, "Updating order status", "order_id", id, "status", status.String())

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx, cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(updated))
}

// GetQueue handles GET /api/queue - current depth of the order queue.
func (s *Server) GetQueue(c echo.Context) error {
	size, capacity := s.queue.Len(), s.queue.Cap()

	return c.JSON(http.StatusOK, QueueStatus{
		Size:      size,
		Capacity:  capacity,
		Remaining: capacity - size,
	})
}

func orderIDParam(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, err
	}
	return id, nil
}
