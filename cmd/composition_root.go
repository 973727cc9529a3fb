package cmd

import (
	"log/slog"

	httpadapter "github.com/kashish2310/food-delivery-order-system/internal/adapters/in/http"
	"github.com/kashish2310/food-delivery-order-system/internal/adapters/out/postgres"
	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/commands"
	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/queries"
	"github.com/kashish2310/food-delivery-order-system/internal/jobs"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/metrics"
	"github.com/kashish2310/food-delivery-order-system/internal/queue"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *queue.BoundedQueue
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	q, err := queue.NewBoundedQueue(config.QueueCapacity)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.RegisterQueue(registry, q)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      q,
		registry:   registry,
		metrics:    metrics.New(registry),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateOrderQueueProducer() *queue.Producer {
	return queue.NewProducer(c.queue, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.CreateOrderQueueProducer())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.orderUoWFactory(), commands.ProcessingDelays{
		WorkMin:  c.config.WorkMin,
		WorkMax:  c.config.WorkMax,
		Finalize: c.config.FinalizeDelay,
	})
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountStalePendingOrdersQueryHandler() queries.CountStalePendingOrdersQueryHandler {
	return queries.NewCountStalePendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	processor := c.CreateProcessOrderCommandHandler()

	return jobs.NewJobManager(
		jobs.NewOrderProcessingJob(
			c.queue,
			&processor,
			c.metrics,
			c.config.WorkerInterval,
			c.config.DequeueTimeout,
			c.logger,
		),
		jobs.NewStalePendingOrdersJob(
			c.CreateCountStalePendingOrdersQueryHandler(),
			c.metrics,
			c.config.StalePendingAfter,
			c.config.StalePendingScanInterval,
			c.logger,
		),
	)
}

func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderStatusQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.queue,
		c.logger,
	)
	return httpadapter.NewEcho(server, c.registry, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
