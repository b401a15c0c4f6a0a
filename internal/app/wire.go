//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	agent_get "fooddelivery/internal/handlers/rest/agent_get"
	agent_orders_get "fooddelivery/internal/handlers/rest/agent_orders_get"
	agent_post "fooddelivery/internal/handlers/rest/agent_post"
	agents_get "fooddelivery/internal/handlers/rest/agents_get"
	customer_orders_get "fooddelivery/internal/handlers/rest/customer_orders_get"
	customer_post "fooddelivery/internal/handlers/rest/customer_post"
	delivery_assign_post "fooddelivery/internal/handlers/rest/delivery_assign_post"
	delivery_complete_post "fooddelivery/internal/handlers/rest/delivery_complete_post"
	menu_item_delete "fooddelivery/internal/handlers/rest/menu_item_delete"
	menu_post "fooddelivery/internal/handlers/rest/menu_post"
	menus_get "fooddelivery/internal/handlers/rest/menus_get"
	order_cancel_post "fooddelivery/internal/handlers/rest/order_cancel_post"
	order_get "fooddelivery/internal/handlers/rest/order_get"
	order_post "fooddelivery/internal/handlers/rest/order_post"
	order_status_put "fooddelivery/internal/handlers/rest/order_status_put"
	shipment_get "fooddelivery/internal/handlers/rest/shipment_get"
	shipment_override_put "fooddelivery/internal/handlers/rest/shipment_override_put"
	"fooddelivery/internal/handlers/tasks/shipment_watchdog"
	"fooddelivery/internal/pkg/config"
	"fooddelivery/internal/pkg/factory/completion_estimate"
	"fooddelivery/internal/pkg/factory/order_id"
	agentRepo "fooddelivery/internal/repository/agent"
	customerRepo "fooddelivery/internal/repository/customer"
	menuRepo "fooddelivery/internal/repository/menu"
	orderRepo "fooddelivery/internal/repository/order"
	shipmentRepo "fooddelivery/internal/repository/shipment"
	assignmentService "fooddelivery/internal/service/assignment"
	customerService "fooddelivery/internal/service/customer"
	menuService "fooddelivery/internal/service/menu"
	orderService "fooddelivery/internal/service/order"
	shipmentService "fooddelivery/internal/service/shipment"
	"fooddelivery/pkg/background"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/querier"
	"fooddelivery/pkg/tx"
)

type (
	WatchdogInterval time.Duration
	StageInterval    time.Duration
)

type Application struct {
	ServiceCustomer   ServiceCustomer
	ServiceMenu       ServiceMenu
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	ServiceShipment   ServiceShipment
	Supervisor        *shipmentService.Supervisor
	BackgroundWorkers *background.Worker
}

type ServiceCustomer interface {
	customer_post.Service
}

type ServiceMenu interface {
	menu_post.Service
	menu_item_delete.Service
	menus_get.Service
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_status_put.Service
	order_cancel_post.Service
	customer_orders_get.Service
}

type ServiceAssignment interface {
	agent_post.Service
	agent_get.Service
	agent_orders_get.Service
	agents_get.Service
	delivery_assign_post.Service
	delivery_complete_post.Service
}

type ServiceShipment interface {
	shipment_get.Service
	shipment_override_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideWatchdogInterval,
		provideStageInterval,

		order_id.New,
		completion_estimate.New,

		provideOrderRepository,
		provideCustomerRepository,
		provideAgentRepository,
		provideShipmentRepository,
		provideMenuRepository,

		provideServiceCustomer,
		provideServiceMenu,
		provideServiceAssignment,
		provideShipmentSupervisor,
		provideServiceOrder,

		provideShipmentWatchdogTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCustomer), new(*customerService.Service)),
		wire.Bind(new(ServiceMenu), new(*menuService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Service)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Supervisor)),

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(menuService.Repository), new(*menuRepo.Repository)),
		wire.Bind(new(menuService.IDFactory), new(*order_id.IDFactory)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CustomerRepository), new(*customerRepo.Repository)),
		wire.Bind(new(orderService.Catalog), new(*menuService.Service)),
		wire.Bind(new(orderService.AssignmentService), new(*assignmentService.Service)),
		wire.Bind(new(orderService.ShipmentService), new(*shipmentService.Supervisor)),
		wire.Bind(new(orderService.IDFactory), new(*order_id.IDFactory)),
		wire.Bind(new(orderService.EstimateFactory), new(*completion_estimate.EstimateFactory)),

		wire.Bind(new(assignmentService.AgentRepository), new(*agentRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(shipmentService.AssignmentService), new(*assignmentService.Service)),
		wire.Bind(new(shipmentService.TrackingCodeFactory), new(*order_id.IDFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shipment_watchdog.Service), new(*shipmentService.Supervisor)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStageInterval,

		order_id.New,
		completion_estimate.New,

		provideOrderRepository,
		provideCustomerRepository,
		provideAgentRepository,
		provideShipmentRepository,
		provideMenuRepository,

		provideServiceMenu,
		provideServiceAssignment,
		provideShipmentSupervisor,
		provideServiceOrder,

		wire.Bind(new(menuService.Repository), new(*menuRepo.Repository)),
		wire.Bind(new(menuService.IDFactory), new(*order_id.IDFactory)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CustomerRepository), new(*customerRepo.Repository)),
		wire.Bind(new(orderService.Catalog), new(*menuService.Service)),
		wire.Bind(new(orderService.AssignmentService), new(*assignmentService.Service)),
		wire.Bind(new(orderService.ShipmentService), new(*shipmentService.Supervisor)),
		wire.Bind(new(orderService.IDFactory), new(*order_id.IDFactory)),
		wire.Bind(new(orderService.EstimateFactory), new(*completion_estimate.EstimateFactory)),

		wire.Bind(new(assignmentService.AgentRepository), new(*agentRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(shipmentService.AssignmentService), new(*assignmentService.Service)),
		wire.Bind(new(shipmentService.TrackingCodeFactory), new(*order_id.IDFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideAgentRepository(querier *querier.Querier) *agentRepo.Repository {
	return agentRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideMenuRepository(querier *querier.Querier) *menuRepo.Repository {
	return menuRepo.New(querier)
}

func provideServiceCustomer(repository customerService.Repository) *customerService.Service {
	return customerService.New(repository)
}

func provideServiceMenu(
	repository menuService.Repository,
	idFactory menuService.IDFactory,
) *menuService.Service {
	return menuService.New(repository, idFactory)
}

func provideServiceAssignment(
	agentRepository assignmentService.AgentRepository,
	orderRepository assignmentService.OrderRepository,
	txManager assignmentService.TxManager,
) *assignmentService.Service {
	return assignmentService.New(agentRepository, orderRepository, txManager)
}

func provideShipmentSupervisor(
	ctx context.Context,
	log logger.Logger,
	repository shipmentService.Repository,
	orderRepository shipmentService.OrderRepository,
	assignment shipmentService.AssignmentService,
	codeFactory shipmentService.TrackingCodeFactory,
	txManager shipmentService.TxManager,
	stageInterval StageInterval,
) *shipmentService.Supervisor {
	return shipmentService.NewSupervisor(
		ctx,
		log,
		repository,
		orderRepository,
		assignment,
		codeFactory,
		txManager,
		time.Duration(stageInterval),
	)
}

func provideServiceOrder(
	repository orderService.Repository,
	customerRepository orderService.CustomerRepository,
	catalog orderService.Catalog,
	assignment orderService.AssignmentService,
	shipment orderService.ShipmentService,
	idFactory orderService.IDFactory,
	estimateFactory orderService.EstimateFactory,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(
		repository,
		customerRepository,
		catalog,
		assignment,
		shipment,
		idFactory,
		estimateFactory,
		txManager,
		log,
	)
}

func provideWatchdogInterval(cfg *config.Config) WatchdogInterval {
	return WatchdogInterval(cfg.Tasks.ShipmentWatchdogInterval)
}

func provideStageInterval(cfg *config.Config) StageInterval {
	return StageInterval(cfg.Shipment.StageInterval)
}

func provideShipmentWatchdogTask(
	log logger.Logger,
	supervisor shipment_watchdog.Service,
	interval WatchdogInterval,
) *shipment_watchdog.ShipmentWatchdog {
	return shipment_watchdog.NewShipmentWatchdog(log, supervisor, time.Duration(interval))
}

func provideTaskList(
	watchdogTask *shipment_watchdog.ShipmentWatchdog,
) []background.Task {
	return []background.Task{
		watchdogTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
