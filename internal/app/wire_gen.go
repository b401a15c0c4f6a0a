// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"fooddelivery/internal/handlers/rest/agent_get"
	"fooddelivery/internal/handlers/rest/agent_orders_get"
	"fooddelivery/internal/handlers/rest/agent_post"
	"fooddelivery/internal/handlers/rest/agents_get"
	"fooddelivery/internal/handlers/rest/customer_orders_get"
	"fooddelivery/internal/handlers/rest/customer_post"
	"fooddelivery/internal/handlers/rest/delivery_assign_post"
	"fooddelivery/internal/handlers/rest/delivery_complete_post"
	"fooddelivery/internal/handlers/rest/menu_item_delete"
	"fooddelivery/internal/handlers/rest/menu_post"
	"fooddelivery/internal/handlers/rest/menus_get"
	"fooddelivery/internal/handlers/rest/order_cancel_post"
	"fooddelivery/internal/handlers/rest/order_get"
	"fooddelivery/internal/handlers/rest/order_post"
	"fooddelivery/internal/handlers/rest/order_status_put"
	"fooddelivery/internal/handlers/rest/shipment_get"
	"fooddelivery/internal/handlers/rest/shipment_override_put"
	"fooddelivery/internal/handlers/tasks/shipment_watchdog"
	"fooddelivery/internal/pkg/config"
	"fooddelivery/internal/pkg/factory/completion_estimate"
	"fooddelivery/internal/pkg/factory/order_id"
	"fooddelivery/internal/repository/agent"
	"fooddelivery/internal/repository/customer"
	"fooddelivery/internal/repository/menu"
	order2 "fooddelivery/internal/repository/order"
	shipment2 "fooddelivery/internal/repository/shipment"
	"fooddelivery/internal/service/assignment"
	customer2 "fooddelivery/internal/service/customer"
	menu2 "fooddelivery/internal/service/menu"
	"fooddelivery/internal/service/order"
	"fooddelivery/internal/service/shipment"
	"fooddelivery/pkg/background"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/querier"
	"fooddelivery/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideCustomerRepository(querier)
	service := provideServiceCustomer(repository)
	menuRepository := provideMenuRepository(querier)
	idFactory := order_id.New()
	menuService := provideServiceMenu(menuRepository, idFactory)
	orderRepository := provideOrderRepository(querier)
	agentRepository := provideAgentRepository(querier)
	manager := provideTxManager(pool)
	assignmentService := provideServiceAssignment(agentRepository, orderRepository, manager)
	shipmentRepository := provideShipmentRepository(querier)
	stageInterval := provideStageInterval(cfg)
	supervisor := provideShipmentSupervisor(ctx, log, shipmentRepository, orderRepository, assignmentService, idFactory, manager, stageInterval)
	estimateFactory := completion_estimate.New()
	orderService := provideServiceOrder(orderRepository, repository, menuService, assignmentService, supervisor, idFactory, estimateFactory, manager, log)
	watchdogInterval := provideWatchdogInterval(cfg)
	shipmentWatchdog := provideShipmentWatchdogTask(log, supervisor, watchdogInterval)
	v := provideTaskList(shipmentWatchdog)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceCustomer:   service,
		ServiceMenu:       menuService,
		ServiceOrder:      orderService,
		ServiceAssignment: assignmentService,
		ServiceShipment:   supervisor,
		Supervisor:        supervisor,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	customerRepository := provideCustomerRepository(querier)
	menuRepository := provideMenuRepository(querier)
	idFactory := order_id.New()
	service := provideServiceMenu(menuRepository, idFactory)
	agentRepository := provideAgentRepository(querier)
	manager := provideTxManager(pool)
	assignmentService := provideServiceAssignment(agentRepository, repository, manager)
	shipmentRepository := provideShipmentRepository(querier)
	stageInterval := provideStageInterval(cfg)
	supervisor := provideShipmentSupervisor(ctx, log, shipmentRepository, repository, assignmentService, idFactory, manager, stageInterval)
	estimateFactory := completion_estimate.New()
	orderService := provideServiceOrder(repository, customerRepository, service, assignmentService, supervisor, idFactory, estimateFactory, manager, log)
	kafkaWorkerApp := &KafkaWorkerApp{
		OrderService: orderService,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

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
	Supervisor        *shipment.Supervisor
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

type KafkaWorkerApp struct {
	OrderService *order.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier2 *querier.Querier) *order2.Repository {
	return order2.New(querier2)
}

func provideCustomerRepository(querier2 *querier.Querier) *customer.Repository {
	return customer.New(querier2)
}

func provideAgentRepository(querier2 *querier.Querier) *agent.Repository {
	return agent.New(querier2)
}

func provideShipmentRepository(querier2 *querier.Querier) *shipment2.Repository {
	return shipment2.New(querier2)
}

func provideMenuRepository(querier2 *querier.Querier) *menu.Repository {
	return menu.New(querier2)
}

func provideServiceCustomer(repository customer2.Repository) *customer2.Service {
	return customer2.New(repository)
}

func provideServiceMenu(
	repository menu2.Repository,
	idFactory menu2.IDFactory,
) *menu2.Service {
	return menu2.New(repository, idFactory)
}

func provideServiceAssignment(
	agentRepository assignment.AgentRepository,
	orderRepository assignment.OrderRepository,
	txManager assignment.TxManager,
) *assignment.Service {
	return assignment.New(agentRepository, orderRepository, txManager)
}

func provideShipmentSupervisor(
	ctx context.Context,
	log logger.Logger,
	repository shipment.Repository,
	orderRepository shipment.OrderRepository, assignment2 shipment.AssignmentService,

	codeFactory shipment.TrackingCodeFactory,
	txManager shipment.TxManager,
	stageInterval StageInterval,
) *shipment.Supervisor {
	return shipment.NewSupervisor(
		ctx,
		log,
		repository,
		orderRepository, assignment2, codeFactory,
		txManager, time.Duration(stageInterval),
	)
}

func provideServiceOrder(
	repository order.Repository,
	customerRepository order.CustomerRepository,
	catalog order.Catalog, assignment2 order.AssignmentService, shipment3 order.ShipmentService,

	idFactory order.IDFactory,
	estimateFactory order.EstimateFactory,
	txManager order.TxManager,
	log logger.Logger,
) *order.Service {
	return order.New(
		repository,
		customerRepository,
		catalog, assignment2, shipment3, idFactory,
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
