package order

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/pkg/metrics"
	"fooddelivery/internal/pkg/statemachine"
	"fooddelivery/pkg/logger"
)

type Service struct {
	repository         Repository
	customerRepository CustomerRepository
	catalog            Catalog
	assignmentService  AssignmentService
	shipmentService    ShipmentService
	idFactory          IDFactory
	estimateFactory    EstimateFactory
	txManager          TxManager
	log                logger.Logger
}

func New(
	repository Repository,
	customerRepository CustomerRepository,
	catalog Catalog,
	assignmentService AssignmentService,
	shipmentService ShipmentService,
	idFactory IDFactory,
	estimateFactory EstimateFactory,
	txManager TxManager,
	log logger.Logger,
) *Service {
	return &Service{
		repository:         repository,
		customerRepository: customerRepository,
		catalog:            catalog,
		assignmentService:  assignmentService,
		shipmentService:    shipmentService,
		idFactory:          idFactory,
		estimateFactory:    estimateFactory,
		txManager:          txManager,
		log:                log,
	}
}

func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := validateOrderCreate(orderCreate); err != nil {
		return nil, err
	}

	var created *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepository.GetByID(ctx, orderCreate.CustomerID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}

		lines := make([]entities.OrderLine, 0, len(orderCreate.Lines))
		for _, lineCreate := range orderCreate.Lines {
			item, err := s.catalog.GetByID(ctx, lineCreate.ItemID)
			if err != nil {
				return fmt.Errorf("menu item %s: %w", lineCreate.ItemID, err)
			}

			lines = append(lines, entities.OrderLine{
				ItemID:   item.ID,
				Name:     item.Name,
				Price:    item.Price,
				PrepTime: item.PrepTime,
				Quantity: lineCreate.Quantity,
			})
		}

		address := strings.TrimSpace(orderCreate.DeliveryAddress)
		if orderCreate.DeliveryMode == entities.HomeDelivery && address == "" {
			address = strings.TrimSpace(customer.Address)
		}
		if orderCreate.DeliveryMode == entities.HomeDelivery && address == "" {
			return ErrMissingAddress
		}

		now := time.Now().UTC()
		orderEntity := entities.Order{
			ID:                  s.idFactory.NewOrderID(),
			CustomerID:          customer.ID,
			Lines:               lines,
			DeliveryMode:        orderCreate.DeliveryMode,
			DeliveryAddress:     address,
			Status:              entities.OrderPlaced,
			CreatedAt:           now,
			EstimatedCompletion: s.estimateFactory.AtCreation(lines, orderCreate.DeliveryMode, now),
		}

		persisted, err := s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		// повторная запись того же id в историю - no-op на уровне репозитория
		err = s.customerRepository.AppendOrderHistory(ctx, customer.ID, persisted.ID)
		if err != nil {
			return fmt.Errorf("append order history: %w", err)
		}

		if persisted.DeliveryMode == entities.HomeDelivery {
			// отсутствие свободного агента не ошибка, назначение отложится
			agentID, assigned, err := s.assignmentService.TryAssign(ctx, persisted.ID)
			if err != nil {
				return fmt.Errorf("try assign agent: %w", err)
			}
			if assigned {
				persisted.AgentID = &agentID
			}
		}

		created = persisted
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(created.DeliveryMode.String()).Inc()

	if created.DeliveryMode == entities.HomeDelivery {
		// трекинг best-effort, заказ уже создан и не откатывается
		_, err := s.shipmentService.StartTracking(ctx, created.ID)
		if err != nil {
			s.log.With(
				logger.NewField("order", created.ID),
				logger.NewField("error", err),
			).Error("start shipment tracking")
		}
	}

	return created, nil
}

func (s *Service) UpdateStatus(ctx context.Context, orderID string, requested entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(requested) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, requested)
	}

	var updated *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !statemachine.CanTransition(orderEntity.Status, requested, orderEntity.DeliveryMode) {
			return fmt.Errorf("%w: %s -> %s (allowed: %v)",
				ErrInvalidTransition,
				orderEntity.Status,
				requested,
				statemachine.AllowedFrom(orderEntity.Status, orderEntity.DeliveryMode),
			)
		}

		now := time.Now().UTC()
		orderModify := entities.OrderModify{
			ID:     &orderID,
			Status: &requested,
		}

		switch {
		case requested == entities.OrderReadyForPickup && orderEntity.DeliveryMode == entities.HomeDelivery:
			// заказ готов, таймер сбрасывается на этап доставки
			handoff := s.estimateFactory.AtHandoff(now)
			orderModify.EstimatedCompletion = &handoff
		case requested.IsTerminal():
			orderModify.EstimatedCompletion = &now
		}

		updatedOrder, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		// Cancelled агента не освобождает, как и в ручном сценарии выдачи
		if (requested == entities.OrderDelivered || requested == entities.OrderPickedUp) &&
			updatedOrder.AgentID != nil {
			_, err := s.assignmentService.Complete(ctx, *updatedOrder.AgentID, orderID)
			if err != nil {
				return fmt.Errorf("release agent: %w", err)
			}
		}

		updated = updatedOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	return s.UpdateStatus(ctx, orderID, entities.OrderCancelled)
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Service) GetCustomerOrders(ctx context.Context, customerID int64) ([]entities.Order, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}

	orders, err := s.repository.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer orders: %w", err)
	}

	return orders, nil
}

// GetTimeRemainingMinutes оценка оставшегося времени в минутах, для
// терминальных статусов всегда 0.
func (s *Service) GetTimeRemainingMinutes(orderEntity *entities.Order) int64 {
	if orderEntity.Status.IsTerminal() {
		return 0
	}

	remaining := time.Until(orderEntity.EstimatedCompletion)
	if remaining <= 0 {
		return 0
	}

	return int64(math.Ceil(remaining.Minutes()))
}
