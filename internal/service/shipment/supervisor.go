package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/pkg/metrics"
	"fooddelivery/pkg/logger"
)

// Supervisor владеет трекерами отправлений: по одной горутине на активное
// отправление. Трекер двигает отправление по этапам с шагом stageInterval
// и на delivered один раз дописывает терминальный статус заказа.
type Supervisor struct {
	log               logger.Logger
	repository        Repository
	orderRepository   OrderRepository
	assignmentService AssignmentService
	codeFactory       TrackingCodeFactory
	txManager         TxManager
	stageInterval     time.Duration

	baseCtx context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	trackers map[string]*tracker
	wg       sync.WaitGroup
}

func NewSupervisor(
	ctx context.Context,
	log logger.Logger,
	repository Repository,
	orderRepository OrderRepository,
	assignmentService AssignmentService,
	codeFactory TrackingCodeFactory,
	txManager TxManager,
	stageInterval time.Duration,
) *Supervisor {
	baseCtx, cancel := context.WithCancel(ctx)

	return &Supervisor{
		log:               log,
		repository:        repository,
		orderRepository:   orderRepository,
		assignmentService: assignmentService,
		codeFactory:       codeFactory,
		txManager:         txManager,
		stageInterval:     stageInterval,
		baseCtx:           baseCtx,
		cancel:            cancel,
		trackers:          make(map[string]*tracker),
	}
}

// StartTracking создает отправление для заказа и запускает его трекер.
func (s *Supervisor) StartTracking(ctx context.Context, orderID string) (*entities.Shipment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	now := time.Now().UTC()
	status := entities.ShipmentProcessing
	arrival := now.Add(s.stageInterval * time.Duration(len(stages)-1))
	code := s.codeFactory.NewTrackingCode()

	shipmentEntity, err := s.repository.Create(ctx, entities.ShipmentModify{
		OrderID:          &orderID,
		Status:           &status,
		EstimatedArrival: &arrival,
		TrackingCode:     &code,
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	s.Resume(*shipmentEntity)
	return shipmentEntity, nil
}

// Resume запускает трекер для уже существующего отправления, например
// после рестарта сервиса. Доставленные и уже отслеживаемые пропускаются.
func (s *Supervisor) Resume(shipmentEntity entities.Shipment) bool {
	if shipmentEntity.Status == entities.ShipmentDelivered {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trackers[shipmentEntity.OrderID]; ok {
		return false
	}

	t := newTracker(shipmentEntity)
	s.trackers[shipmentEntity.OrderID] = t

	s.wg.Add(1)
	go s.run(t)

	return true
}

// GetStatus снимок состояния отправления. Для активного трекера отдается
// живое состояние из памяти, иначе читаем из хранилища.
func (s *Supervisor) GetStatus(ctx context.Context, orderID string) (*entities.Shipment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	s.mu.Lock()
	t, ok := s.trackers[orderID]
	s.mu.Unlock()

	if ok {
		snapshot := t.snapshot()
		return &snapshot, nil
	}

	shipmentEntity, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	return shipmentEntity, nil
}

// ManualOverride операторская установка статуса отправления.
// Позиция в последовательности намеренно не проверяется, delivered
// запускает тот же путь завершения заказа, что и автоматический.
func (s *Supervisor) ManualOverride(ctx context.Context, orderID string, status entities.ShipmentStatusType) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrInvalidOrderID
	}
	if !isValidShipmentStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidShipmentStatus, status)
	}

	err := s.repository.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}

	s.mu.Lock()
	t, ok := s.trackers[orderID]
	s.mu.Unlock()

	if ok {
		t.setStatus(status)
	}

	if status == entities.ShipmentDelivered {
		if ok {
			t.stop()
		}
		err := s.completeOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("complete order: %w", err)
		}
	}

	return nil
}

// Stop останавливает трекер заказа, само отправление остается как есть.
func (s *Supervisor) Stop(orderID string) bool {
	s.mu.Lock()
	t, ok := s.trackers[orderID]
	s.mu.Unlock()

	if !ok {
		return false
	}

	t.stop()
	return true
}

// Shutdown останавливает все трекеры и дожидается их завершения.
func (s *Supervisor) Shutdown() {
	s.cancel()
	s.wg.Wait()
}

// GetActiveShipments недоставленные отправки из хранилища.
func (s *Supervisor) GetActiveShipments(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active shipments: %w", err)
	}
	return shipments, nil
}

// TrackedOrders текущие заказы с активным трекером.
func (s *Supervisor) TrackedOrders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderIDs := make([]string, 0, len(s.trackers))
	for orderID := range s.trackers {
		orderIDs = append(orderIDs, orderID)
	}
	return orderIDs
}

func (s *Supervisor) run(t *tracker) {
	defer s.wg.Done()
	defer s.unregister(t.orderID)

	ticker := time.NewTicker(s.stageInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.baseCtx.Done():
			return
		case <-t.stopped:
			return
		case <-ticker.C:
			status, delivered := t.advance()
			s.persistStage(t.orderID, status)

			if delivered {
				metrics.ShipmentsDeliveredTotal.Inc()

				err := s.completeOrder(s.baseCtx, t.orderID)
				if err != nil {
					// заказ в памяти уже доставлен, теряется только запись
					s.log.With(
						logger.NewField("order", t.orderID),
						logger.NewField("error", err),
					).Error("shipment delivered, order write-back failed")
				}
				return
			}
		}
	}
}

// persistStage запись этапа best-effort: при ошибке трекер продолжает
// жить на состоянии в памяти.
func (s *Supervisor) persistStage(orderID string, status entities.ShipmentStatusType) {
	ctx, cancel := context.WithTimeout(s.baseCtx, s.stageInterval)
	defer cancel()

	err := s.repository.UpdateStatus(ctx, orderID, status)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.With(
			logger.NewField("order", orderID),
			logger.NewField("status", status.String()),
			logger.NewField("error", err),
		).Error("persist shipment stage")
	}
}

// completeOrder дописывает заказу терминальный статус ровно один раз.
// Если заказ уже терминальный (например отменен руками), ничего не меняем.
func (s *Supervisor) completeOrder(ctx context.Context, orderID string) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if orderEntity.Status.IsTerminal() {
			return nil
		}

		now := time.Now().UTC()
		status := entities.OrderDelivered
		_, err = s.orderRepository.Update(ctx, entities.OrderModify{
			ID:                  &orderID,
			Status:              &status,
			EstimatedCompletion: &now,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if orderEntity.AgentID != nil {
			_, err := s.assignmentService.Complete(ctx, *orderEntity.AgentID, orderID)
			if err != nil {
				return fmt.Errorf("release agent: %w", err)
			}
		}

		return nil
	})
}

func (s *Supervisor) unregister(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.trackers, orderID)
}
