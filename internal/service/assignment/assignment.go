package assignment

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/pkg/metrics"
	"fooddelivery/internal/pkg/statemachine"
)

type Service struct {
	agentRepository AgentRepository
	orderRepository OrderRepository
	txManager       TxManager
}

func New(agentRepository AgentRepository, orderRepository OrderRepository, txManager TxManager) *Service {
	return &Service{
		agentRepository: agentRepository,
		orderRepository: orderRepository,
		txManager:       txManager,
	}
}

func (s *Service) RegisterAgent(ctx context.Context, agentModify entities.DeliveryAgentModify) (int64, error) {
	if agentModify.Name == nil || agentModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidName(*agentModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*agentModify.Phone) {
		return 0, ErrInvalidPhone
	}

	id, err := s.agentRepository.Create(ctx, agentModify)
	if err != nil {
		return 0, fmt.Errorf("create agent: %w", err)
	}

	return id, nil
}

func (s *Service) GetAgent(ctx context.Context, agentID int64) (*entities.DeliveryAgent, error) {
	if agentID <= 0 {
		return nil, ErrInvalidAgentID
	}

	agent, err := s.agentRepository.GetByID(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}

	return agent, nil
}

func (s *Service) GetAgents(ctx context.Context) ([]entities.DeliveryAgent, error) {
	agents, err := s.agentRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get agents: %w", err)
	}

	return agents, nil
}

func (s *Service) GetAgentOrders(ctx context.Context, agentID int64) ([]entities.Order, error) {
	if agentID <= 0 {
		return nil, ErrInvalidAgentID
	}

	orders, err := s.orderRepository.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("get agent orders: %w", err)
	}

	return orders, nil
}

// TryAssign подбирает первого свободного агента в порядке регистрации.
// Отсутствие свободных агентов не ошибка, заказ остается без назначения.
func (s *Service) TryAssign(ctx context.Context, orderID string) (int64, bool, error) {
	if !isValidOrderID(orderID) {
		return 0, false, ErrInvalidOrderID
	}

	var (
		agentID  int64
		assigned bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		agent, err := s.agentRepository.GetFirstAvailable(ctx)
		if err != nil {
			if errors.Is(err, ErrNoAvailableAgents) {
				return nil
			}
			return fmt.Errorf("find available agent: %w", err)
		}

		err = s.linkAgent(ctx, agent.ID, orderID)
		if err != nil {
			return err
		}

		agentID = agent.ID
		assigned = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	if assigned {
		metrics.OrdersAssignedTotal.Inc()
	}

	return agentID, assigned, nil
}

// AssignExplicit операторское назначение конкретного агента, сразу
// переводит заказ в out_for_delivery минуя отдельный шаг смены статуса.
func (s *Service) AssignExplicit(ctx context.Context, orderID string, agentID int64) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if agentID <= 0 {
		return nil, ErrInvalidAgentID
	}

	var assignedOrder *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		agent, err := s.agentRepository.GetByID(ctx, agentID)
		if err != nil {
			return fmt.Errorf("get agent: %w", err)
		}

		orderEntity, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !agent.Available() {
			return ErrAgentUnavailable
		}
		if orderEntity.DeliveryMode != entities.HomeDelivery {
			return ErrNotHomeDelivery
		}
		if orderEntity.AgentID != nil {
			return ErrAlreadyAssigned
		}
		if orderEntity.Status != entities.OrderReadyForPickup ||
			!statemachine.CanTransition(orderEntity.Status, entities.OrderOutForDelivery, orderEntity.DeliveryMode) {
			return fmt.Errorf("%w: status %s", ErrOrderNotReady, orderEntity.Status)
		}

		err = s.linkAgent(ctx, agent.ID, orderID)
		if err != nil {
			return err
		}

		status := entities.OrderOutForDelivery
		updated, err := s.orderRepository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		assignedOrder = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersAssignedTotal.Inc()

	return assignedOrder, nil
}

// Complete снимает заказ с агента и возвращает ему емкость.
// Статус заказа не трогает, это зона ответственности вызывающего.
func (s *Service) Complete(ctx context.Context, agentID int64, orderID string) (bool, error) {
	if !isValidOrderID(orderID) {
		return false, ErrInvalidOrderID
	}
	if agentID <= 0 {
		return false, ErrInvalidAgentID
	}

	var released bool

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.agentRepository.UnassignOrder(ctx, agentID, orderID)
		if err != nil {
			return fmt.Errorf("unassign order: %w", err)
		}

		released = ok
		return nil
	})
	if err != nil {
		return false, err
	}

	return released, nil
}

// linkAgent связь заказ-агент ведется с двух сторон, обе записи
// обновляются в одной транзакции.
func (s *Service) linkAgent(ctx context.Context, agentID int64, orderID string) error {
	err := s.agentRepository.AssignOrder(ctx, agentID, orderID)
	if err != nil {
		return fmt.Errorf("assign order to agent: %w", err)
	}

	_, err = s.orderRepository.Update(ctx, entities.OrderModify{
		ID:      &orderID,
		AgentID: &agentID,
	})
	if err != nil {
		return fmt.Errorf("link agent to order: %w", err)
	}

	return nil
}
