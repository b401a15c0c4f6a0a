package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/handlers/rest/dto"
	"fooddelivery/internal/service/customer"
	"fooddelivery/internal/service/menu"
	"fooddelivery/internal/service/order"
	"fooddelivery/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	lines := make([]entities.OrderLineCreate, len(orderCreateDTO.Lines))
	for i, lineDTO := range orderCreateDTO.Lines {
		lines[i] = entities.OrderLineCreate{
			ItemID:   lineDTO.ItemID,
			Quantity: lineDTO.Quantity,
		}
	}

	orderCreateEntity := entities.OrderCreate{
		CustomerID:      orderCreateDTO.CustomerID,
		Lines:           lines,
		DeliveryMode:    entities.DeliveryModeType(orderCreateDTO.DeliveryMode),
		DeliveryAddress: orderCreateDTO.DeliveryAddress,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidCustomerID),
			errors.Is(err, order.ErrInvalidDeliveryMode),
			errors.Is(err, order.ErrEmptyOrder),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrMissingAddress),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customer.ErrCustomerNotFound),
			errors.Is(err, menu.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(orderEntity, h.service.GetTimeRemainingMinutes(orderEntity))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(orderEntity *entities.Order, remainingMinutes int64) dto.Order {
	linesDTO := make([]dto.OrderLine, len(orderEntity.Lines))
	for i, line := range orderEntity.Lines {
		linesDTO[i] = dto.OrderLine{
			ItemID:    line.ItemID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.TotalPrice(),
		}
	}

	return dto.Order{
		ID:                   orderEntity.ID,
		CustomerID:           orderEntity.CustomerID,
		Lines:                linesDTO,
		DeliveryMode:         orderEntity.DeliveryMode.String(),
		DeliveryAddress:      orderEntity.DeliveryAddress,
		Status:               orderEntity.Status.String(),
		AgentID:              orderEntity.AgentID,
		TotalPrice:           orderEntity.TotalPrice(),
		EstimatedCompletion:  orderEntity.EstimatedCompletion,
		TimeRemainingMinutes: remainingMinutes,
	}
}
