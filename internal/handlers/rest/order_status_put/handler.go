package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/handlers/rest/dto"
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
	orderID := mux.Vars(r)["id"]

	var statusUpdateDTO dto.OrderStatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requested := entities.OrderStatusType(statusUpdateDTO.Status)

	orderEntity, err := h.service.UpdateStatus(r.Context(), orderID, requested)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:                   orderEntity.ID,
		CustomerID:           orderEntity.CustomerID,
		DeliveryMode:         orderEntity.DeliveryMode.String(),
		DeliveryAddress:      orderEntity.DeliveryAddress,
		Status:               orderEntity.Status.String(),
		AgentID:              orderEntity.AgentID,
		TotalPrice:           orderEntity.TotalPrice(),
		EstimatedCompletion:  orderEntity.EstimatedCompletion,
		TimeRemainingMinutes: h.service.GetTimeRemainingMinutes(orderEntity),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
