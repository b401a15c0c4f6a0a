package customer_orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	customerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, err := h.service.GetCustomerOrders(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidCustomerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Order, len(orders))
	for i := range orders {
		response[i] = toDTO(&orders[i], h.service.GetTimeRemainingMinutes(&orders[i]))
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
