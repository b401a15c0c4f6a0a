package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddelivery/internal/handlers/rest/dto"
	"fooddelivery/internal/service/assignment"
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
	var assignDTO dto.DeliveryAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.AssignExplicit(r.Context(), assignDTO.OrderID, assignDTO.AgentID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidAgentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrAgentNotFound),
			errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrAgentUnavailable),
			errors.Is(err, assignment.ErrAlreadyAssigned),
			errors.Is(err, assignment.ErrOrderNotReady),
			errors.Is(err, assignment.ErrNotHomeDelivery):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	var agentID int64
	if orderEntity.AgentID != nil {
		agentID = *orderEntity.AgentID
	}

	response := dto.DeliveryAssignResponse{
		OrderID: orderEntity.ID,
		AgentID: agentID,
		Status:  orderEntity.Status.String(),
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
