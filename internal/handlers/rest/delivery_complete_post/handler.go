package delivery_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddelivery/internal/handlers/rest/dto"
	"fooddelivery/internal/service/assignment"
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
	var completeDTO dto.DeliveryCompleteRequest
	err := json.NewDecoder(r.Body).Decode(&completeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	released, err := h.service.Complete(r.Context(), completeDTO.AgentID, completeDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidAgentID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryCompleteResponse{
		Released: released,
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
