package agent_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	agentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	agentEntity, err := h.service.GetAgent(r.Context(), agentID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidAgentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Agent{
		ID:            agentEntity.ID,
		Name:          agentEntity.Name,
		Phone:         agentEntity.Phone,
		CurrentOrders: agentEntity.CurrentOrders,
		Available:     agentEntity.Available(),
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
