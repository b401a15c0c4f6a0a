package agents_get

import (
	"encoding/json"
	"net/http"

	"fooddelivery/internal/handlers/rest/dto"
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
	agents, err := h.service.GetAgents(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Agent, len(agents))
	for i, agentEntity := range agents {
		response[i] = dto.Agent{
			ID:            agentEntity.ID,
			Name:          agentEntity.Name,
			Phone:         agentEntity.Phone,
			CurrentOrders: agentEntity.CurrentOrders,
			Available:     agentEntity.Available(),
		}
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
