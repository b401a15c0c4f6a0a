package agent_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddelivery/internal/entities"
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
	var agentCreateDTO dto.AgentCreateRequest
	err := json.NewDecoder(r.Body).Decode(&agentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	agentModifyEntity := entities.DeliveryAgentModify{
		Name:  &agentCreateDTO.Name,
		Phone: &agentCreateDTO.Phone,
	}

	id, err := h.service.RegisterAgent(r.Context(), agentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrMissingRequiredFields),
			errors.Is(err, assignment.ErrInvalidName),
			errors.Is(err, assignment.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrAgentConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AgentCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
