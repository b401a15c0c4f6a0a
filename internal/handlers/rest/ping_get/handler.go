package ping_get

import (
	"encoding/json"
	"net/http"

	"fooddelivery/internal/handlers/rest/dto"
	"fooddelivery/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(dto.PingResponse{Message: &message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
