package menus_get

import (
	"encoding/json"
	"net/http"
	"time"

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
	items, err := h.service.GetItems(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.MenuItem, len(items))
	for i, item := range items {
		response[i] = dto.MenuItem{
			ID:              item.ID,
			Name:            item.Name,
			Price:           item.Price,
			PrepTimeMinutes: int64(item.PrepTime / time.Minute),
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
