package menu_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/handlers/rest/dto"
	"fooddelivery/internal/service/menu"
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
	var itemCreateDTO dto.MenuItemCreateRequest
	err := json.NewDecoder(r.Body).Decode(&itemCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	prepTime := time.Duration(itemCreateDTO.PrepTimeMinutes) * time.Minute
	itemModifyEntity := entities.MenuItemModify{
		Name:     &itemCreateDTO.Name,
		Price:    &itemCreateDTO.Price,
		PrepTime: &prepTime,
	}

	id, err := h.service.AddItem(r.Context(), itemModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMissingRequiredFields),
			errors.Is(err, menu.ErrInvalidName),
			errors.Is(err, menu.ErrInvalidPrice),
			errors.Is(err, menu.ErrInvalidPrepTime):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, menu.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MenuItemCreateResponse{
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
