package customer_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/handlers/rest/dto"
	"fooddelivery/internal/service/customer"
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
	var customerCreateDTO dto.CustomerCreateRequest
	err := json.NewDecoder(r.Body).Decode(&customerCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	customerModifyEntity := entities.CustomerModify{
		Login:    &customerCreateDTO.Login,
		Password: &customerCreateDTO.Password,
		Address:  &customerCreateDTO.Address,
		Phone:    &customerCreateDTO.Phone,
	}

	id, err := h.service.Register(r.Context(), customerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingRequiredFields),
			errors.Is(err, customer.ErrInvalidLogin),
			errors.Is(err, customer.ErrInvalidPassword),
			errors.Is(err, customer.ErrInvalidAddress),
			errors.Is(err, customer.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customer.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CustomerCreateResponse{
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
