package menu_item_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fooddelivery/internal/service/menu"
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
	itemID := mux.Vars(r)["id"]

	err := h.service.DeleteItem(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidItemID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, menu.ErrItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
