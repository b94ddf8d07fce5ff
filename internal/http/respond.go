package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/service"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Message: message,
		Code:    code,
	})
}

// handleServiceError maps service errors to HTTP statuses. Anything not
// recognised is a 500 carrying internalMsg and the error text.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "Cart is empty. Cannot checkout.")
	case errors.Is(err, service.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", "Product not found.")
	case errors.Is(err, service.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "item_not_found", "Item not found in cart.")
	default:
		log.Error(internalMsg, zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Message: internalMsg,
			Code:    "internal_error",
			Details: err.Error(),
		})
	}
}
