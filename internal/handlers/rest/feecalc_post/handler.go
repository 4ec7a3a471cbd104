package feecalc_post

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"feecalc/internal/generated/dto"
	"feecalc/internal/pkg/validation"
	"feecalc/internal/service/fee"
	"feecalc/pkg/logger"
)

const (
	maxBodyBytes = 1 << 20

	QuoteIDHeader = "X-Quote-Id"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "feecalc_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := validation.DecodeOrder(body)
	if err != nil {
		if validationErr, ok := validation.AsError(err); ok {
			h.writeJSON(w, http.StatusUnprocessableEntity, dto.HTTPValidationError{
				Detail: validationErr.Details,
			})
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("decode order")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	quote, err := h.service.CalculateDeliveryFee(r.Context(), order)
	if err != nil {
		switch {
		case errors.Is(err, fee.ErrInvalidOrder):
			h.writeJSON(w, http.StatusUnprocessableEntity, dto.HTTPValidationError{
				Detail: []dto.ValidationError{{
					Type:  "value_error",
					Loc:   []string{"body"},
					Msg:   err.Error(),
					Input: nil,
				}},
			})
		case errors.Is(err, context.DeadlineExceeded),
			errors.Is(err, context.Canceled):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("calculate delivery fee")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set(QuoteIDHeader, quote.ID)
	h.writeJSON(w, http.StatusOK, dto.DeliveryFeeResponse{
		DeliveryFee: quote.DeliveryFee,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
