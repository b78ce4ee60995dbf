package handler

import (
	"errors"
	"net/http"

	"github.com/Lutefd/currency-conversion/internal/commons"
	"github.com/Lutefd/currency-conversion/internal/logger"
	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/Lutefd/currency-conversion/internal/service"
	"github.com/go-chi/chi/v5"
)

type ConversionHandler struct {
	conversionService service.ConversionServiceInterface
}

func NewConversionHandler(conversionService service.ConversionServiceInterface) *ConversionHandler {
	return &ConversionHandler{
		conversionService: conversionService,
	}
}

// Convert serves /from/{from}/to/{to}/quantity/{quantity}. Currency codes are
// forwarded unchanged.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	from := chi.URLParam(r, "from")
	to := chi.URLParam(r, "to")
	if from == "" || to == "" {
		commons.RespondWithError(w, http.StatusBadRequest, "missing currency code", nil)
		return
	}

	quantity, err := model.ParseQuantity(chi.URLParam(r, "quantity"))
	if err != nil {
		commons.RespondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	quote, err := h.conversionService.Convert(r.Context(), from, to, quantity)
	if err != nil {
		h.respondWithConversionError(w, r, err)
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, quote)
}

func (h *ConversionHandler) respondWithConversionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		commons.RespondWithError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, model.ErrUpstreamUnavailable):
		commons.RespondWithError(w, http.StatusServiceUnavailable, "currency exchange service unavailable", err)
	case errors.Is(err, model.ErrUpstreamTimeout):
		commons.RespondWithError(w, http.StatusGatewayTimeout, "currency exchange service timed out", err)
	case errors.Is(err, model.ErrUpstreamFault):
		commons.RespondWithError(w, http.StatusBadGateway, "currency exchange service returned an invalid response", err)
	case r.Context().Err() != nil:
		logger.Infof("client went away during %s: %v", r.URL.Path, err)
	default:
		commons.RespondWithError(w, http.StatusInternalServerError, "conversion failed", err)
	}
}
