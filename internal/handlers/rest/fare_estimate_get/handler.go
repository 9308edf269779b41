package fare_estimate_get

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"booking/internal/generated/dto"
	"booking/internal/handlers/rest/wizard_response"
	"booking/internal/service/fare"
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
	params, message := parseParams(r)
	if message != "" {
		wizard_response.WriteBadRequest(w, h.log, message)
		return
	}

	var weight float64
	if params.Weight != nil {
		weight = *params.Weight
	}

	quote := h.service.Estimate(params.From, params.To, weight)
	wizard_response.WriteJSON(w, h.log, http.StatusOK, wizard_response.FromQuote(quote))
}

func parseParams(r *http.Request) (dto.GetFareEstimateParams, string) {
	query := r.URL.Query()
	params := dto.GetFareEstimateParams{
		From: strings.TrimSpace(query.Get("from")),
		To:   strings.TrimSpace(query.Get("to")),
	}

	if params.From == "" || params.To == "" {
		return params, "from and to are required"
	}

	raw := strings.TrimSpace(query.Get("weight"))
	if raw == "" {
		return params, ""
	}

	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil || weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return params, "weight must be a non-negative number"
	}
	if weight > fare.MaxWeightKg {
		return params, "weight must be at most " + strconv.Itoa(fare.MaxWeightKg)
	}
	params.Weight = &weight
	return params, ""
}
