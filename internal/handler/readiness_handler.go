package handler

import (
	"net/http"

	"github.com/Lutefd/currency-conversion/internal/commons"
	"github.com/Lutefd/currency-conversion/internal/discovery"
)

type ReadinessHandler struct {
	registry    discovery.Registry
	serviceName string
}

func NewReadinessHandler(registry discovery.Registry, serviceName string) *ReadinessHandler {
	return &ReadinessHandler{registry: registry, serviceName: serviceName}
}

// Ready reports ok while the registry can be queried. Zero registered exchange
// instances is still ready: only the proxied endpoint is affected.
func (h *ReadinessHandler) Ready(w http.ResponseWriter, r *http.Request) {
	instances, err := h.registry.Instances(r.Context(), h.serviceName)
	if err != nil {
		commons.RespondWithError(w, http.StatusServiceUnavailable, "service registry unavailable", err)
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ok",
		"exchangeInstances": len(instances),
	})
}
