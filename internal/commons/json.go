package commons

import (
	"encoding/json"
	"net/http"

	"github.com/Lutefd/currency-conversion/internal/logger"
)

// RespondWithError writes {"error": msg}. For 5xx codes the cause, when
// present, is logged since the client only ever sees msg.
func RespondWithError(w http.ResponseWriter, code int, msg string, cause error) {
	if code > 499 {
		if cause != nil {
			logger.Errorf("responding with %d error: %s: %v", code, msg, cause)
		} else {
			logger.Errorf("responding with %d error: %s", code, msg)
		}
	}
	type errorResponse struct {
		Error string `json:"error"`
	}
	RespondWithJSON(w, code, errorResponse{
		Error: msg,
	})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	dat, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("error marshalling JSON: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	w.Write(dat)
}
