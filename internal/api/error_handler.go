package api

import (
	"net/http"

	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Success bool   `json:"success"`
}

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	writeJSON(w, r, appErr.Status, errorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}
