// Package handlers provides HTTP handlers for the account and mark APIs.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apierrors "github.com/flow-hydraulics/account-keeper/errors"
	log "github.com/sirupsen/logrus"
)

// handleError is a helper function for unified HTTP error handling.
func handleError(rw http.ResponseWriter, logger log.FieldLogger, err error) {
	if logger == nil {
		logger = log.StandardLogger()
	}

	// Check if the error was an errors.RequestError
	var reqErr *apierrors.RequestError
	if errors.As(err, &reqErr) {
		logger.WithFields(log.Fields{"error": err, "status": reqErr.StatusCode}).Debug("Request error")
		// Send error message to client
		http.Error(rw, reqErr.Error(), reqErr.StatusCode)
		return
	}

	logger.WithFields(log.Fields{"error": err}).Error("Error while handling request")

	// Otherwise do not send data regarding the error
	http.Error(rw, "Error", http.StatusInternalServerError)
}

// handleJsonResponse is a helper function for unified JSON response handling.
func handleJsonResponse(rw http.ResponseWriter, status int, res interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(res); err != nil {
		log.WithFields(log.Fields{"error": err}).Warn("Error while writing response")
	}
}

func servePlainText(rw http.ResponseWriter, text string) {
	rw.Header().Set("Content-Type", "text/plain")
	rw.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(rw, text); err != nil {
		log.WithFields(log.Fields{"error": err}).Warn("Error while writing response")
	}
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return apierrors.BadRequest(fmt.Errorf("empty body"))
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apierrors.BadRequest(fmt.Errorf("empty body"))
		}
		return apierrors.BadRequest(fmt.Errorf("invalid body: %w", err))
	}

	return nil
}
