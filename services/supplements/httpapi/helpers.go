package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"supplements-backend/services/supplements"

	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, supplements.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, supplements.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, supplements.ErrRefreshInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h Handler) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.tel.ReportBroken(report_handler_encode, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(response)
	if err != nil {
		h.tel.ReportDebug("failed to write response", err)
	}
}

func (h Handler) respondWithError(w http.ResponseWriter, err error) {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		h.tel.ReportWarning(report_handler_internal, err)
		message = "internal error"
	}
	h.respondWithJSON(w, code, errorResponse{Error: message})
}

func (h Handler) respondWithBadRequest(w http.ResponseWriter, err error) {
	h.respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// decode reads a json body into out, an empty body leaves out untouched
// when allowEmpty is set.
func (h Handler) decode(r *http.Request, out any, allowEmpty bool) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(out)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	err = h.validate.Struct(out)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

func isPersistence(err error) bool {
	return errors.Is(err, supplements.ErrPersistenceFailed)
}
