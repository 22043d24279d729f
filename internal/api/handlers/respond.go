// Package handlers содержит общие помощники HTTP-слоя: декодирование тел,
// формирование JSON-ответов и единые формы ошибок.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Wire error codes, совместимые с фронтендом дашборда
const (
	codeValidationError = "validation_error"
	codeNotFound        = "not_found"
	codeBadRequest      = "bad_request"
	codeInternalError   = "internal_error"

	// CodeSlotClosed слот закрыт (нерабочие часы либо закрытая дата)
	CodeSlotClosed = "slot_closed"
	// CodeTimeSlotTaken все места в слоте заняты
	CodeTimeSlotTaken = "time_slot_taken"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON-ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку в форме {"error": code, "message": message}
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, errorResponse{Error: code, Message: message})
}

// RespondValidationError пишет 400 с полным списком нарушений
func RespondValidationError(w http.ResponseWriter, details []string) {
	RespondJSON(w, http.StatusBadRequest, errorResponse{Error: codeValidationError, Details: details})
}

// RespondBadRequest пишет 400 bad_request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, codeBadRequest, message)
}

// RespondNotFound пишет 404 not_found
func RespondNotFound(w http.ResponseWriter) {
	RespondJSON(w, http.StatusNotFound, errorResponse{Error: codeNotFound})
}

// RespondInternalError пишет 500 internal_error
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, errorResponse{Error: codeInternalError})
}
