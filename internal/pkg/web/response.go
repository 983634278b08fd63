package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"

	"github.com/cinelog/cinelog/internal/pkg/message"
)

// OKResponse is the envelope for successful JSON responses.
type OKResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed JSON responses. Fields carries
// field-level validation errors when present.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respond[T any](w http.ResponseWriter, status int, msg *string, data T) {
	payload := &OKResponse[T]{Data: data}
	if msg != nil {
		payload.Message = *msg
	}

	response.JSON(w, status, payload)
}

func Fail(w http.ResponseWriter, status int, reason error, msg string, fields map[string]string) {
	slog.Error("request failed", "reason", reason)
	payload := &ErrorResponse{
		Error:  msg,
		Fields: fields,
	}
	response.JSON(w, status, payload)
}

func RespondOK[T any](w http.ResponseWriter, msg *string, data T) {
	respond(w, http.StatusOK, msg, data)
}

func RespondCreated[T any](w http.ResponseWriter, msg *string, data T) {
	respond(w, http.StatusCreated, msg, data)
}

func RespondBadRequest(w http.ResponseWriter, reason error, msg string, fields map[string]string) {
	Fail(w, http.StatusBadRequest, reason, msg, fields)
}

func RespondUnauthorized(w http.ResponseWriter, reason error, msg string, fields map[string]string) {
	Fail(w, http.StatusUnauthorized, reason, msg, fields)
}

func RespondNotFound(w http.ResponseWriter, reason error, msg string, fields map[string]string) {
	Fail(w, http.StatusNotFound, reason, msg, fields)
}

func RespondConflict(w http.ResponseWriter, reason error, msg string, fields map[string]string) {
	Fail(w, http.StatusConflict, reason, msg, fields)
}

func RespondNotAcceptable(w http.ResponseWriter, reason error, msg string, fields map[string]string) {
	Fail(w, http.StatusNotAcceptable, reason, msg, fields)
}

func RespondUnprocessableEntity(w http.ResponseWriter, reason error, msg string, fields map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, reason, msg, fields)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, reason error, msg string, fields map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, reason, msg, fields)
}

func RespondInternalServerError(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusInternalServerError, reason, message.SomethingWrong, nil)
}
