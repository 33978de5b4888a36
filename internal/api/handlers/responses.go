package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Максимальный размер тела запроса
const maxBodyBytes = 1 << 20

const (
	msgInternalError   = "внутренняя ошибка сервера"
	msgUnauthorized    = "требуется авторизация"
	msgForbidden       = "доступ запрещен"
	msgTooManyRequests = "слишком много запросов, попробуйте позже"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса в v. Пустое тело считается ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondUnauthorized(w http.ResponseWriter) {
	RespondError(w, http.StatusUnauthorized, msgUnauthorized)
}

func RespondForbidden(w http.ResponseWriter) {
	RespondError(w, http.StatusForbidden, msgForbidden)
}

func RespondTooManyRequests(w http.ResponseWriter) {
	RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
