package handlers

import (
	"encoding/json"
	"net/http"
)

// Тексты ответов API.
const (
	msgNotFound    = "Item not found"
	msgRequired    = "Name and category are required"
	msgCreated     = "Item created successfully"
	msgUpdated     = "Item updated successfully"
	msgDeleted     = "Item deleted successfully"
	msgInvalidBody = "Invalid request body"
	msgInternal    = "Internal server error"
	msgHealth      = "Wardrobe API is running"
)

// ErrorResponse: тело ответа с ошибкой.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
}

// MessageResponse: тело успешного ответа на изменение.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Item updated successfully"`
}

// CreatedResponse: ответ на создание вещи.
// swagger:model CreatedResponse
type CreatedResponse struct {
	ID      int64  `json:"id" example:"1"`
	Message string `json:"message" example:"Item created successfully"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
