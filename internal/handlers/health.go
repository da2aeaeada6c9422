package handlers

import "net/http"

// HealthResponse: ответ проверки живости.
// swagger:model HealthResponse
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Wardrobe API is running"`
}

// Health отвечает фиксированным статусом, без проверки БД.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /api/health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Message: msgHealth})
}
