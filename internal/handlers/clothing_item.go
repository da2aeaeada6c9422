package handlers

import (
	"Wardrobe/internal/config"
	"Wardrobe/internal/middleware"
	"Wardrobe/internal/model"
	"Wardrobe/internal/repo"
	"Wardrobe/internal/service"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ClothingItemHandler обрабатывает CRUD-запросы к каталогу.
type ClothingItemHandler struct {
	ItemService *service.ClothingItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewClothingItemHandler создаёт хендлер вещей.
func NewClothingItemHandler(itemService *service.ClothingItemService, logger *zap.SugaredLogger, cfg *config.Config) *ClothingItemHandler {
	return &ClothingItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// ClothingItemRequest: тело POST/PUT (JSON или form-urlencoded). Отсутствующее поле или null означает NULL.
// swagger:model ClothingItemRequest
type ClothingItemRequest struct {
	Name     *string `json:"name" example:"Blue Jeans"`
	Category *string `json:"category" example:"Bottoms"`
	Color    *string `json:"color" example:"Blue"`
	Brand    *string `json:"brand"`
	Size     *string `json:"size" example:"M"`
	Season   *string `json:"season" example:"Fall"`
	ImageURL *string `json:"image_url"`
	Notes    *string `json:"notes"`
}

func (r ClothingItemRequest) input() model.ClothingItemInput {
	return model.ClothingItemInput{
		Name:     r.Name,
		Category: r.Category,
		Color:    r.Color,
		Brand:    r.Brand,
		Size:     r.Size,
		Season:   r.Season,
		ImageURL: r.ImageURL,
		Notes:    r.Notes,
	}
}

// List возвращает вещи с фильтрами category и season.
// @Summary List clothing items
// @Description Newest first. Filters are exact, case-sensitive and combined with AND.
// @Tags clothes
// @Produce json
// @Param category query string false "Category filter"
// @Param season query string false "Season filter"
// @Success 200 {array} model.ClothingItem
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/clothes [get]
func (h *ClothingItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.ItemService.List(r.Context(), q.Get("category"), q.Get("season"))
	if err != nil {
		h.fail(w, r, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get возвращает одну вещь.
// @Summary Get clothing item
// @Tags clothes
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} model.ClothingItem
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/clothes/{id} [get]
func (h *ClothingItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	it, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Create добавляет вещь.
// @Summary Create clothing item
// @Tags clothes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param item body handlers.ClothingItemRequest true "Item fields"
// @Success 201 {object} handlers.CreatedResponse
// @Failure 400 {object} handlers.ErrorResponse "Name and category are required / invalid body"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/clothes [post]
func (h *ClothingItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	id, err := h.ItemService.Create(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedResponse{ID: id, Message: msgCreated})
}

// Update перезаписывает все поля вещи.
// @Summary Replace clothing item
// @Description Full overwrite: omitted fields become null.
// @Tags clothes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Item ID"
// @Param item body handlers.ClothingItemRequest true "Item fields"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/clothes/{id} [put]
func (h *ClothingItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	if err := h.ItemService.Update(r.Context(), id, req.input()); err != nil {
		h.fail(w, r, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msgUpdated})
}

// Delete удаляет вещь.
// @Summary Delete clothing item
// @Tags clothes
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/clothes/{id} [delete]
func (h *ClothingItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "delete", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msgDeleted})
}

// fail переводит ошибку сервиса в HTTP-ответ. Детали ошибок хранилища наружу не отдаются.
func (h *ClothingItemHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, msgRequired)
	case errors.Is(err, service.ErrItemNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		reqID, _ := middleware.RequestIDFromContext(r.Context())
		var se *repo.StorageError
		if errors.As(err, &se) {
			h.Logger.Errorw("storage failure", "op", op, "storage_op", se.Op, "request_id", reqID, "error", se.Err)
		} else {
			h.Logger.Errorw("request failed", "op", op, "request_id", reqID, "error", err)
		}
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// parseID читает {id}. Нечисловой id не может совпасть ни с одной записью.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeRequest разбирает тело запроса. Пустое тело равносильно {}.
// Формы (application/x-www-form-urlencoded) тоже принимаются: отсутствующий ключ означает NULL.
func decodeRequest(w http.ResponseWriter, r *http.Request) (ClothingItemRequest, bool) {
	var req ClothingItemRequest
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return req, false
		}
		return requestFromForm(r.PostForm), true
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return req, false
	}
	return req, true
}

func isForm(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}

func requestFromForm(v url.Values) ClothingItemRequest {
	field := func(key string) *string {
		if _, ok := v[key]; !ok {
			return nil
		}
		s := v.Get(key)
		return &s
	}
	return ClothingItemRequest{
		Name:     field("name"),
		Category: field("category"),
		Color:    field("color"),
		Brand:    field("brand"),
		Size:     field("size"),
		Season:   field("season"),
		ImageURL: field("image_url"),
		Notes:    field("notes"),
	}
}
