package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Wardrobe/internal/model"
)

// ErrNotFound: сервер ответил 404.
var ErrNotFound = errors.New("item not found")

// Error: ответ сервера с кодом ошибки и полем "error".
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Unwrap позволяет проверять 404 через errors.Is(err, ErrNotFound).
func (e *Error) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// DoJSON отправляет запрос с JSON-телом (payload может быть nil) и читает ответ целиком.
func DoJSON(ctx context.Context, method, url string, payload any) (*http.Response, []byte, error) {
	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, body, nil
}

// Client: типизированный клиент Wardrobe API.
type Client struct {
	BaseURL string
}

// NewClient создаёт клиент для адреса вида http://host:port.
func NewClient(serverURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(serverURL, "/")}
}

// ItemPayload: тело POST/PUT. nil-поля уходят как null.
type ItemPayload struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Color    *string `json:"color"`
	Brand    *string `json:"brand"`
	Size     *string `json:"size"`
	Season   *string `json:"season"`
	ImageURL *string `json:"image_url"`
	Notes    *string `json:"notes"`
}

// PayloadFromItem копирует изменяемые поля вещи.
func PayloadFromItem(it model.ClothingItem) ItemPayload {
	return ItemPayload{
		Name:     model.StrPtr(it.Name),
		Category: model.StrPtr(it.Category),
		Color:    it.Color,
		Brand:    it.Brand,
		Size:     it.Size,
		Season:   it.Season,
		ImageURL: it.ImageURL,
		Notes:    it.Notes,
	}
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// HealthResponse: ответ /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// List запрашивает список вещей, пустые фильтры не передаются.
func (c *Client) List(ctx context.Context, category, season string) ([]model.ClothingItem, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if season != "" {
		q.Set("season", season)
	}
	u := c.BaseURL + "/api/clothes"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var items []model.ClothingItem
	if err := c.call(ctx, http.MethodGet, u, nil, http.StatusOK, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get возвращает вещь по id.
func (c *Client) Get(ctx context.Context, id int64) (*model.ClothingItem, error) {
	var it model.ClothingItem
	if err := c.call(ctx, http.MethodGet, c.itemURL(id), nil, http.StatusOK, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Create создаёт вещь и возвращает её id.
func (c *Client) Create(ctx context.Context, p ItemPayload) (int64, error) {
	var out createdResponse
	if err := c.call(ctx, http.MethodPost, c.BaseURL+"/api/clothes", p, http.StatusCreated, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Update полностью перезаписывает вещь.
func (c *Client) Update(ctx context.Context, id int64, p ItemPayload) (string, error) {
	var out messageResponse
	if err := c.call(ctx, http.MethodPut, c.itemURL(id), p, http.StatusOK, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Delete удаляет вещь.
func (c *Client) Delete(ctx context.Context, id int64) (string, error) {
	var out messageResponse
	if err := c.call(ctx, http.MethodDelete, c.itemURL(id), nil, http.StatusOK, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Health проверяет доступность сервера.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, c.BaseURL+"/api/health", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) itemURL(id int64) string {
	return c.BaseURL + "/api/clothes/" + strconv.FormatInt(id, 10)
}

func (c *Client) call(ctx context.Context, method, u string, payload any, want int, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, body, err := DoJSON(ctx, method, u, payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != want {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &e)
		return &Error{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
