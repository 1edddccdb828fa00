package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HistoryRecord is one saved recommendation, keyed by user email.
type HistoryRecord struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Prompt           string    `json:"prompt"`
	ContentType      string    `json:"content_type"`
	RecommendedAgent string    `json:"recommended_agent"`
	CreatedAt        time.Time `json:"created_at"`
}

// HistoryStore persists a capped recent-history list per user.
type HistoryStore interface {
	Add(ctx context.Context, record HistoryRecord) error
	Recent(ctx context.Context, email string, limit int) ([]HistoryRecord, error)
}

// redisHistory keeps each user's records in a Redis list, newest first,
// trimmed to the configured cap.
type redisHistory struct {
	client *redis.Client
	limit  int
}

func NewRedisHistory(client *redis.Client, limit int) HistoryStore {
	if limit <= 0 {
		limit = 100
	}
	return &redisHistory{client: client, limit: limit}
}

func historyKey(email string) string {
	return "agentscope:history:" + strings.ToLower(strings.TrimSpace(email))
}

func (r *redisHistory) Add(ctx context.Context, record HistoryRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}
	key := historyKey(record.Email)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(r.limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist history record: %w", err)
	}
	return nil
}

func (r *redisHistory) Recent(ctx context.Context, email string, limit int) ([]HistoryRecord, error) {
	if limit <= 0 || limit > r.limit {
		limit = r.limit
	}
	raws, err := r.client.LRange(ctx, historyKey(email), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	records := make([]HistoryRecord, 0, len(raws))
	for _, raw := range raws {
		var record HistoryRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// memoryHistory is the in-process fallback when Redis is not configured.
type memoryHistory struct {
	mu      sync.Mutex
	records map[string][]HistoryRecord
	limit   int
}

func NewMemoryHistory() HistoryStore {
	return &memoryHistory{records: make(map[string][]HistoryRecord), limit: 100}
}

func (m *memoryHistory) Add(_ context.Context, record HistoryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := historyKey(record.Email)
	list := append([]HistoryRecord{record}, m.records[key]...)
	if len(list) > m.limit {
		list = list[:m.limit]
	}
	m.records[key] = list
	return nil
}

func (m *memoryHistory) Recent(_ context.Context, email string, limit int) ([]HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.records[historyKey(email)]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	out := make([]HistoryRecord, len(list))
	copy(out, list)
	return out, nil
}

// HistoryHandler serves the per-user recommendation history.
type HistoryHandler struct {
	Store HistoryStore
	Limit int
}

func (h *HistoryHandler) Register(e *echo.Echo) {
	e.POST("/history", h.Save)
	e.GET("/history", h.List)
}

// Save records one recommendation for a user.
func (h *HistoryHandler) Save(c echo.Context) error {
	if !isJSONRequest(c) {
		return c.JSON(http.StatusUnsupportedMediaType, map[string]interface{}{
			"error": "Content-Type must be application/json",
		})
	}
	var body struct {
		Email            string `json:"email"`
		Prompt           string `json:"prompt"`
		ContentType      string `json:"content_type"`
		RecommendedAgent string `json:"recommended_agent"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request body"})
	}
	if strings.TrimSpace(body.Email) == "" || strings.TrimSpace(body.Prompt) == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Missing 'email' or 'prompt' in request body"})
	}

	record := HistoryRecord{
		ID:               uuid.NewString(),
		Email:            body.Email,
		Prompt:           body.Prompt,
		ContentType:      body.ContentType,
		RecommendedAgent: body.RecommendedAgent,
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.Store.Add(c.Request().Context(), record); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// List returns a user's recent records, newest first.
func (h *HistoryHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	if strings.TrimSpace(email) == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Missing 'email' query parameter"})
	}
	records, err := h.Store.Recent(c.Request().Context(), email, h.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"history": records})
}
