package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SahanaNagaraju/news-agent/internal/config"
	"github.com/SahanaNagaraju/news-agent/pkg/news"
)

const (
	ServiceName    = "news-agent"
	ServiceVersion = "1.0.0"

	maxLimit = 100
)

type NewsHandler struct {
	provider news.Provider
	cfg      *config.Config
}

func NewNewsHandler(provider news.Provider, cfg *config.Config) *NewsHandler {
	return &NewsHandler{provider: provider, cfg: cfg}
}

func (h *NewsHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfoResponse{
		Service:     ServiceName,
		Version:     ServiceVersion,
		Description: "Stateless news agent forwarding queries to an external news provider",
		Endpoints: map[string]string{
			"health":    "/health",
			"news":      "/api/news",
			"headlines": "/api/headlines",
			"search":    "/api/search/{topic}",
			"query":     "/api/news/query (POST)",
		},
	})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	res := HealthResponse{
		Status:            "ok",
		Service:           ServiceName,
		Environment:       h.cfg.Env,
		ProviderReachable: true,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.provider.Ping(); err != nil {
		slog.Warn("provider health check failed", "provider", h.provider.Name(), "error", err)
		res.Status = "degraded"
		res.ProviderReachable = false
		c.JSON(http.StatusServiceUnavailable, res)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	params := news.NewsQuery{
		Query:    c.Query("query"),
		Category: c.Query("category"),
		Country:  c.Query("country"),
		Language: c.DefaultQuery("language", h.cfg.DefaultLanguage),
		Limit:    h.queryLimit(c),
	}

	data, err := h.provider.FetchNews(params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(data))
}

func (h *NewsHandler) GetHeadlines(c *gin.Context) {
	params := news.HeadlineQuery{
		Category: c.Query("category"),
		Country:  c.DefaultQuery("country", news.DefaultCountry),
		Limit:    h.queryLimit(c),
	}

	data, err := h.provider.FetchHeadlines(params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(data))
}

func (h *NewsHandler) SearchByTopic(c *gin.Context) {
	topic := strings.TrimSpace(c.Param("topic"))
	if topic == "" {
		c.JSON(http.StatusBadRequest, errorEnvelope(ErrorBody{
			Message: "topic is required",
			Details: "path parameter topic must not be empty",
		}))
		return
	}

	opts := news.SearchOptions{
		Country:  c.Query("country"),
		Language: c.DefaultQuery("language", h.cfg.DefaultLanguage),
		Limit:    h.queryLimit(c),
	}

	data, err := h.provider.SearchByTopic(topic, opts)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(data))
}

func (h *NewsHandler) QueryNews(c *gin.Context) {
	var req NewsQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(ErrorBody{
			Message: "invalid request body",
			Details: err.Error(),
		}))
		return
	}

	limit := h.cfg.DefaultLimit
	if req.Limit != nil {
		limit = clampLimit(*req.Limit, h.cfg.DefaultLimit)
	}

	language := req.Language
	if language == "" {
		language = h.cfg.DefaultLanguage
	}

	params := news.NewsQuery{
		Query:    req.Query,
		Category: req.Category,
		Country:  req.Country,
		Language: language,
		Limit:    limit,
	}

	data, err := h.provider.FetchNews(params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(data))
}

func (h *NewsHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorEnvelope(ErrorBody{
		Message: "route not found",
		Details: c.Request.URL.Path,
	}))
}

func (h *NewsHandler) respondError(c *gin.Context, err error) {
	var perr *news.ProviderError
	if errors.As(err, &perr) {
		slog.Error("provider request failed", "provider", h.provider.Name(), "status", perr.Status, "error", err)

		status := perr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}

		c.JSON(status, errorEnvelope(ErrorBody{
			Message: perr.Message,
			Status:  perr.Status,
			Details: perr.Details,
		}))
		return
	}

	slog.Error("unexpected error fetching news", "error", err)
	c.JSON(http.StatusInternalServerError, errorEnvelope(ErrorBody{
		Message: "failed to fetch news data",
		Details: err.Error(),
	}))
}

func (h *NewsHandler) queryLimit(c *gin.Context) int {
	return clampLimit(getQueryInt("limit", h.cfg.DefaultLimit, c), h.cfg.DefaultLimit)
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func clampLimit(limit, defaultLimit int) int {
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
