package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/agentscope-ai/agentscope/config"
	"github.com/agentscope-ai/agentscope/internal/agents"
	"github.com/agentscope-ai/agentscope/internal/dispatch"
	"github.com/agentscope-ai/agentscope/internal/llm"
	"github.com/agentscope-ai/agentscope/internal/telemetry"
	"github.com/agentscope-ai/agentscope/tools/captions"
	"github.com/agentscope-ai/agentscope/tools/websearch"
)

// Run wires the full service and blocks serving HTTP.
func Run(cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"status": "error", "error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "AgentScope content generation API"})
	})
	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })

	tele := telemetry.New(cfg.Telemetry)
	e.GET("/metrics", echo.WrapHandler(tele.Handler()))

	// LLM providers: a missing key disables that backend's variants,
	// it does not prevent startup.
	openaiProvider := buildProvider(llm.OpenAI, cfg.Providers.OpenAI, baseLogger)
	groqProvider := buildProvider(llm.Groq, cfg.Providers.Groq, baseLogger)
	geminiProvider := buildProvider(llm.Gemini, cfg.Providers.Gemini, baseLogger)

	searcher, err := websearch.NewSearcher(cfg.Tools)
	if err != nil {
		baseLogger.Printf("web search disabled: %v", err)
		searcher = nil
	}

	registry := agents.BuildRegistry(agents.Deps{
		OpenAI:           openaiProvider,
		Groq:             groqProvider,
		Gemini:           geminiProvider,
		Searcher:         searcher,
		Captions:         captions.NewTimedTextFetcher(cfg.Tools.Timeout),
		MaxSearchResults: cfg.Tools.MaxResults,
	})

	engineLogger := log.New(log.Writer(), "[Dispatch] ", log.LstdFlags)
	engine := dispatch.NewEngine(registry, engineLogger, tele,
		cfg.Agents.MaxConcurrent, cfg.Agents.PipelineTimeout)

	gh := &GenerateHandler{Engine: engine, Telemetry: tele, Logger: baseLogger}
	gh.Register(e)

	rh := &RecommendHandler{Gemini: geminiProvider, Logger: baseLogger}
	rh.Register(e)

	history, err := buildHistoryStore(cfg.Storage.Redis, baseLogger)
	if err != nil {
		return err
	}
	hh := &HistoryHandler{Store: history, Limit: cfg.Storage.Redis.HistoryLimit}
	hh.Register(e)

	addr := cfg.General.Listen
	if addr == "" {
		addr = ":8000"
	}
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}

func buildProvider(client llm.Client, cfg config.Provider, logger *log.Logger) llm.Provider {
	provider, err := llm.NewProvider(client, cfg)
	if err != nil {
		logger.Printf("%s provider disabled: %v", client, err)
		return nil
	}
	return provider
}

// buildHistoryStore connects to Redis when configured and falls back
// to the in-process store otherwise.
func buildHistoryStore(cfg config.RedisConfig, logger *log.Logger) (HistoryStore, error) {
	if err := cfg.Validate(); err != nil {
		logger.Printf("history store using in-memory fallback: %v", err)
		return NewMemoryHistory(), nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed (%s:%s): %w", cfg.Host, cfg.Port, err)
	}
	return NewRedisHistory(rdb, cfg.HistoryLimit), nil
}
