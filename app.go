// @title           Domain Name Suggestion API
// @version         1.0
// @description     Generates brandable domain name suggestions from a product description and checks domain availability.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/namegen_api/docs"
	"github.com/vit0-9/namegen_api/handlers"
	"github.com/vit0-9/namegen_api/pkg/config"
	"github.com/vit0-9/namegen_api/pkg/llm"
	"github.com/vit0-9/namegen_api/pkg/store"
	"github.com/vit0-9/namegen_api/pkg/suggestions"
	"github.com/vit0-9/namegen_api/pkg/utils"
	"github.com/vit0-9/namegen_api/pkg/utils/domain"
)

// App encapsulates all the components of the application
type App struct {
	Router             *gin.Engine
	Suggestions        *suggestions.Service
	Availability       *domain.Service
	Generations        *store.MemoryStore
	GenerationHandlers *handlers.GenerationHandlers
	DomainHandlers     *handlers.DomainHandlers
	HealthHandler      *handlers.HealthHandler

	closers []io.Closer
}

// NewApp wires providers, services and handlers from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	gin.SetMode(cfg.Server.Mode)
	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	app := &App{Generations: store.NewMemoryStore()}

	registry, err := newRegistry(cfg, app)
	if err != nil {
		return nil, err
	}

	fallback, err := suggestions.NewFallback()
	if err != nil {
		return nil, err
	}
	app.Suggestions = suggestions.NewService(registry, fallback, suggestions.Options{
		Timeout:         cfg.Generation.Timeout,
		FallbackEnabled: cfg.Fallback.Enabled,
	})

	checker, err := newChecker(cfg.Availability, cfg.Generation.Timeout, app)
	if err != nil {
		return nil, err
	}
	var similar domain.SimilarFinder
	if cfg.Availability.AIAlternatives {
		similar = app.Suggestions
	}
	app.Availability = domain.NewService(checker, similar)

	app.GenerationHandlers = handlers.NewGenerationHandlers(app.Suggestions, app.Generations)
	app.DomainHandlers = handlers.NewDomainHandlers(app.Availability)
	app.HealthHandler = handlers.NewHealthHandler()

	app.Router = gin.New()
	app.Router.Use(handlers.RequestID(), handlers.AccessLog(), handlers.Recovery())
	if err := app.Router.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("Could not reset trusted proxies")
	}

	app.setupRoutes()
	return app, nil
}

func newRegistry(cfg *config.Config, app *App) (*llm.Registry, error) {
	gemini := llm.NewGeminiGenerator(llm.GeminiConfig{
		APIKey: cfg.Providers.Gemini.APIKey,
		Model:  cfg.Providers.Gemini.Model,
	})
	app.closers = append(app.closers, gemini)

	deepseek := llm.NewDeepSeekGenerator(llm.DeepSeekConfig{
		APIKey:     cfg.Providers.DeepSeek.APIKey,
		Model:      cfg.Providers.DeepSeek.Model,
		BaseURL:    cfg.Providers.DeepSeek.BaseURL,
		HTTPClient: utils.NewHTTPClient(cfg.Generation.Timeout),
	})

	registry := llm.NewRegistry(cfg.Providers.Default)
	for _, g := range []llm.Generator{gemini, deepseek} {
		if err := registry.Register(g); err != nil {
			return nil, fmt.Errorf("register %s: %w", g.Name(), err)
		}
	}
	if _, ok := registry.Get(cfg.Providers.Default); !ok {
		return nil, fmt.Errorf("providers.default %q is not one of %v", cfg.Providers.Default, registry.Names())
	}

	if cfg.Providers.Gemini.APIKey == "" {
		log.Warn().Str("provider", llm.GeminiName).Msg("GEMINI_API_KEY is not set, requests for this provider will not reach the API")
	}
	if cfg.Providers.DeepSeek.APIKey == "" {
		log.Warn().Str("provider", llm.DeepSeekName).Msg("DEEPSEEK_API_KEY is not set, requests for this provider will not reach the API")
	}
	return registry, nil
}

func newChecker(cfg config.AvailabilityConfig, timeout time.Duration, app *App) (domain.Checker, error) {
	switch cfg.Backend {
	case config.BackendLoopia:
		checker, err := domain.NewLoopiaChecker(domain.LoopiaConfig{
			Username: cfg.Loopia.Username,
			Password: cfg.Loopia.Password,
			Endpoint: cfg.Loopia.Endpoint,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, checker)
		log.Info().Str("backend", config.BackendLoopia).Msg("Using registrar availability checks")
		return checker, nil
	default:
		log.Info().Str("backend", config.BackendSimulation).Msg("Using simulated availability checks")
		return domain.NewSimulator(), nil
	}
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	api := app.Router.Group("/api")
	{
		api.GET("/health", app.HealthHandler.HealthCheckHandler)
		api.POST("/generate-domains", app.GenerationHandlers.GenerateDomainsHandler)
		api.POST("/check-domain", app.DomainHandlers.CheckDomainHandler)
	}

	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start serves HTTP on addr until ctx is canceled, then shuts down gracefully.
func (app *App) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down server...")
		ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctxTimeout)
	}()

	log.Info().Str("addr", addr).Msg("API server starting")
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return <-shutdownErr
	}
	return err
}

// Close releases provider and registrar clients.
func (app *App) Close() error {
	var errs []error
	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
