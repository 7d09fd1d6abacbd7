package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"workflow-automation-agent/config"
	_ "workflow-automation-agent/docs" // Swagger docs
	"workflow-automation-agent/internal/httpserver"
	"workflow-automation-agent/internal/intent"
	"workflow-automation-agent/internal/middleware"
	wfRepository "workflow-automation-agent/internal/workflow/repository"
	"workflow-automation-agent/internal/workflow/repository/catalog"
	"workflow-automation-agent/internal/workflow/repository/inmem"
	"workflow-automation-agent/internal/workflow/usecase"
	"workflow-automation-agent/pkg/llmprovider"
	"workflow-automation-agent/pkg/log"
	"workflow-automation-agent/pkg/n8n"
)

// @title       Workflow Automation Agent API
// @description Natural language to workflow automation: intent extraction, template matching, and n8n import.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Workflow Automation Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "n8n URL: %s", cfg.N8n.URL)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager configuration: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM manager initialized with %d providers", len(providers))

	// 4. Template repository: external catalog when configured, otherwise
	// the built-in in-memory catalog
	var repo wfRepository.TemplateRepository
	if cfg.Templates.URL != "" {
		repo = catalog.NewClient(cfg.Templates.URL)
		logger.Infof(ctx, "Using template catalog at %s", cfg.Templates.URL)
	} else {
		repo = inmem.New()
		logger.Info(ctx, "Using built-in in-memory template catalog")
	}

	// 5. n8n engine client
	engine := n8n.NewClient(cfg.N8n.URL, cfg.N8n.APIKey)

	// 6. Workflow agent use case
	extractor := intent.NewExtractor(logger, llm)
	workflowUC := usecase.New(
		logger,
		llm,
		extractor,
		repo,
		engine,
		cfg.Agent.ConfidenceThreshold,
		cfg.Agent.MaxRetries,
		cfg.Agent.RetryDelay,
	)

	// 7. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		WorkflowUC:  workflowUC,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
