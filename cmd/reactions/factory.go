package reactions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Taichi-iskw/cheta/internal/config"
	"github.com/Taichi-iskw/cheta/internal/service/browser"
	"github.com/Taichi-iskw/cheta/internal/service/recommend"
	"github.com/Taichi-iskw/cheta/internal/service/youtube"
)

// Factory builds the collaborators of the reactions command
type Factory interface {
	CreateServices(ctx context.Context) (recommend.Engine, browser.Opener, error)
}

// ServiceFactory creates the production engine and browser opener
type ServiceFactory struct{}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// CreateServices loads configuration and credentials once and wires the pipeline
func (f *ServiceFactory) CreateServices(ctx context.Context) (recommend.Engine, browser.Opener, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	logger := slog.Default()
	logger.Debug("configuration loaded",
		slog.Int("channels", len(cfg.Channels)),
		slog.String("model", cfg.Model),
		slog.Any("credentials", creds),
	)

	lister, err := youtube.NewAPILister(ctx, creds.YouTubeAPIKey)
	if err != nil {
		return nil, nil, err
	}

	generator, err := recommend.NewGeminiGenerator(ctx, recommend.GeminiConfig{
		APIKey: creds.GeminiAPIKey,
		Model:  cfg.Model,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return recommend.NewEngine(cfg, lister, generator, logger), browser.NewOpener(), nil
}
