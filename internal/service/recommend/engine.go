package recommend

import (
	"context"
	"log/slog"
	"time"

	"github.com/Taichi-iskw/cheta/internal/config"
	"github.com/Taichi-iskw/cheta/internal/errors"
	"github.com/Taichi-iskw/cheta/internal/model"
	"github.com/Taichi-iskw/cheta/internal/service/youtube"
)

// Engine is interface for producing one grounded recommendation per run
type Engine interface {
	// Run fetches candidates from every configured channel and recommends one
	Run(ctx context.Context) (*model.Recommendation, error)
	// FetchCandidates lists videos channel by channel, skipping failed channels
	FetchCandidates(ctx context.Context) []*model.Video
	// Recommend asks the generator to pick among candidates and grounds the pick
	Recommend(ctx context.Context, candidates []*model.Video) (*model.Recommendation, error)
}

// engine implements Engine
type engine struct {
	cfg       *config.Config
	lister    youtube.VideoLister
	generator Generator
	logger    *slog.Logger
	sleep     func(time.Duration)
}

// NewEngine creates a new Engine over the given configuration and collaborators
func NewEngine(cfg *config.Config, lister youtube.VideoLister, generator Generator, logger *slog.Logger) Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &engine{
		cfg:       cfg,
		lister:    lister,
		generator: generator,
		logger:    logger,
		sleep:     time.Sleep,
	}
}

// Run executes the whole pipeline
func (e *engine) Run(ctx context.Context) (*model.Recommendation, error) {
	candidates := e.FetchCandidates(ctx)
	if len(candidates) == 0 {
		e.logger.Warn("no videos fetched from any channel", slog.Int("channels", len(e.cfg.Channels)))
		return nil, ErrNoCandidates
	}
	e.logger.Info("fetched candidate videos", slog.Int("count", len(candidates)))

	rec, err := e.Recommend(ctx, candidates)
	if err != nil {
		return nil, err
	}

	e.logger.Info("top recommendation", slog.String("title", rec.Title), slog.String("url", rec.URL))
	return rec, nil
}

// FetchCandidates keeps channel order and pauses between fetches.
// The pause is a plain sleep and does not observe ctx.
func (e *engine) FetchCandidates(ctx context.Context) []*model.Video {
	var all []*model.Video

	for i, channelID := range e.cfg.Channels {
		if i > 0 {
			e.sleep(e.cfg.FetchInterval)
		}

		videos, err := e.lister.ListVideos(ctx, channelID, e.cfg.MaxResults)
		if errors.HasCode(err, errors.CodeInvalidArg) {
			// A config typo, not an API failure
			e.logger.Warn("skipping invalid channel ID",
				slog.String("channel", channelID),
				slog.Any("error", err),
			)
			continue
		}
		if err != nil {
			e.logger.Error("failed to fetch videos",
				slog.String("channel", channelID),
				slog.Any("error", err),
			)
			continue
		}

		e.logger.Debug("fetched channel", slog.String("channel", channelID), slog.Int("videos", len(videos)))
		all = append(all, videos...)
	}

	return all
}

// Recommend calls the generator once and reconciles its answer
func (e *engine) Recommend(ctx context.Context, candidates []*model.Video) (*model.Recommendation, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	prompt := BuildPrompt(candidates, e.cfg.Preferences)
	answer, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	rec, grounded, err := Reconcile(candidates, answer)
	if err != nil {
		return nil, err
	}
	if !grounded {
		var modelURL string
		if answer != nil {
			modelURL = answer.URL
		}
		e.logger.Warn("recommended video is not in the fetched videos list, using most recent video",
			slog.String("model_url", modelURL),
			slog.String("fallback_url", rec.URL),
		)
	}

	return rec, nil
}
