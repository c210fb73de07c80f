// Package app wires configuration, catalog, session store and services
// together for the server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"shopassist/internal/catalog"
	"shopassist/internal/config"
	"shopassist/internal/metrics"
	"shopassist/internal/repository"
	"shopassist/internal/service"
	"shopassist/internal/session"
	"shopassist/internal/utils"

	"github.com/rs/zerolog/log"
)

// App holds the assembled services
type App struct {
	Index        *catalog.Index
	Store        session.Store
	Assistant    *service.Assistant
	Availability *service.AvailabilityService
	Fit          *service.FitAdvisor

	closers []func() error
}

// New loads the catalog and session store described by cfg and builds the services
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	var sources []catalog.Source
	if cfg.PostgresEnabled() {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.Catalog.Table,
			cfg.Catalog.MaxConnections,
			cfg.Catalog.MaxIdleConnections,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Postgres catalog unavailable, trying CSV")
		} else {
			a.closers = append(a.closers, repo.Close)
			sources = append(sources, repo)
		}
	}
	if cfg.Catalog.CSVPath != "" {
		sources = append(sources, catalog.NewCSVSource(cfg.Catalog.CSVPath))
	}
	idx := catalog.Load(ctx, sources...)

	store, err := newStore(cfg.Session)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	a.build(idx, store, cfg.Matching)
	return a, nil
}

// NewWithIndex builds the services over an already loaded catalog and store
func NewWithIndex(idx *catalog.Index, store session.Store, matching config.MatchingConfig) *App {
	a := &App{}
	a.build(idx, store, matching)
	return a
}

func (a *App) build(idx *catalog.Index, store session.Store, matching config.MatchingConfig) {
	intentParser := service.NewIntentParser(idx, utils.NewRatioMatcher(matching.FuzzyCutoff))
	ranker := service.NewRanker(matching.ResultLimit)
	matcher := service.NewProductMatcher(idx, intentParser, ranker)
	renderer := service.NewRenderer(idx.Roles())

	a.Index = idx
	a.Store = store
	a.Assistant = service.NewAssistant(
		store,
		intentParser,
		matcher,
		renderer,
		service.NewComparer(matcher, renderer),
		service.NewRecommender(idx, renderer, matching.RecommendLimit),
		service.NewAlertService(idx, matcher),
	)
	a.Availability = service.NewAvailabilityService(idx)
	a.Fit = service.NewFitAdvisor()

	metrics.RecordCatalog(idx.Len(), idx.Degraded())
	log.Info().
		Str("source", idx.Source()).
		Int("rows", idx.Len()).
		Bool("degraded", idx.Degraded()).
		Interface("roles", idx.Roles()).
		Msg("Catalog ready")
}

func newStore(cfg config.SessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "redis":
		return session.NewRedisStore(cfg.RedisURL, cfg.TTL)
	case "memory", "":
		return session.NewMemoryStore(cfg.Capacity)
	}
	return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
}

// Close releases database and Redis connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
