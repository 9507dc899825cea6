package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/notion"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/application"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/company"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/contact"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/engagement"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/goals"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/interview"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/message"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/narrative"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/post"
	reviewrepo "github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/review"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/auth"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/metrics"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/generation"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/insight"
	narrativesvc "github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/narrative"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/network"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/pipeline"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/review"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/workspace"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/transport/middleware"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("generation_provider", cfg.Generation.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	gen, err := NewGenerator(ctx, cfg.Generation, logger)
	if err != nil {
		return fmt.Errorf("generation provider: %w", err)
	}

	c := newContainer(cfg, logger, pool, gen)
	defer c.review.Close()
	defer c.limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return c.workspace.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// container holds the wired graph for one process.
type container struct {
	router    http.Handler
	review    *review.Service
	workspace *workspace.Service
	limiter   *middleware.RateLimiter
}

func newContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, gen Generator) *container {
	collector := metrics.New()
	tx := postgres.NewTxManager(pool)

	apps := application.New(pool)
	interviews := interview.New(pool)
	companies := company.New(pool)
	contacts := contact.New(pool)
	messages := message.New(pool)
	narratives := narrative.New(pool)
	posts := post.New(pool)
	engagements := engagement.New(pool)
	weekly := goals.New(pool)
	jobs := reviewrepo.New(pool)

	loc, err := time.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		// Validate already checked the zone.
		loc = time.UTC
	}

	pipelineSvc := pipeline.NewService(logger, apps, interviews, narratives, tx)
	networkSvc := network.NewService(logger, companies, contacts, messages, tx)
	narrativeSvc := narrativesvc.NewService(logger, narratives, posts, engagements, weekly)
	insightSvc := insight.NewService(logger, loc, apps, contacts, posts, engagements, weekly, companies)
	reviewSvc := review.NewService(logger, jobs, cfg.Review.NotificationLimit)
	generationSvc := generation.NewService(logger, gen, narratives, collector, cfg.Generation)
	workspaceSvc := workspace.NewService(logger, networkSvc, pipelineSvc, generationSvc, collector, cfg.Workspace)

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	deps := rest.RouterDeps{
		Logger: logger,
		Auth:   middleware.Auth(auth.NewManager(cfg.Auth)),
		CORS:   middleware.CORS(cfg.CORS),
	}
	if !cfg.RateLimit.Disabled {
		deps.RateLimit = limiter.Limit()
	}
	if !cfg.Metrics.Disabled {
		deps.Metrics = middleware.Metrics(collector)
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = collector.Handler()
	}

	optional := map[string]rest.Pinger{}
	if cfg.Notion.Enabled() {
		optional["notion"] = notion.New(cfg.Notion, logger, &http.Client{Timeout: 10 * time.Second})
	}

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, Version, optional),
		Pipeline:   rest.NewPipelineHandler(pipelineSvc, logger),
		Network:    rest.NewNetworkHandler(networkSvc, logger),
		Narrative:  rest.NewNarrativeHandler(narrativeSvc, logger),
		Insight:    rest.NewInsightHandler(insightSvc, logger),
		Review:     rest.NewReviewHandler(reviewSvc, logger),
		Generation: rest.NewGenerationHandler(generationSvc, logger),
		Workspace:  rest.NewWorkspaceHandler(workspaceSvc, logger),
	}, deps)

	return &container{
		router:    router,
		review:    reviewSvc,
		workspace: workspaceSvc,
		limiter:   limiter,
	}
}
