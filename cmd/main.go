package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/talentgrid/matcher/internal/api"
	"github.com/talentgrid/matcher/internal/bot"
	"github.com/talentgrid/matcher/internal/clients/gemini"
	"github.com/talentgrid/matcher/internal/config"
	"github.com/talentgrid/matcher/internal/logger"
	"github.com/talentgrid/matcher/internal/metrics"
	"github.com/talentgrid/matcher/internal/repositories"
	"github.com/talentgrid/matcher/internal/services"
)

func buildExplainer(ctx context.Context, cfg *config.Config) *services.MatchExplainer {

	if !cfg.AI.Enabled() {
		log.Info("no AI key configured, match explanations disabled")
		return nil
	}

	aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, cfg.AI.Model)
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)

	return services.NewMatchExplainer(aiClient)
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.API.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	talents := repositories.NewTalentsRepository(dbContext.DB)
	cachedTalents := repositories.NewCachedTalents(talents)
	jobs := repositories.NewJobsRepository(dbContext.DB)

	bus := EventBus.New()

	matchService, err := services.NewMatchService(bus, cachedTalents, jobs,
		time.Duration(cfg.Matcher.CacheTTLMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("can't create match service: %v", err)
	}

	cleaner, err := services.NewJobsCleaner(jobs, bus,
		cfg.Matcher.JobExpirationInDays, cfg.Matcher.JobRemovalAfterDays)
	if err != nil {
		log.Fatalf("can't create jobs cleaner: %v", err)
	}
	defer cleaner.Stop()

	if cfg.Notifier.Enabled() {
		notifier, err := bot.NewNotifier(cfg.Notifier.TgToken, bus, talents, buildExplainer(ctx, cfg))
		if err != nil {
			log.Fatalf("can't create notifier: %v", err)
		}
		defer notifier.Stop()
	}

	server := api.NewServer(cfg.API.Port, api.NewHandlers(matchService, jobs, talents, bus))
	if cfg.API.MaxRequestsPerSecond > 0 {
		server.SetRateLimit(cfg.API.MaxRequestsPerSecond)
	}
	go server.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = server.Stop(shutdownCtx); err != nil {
		log.Errorf("api server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
