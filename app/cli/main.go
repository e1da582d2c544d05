package main

import (
	"fmt"
	"log"
	"os"

	"cardPilot/business/catalog"
	"cardPilot/business/recommender"
	psqlRepo "cardPilot/internal/repository/postgres"
	redisRepo "cardPilot/internal/repository/redis"
	"cardPilot/pkg/config"
	"cardPilot/pkg/database"
	redisdb "cardPilot/pkg/database/redis"
	"cardPilot/pkg/logger"
	"cardPilot/pkg/metrics"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	metrics.Init()

	app := &cli.App{
		Name:    "cardpilot",
		Version: cfg.App.Version,
		Usage:   "Credit card recommendation CLI",
		Commands: []*cli.Command{
			recommendCmd(cfg),
			shoppingRewardCmd(cfg),
			seedCmd(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal("command failed", err)
	}
}

// deps is everything a command needs, built once per invocation.
type deps struct {
	bankRepo  *psqlRepo.BankRepository
	cardRepo  *psqlRepo.CardRepository
	promoRepo *psqlRepo.PromotionRepository
	cache     *redisRepo.CatalogCache
	service   *recommender.Service
	close     func()
}

func buildDeps(cfg *config.Config) (*deps, error) {
	db, err := database.InitPostgres(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	d := &deps{
		bankRepo:  psqlRepo.NewBankRepository(db),
		cardRepo:  psqlRepo.NewCardRepository(db),
		promoRepo: psqlRepo.NewPromotionRepository(db),
		close:     func() {},
	}

	var cache catalog.SnapshotCache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", err)
		} else {
			d.cache = redisRepo.NewCatalogCache(client, time.Duration(cfg.Redis.CatalogTTLSec)*time.Second)
			cache = d.cache
			d.close = func() {
				_ = redisdb.CloseRedisClient(client)
			}
		}
	}

	catalogService := catalog.NewService(d.cardRepo, d.promoRepo, cache)
	d.service = recommender.NewService(catalogService, recommenderConfig(cfg))

	return d, nil
}

func recommenderConfig(cfg *config.Config) recommender.Config {
	return recommender.Config{
		Weights: recommender.ScoringWeights{
			Reward:       cfg.Recommender.WeightReward,
			Feature:      cfg.Recommender.WeightFeature,
			Promotion:    cfg.Recommender.WeightPromotion,
			AnnualFeeROI: cfg.Recommender.WeightAnnualFeeROI,
		},
		BestCaseRewardRate: cfg.Recommender.BestCaseRewardRate,
		ROITargetRate:      cfg.Recommender.ROITargetRate,
		DefaultLimit:       cfg.Recommender.DefaultLimit,
	}
}
