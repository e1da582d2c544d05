package catalog

import (
	"context"
	"fmt"
	"time"

	"cardPilot/domain"
	"cardPilot/pkg/logger"
	"cardPilot/pkg/metrics"
)

// CardRepository contract interface
type CardRepository interface {
	FindAll(ctx context.Context) ([]domain.CreditCard, error)
}

type PromotionRepository interface {
	FindActiveByCardID(ctx context.Context, cardID uint64, at time.Time) ([]domain.Promotion, error)
}

// SnapshotCache stores a ready-to-serve catalog snapshot with a TTL.
// A nil cache is legal; the service then always hits the database.
type SnapshotCache interface {
	Get(ctx context.Context) (*domain.CatalogSnapshot, error)
	Set(ctx context.Context, snapshot domain.CatalogSnapshot) error
}

type Service struct {
	cardRepo  CardRepository
	promoRepo PromotionRepository
	cache     SnapshotCache
}

func NewService(cardRepo CardRepository, promoRepo PromotionRepository, cache SnapshotCache) *Service {
	return &Service{
		cardRepo:  cardRepo,
		promoRepo: promoRepo,
		cache:     cache,
	}
}

// Snapshot assembles the card universe with each card's currently
// active promotions. The returned value is a fresh copy every call, so
// callers can treat it as immutable.
func (s *Service) Snapshot(ctx context.Context) (domain.CatalogSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logger.Warn("catalog cache read failed", err)
		}
		if cached != nil {
			metrics.CatalogCacheHits.WithLabelValues("hit").Inc()
			return *cached, nil
		}
		metrics.CatalogCacheHits.WithLabelValues("miss").Inc()
	}

	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load cards", err)
		return domain.CatalogSnapshot{}, fmt.Errorf("load cards: %w", err)
	}

	now := time.Now()
	promotions := make(map[uint64][]domain.Promotion, len(cards))
	for _, card := range cards {
		promos, err := s.promoRepo.FindActiveByCardID(ctx, card.ID, now)
		if err != nil {
			logger.Error("failed to load promotions", "card_id", card.ID, "error", err)
			return domain.CatalogSnapshot{}, fmt.Errorf("load promotions for card %d: %w", card.ID, err)
		}
		if len(promos) > 0 {
			promotions[card.ID] = promos
		}
	}

	snapshot := domain.CatalogSnapshot{
		Cards:      cards,
		Promotions: promotions,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot); err != nil {
			logger.Warn("catalog cache write failed", err)
		}
	}

	return snapshot, nil
}
