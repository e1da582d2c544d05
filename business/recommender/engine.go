package recommender

import (
	"context"
	"fmt"
	"math"
	"sort"

	"cardPilot/domain"
	"cardPilot/pkg/logger"
)

// CatalogProvider supplies the card universe a recommendation call
// works against. Implementations must hand out snapshots that stay
// immutable for the duration of the call.
type CatalogProvider interface {
	Snapshot(ctx context.Context) (domain.CatalogSnapshot, error)
}

// Engine is the pure scoring core: no I/O, no clock, no hidden state.
// A single Engine is safe for concurrent use.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Recommend filters, scores, ranks, and explains the catalog against
// one request. Ranking is descending by total score; exact ties order
// by ascending card ID so results never depend on catalog fetch order.
func (e *Engine) Recommend(req domain.RecommendRequest, catalog domain.CatalogSnapshot) []domain.CardRecommendation {
	limit := req.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	cards := e.filterCards(catalog.Cards, req)

	recs := make([]domain.CardRecommendation, 0, len(cards))
	for _, card := range cards {
		promotions := catalog.PromotionsFor(card.ID)

		scores := e.cfg.TotalScore(card, req.SpendingHabits, req.MonthlyAmount, req.Preferences, promotions)
		estimated := math.Round(EstimateMonthlyReward(card, req.SpendingHabits, req.MonthlyAmount, promotions, true))
		reasons := e.generateReasons(card, req, scores, promotions)

		recs = append(recs, domain.CardRecommendation{
			CardID:                 card.ID,
			CardName:               card.Name,
			BankName:               card.Bank.Name,
			Score:                  scores.Total,
			RewardScore:            scores.Reward,
			FeatureScore:           scores.Feature,
			PromotionScore:         scores.Promotion,
			AnnualFeeROIScore:      scores.AnnualFeeROI,
			EstimatedMonthlyReward: estimated,
			Reasons:                reasons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].CardID < recs[j].CardID
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}

	return recs
}

// filterCards drops cards failing hard constraints. The only hard
// filter today is no_annual_fee; every other preference is soft and
// only moves the feature score.
func (e *Engine) filterCards(cards []domain.CreditCard, req domain.RecommendRequest) []domain.CreditCard {
	if !hasPreference(req.Preferences, "no_annual_fee") {
		return cards
	}

	filtered := make([]domain.CreditCard, 0, len(cards))
	for _, card := range cards {
		if !card.IsFree() {
			continue
		}
		filtered = append(filtered, card)
	}

	return filtered
}

// Service wraps the pure engine with catalog loading, logging, and
// metrics, in the shape the rest of the system consumes.
type Service struct {
	catalog CatalogProvider
	engine  *Engine
}

func NewService(catalog CatalogProvider, cfg Config) *Service {
	return &Service{
		catalog: catalog,
		engine:  NewEngine(cfg),
	}
}

func (s *Service) Recommend(ctx context.Context, req domain.RecommendRequest) ([]domain.CardRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		logger.Error("failed to load card catalog", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"monthly_amount", req.MonthlyAmount,
		"preferences", len(req.Preferences),
		"candidate_count", len(snapshot.Cards),
	)

	recs := s.engine.Recommend(req, snapshot)

	RecommendRequestsTotal.Inc()
	RecommendedCardsTotal.Add(float64(len(recs)))

	return recs, nil
}

// BestCardForPurchase scans the whole catalog for the card paying the
// most on a single purchase. Ties keep the lower card ID.
func (s *Service) BestCardForPurchase(ctx context.Context, platform string, amount int) (*domain.ShoppingRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		logger.Error("failed to load card catalog", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(snapshot.Cards) == 0 {
		return nil, fmt.Errorf("card catalog is empty")
	}

	var best *domain.ShoppingRecommendation
	for _, card := range snapshot.Cards {
		reward := CalculateShoppingReward(card, platform, amount, snapshot.PromotionsFor(card.ID))
		if best == nil || reward.RewardAmount > best.Reward.RewardAmount ||
			(reward.RewardAmount == best.Reward.RewardAmount && card.ID < best.CardID) {
			best = &domain.ShoppingRecommendation{
				CardID:   card.ID,
				CardName: card.Name,
				BankName: card.Bank.Name,
				Reward:   reward,
			}
		}
	}

	ShoppingRewardRequestsTotal.WithLabelValues(platform).Inc()

	return best, nil
}

// ShoppingReward computes the payout for one purchase on one card.
func (s *Service) ShoppingReward(ctx context.Context, cardID uint64, platform string, amount int) (*domain.ShoppingReward, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		logger.Error("failed to load card catalog", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	for _, card := range snapshot.Cards {
		if card.ID != cardID {
			continue
		}
		reward := CalculateShoppingReward(card, platform, amount, snapshot.PromotionsFor(card.ID))
		ShoppingRewardRequestsTotal.WithLabelValues(platform).Inc()
		return &reward, nil
	}

	return nil, fmt.Errorf("card not found: %d", cardID)
}
