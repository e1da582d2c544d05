package recommender

import (
	"math"

	"cardPilot/domain"
)

// ScoreBreakdown carries the weighted total together with every
// sub-score so callers can explain the result.
type ScoreBreakdown struct {
	Total        float64 `json:"total"`
	Reward       float64 `json:"reward_score"`
	Feature      float64 `json:"feature_score"`
	Promotion    float64 `json:"promotion_score"`
	AnnualFeeROI float64 `json:"annual_fee_roi_score"`
}

// bestRateFor picks the highest applicable rate for one category: the
// card's base rate, or a matching promotion that strictly beats it.
// The returned limit is non-nil only when a promotion supplied the
// winning rate and carries a cap.
func bestRateFor(card domain.CreditCard, category string, promotions []domain.Promotion) (float64, *float64) {
	bestRate := card.BaseRewardRate
	if bestRate < 0 {
		bestRate = 0
	}

	var bestLimit *float64
	for _, promo := range promotions {
		if promo.Category != category || promo.RewardRate <= 0 {
			continue
		}
		if promo.RewardRate > bestRate {
			bestRate = promo.RewardRate
			bestLimit = promo.RewardLimit
		}
	}

	return bestRate, bestLimit
}

// EstimateMonthlyReward walks every (category, fraction) pair, prices
// it at the best applicable rate, optionally clamps each category to
// the winning promotion's reward limit, and sums. Reward limits never
// pool across categories. Zero or negative monthly spend yields 0.
func EstimateMonthlyReward(
	card domain.CreditCard,
	spendingHabits map[string]float64,
	monthlyAmount int,
	promotions []domain.Promotion,
	applyLimits bool,
) float64 {
	if monthlyAmount <= 0 {
		return 0
	}

	total := 0.0
	for category, ratio := range spendingHabits {
		spend := float64(monthlyAmount) * ratio

		bestRate, bestLimit := bestRateFor(card, category, promotions)

		reward := spend * bestRate / 100
		if applyLimits && bestLimit != nil && reward > *bestLimit {
			reward = *bestLimit
		}

		total += reward
	}

	if total < 0 {
		return 0
	}
	return total
}

// RewardScore normalizes the limit-aware monthly reward against a
// best-case ceiling of MonthlyAmount * BestCaseRewardRate%.
func (c Config) RewardScore(
	card domain.CreditCard,
	spendingHabits map[string]float64,
	monthlyAmount int,
	promotions []domain.Promotion,
) float64 {
	reward := EstimateMonthlyReward(card, spendingHabits, monthlyAmount, promotions, true)

	maxPossible := float64(monthlyAmount) * c.BestCaseRewardRate / 100
	if maxPossible <= 0 {
		return 0
	}

	return round2(math.Min(reward/maxPossible*100, 100))
}

// FeatureScore counts how many requested preference tags the card
// satisfies. No stated preference means no card is penalized: 50.
func FeatureScore(card domain.CreditCard, preferences []string) float64 {
	if len(preferences) == 0 {
		return neutralFeatureScore
	}

	matched := 0
	for _, pref := range preferences {
		if predicate, ok := preferenceRegistry[pref]; ok && predicate(card) {
			matched++
		}
	}

	return round2(float64(matched) / float64(len(preferences)) * 100)
}

// AnnualFeeROIScore rates whether projected annual rewards pay for the
// card. Free cards get a fixed 80: there is no downside to price in.
// For fee-bearing cards, a net ROITargetRate% return on annual spend
// scores 100.
func (c Config) AnnualFeeROIScore(
	card domain.CreditCard,
	monthlyAmount int,
	spendingHabits map[string]float64,
	promotions []domain.Promotion,
) float64 {
	if card.IsFree() {
		return freeCardROIScore
	}

	monthlyReward := EstimateMonthlyReward(card, spendingHabits, monthlyAmount, promotions, true)

	annualReward := monthlyReward * 12
	annualSpending := float64(monthlyAmount) * 12
	if annualSpending <= 0 {
		return 0
	}

	roi := (annualReward - float64(card.AnnualFee)) / annualSpending * 100
	if roi <= 0 {
		return 0
	}

	return round2(math.Min(roi/c.ROITargetRate*100, 100))
}

// PromotionScore rewards breadth and strength of the active promotion
// set. Each promotion contributes its rate capped at 10 points (a
// rate-less promotion counts 1), worth 5 score points each, clamped
// to 100.
func PromotionScore(promotions []domain.Promotion) float64 {
	if len(promotions) == 0 {
		return 0
	}

	total := 0.0
	for _, promo := range promotions {
		contribution := promo.RewardRate
		if contribution <= 0 {
			contribution = 1
		}
		total += math.Min(contribution, promotionRateCap)
	}

	return round2(math.Min(total*promotionPointValue, 100))
}

// TotalScore combines the four sub-scores with the configured weights.
// Weights are used as given; no normalization happens here.
func (c Config) TotalScore(
	card domain.CreditCard,
	spendingHabits map[string]float64,
	monthlyAmount int,
	preferences []string,
	promotions []domain.Promotion,
) ScoreBreakdown {
	rewardScore := c.RewardScore(card, spendingHabits, monthlyAmount, promotions)
	featureScore := FeatureScore(card, preferences)
	promotionScore := PromotionScore(promotions)
	roiScore := c.AnnualFeeROIScore(card, monthlyAmount, spendingHabits, promotions)

	total := rewardScore*c.Weights.Reward +
		featureScore*c.Weights.Feature +
		promotionScore*c.Weights.Promotion +
		roiScore*c.Weights.AnnualFeeROI

	return ScoreBreakdown{
		Total:        round2(total),
		Reward:       rewardScore,
		Feature:      featureScore,
		Promotion:    promotionScore,
		AnnualFeeROI: roiScore,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
