package domain

// RecommendRequest is the caller-declared spending profile. Fractions
// in SpendingHabits are not required to sum to 1; each category is
// priced independently as MonthlyAmount * fraction.
type RecommendRequest struct {
	SpendingHabits map[string]float64 `json:"spending_habits"`
	MonthlyAmount  int                `json:"monthly_amount"`
	Preferences    []string           `json:"preferences"`
	Limit          int                `json:"limit"`
}

type CardRecommendation struct {
	Rank                   int      `json:"rank"`
	CardID                 uint64   `json:"card_id"`
	CardName               string   `json:"card_name"`
	BankName               string   `json:"bank_name"`
	Score                  float64  `json:"score"`
	RewardScore            float64  `json:"reward_score"`
	FeatureScore           float64  `json:"feature_score"`
	PromotionScore         float64  `json:"promotion_score"`
	AnnualFeeROIScore      float64  `json:"annual_fee_roi_score"`
	EstimatedMonthlyReward float64  `json:"estimated_monthly_reward"`
	Reasons                []string `json:"reasons"`
}

// ShoppingReward is the single-purchase answer: the winning rate, the
// payout after any promotion cap, and one human-readable explanation.
type ShoppingReward struct {
	RewardAmount float64 `json:"reward_amount"`
	BestRate     float64 `json:"best_rate"`
	Reason       string  `json:"reason"`
}

// ShoppingRecommendation pairs a catalog card with its reward for one
// purchase, used when scanning for the best card on a platform.
type ShoppingRecommendation struct {
	CardID   uint64         `json:"card_id"`
	CardName string         `json:"card_name"`
	BankName string         `json:"bank_name"`
	Reward   ShoppingReward `json:"reward"`
}
