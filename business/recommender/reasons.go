package recommender

import (
	"fmt"

	"cardPilot/domain"
)

// categoryDisplayNames maps the category taxonomy to the names shown
// in reasons. Unmapped categories render verbatim so upstream can add
// categories without touching this table.
var categoryDisplayNames = map[string]string{
	"dining":            "餐飲",
	"online_shopping":   "網購",
	"transport":         "交通",
	"overseas":          "海外",
	"convenience_store": "超商",
	"department_store":  "百貨",
	"travel":            "旅遊",
	"mobile_pay":        "行動支付",
	"supermarket":       "超市",
	"insurance":         "保險",
	"education":         "教育",
	"medical":           "醫療",
	"others":            "其他",
}

func displayCategory(category string) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	return category
}

// topSpendingCategory returns the category with the largest fraction.
// Equal fractions pick the lexicographically smallest name so the
// reason text is deterministic.
func topSpendingCategory(spendingHabits map[string]float64) string {
	top := ""
	best := 0.0
	for category, ratio := range spendingHabits {
		if top == "" || ratio > best || (ratio == best && category < top) {
			top = category
			best = ratio
		}
	}
	return top
}

// generateReasons builds the explanation list, in fixed priority
// order: reward fit, high-rate promotions, annual fee, reward-limit
// warning, promotion count. Capped at MaxReasons.
func (e *Engine) generateReasons(
	card domain.CreditCard,
	req domain.RecommendRequest,
	scores ScoreBreakdown,
	promotions []domain.Promotion,
) []string {
	reasons := make([]string, 0, e.cfg.MaxReasons)

	if scores.Reward > rewardReasonThreshold && len(req.SpendingHabits) > 0 {
		top := topSpendingCategory(req.SpendingHabits)
		reasons = append(reasons, fmt.Sprintf("%s回饋符合您的消費習慣", displayCategory(top)))
	}

	for _, promo := range promotions {
		if promo.RewardRate >= highRatePromoThreshold && promo.Category != "" {
			reasons = append(reasons, fmt.Sprintf("%s消費享 %g%% 回饋", displayCategory(promo.Category), promo.RewardRate))
		}
	}

	if card.IsFree() {
		reasons = append(reasons, "免年費")
	} else if scores.AnnualFeeROI > roiReasonThreshold {
		annualReward := EstimateMonthlyReward(card, req.SpendingHabits, req.MonthlyAmount, promotions, true) * 12
		if multiple := annualReward / float64(card.AnnualFee); multiple >= 1 {
			reasons = append(reasons, fmt.Sprintf("預估年回饋約為年費的 %.1f 倍，年費可回本", multiple))
		}
	}

	for _, promo := range promotions {
		if promo.RewardLimit != nil && *promo.RewardLimit > 0 {
			reasons = append(reasons, "部分優惠回饋有每月上限，請留意額度")
			break
		}
	}

	if len(promotions) > 0 && len(reasons) < 4 {
		reasons = append(reasons, fmt.Sprintf("目前有 %d 個優惠活動", len(promotions)))
	}

	if len(reasons) > e.cfg.MaxReasons {
		reasons = reasons[:e.cfg.MaxReasons]
	}

	return reasons
}
