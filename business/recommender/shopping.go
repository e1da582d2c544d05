package recommender

import (
	"fmt"
	"strings"

	"cardPilot/domain"
)

// platformCategories maps shopping platforms to promotion categories.
// Every supported platform is an online marketplace today; unknown
// platforms fall back to online_shopping rather than failing.
var platformCategories = map[string]string{
	"pchome": "online_shopping",
	"momo":   "online_shopping",
}

const fallbackPlatformCategory = "online_shopping"

func platformCategory(platform string) string {
	if category, ok := platformCategories[platform]; ok {
		return category
	}
	return fallbackPlatformCategory
}

// CalculateShoppingReward prices a single purchase on one card: best
// applicable rate (base vs. matching promotions), clamped to the
// winning promotion's limit when present.
func CalculateShoppingReward(
	card domain.CreditCard,
	platform string,
	amount int,
	promotions []domain.Promotion,
) domain.ShoppingReward {
	category := platformCategory(platform)
	bestRate, bestLimit := bestRateFor(card, category, promotions)

	reward := float64(amount) * bestRate / 100
	if reward < 0 {
		reward = 0
	}
	if bestLimit != nil && reward > *bestLimit {
		reward = *bestLimit
	}

	reason := fmt.Sprintf("%s 回饋 %g%%", strings.ToUpper(platform), bestRate)
	if bestLimit != nil && *bestLimit > 0 {
		reason += fmt.Sprintf("（上限 %g 元）", *bestLimit)
	}

	return domain.ShoppingReward{
		RewardAmount: round2(reward),
		BestRate:     bestRate,
		Reason:       reason,
	}
}
