package recommender

import (
	"strings"
	"testing"

	"cardPilot/domain"
)

func reasonsFor(t *testing.T, card domain.CreditCard, req domain.RecommendRequest, promos []domain.Promotion) []string {
	t.Helper()
	engine := NewEngine(DefaultConfig())
	scores := engine.cfg.TotalScore(card, req.SpendingHabits, req.MonthlyAmount, req.Preferences, promos)
	return engine.generateReasons(card, req, scores, promos)
}

func containsSubstring(reasons []string, substr string) bool {
	for _, r := range reasons {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}

func TestGenerateReasons_TopCategoryDisplayName(t *testing.T) {
	card := domain.CreditCard{ID: 1, BaseRewardRate: 1.0}
	promos := []domain.Promotion{
		{Category: "convenience_store", RewardRate: 5.0, RewardLimit: limitOf(10000)},
	}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"convenience_store": 0.8, "others": 0.2},
		MonthlyAmount:  20000,
	}

	reasons := reasonsFor(t, card, req, promos)
	if !containsSubstring(reasons, "超商") {
		t.Fatalf("expected 超商 in reasons, got %v", reasons)
	}
}

func TestGenerateReasons_HighRatePromotion(t *testing.T) {
	card := domain.CreditCard{ID: 1, BaseRewardRate: 1.0}
	promos := []domain.Promotion{{Category: "dining", RewardRate: 8.0}}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"dining": 1.0},
		MonthlyAmount:  10000,
	}

	reasons := reasonsFor(t, card, req, promos)
	var found string
	for _, r := range reasons {
		if strings.Contains(r, "8") && strings.Contains(r, "%") && strings.Contains(r, "餐飲") {
			found = r
		}
	}
	if found == "" {
		t.Fatalf("expected a dining 8%% promo reason, got %v", reasons)
	}
}

func TestGenerateReasons_LowRatePromotionSkipped(t *testing.T) {
	card := domain.CreditCard{ID: 1, BaseRewardRate: 1.0}
	promos := []domain.Promotion{{Category: "dining", RewardRate: 1.5}}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"others": 1.0},
		MonthlyAmount:  10000,
	}

	reasons := reasonsFor(t, card, req, promos)
	if containsSubstring(reasons, "餐飲消費享") {
		t.Fatalf("1.5%% promo should not get a rate callout, got %v", reasons)
	}
}

func TestGenerateReasons_FreeCard(t *testing.T) {
	card := domain.CreditCard{ID: 1, AnnualFee: 0, BaseRewardRate: 1.0}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"others": 1.0},
		MonthlyAmount:  10000,
	}

	reasons := reasonsFor(t, card, req, nil)
	if !containsSubstring(reasons, "免年費") {
		t.Fatalf("expected 免年費, got %v", reasons)
	}
}

func TestGenerateReasons_FeeRecovered(t *testing.T) {
	// 50000 * 3% * 12 = 18000 against a 2000 fee: roi score 53.33 is
	// below the callout threshold, so push the rate higher.
	card := domain.CreditCard{ID: 1, AnnualFee: 2000, BaseRewardRate: 4.0}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"dining": 1.0},
		MonthlyAmount:  50000,
	}

	reasons := reasonsFor(t, card, req, nil)
	if !containsSubstring(reasons, "年費") || !containsSubstring(reasons, "倍") {
		t.Fatalf("expected fee-recovery reason, got %v", reasons)
	}
	if containsSubstring(reasons, "免年費") {
		t.Fatalf("paid card must not claim 免年費, got %v", reasons)
	}
}

func TestGenerateReasons_RewardLimitWarning(t *testing.T) {
	card := domain.CreditCard{ID: 1, BaseRewardRate: 1.0}
	promos := []domain.Promotion{
		{Category: "online_shopping", RewardRate: 5.0, RewardLimit: limitOf(200)},
	}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"online_shopping": 1.0},
		MonthlyAmount:  30000,
	}

	reasons := reasonsFor(t, card, req, promos)
	if !containsSubstring(reasons, "上限") {
		t.Fatalf("expected reward-limit warning, got %v", reasons)
	}
}

func TestGenerateReasons_NoLimitNoWarning(t *testing.T) {
	card := domain.CreditCard{ID: 1, BaseRewardRate: 1.0}
	promos := []domain.Promotion{{Category: "dining", RewardRate: 5.0}}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"dining": 1.0},
		MonthlyAmount:  10000,
	}

	reasons := reasonsFor(t, card, req, promos)
	if containsSubstring(reasons, "上限") {
		t.Fatalf("no limits set, warning is wrong: %v", reasons)
	}
}

func TestGenerateReasons_CapAtFive(t *testing.T) {
	card := domain.CreditCard{ID: 1, AnnualFee: 0, BaseRewardRate: 2.0}
	promos := []domain.Promotion{
		{Category: "dining", RewardRate: 8.0, RewardLimit: limitOf(500)},
		{Category: "online_shopping", RewardRate: 6.0},
		{Category: "mobile_pay", RewardRate: 5.0},
		{Category: "overseas", RewardRate: 4.0},
	}
	req := domain.RecommendRequest{
		SpendingHabits: map[string]float64{"dining": 1.0},
		MonthlyAmount:  30000,
	}

	reasons := reasonsFor(t, card, req, promos)
	if len(reasons) > 5 {
		t.Fatalf("expected at most 5 reasons, got %d: %v", len(reasons), reasons)
	}
	if len(reasons) == 0 {
		t.Fatal("expected some reasons")
	}
}

func TestTopSpendingCategory(t *testing.T) {
	if got := topSpendingCategory(map[string]float64{"dining": 0.7, "others": 0.3}); got != "dining" {
		t.Fatalf("expected dining, got %q", got)
	}
	// Ties pick the lexicographically smallest name.
	if got := topSpendingCategory(map[string]float64{"transport": 0.5, "dining": 0.5}); got != "dining" {
		t.Fatalf("expected dining on tie, got %q", got)
	}
	if got := topSpendingCategory(nil); got != "" {
		t.Fatalf("expected empty for no habits, got %q", got)
	}
}

func TestDisplayCategory_FallsBackVerbatim(t *testing.T) {
	if got := displayCategory("dining"); got != "餐飲" {
		t.Fatalf("expected 餐飲, got %q", got)
	}
	if got := displayCategory("gaming"); got != "gaming" {
		t.Fatalf("unmapped category should render verbatim, got %q", got)
	}
}
